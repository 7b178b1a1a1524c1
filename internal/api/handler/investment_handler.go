package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// InvestmentHandler handles HTTP requests for investments.
type InvestmentHandler struct {
	service ports.InvestmentService
}

func NewInvestmentHandler(service ports.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

type createInvestmentRequest struct {
	OrganizationID string      `json:"organizationId" validate:"required"`
	MemberID       string      `json:"memberId"       validate:"required"`
	Name           string      `json:"name"           validate:"required"`
	Category       string      `json:"category"`
	Amount         money.Cents `json:"amount"         validate:"required"`
	PurchaseDate   int64       `json:"purchaseDate"`
	Description    string      `json:"description"`
}

type updateInvestmentRequest struct {
	Name         *string      `json:"name,omitempty"`
	Category     *string      `json:"category,omitempty"`
	Amount       *money.Cents `json:"amount,omitempty"`
	PurchaseDate *int64       `json:"purchaseDate,omitempty"`
	Description  *string      `json:"description,omitempty"`
}

// Create records an investment owned by a member.
//
// @Summary      Create an investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Param        body  body      createInvestmentRequest  true  "Investment details"
// @Success      201   {object}  investmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /investments [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	var req createInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateInvestmentInput{
		OrganizationID: req.OrganizationID,
		MemberID:       req.MemberID,
		Name:           req.Name,
		Category:       req.Category,
		Amount:         req.Amount,
		Description:    req.Description,
	}
	if req.PurchaseDate > 0 {
		input.PurchaseDate = time.Unix(req.PurchaseDate, 0).UTC()
	}

	inv, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("investment").Inc()
	return c.JSON(http.StatusCreated, newInvestmentResponse(inv))
}

func (h *InvestmentHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]*investmentResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, newInvestmentResponse(inv))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvestmentHandler) Get(c echo.Context) error {
	inv, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newInvestmentResponse(inv))
}

func (h *InvestmentHandler) ByOrganization(c echo.Context) error {
	list, err := h.service.ByOrganization(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	out := make([]*investmentResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, newInvestmentResponse(inv))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvestmentHandler) ByMember(c echo.Context) error {
	list, err := h.service.ByMember(c.Request().Context(), c.Param("memberId"))
	if err != nil {
		return err
	}
	out := make([]*investmentResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, newInvestmentResponse(inv))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvestmentHandler) TotalByOrganization(c echo.Context) error {
	total, err := h.service.TotalByOrganization(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}

func (h *InvestmentHandler) Update(c echo.Context) error {
	var req updateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdateInvestmentInput{
		Name:        req.Name,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.PurchaseDate != nil {
		t := time.Unix(*req.PurchaseDate, 0).UTC()
		input.PurchaseDate = &t
	}

	inv, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newInvestmentResponse(inv))
}

func (h *InvestmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
