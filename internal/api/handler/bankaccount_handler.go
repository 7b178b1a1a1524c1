package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// BankAccountHandler handles HTTP requests for bank connections.
type BankAccountHandler struct {
	service ports.BankAccountService
}

func NewBankAccountHandler(service ports.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{service: service}
}

type connectAccountRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
	MemberID       string `json:"memberId"       validate:"required"`
	BankName       string `json:"bankName"       validate:"required"`
	AccessToken    string `json:"accessToken"`
	RefreshToken   string `json:"refreshToken"`
	TokenExpireAt  int64  `json:"tokenExpireAt"`
}

// Connect links a bank account to a member.
//
// @Summary      Connect a bank account
// @Tags         bank-accounts
// @Accept       json
// @Produce      json
// @Param        body  body      connectAccountRequest  true  "Connection details"
// @Success      201   {object}  bankAccountResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /bank-accounts/connect [post]
func (h *BankAccountHandler) Connect(c echo.Context) error {
	var req connectAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.ConnectAccountInput{
		OrganizationID: req.OrganizationID,
		MemberID:       req.MemberID,
		BankName:       req.BankName,
		AccessToken:    req.AccessToken,
		RefreshToken:   req.RefreshToken,
	}
	if req.TokenExpireAt > 0 {
		input.TokenExpireAt = time.Unix(req.TokenExpireAt, 0).UTC()
	}

	acc, err := h.service.Connect(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("bank_account").Inc()
	return c.JSON(http.StatusCreated, newBankAccountResponse(acc))
}

func (h *BankAccountHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]*bankAccountResponse, 0, len(list))
	for _, acc := range list {
		out = append(out, newBankAccountResponse(acc))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BankAccountHandler) Get(c echo.Context) error {
	acc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newBankAccountResponse(acc))
}

func (h *BankAccountHandler) ByOrganization(c echo.Context) error {
	list, err := h.service.ByOrganization(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	out := make([]*bankAccountResponse, 0, len(list))
	for _, acc := range list {
		out = append(out, newBankAccountResponse(acc))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BankAccountHandler) ByMember(c echo.Context) error {
	list, err := h.service.ByMember(c.Request().Context(), c.Param("memberId"))
	if err != nil {
		return err
	}
	out := make([]*bankAccountResponse, 0, len(list))
	for _, acc := range list {
		out = append(out, newBankAccountResponse(acc))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BankAccountHandler) Connected(c echo.Context) error {
	list, err := h.service.Connected(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	out := make([]*bankAccountResponse, 0, len(list))
	for _, acc := range list {
		out = append(out, newBankAccountResponse(acc))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BankAccountHandler) Disconnect(c echo.Context) error {
	if err := h.service.Disconnect(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
