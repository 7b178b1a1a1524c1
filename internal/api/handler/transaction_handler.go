package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// TransactionHandler serves either the expense or the income resource. Both
// resources share the cash flow core but keep their own routes, field names
// and listings.
type TransactionHandler struct {
	service ports.TransactionService
	kind    domain.FlowKind
}

func NewExpenseHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service, kind: domain.FlowExpense}
}

func NewIncomeHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service, kind: domain.FlowIncome}
}

type expenseRequest struct {
	OrganizationID string      `json:"organizationId" validate:"required"`
	TargetMemberID string      `json:"targetMemberId"`
	Name           string      `json:"name"           validate:"required"`
	ExpenseDate    int64       `json:"expenseDate"`
	ExpenseAmount  money.Cents `json:"expenseAmount"  validate:"required"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
}

type incomeRequest struct {
	OrganizationID string      `json:"organizationId" validate:"required"`
	TargetMemberID string      `json:"targetMemberId"`
	Name           string      `json:"name"           validate:"required"`
	IncomeDate     int64       `json:"incomeDate"`
	IncomeAmount   money.Cents `json:"incomeAmount"   validate:"required"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
}

type updateExpenseRequest struct {
	TargetMemberID *string      `json:"targetMemberId,omitempty"`
	Name           *string      `json:"name,omitempty"`
	ExpenseDate    *int64       `json:"expenseDate,omitempty"`
	ExpenseAmount  *money.Cents `json:"expenseAmount,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Category       *string      `json:"category,omitempty"`
}

type updateIncomeRequest struct {
	TargetMemberID *string      `json:"targetMemberId,omitempty"`
	Name           *string      `json:"name,omitempty"`
	IncomeDate     *int64       `json:"incomeDate,omitempty"`
	IncomeAmount   *money.Cents `json:"incomeAmount,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Category       *string      `json:"category,omitempty"`
}

func (h *TransactionHandler) respond(c echo.Context, status int, t *domain.Transaction) error {
	if h.kind == domain.FlowIncome {
		return c.JSON(status, newIncomeResponse(t))
	}
	return c.JSON(status, newExpenseResponse(t))
}

func (h *TransactionHandler) respondList(c echo.Context, list []*domain.Transaction) error {
	if h.kind == domain.FlowIncome {
		out := make([]*incomeResponse, 0, len(list))
		for _, t := range list {
			out = append(out, newIncomeResponse(t))
		}
		return c.JSON(http.StatusOK, out)
	}
	out := make([]*expenseResponse, 0, len(list))
	for _, t := range list {
		out = append(out, newExpenseResponse(t))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) bindCreate(c echo.Context) (ports.CreateTransactionInput, error) {
	var input ports.CreateTransactionInput

	if h.kind == domain.FlowIncome {
		var req incomeRequest
		if err := c.Bind(&req); err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(&req); err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		input = ports.CreateTransactionInput{
			OrganizationID: req.OrganizationID,
			TargetMemberID: req.TargetMemberID,
			Name:           req.Name,
			Amount:         req.IncomeAmount,
			Description:    req.Description,
			Category:       req.Category,
		}
		if req.IncomeDate > 0 {
			input.Date = time.Unix(req.IncomeDate, 0).UTC()
		}
		return input, nil
	}

	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input = ports.CreateTransactionInput{
		OrganizationID: req.OrganizationID,
		TargetMemberID: req.TargetMemberID,
		Name:           req.Name,
		Amount:         req.ExpenseAmount,
		Description:    req.Description,
		Category:       req.Category,
	}
	if req.ExpenseDate > 0 {
		input.Date = time.Unix(req.ExpenseDate, 0).UTC()
	}
	return input, nil
}

func (h *TransactionHandler) bindUpdate(c echo.Context) (ports.UpdateTransactionInput, error) {
	var input ports.UpdateTransactionInput

	if h.kind == domain.FlowIncome {
		var req updateIncomeRequest
		if err := c.Bind(&req); err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		input = ports.UpdateTransactionInput{
			TargetMemberID: req.TargetMemberID,
			Name:           req.Name,
			Amount:         req.IncomeAmount,
			Description:    req.Description,
			Category:       req.Category,
		}
		if req.IncomeDate != nil {
			t := time.Unix(*req.IncomeDate, 0).UTC()
			input.Date = &t
		}
		return input, nil
	}

	var req updateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	input = ports.UpdateTransactionInput{
		TargetMemberID: req.TargetMemberID,
		Name:           req.Name,
		Amount:         req.ExpenseAmount,
		Description:    req.Description,
		Category:       req.Category,
	}
	if req.ExpenseDate != nil {
		t := time.Unix(*req.ExpenseDate, 0).UTC()
		input.Date = &t
	}
	return input, nil
}

// Create records a new expense or income.
//
// @Summary      Create a cash flow record
// @Tags         expenses,incomes
// @Accept       json
// @Produce      json
// @Param        body  body      expenseRequest  true  "Record details"
// @Success      201   {object}  expenseResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /expenses [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	input, err := h.bindCreate(c)
	if err != nil {
		return err
	}

	tx, err := h.service.Create(c.Request().Context(), h.kind, input)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues(string(h.kind)).Inc()
	return h.respond(c, http.StatusCreated, tx)
}

func (h *TransactionHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context(), h.kind)
	if err != nil {
		return err
	}
	return h.respondList(c, list)
}

func (h *TransactionHandler) Get(c echo.Context) error {
	tx, err := h.service.Get(c.Request().Context(), h.kind, c.Param("id"))
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, tx)
}

func (h *TransactionHandler) ByOrganization(c echo.Context) error {
	list, err := h.service.ByOrganization(c.Request().Context(), h.kind, c.Param("organizationId"))
	if err != nil {
		return err
	}
	return h.respondList(c, list)
}

func (h *TransactionHandler) ByCategory(c echo.Context) error {
	list, err := h.service.ByCategory(c.Request().Context(), h.kind, c.Param("organizationId"), c.Param("category"))
	if err != nil {
		return err
	}
	return h.respondList(c, list)
}

// TotalByOrganization returns the organization-wide sum in cents as a bare
// JSON number.
func (h *TransactionHandler) TotalByOrganization(c echo.Context) error {
	total, err := h.service.TotalByOrganization(c.Request().Context(), h.kind, c.Param("organizationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}

func (h *TransactionHandler) TotalByCategory(c echo.Context) error {
	total, err := h.service.TotalByCategory(c.Request().Context(), h.kind, c.Param("organizationId"), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}

// CategoryTotals returns one bucket per category for an organization.
func (h *TransactionHandler) CategoryTotals(c echo.Context) error {
	buckets, err := h.service.CategoryTotals(c.Request().Context(), h.kind, c.Param("organizationId"))
	if err != nil {
		return err
	}
	out := make([]*categoryTotalResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, &categoryTotalResponse{Category: b.Category, Total: b.Total})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Update(c echo.Context) error {
	input, err := h.bindUpdate(c)
	if err != nil {
		return err
	}

	tx, err := h.service.Update(c.Request().Context(), h.kind, c.Param("id"), input)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, tx)
}

func (h *TransactionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), h.kind, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
