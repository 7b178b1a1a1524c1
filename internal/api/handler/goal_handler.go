package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// GoalHandler handles HTTP requests for savings goals and the
// goals-contributions resource.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

type createGoalRequest struct {
	OrganizationID string      `json:"organizationId" validate:"required"`
	Name           string      `json:"name"           validate:"required"`
	DesiredAmount  money.Cents `json:"desiredAmount"  validate:"required"`
	DueDate        int64       `json:"dueDate"`
	Description    string      `json:"description"`
}

type updateGoalRequest struct {
	Name          *string      `json:"name,omitempty"`
	DesiredAmount *money.Cents `json:"desiredAmount,omitempty"`
	DueDate       *int64       `json:"dueDate,omitempty"`
	Description   *string      `json:"description,omitempty"`
}

type createContributionRequest struct {
	GoalID           string      `json:"goalId" validate:"required"`
	Value            money.Cents `json:"value"  validate:"required"`
	ContributionDate int64       `json:"contributionDate"`
	Description      string      `json:"description"`
}

// Create registers a new savings goal.
//
// @Summary      Create a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        body  body      createGoalRequest  true  "Goal details"
// @Success      201   {object}  goalResponse
// @Failure      400   {object}  map[string]string
// @Router       /goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateGoalInput{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		DesiredAmount:  req.DesiredAmount,
		Description:    req.Description,
	}
	if req.DueDate > 0 {
		input.DueDate = time.Unix(req.DueDate, 0).UTC()
	}

	goal, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("goal").Inc()
	return c.JSON(http.StatusCreated, newGoalResponse(goal))
}

func (h *GoalHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]*goalResponse, 0, len(list))
	for _, g := range list {
		out = append(out, newGoalResponse(g))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GoalHandler) Get(c echo.Context) error {
	goal, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newGoalResponse(goal))
}

func (h *GoalHandler) ByOrganization(c echo.Context) error {
	list, err := h.service.ByOrganization(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	out := make([]*goalResponse, 0, len(list))
	for _, g := range list {
		out = append(out, newGoalResponse(g))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GoalHandler) Update(c echo.Context) error {
	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdateGoalInput{
		Name:          req.Name,
		DesiredAmount: req.DesiredAmount,
		Description:   req.Description,
	}
	if req.DueDate != nil {
		t := time.Unix(*req.DueDate, 0).UTC()
		input.DueDate = &t
	}

	goal, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newGoalResponse(goal))
}

// Delete removes a goal together with its contributions.
func (h *GoalHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Contribute records a deposit toward a goal.
//
// @Summary      Record a goal contribution
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        body  body      createContributionRequest  true  "Contribution details"
// @Success      201   {object}  contributionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /goals-contributions [post]
func (h *GoalHandler) Contribute(c echo.Context) error {
	var req createContributionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateContributionInput{
		GoalID:      req.GoalID,
		Value:       req.Value,
		Description: req.Description,
	}
	if req.ContributionDate > 0 {
		input.ContributionDate = time.Unix(req.ContributionDate, 0).UTC()
	}

	contribution, err := h.service.Contribute(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("goal_contribution").Inc()
	return c.JSON(http.StatusCreated, newContributionResponse(contribution))
}

func (h *GoalHandler) Contributions(c echo.Context) error {
	list, err := h.service.Contributions(c.Request().Context(), c.Param("goalId"))
	if err != nil {
		return err
	}
	out := make([]*contributionResponse, 0, len(list))
	for _, contribution := range list {
		out = append(out, newContributionResponse(contribution))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GoalHandler) ContributionTotal(c echo.Context) error {
	total, err := h.service.ContributionTotal(c.Request().Context(), c.Param("goalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}
