package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// OrganizationHandler handles HTTP requests for tenant organizations.
type OrganizationHandler struct {
	service ports.OrganizationService
}

func NewOrganizationHandler(service ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

type createOrganizationRequest struct {
	Name          string `json:"name" validate:"required"`
	IsActive      bool   `json:"isActive"`
	TrialExpireAt int64  `json:"trialExpireAt"`
}

type updateOrganizationRequest struct {
	Name          *string `json:"name,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
	TrialExpireAt *int64  `json:"trialExpireAt,omitempty"`
}

// Create registers a new organization.
//
// @Summary      Create an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body      createOrganizationRequest  true  "Organization details"
// @Success      201   {object}  organizationResponse
// @Failure      400   {object}  map[string]string
// @Router       /organizations [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req createOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateOrganizationInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.TrialExpireAt > 0 {
		input.TrialExpireAt = time.Unix(req.TrialExpireAt, 0).UTC()
	}

	org, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("organization").Inc()
	return c.JSON(http.StatusCreated, newOrganizationResponse(org))
}

func (h *OrganizationHandler) List(c echo.Context) error {
	orgs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrganizationResponses(orgs))
}

func (h *OrganizationHandler) ListActive(c echo.Context) error {
	orgs, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrganizationResponses(orgs))
}

func (h *OrganizationHandler) Get(c echo.Context) error {
	org, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrganizationResponse(org))
}

func (h *OrganizationHandler) Update(c echo.Context) error {
	var req updateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdateOrganizationInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.TrialExpireAt != nil {
		t := time.Unix(*req.TrialExpireAt, 0).UTC()
		input.TrialExpireAt = &t
	}

	org, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrganizationResponse(org))
}

func (h *OrganizationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
