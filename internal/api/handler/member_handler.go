package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// MemberHandler handles HTTP requests for organization memberships.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

type createMemberRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
	UserID         string `json:"userId"         validate:"required"`
	RoleID         string `json:"roleId"         validate:"required"`
}

type updateMemberRoleRequest struct {
	RoleID string `json:"roleId" validate:"required"`
}

// Create binds a user to an organization under a role.
//
// @Summary      Add a member to an organization
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body      createMemberRequest  true  "Membership details"
// @Success      201   {object}  domain.Member
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.Create(c.Request().Context(), req.OrganizationID, req.UserID, req.RoleID)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("member").Inc()
	return c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) ByOrganization(c echo.Context) error {
	members, err := h.service.ByOrganization(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) ByUser(c echo.Context) error {
	members, err := h.service.ByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) ByUserAndOrganization(c echo.Context) error {
	member, err := h.service.ByUserAndOrganization(c.Request().Context(), c.Param("userId"), c.Param("organizationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) UpdateRole(c echo.Context) error {
	var req updateMemberRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.UpdateRole(c.Request().Context(), c.Param("id"), req.RoleID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
