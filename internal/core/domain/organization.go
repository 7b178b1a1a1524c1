package domain

import (
	"errors"
	"time"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrMemberExists         = errors.New("member already exists")
	ErrRoleNotFound         = errors.New("role not found")
	ErrRoleExists           = errors.New("role already exists")
	ErrForbidden            = errors.New("access forbidden")
)

// Default role names seeded at startup. Every organization creator becomes
// its Owner.
const (
	RoleOwner  = "Owner"
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// Organization is the tenant scope under which all financial records are
// namespaced.
type Organization struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"-"`
	TrialExpireAt time.Time `json:"-"`
}

// Member binds a user to an organization with a role.
type Member struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	UserID         string `json:"userId"`
	RoleID         string `json:"roleId"`
}

// Role names a set of permissions within an organization.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
