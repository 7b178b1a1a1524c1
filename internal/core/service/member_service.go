package service

import (
	"context"
	"fmt"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// MemberService implements membership use cases.
type MemberService struct {
	members ports.MemberRepository
	orgs    ports.OrganizationRepository
	users   ports.UserRepository
	roles   ports.RoleRepository
}

func NewMemberService(members ports.MemberRepository, orgs ports.OrganizationRepository, users ports.UserRepository, roles ports.RoleRepository) *MemberService {
	return &MemberService{members: members, orgs: orgs, users: users, roles: roles}
}

// Create binds a user to an organization with a role after verifying that
// all three exist. The unique (user, organization) index rejects a second
// binding for the same pair.
func (s *MemberService) Create(ctx context.Context, organizationID, userID, roleID string) (*domain.Member, error) {
	if _, err := s.orgs.FindByID(ctx, organizationID); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return s.members.Create(ctx, &domain.Member{
		OrganizationID: organizationID,
		UserID:         userID,
		RoleID:         roleID,
	})
}

func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.members.FindByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.members.List(ctx)
}

func (s *MemberService) ByOrganization(ctx context.Context, organizationID string) ([]*domain.Member, error) {
	return s.members.ListByOrganization(ctx, organizationID)
}

func (s *MemberService) ByUser(ctx context.Context, userID string) ([]*domain.Member, error) {
	return s.members.ListByUser(ctx, userID)
}

func (s *MemberService) ByUserAndOrganization(ctx context.Context, userID, organizationID string) (*domain.Member, error) {
	return s.members.FindByUserAndOrganization(ctx, userID, organizationID)
}

func (s *MemberService) UpdateRole(ctx context.Context, id, roleID string) (*domain.Member, error) {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}
	return s.members.UpdateRole(ctx, id, roleID)
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}
