package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// OrganizationService implements the tenant use cases. Activation is
// authoritative here: clients never have to normalise is_active themselves.
type OrganizationService struct {
	repo   ports.OrganizationRepository
	logger zerolog.Logger
}

func NewOrganizationService(repo ports.OrganizationRepository, logger zerolog.Logger) *OrganizationService {
	return &OrganizationService{repo: repo, logger: logger}
}

func (s *OrganizationService) Create(ctx context.Context, input ports.CreateOrganizationInput) (*domain.Organization, error) {
	org := &domain.Organization{
		Name:          input.Name,
		IsActive:      input.IsActive,
		CreatedAt:     time.Now().UTC(),
		TrialExpireAt: input.TrialExpireAt,
	}

	created, err := s.repo.Create(ctx, org)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create organization")
		return nil, err
	}

	s.logger.Info().Str("organization_id", created.ID).Str("name", created.Name).Msg("organization created")
	return created, nil
}

func (s *OrganizationService) Get(ctx context.Context, id string) (*domain.Organization, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizationService) List(ctx context.Context) ([]*domain.Organization, error) {
	return s.repo.List(ctx)
}

func (s *OrganizationService) ListActive(ctx context.Context) ([]*domain.Organization, error) {
	return s.repo.ListActive(ctx)
}

func (s *OrganizationService) Update(ctx context.Context, id string, input ports.UpdateOrganizationInput) (*domain.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		org.Name = *input.Name
	}
	if input.IsActive != nil {
		org.IsActive = *input.IsActive
	}
	if input.TrialExpireAt != nil {
		org.TrialExpireAt = *input.TrialExpireAt
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("organization_id", id).Msg("organization deleted")
	return nil
}
