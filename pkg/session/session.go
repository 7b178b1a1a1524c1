// Package session holds the signed-in identity and the active organization
// scope, persisting a minimal subset to a durable Store across restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/pkg/client"
)

// ErrInvalidCredentials is returned by Login when the server rejects the
// email/password pair.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Session is the process-wide store of "who is signed in" and "which
// organization is active". It is mutated only through its own operations
// and is not safe for concurrent mutation; callers issue operations
// sequentially.
type Session struct {
	api   *client.Client
	store Store
	log   zerolog.Logger

	user          *client.User
	organizations []client.Organization
	current       *client.Organization
	membership    *client.Member
}

// New builds a logged-out session. An admin token override present in the
// store is applied to the API client immediately.
func New(api *client.Client, store Store, log zerolog.Logger) *Session {
	if token, ok := store.Get(KeyAdminToken); ok && token != "" {
		api.SetToken(token)
	}
	return &Session{api: api, store: store, log: log}
}

func (s *Session) LoggedIn() bool { return s.user != nil }

func (s *Session) User() *client.User { return s.user }

func (s *Session) Organizations() []client.Organization { return s.organizations }

func (s *Session) CurrentOrganization() *client.Organization { return s.current }

func (s *Session) Membership() *client.Member { return s.membership }

// Restore rebuilds the session from durable storage. Every failure path
// ends logged out with the storage keys cleared; restore never fails open.
func (s *Session) Restore(ctx context.Context) error {
	raw, ok := s.store.Get(KeyUser)
	if !ok {
		return nil
	}

	var user client.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Msg("stored identity unreadable, clearing session")
		return s.Logout()
	}

	orgs, err := s.loadOrganizations(ctx, user.ID)
	if err != nil {
		s.log.Warn().Err(err).Msg("session restore failed, clearing session")
		return s.Logout()
	}
	if len(orgs) == 0 {
		s.log.Warn().Str("user_id", user.ID).Msg("no memberships on restore, clearing session")
		return s.Logout()
	}

	current := orgs[0]
	if storedID, ok := s.store.Get(KeyCurrentOrganization); ok {
		for _, org := range orgs {
			if org.ID == storedID {
				current = org
				break
			}
		}
	}

	s.user = &user
	s.organizations = orgs
	s.current = &current
	s.membership = s.resolveMembership(ctx, user.ID, current.ID)
	return s.store.Set(KeyCurrentOrganization, current.ID)
}

// Login authenticates and establishes the organization scope. State is only
// mutated on full success.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !resp.Success || resp.User == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, resp.Message)
	}
	if resp.Token != "" {
		s.api.SetBearer(resp.Token)
	}
	if err := s.establish(ctx, resp.User); err != nil {
		s.api.SetBearer("")
		return err
	}
	return nil
}

// Register creates a new identity and signs it in. A created-but-orphaned
// identity can remain server-side when the follow-up steps fail.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	user, err := s.api.Register(ctx, client.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	return s.establish(ctx, user)
}

// Logout clears the in-memory state and both storage keys. It always
// succeeds locally; storage errors are reported but the session is cleared
// regardless.
func (s *Session) Logout() error {
	s.user = nil
	s.organizations = nil
	s.current = nil
	s.membership = nil
	s.api.SetBearer("")

	err := s.store.Delete(KeyUser)
	if derr := s.store.Delete(KeyCurrentOrganization); err == nil {
		err = derr
	}
	return err
}

// SetCurrentOrganization switches the active scope. When the current
// identity has no membership in org the switch still happens, just without
// a resolved membership.
func (s *Session) SetCurrentOrganization(ctx context.Context, org client.Organization) error {
	if s.user == nil {
		return errors.New("session: not logged in")
	}
	s.current = &org
	s.membership = s.resolveMembership(ctx, s.user.ID, org.ID)
	return s.store.Set(KeyCurrentOrganization, org.ID)
}

// RefreshUserOrganizations re-fetches the membership list. If the active
// organization disappeared from it, the first remaining one takes over.
func (s *Session) RefreshUserOrganizations(ctx context.Context) error {
	if s.user == nil {
		return errors.New("session: not logged in")
	}

	orgs, err := s.loadOrganizations(ctx, s.user.ID)
	if err != nil {
		return err
	}
	s.organizations = orgs

	if s.current != nil {
		for _, org := range orgs {
			if org.ID == s.current.ID {
				return nil
			}
		}
	}
	if len(orgs) == 0 {
		s.current = nil
		s.membership = nil
		return s.store.Delete(KeyCurrentOrganization)
	}
	return s.SetCurrentOrganization(ctx, orgs[0])
}

// establish loads memberships for user, creating a default organization
// when there are none, selects the first organization, and persists the
// session. Only on full success is the in-memory state replaced.
func (s *Session) establish(ctx context.Context, user *client.User) error {
	members, err := s.api.MembersByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		member, err := s.createDefaultOrganization(ctx, user)
		if err != nil {
			return err
		}
		members = []client.Member{*member}
	}

	orgs, err := s.resolveOrganizations(ctx, members)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		return errors.New("session: no resolvable organizations")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	current := orgs[0]
	s.user = user
	s.organizations = orgs
	s.current = &current
	s.membership = s.resolveMembership(ctx, user.ID, current.ID)

	if err := s.store.Set(KeyUser, string(raw)); err != nil {
		return err
	}
	return s.store.Set(KeyCurrentOrganization, current.ID)
}

// createDefaultOrganization gives a freshly registered (or orphaned)
// identity its own organization with an owner membership.
func (s *Session) createDefaultOrganization(ctx context.Context, user *client.User) (*client.Member, error) {
	role, err := s.api.RoleByName(ctx, "Owner")
	if err != nil {
		return nil, fmt.Errorf("resolve owner role: %w", err)
	}

	org, err := s.api.CreateOrganization(ctx, client.CreateOrganizationInput{
		Name:     user.Name + "'s Organization",
		IsActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create default organization: %w", err)
	}

	member, err := s.api.CreateMember(ctx, client.CreateMemberInput{
		OrganizationID: org.ID,
		UserID:         user.ID,
		RoleID:         role.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create owner membership: %w", err)
	}
	return member, nil
}

func (s *Session) loadOrganizations(ctx context.Context, userID string) ([]client.Organization, error) {
	members, err := s.api.MembersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveOrganizations(ctx, members)
}

// resolveOrganizations maps memberships to organizations, skipping ones
// that no longer resolve.
func (s *Session) resolveOrganizations(ctx context.Context, members []client.Member) ([]client.Organization, error) {
	orgs := make([]client.Organization, 0, len(members))
	for _, m := range members {
		org, err := s.api.Organization(ctx, m.OrganizationID)
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
				s.log.Warn().Str("organization_id", m.OrganizationID).Msg("membership points at missing organization")
				continue
			}
			return nil, err
		}
		orgs = append(orgs, *org)
	}
	return orgs, nil
}

// resolveMembership looks up the caller's membership in an organization.
// Absence is tolerated: the scope switch proceeds without one.
func (s *Session) resolveMembership(ctx context.Context, userID, organizationID string) *client.Member {
	member, err := s.api.MemberByUserAndOrganization(ctx, userID, organizationID)
	if err != nil {
		s.log.Debug().Err(err).Str("organization_id", organizationID).Msg("no membership resolved")
		return nil
	}
	return member
}
