package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	user, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, user.Email)
	delete(r.byID, id)
	return nil
}

type stubCodeRepo struct {
	byID   map[string]*domain.VerificationCode
	nextID int
}

func newStubCodeRepo() *stubCodeRepo {
	return &stubCodeRepo{byID: make(map[string]*domain.VerificationCode)}
}

func (r *stubCodeRepo) Create(_ context.Context, code *domain.VerificationCode) (*domain.VerificationCode, error) {
	r.nextID++
	code.ID = "code-" + strconv.Itoa(r.nextID)
	r.byID[code.ID] = code
	return code, nil
}

func (r *stubCodeRepo) FindByEmailAndCode(_ context.Context, email, text string) (*domain.VerificationCode, error) {
	for _, c := range r.byID {
		if c.UserEmail == email && c.Code == text {
			return c, nil
		}
	}
	return nil, domain.ErrInvalidVerificationCode
}

func (r *stubCodeRepo) MarkUsed(_ context.Context, id string) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrInvalidVerificationCode
	}
	c.Used = true
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRegisterHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCodeRepo(), "secret", 0, zerolog.Nop())

	user, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected an assigned id")
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCodeRepo(), "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "A", "dup@example.com", "password1"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), "B", "dup@example.com", "password2")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterEmptyFields(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubCodeRepo(), "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "", "a@b.c", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty name: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "A", "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCodeRepo(), "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "rafael@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if user.Email != "rafael@example.com" {
		t.Errorf("user email = %s", user.Email)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCodeRepo(), "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "rafael@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubCodeRepo(), "secret", 0, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCodeRepo(), "secret", 0, zerolog.Nop())

	user, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	oldHash := user.PasswordHash

	newPass := "hunter23"
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Password: &newPass}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.byID[user.ID].PasswordHash == oldHash {
		t.Error("expected password hash to change")
	}

	if _, _, err := svc.Login(context.Background(), "rafael@example.com", "hunter23"); err != nil {
		t.Fatalf("Login with new password: %v", err)
	}
}

func TestRequestVerificationIssuesCode(t *testing.T) {
	repo := newStubUserRepo()
	codes := newStubCodeRepo()
	svc := NewUserService(repo, codes, "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	code, err := svc.RequestVerification(context.Background(), "rafael@example.com")
	if err != nil {
		t.Fatalf("RequestVerification: %v", err)
	}
	if len(code.Code) != 6 {
		t.Errorf("code length = %d, want 6", len(code.Code))
	}
	if code.UserEmail != "rafael@example.com" {
		t.Errorf("code email = %s", code.UserEmail)
	}
	if !code.ExpiresAt.After(time.Now()) {
		t.Error("expected a future expiry")
	}
	if len(codes.byID) != 1 {
		t.Errorf("stored codes = %d, want 1", len(codes.byID))
	}
}

func TestRequestVerificationUnknownEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubCodeRepo(), "secret", 0, zerolog.Nop())

	_, err := svc.RequestVerification(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestConfirmVerificationMarksUserVerified(t *testing.T) {
	repo := newStubUserRepo()
	codes := newStubCodeRepo()
	svc := NewUserService(repo, codes, "secret", 0, zerolog.Nop())

	user, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Verified {
		t.Fatal("new accounts must start unverified")
	}

	code, err := svc.RequestVerification(context.Background(), "rafael@example.com")
	if err != nil {
		t.Fatalf("RequestVerification: %v", err)
	}

	verified, err := svc.ConfirmVerification(context.Background(), "rafael@example.com", code.Code)
	if err != nil {
		t.Fatalf("ConfirmVerification: %v", err)
	}
	if !verified.Verified {
		t.Error("expected the user to be verified")
	}
	if !repo.byID[user.ID].Verified {
		t.Error("verified flag not persisted")
	}
}

func TestConfirmVerificationWrongCode(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCodeRepo(), "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.RequestVerification(context.Background(), "rafael@example.com"); err != nil {
		t.Fatalf("RequestVerification: %v", err)
	}

	_, err := svc.ConfirmVerification(context.Background(), "rafael@example.com", "WRONG1")
	if !errors.Is(err, domain.ErrInvalidVerificationCode) {
		t.Fatalf("expected ErrInvalidVerificationCode, got %v", err)
	}
}

func TestConfirmVerificationExpiredCode(t *testing.T) {
	repo := newStubUserRepo()
	codes := newStubCodeRepo()
	svc := NewUserService(repo, codes, "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	codes.Create(context.Background(), &domain.VerificationCode{
		UserEmail: "rafael@example.com",
		Code:      "OLD123",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, err := svc.ConfirmVerification(context.Background(), "rafael@example.com", "OLD123")
	if !errors.Is(err, domain.ErrInvalidVerificationCode) {
		t.Fatalf("expected ErrInvalidVerificationCode, got %v", err)
	}
	if repo.byEmail["rafael@example.com"].Verified {
		t.Error("expired code must not verify the user")
	}
}

func TestConfirmVerificationCodeSingleUse(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCodeRepo(), "secret", 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Rafael", "rafael@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	code, err := svc.RequestVerification(context.Background(), "rafael@example.com")
	if err != nil {
		t.Fatalf("RequestVerification: %v", err)
	}

	if _, err := svc.ConfirmVerification(context.Background(), "rafael@example.com", code.Code); err != nil {
		t.Fatalf("first ConfirmVerification: %v", err)
	}
	_, err = svc.ConfirmVerification(context.Background(), "rafael@example.com", code.Code)
	if !errors.Is(err, domain.ErrInvalidVerificationCode) {
		t.Fatalf("expected ErrInvalidVerificationCode on reuse, got %v", err)
	}
}
