package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserService struct {
	registered *domain.User
	loginUser  *domain.User
	loginToken string
	err        error
}

func (s *stubUserService) Register(_ context.Context, name, email, _ string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.registered = &domain.User{ID: "user-1", Name: name, Email: email}
	return s.registered, nil
}

func (s *stubUserService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.loginToken, s.loginUser, nil
}

func (s *stubUserService) Get(_ context.Context, _ string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.loginUser, nil
}

func (s *stubUserService) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return s.loginUser, s.err
}

func (s *stubUserService) List(_ context.Context) ([]*domain.User, error) { return nil, s.err }

func (s *stubUserService) Update(_ context.Context, _ string, _ ports.UpdateUserInput) (*domain.User, error) {
	return s.loginUser, s.err
}

func (s *stubUserService) Delete(_ context.Context, _ string) error { return s.err }

func (s *stubUserService) RequestVerification(_ context.Context, email string) (*domain.VerificationCode, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.VerificationCode{ID: "code-1", UserEmail: email, Code: "ABC123"}, nil
}

func (s *stubUserService) ConfirmVerification(_ context.Context, email, code string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if code != "ABC123" {
		return nil, domain.ErrInvalidVerificationCode
	}
	return &domain.User{ID: "user-1", Email: email, Verified: true}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRegisterCreated(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, rec := newTestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Rafael","email":"rafael@example.com","password":"hunter22"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var got userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != "user-1" || got.Email != "rafael@example.com" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	cases := []string{
		`{"email":"a@b.c","password":"hunter22"}`,
		`{"name":"A","password":"hunter22"}`,
		`{"name":"A","email":"not-an-email","password":"hunter22"}`,
		`{"name":"A","email":"a@b.c","password":"tiny"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/api/users/register", body)
		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestLoginSuccessEnvelope(t *testing.T) {
	svc := &stubUserService{
		loginUser:  &domain.User{ID: "user-1", Name: "Rafael", Email: "rafael@example.com"},
		loginToken: "signed-jwt",
	}
	h := NewUserHandler(svc)
	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"rafael@example.com","password":"hunter22"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !got.Success || got.User == nil || got.Token != "signed-jwt" {
		t.Errorf("unexpected envelope: %+v", got)
	}
}

// Bad credentials still answer 200; the envelope flag carries the outcome.
func TestLoginFailureEnvelope(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrInvalidCredentials})
	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"rafael@example.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Success || got.User != nil {
		t.Errorf("unexpected envelope: %+v", got)
	}
}

func TestRequestVerificationAccepted(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, rec := newTestContext(t, http.MethodPost, "/api/users/verification-code",
		`{"email":"rafael@example.com"}`)

	if err := h.RequestVerification(c); err != nil {
		t.Fatalf("RequestVerification: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	// The code must never leak into the response body.
	if strings.Contains(rec.Body.String(), "ABC123") {
		t.Errorf("code leaked in body: %s", rec.Body.String())
	}
}

func TestConfirmVerificationReturnsVerifiedUser(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, rec := newTestContext(t, http.MethodPost, "/api/users/verify",
		`{"email":"rafael@example.com","code":"ABC123"}`)

	if err := h.ConfirmVerification(c); err != nil {
		t.Fatalf("ConfirmVerification: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !got.Verified {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestConfirmVerificationWrongCodePropagates(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/users/verify",
		`{"email":"rafael@example.com","code":"NOPE99"}`)

	err := h.ConfirmVerification(c)
	if !errors.Is(err, domain.ErrInvalidVerificationCode) {
		t.Fatalf("expected ErrInvalidVerificationCode, got %v", err)
	}
}

func TestLoginUnknownUserEnvelope(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrUserNotFound})
	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"ghost@example.com","password":"x"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
