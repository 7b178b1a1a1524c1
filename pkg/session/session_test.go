package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/pkg/client"
)

// ---------------------------------------------------------------------------
// Fake server
// ---------------------------------------------------------------------------

type fakeServer struct {
	t *testing.T

	users      map[string]client.User // by email, password is always "secret"
	orgs       map[string]client.Organization
	members    []client.Member
	nextID     int
	loginErr   bool
	membersErr bool
	lastAuth   string
}

func newFakeServer(t *testing.T) *fakeServer {
	return &fakeServer{
		t:     t,
		users: make(map[string]client.User),
		orgs:  make(map[string]client.Organization),
	}
}

func (f *fakeServer) addUser(id, name, email string) client.User {
	u := client.User{ID: id, Name: name, Email: email}
	f.users[email] = u
	return u
}

func (f *fakeServer) addOrg(id, name string) client.Organization {
	org := client.Organization{ID: id, Name: name, IsActive: true}
	f.orgs[id] = org
	return org
}

func (f *fakeServer) addMember(userID, orgID string) client.Member {
	f.nextID++
	m := client.Member{
		ID:             "mem-" + strconv.Itoa(f.nextID),
		OrganizationID: orgID,
		UserID:         userID,
		RoleID:         "role-owner",
	}
	f.members = append(f.members, m)
	return m
}

func (f *fakeServer) start() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&body)
		user, ok := f.users[body.Email]
		if f.loginErr || !ok || body.Password != "secret" {
			json.NewEncoder(w).Encode(client.LoginResponse{Success: false, Message: "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(client.LoginResponse{Success: true, User: &user, Token: "jwt-" + user.ID})
	})

	mux.HandleFunc("POST /api/users/register", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Name, Email, Password string }
		json.NewDecoder(r.Body).Decode(&body)
		f.nextID++
		user := f.addUser("user-"+strconv.Itoa(f.nextID), body.Name, body.Email)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	})

	mux.HandleFunc("GET /api/members/user/{userId}", func(w http.ResponseWriter, r *http.Request) {
		f.lastAuth = r.Header.Get("Authorization")
		if f.membersErr {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "storage unavailable"})
			return
		}
		out := []client.Member{}
		for _, m := range f.members {
			if m.UserID == r.PathValue("userId") {
				out = append(out, m)
			}
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("GET /api/members/user/{userId}/organization/{orgId}", func(w http.ResponseWriter, r *http.Request) {
		for _, m := range f.members {
			if m.UserID == r.PathValue("userId") && m.OrganizationID == r.PathValue("orgId") {
				json.NewEncoder(w).Encode(m)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "member not found"})
	})

	mux.HandleFunc("POST /api/members", func(w http.ResponseWriter, r *http.Request) {
		var body client.CreateMemberInput
		json.NewDecoder(r.Body).Decode(&body)
		m := f.addMember(body.UserID, body.OrganizationID)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(m)
	})

	mux.HandleFunc("GET /api/organizations/{id}", func(w http.ResponseWriter, r *http.Request) {
		org, ok := f.orgs[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "organization not found"})
			return
		}
		json.NewEncoder(w).Encode(org)
	})

	mux.HandleFunc("POST /api/organizations", func(w http.ResponseWriter, r *http.Request) {
		var body client.CreateOrganizationInput
		json.NewDecoder(r.Body).Decode(&body)
		f.nextID++
		org := f.addOrg("org-"+strconv.Itoa(f.nextID), body.Name)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(org)
	})

	mux.HandleFunc("GET /api/roles/name/{name}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.Role{ID: "role-owner", Name: r.PathValue("name")})
	})

	return httptest.NewServer(mux)
}

func newTestSession(t *testing.T, srv *httptest.Server) (*Session, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	api := client.New(srv.URL)
	return New(api, store, zerolog.Nop()), store
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestLoginSelectsFirstOrganization(t *testing.T) {
	f := newFakeServer(t)
	user := f.addUser("user-1", "Rafael", "rafael@example.com")
	f.addOrg("org-a", "Home")
	f.addOrg("org-b", "Business")
	f.addMember(user.ID, "org-a")
	f.addMember(user.ID, "org-b")
	srv := f.start()
	defer srv.Close()

	sess, store := newTestSession(t, srv)
	if err := sess.Login(context.Background(), "rafael@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !sess.LoggedIn() {
		t.Fatal("expected a logged-in session")
	}
	if len(sess.Organizations()) != 2 {
		t.Errorf("organizations = %d, want 2", len(sess.Organizations()))
	}
	if sess.CurrentOrganization() == nil || sess.CurrentOrganization().ID != "org-a" {
		t.Errorf("current organization = %+v, want org-a", sess.CurrentOrganization())
	}
	if sess.Membership() == nil {
		t.Error("expected a resolved membership")
	}

	if _, ok := store.Get(KeyUser); !ok {
		t.Error("identity not persisted")
	}
	if id, _ := store.Get(KeyCurrentOrganization); id != "org-a" {
		t.Errorf("stored organization id = %q, want org-a", id)
	}
}

func TestLoginCreatesDefaultOrganization(t *testing.T) {
	f := newFakeServer(t)
	f.addUser("user-1", "Rafael", "rafael@example.com")
	srv := f.start()
	defer srv.Close()

	sess, _ := newTestSession(t, srv)
	if err := sess.Login(context.Background(), "rafael@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if len(sess.Organizations()) != 1 {
		t.Fatalf("organizations = %d, want 1", len(sess.Organizations()))
	}
	if sess.Organizations()[0].Name != "Rafael's Organization" {
		t.Errorf("default organization name = %q", sess.Organizations()[0].Name)
	}
	if sess.Membership() == nil || sess.Membership().RoleID != "role-owner" {
		t.Errorf("expected an owner membership, got %+v", sess.Membership())
	}
	if len(f.members) != 1 {
		t.Errorf("server memberships = %d, want 1", len(f.members))
	}
}

func TestLoginEstablishFailureClearsBearer(t *testing.T) {
	f := newFakeServer(t)
	user := f.addUser("user-1", "Rafael", "rafael@example.com")
	f.membersErr = true
	srv := f.start()
	defer srv.Close()

	store := NewMemoryStore()
	api := client.New(srv.URL)
	sess := New(api, store, zerolog.Nop())

	if err := sess.Login(context.Background(), "rafael@example.com", "secret"); err == nil {
		t.Fatal("expected Login to fail when memberships cannot load")
	}
	if sess.LoggedIn() {
		t.Fatal("session must not report logged in")
	}
	if f.lastAuth != "Bearer jwt-user-1" {
		t.Fatalf("login attempt auth = %q, want the bearer token", f.lastAuth)
	}

	// A later call must not ride on the token from the failed attempt.
	f.membersErr = false
	if _, err := api.MembersByUser(context.Background(), user.ID); err != nil {
		t.Fatalf("MembersByUser: %v", err)
	}
	if f.lastAuth != "" {
		t.Errorf("authorization header = %q, want empty", f.lastAuth)
	}
}

func TestLoginBadCredentialsLeavesStateUntouched(t *testing.T) {
	f := newFakeServer(t)
	f.addUser("user-1", "Rafael", "rafael@example.com")
	srv := f.start()
	defer srv.Close()

	sess, store := newTestSession(t, srv)
	err := sess.Login(context.Background(), "rafael@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sess.LoggedIn() {
		t.Error("session must stay logged out")
	}
	if _, ok := store.Get(KeyUser); ok {
		t.Error("nothing should be persisted on failure")
	}
}

func TestRegisterEnsuresOrganization(t *testing.T) {
	f := newFakeServer(t)
	srv := f.start()
	defer srv.Close()

	sess, _ := newTestSession(t, srv)
	if err := sess.Register(context.Background(), "Ana", "ana@example.com", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(sess.Organizations()) != 1 {
		t.Fatalf("organizations = %d, want 1", len(sess.Organizations()))
	}
	if sess.CurrentOrganization() == nil {
		t.Fatal("expected an active organization")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	f := newFakeServer(t)
	user := f.addUser("user-1", "Rafael", "rafael@example.com")
	f.addOrg("org-a", "Home")
	f.addMember(user.ID, "org-a")
	srv := f.start()
	defer srv.Close()

	sess, store := newTestSession(t, srv)
	if err := sess.Login(context.Background(), "rafael@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := sess.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sess.LoggedIn() || sess.CurrentOrganization() != nil || sess.Organizations() != nil || sess.Membership() != nil {
		t.Error("logout must clear all in-memory state")
	}
	if _, ok := store.Get(KeyUser); ok {
		t.Error("user key must be removed")
	}
	if _, ok := store.Get(KeyCurrentOrganization); ok {
		t.Error("organization key must be removed")
	}
}

// Switching to an organization the user is no member of still switches; the
// membership just stays unresolved.
func TestSetCurrentOrganizationLenientFallback(t *testing.T) {
	f := newFakeServer(t)
	user := f.addUser("user-1", "Rafael", "rafael@example.com")
	f.addOrg("org-a", "Home")
	foreign := f.addOrg("org-x", "Someone else's")
	f.addMember(user.ID, "org-a")
	srv := f.start()
	defer srv.Close()

	sess, store := newTestSession(t, srv)
	if err := sess.Login(context.Background(), "rafael@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := sess.SetCurrentOrganization(context.Background(), foreign); err != nil {
		t.Fatalf("SetCurrentOrganization: %v", err)
	}
	if sess.CurrentOrganization().ID != "org-x" {
		t.Errorf("current = %s, want org-x", sess.CurrentOrganization().ID)
	}
	if sess.Membership() != nil {
		t.Error("no membership should resolve for a foreign organization")
	}
	if id, _ := store.Get(KeyCurrentOrganization); id != "org-x" {
		t.Errorf("stored id = %q, want org-x", id)
	}
}

func TestRestoreStaleOrganizationFallsBack(t *testing.T) {
	f := newFakeServer(t)
	user := f.addUser("user-1", "Rafael", "rafael@example.com")
	f.addOrg("org-a", "Home")
	f.addMember(user.ID, "org-a")
	srv := f.start()
	defer srv.Close()

	store := NewMemoryStore()
	raw, _ := json.Marshal(user)
	store.Set(KeyUser, string(raw))
	store.Set(KeyCurrentOrganization, "org-deleted")

	sess := New(client.New(srv.URL), store, zerolog.Nop())
	if err := sess.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if !sess.LoggedIn() {
		t.Fatal("expected restored session")
	}
	if sess.CurrentOrganization().ID != "org-a" {
		t.Errorf("current = %s, want org-a", sess.CurrentOrganization().ID)
	}
	if id, _ := store.Get(KeyCurrentOrganization); id != "org-a" {
		t.Errorf("stored id = %q, want the fallback org-a", id)
	}
}

func TestRestoreKeepsStoredOrganizationWhenValid(t *testing.T) {
	f := newFakeServer(t)
	user := f.addUser("user-1", "Rafael", "rafael@example.com")
	f.addOrg("org-a", "Home")
	f.addOrg("org-b", "Business")
	f.addMember(user.ID, "org-a")
	f.addMember(user.ID, "org-b")
	srv := f.start()
	defer srv.Close()

	store := NewMemoryStore()
	raw, _ := json.Marshal(user)
	store.Set(KeyUser, string(raw))
	store.Set(KeyCurrentOrganization, "org-b")

	sess := New(client.New(srv.URL), store, zerolog.Nop())
	if err := sess.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if sess.CurrentOrganization().ID != "org-b" {
		t.Errorf("current = %s, want org-b", sess.CurrentOrganization().ID)
	}
}

// A corrupt stored identity fails safe: cleared keys, logged-out session.
func TestRestoreCorruptIdentityFailsSafe(t *testing.T) {
	f := newFakeServer(t)
	srv := f.start()
	defer srv.Close()

	store := NewMemoryStore()
	store.Set(KeyUser, "{not json")
	store.Set(KeyCurrentOrganization, "org-a")

	sess := New(client.New(srv.URL), store, zerolog.Nop())
	if err := sess.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if sess.LoggedIn() {
		t.Error("corrupt identity must not restore")
	}
	if _, ok := store.Get(KeyUser); ok {
		t.Error("user key must be cleared")
	}
	if _, ok := store.Get(KeyCurrentOrganization); ok {
		t.Error("organization key must be cleared")
	}
}

func TestRestoreWithoutStoredUser(t *testing.T) {
	f := newFakeServer(t)
	srv := f.start()
	defer srv.Close()

	sess, _ := newTestSession(t, srv)
	if err := sess.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if sess.LoggedIn() {
		t.Error("empty store must restore to logged out")
	}
}

func TestRefreshDropsVanishedOrganization(t *testing.T) {
	f := newFakeServer(t)
	user := f.addUser("user-1", "Rafael", "rafael@example.com")
	f.addOrg("org-a", "Home")
	f.addOrg("org-b", "Business")
	f.addMember(user.ID, "org-a")
	f.addMember(user.ID, "org-b")
	srv := f.start()
	defer srv.Close()

	sess, store := newTestSession(t, srv)
	if err := sess.Login(context.Background(), "rafael@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := sess.SetCurrentOrganization(context.Background(), f.orgs["org-b"]); err != nil {
		t.Fatalf("SetCurrentOrganization: %v", err)
	}

	// org-b disappears server-side
	delete(f.orgs, "org-b")
	f.members = f.members[:1]

	if err := sess.RefreshUserOrganizations(context.Background()); err != nil {
		t.Fatalf("RefreshUserOrganizations: %v", err)
	}
	if len(sess.Organizations()) != 1 {
		t.Errorf("organizations = %d, want 1", len(sess.Organizations()))
	}
	if sess.CurrentOrganization().ID != "org-a" {
		t.Errorf("current = %s, want org-a", sess.CurrentOrganization().ID)
	}
	if id, _ := store.Get(KeyCurrentOrganization); id != "org-a" {
		t.Errorf("stored id = %q, want org-a", id)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := t.TempDir() + "/session.json"

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Set(KeyCurrentOrganization, "org-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if id, _ := reopened.Get(KeyCurrentOrganization); id != "org-1" {
		t.Errorf("persisted id = %q, want org-1", id)
	}

	if err := reopened.Delete(KeyCurrentOrganization); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := reopened.Get(KeyCurrentOrganization); ok {
		t.Error("key must be gone after delete")
	}
}
