package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/userdirectory/user-service/internal/core/domain"
	"github.com/userdirectory/user-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	rows      []domain.User
	nextID    int64
	createErr error // if set, Create returns this error
	findErr   error // if set, FindAll returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

// Create mirrors the real store: unique email index, id always assigned.
func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.rows {
		if existing.Email == u.Email {
			return nil, domain.ErrConstraintViolation
		}
	}
	clone := *u
	clone.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, clone)
	return &clone, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.User, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

type stubRoleRepo struct {
	byID    map[int64]*domain.Role
	lookups int
}

func newStubRoleRepo(roles ...domain.Role) *stubRoleRepo {
	r := &stubRoleRepo{byID: make(map[int64]*domain.Role)}
	for i := range roles {
		role := roles[i]
		r.byID[role.ID] = &role
	}
	return r
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	r.lookups++
	role, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func int64Ptr(v int64) *int64 { return &v }

func aliceRequest(roleID int64) ports.UserRequest {
	return ports.UserRequest{
		Nom:      "Alice",
		Email:    "alice@x.com",
		Password: "secret",
		RoleID:   int64Ptr(roleID),
	}
}

func newTestService() (*UserService, *stubUserRepo, *stubRoleRepo) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.Role{ID: 1, Libelle: "ADMIN"}, domain.Role{ID: 2, Libelle: "USER"})
	return NewUserService(users, roles, discardLogger), users, roles
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestUserService_Create_Success(t *testing.T) {
	svc, users, _ := newTestService()

	resp, err := svc.Create(context.Background(), aliceRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.ID != 1 {
		t.Errorf("expected id 1, got %d", resp.ID)
	}
	if resp.Nom != "Alice" || resp.Email != "alice@x.com" {
		t.Errorf("unexpected payload: %+v", resp)
	}
	if resp.RoleID == nil || *resp.RoleID != 1 {
		t.Errorf("expected roleId 1, got %v", resp.RoleID)
	}
	if len(users.rows) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(users.rows))
	}
}

func TestUserService_Create_StoresPasswordVerbatim(t *testing.T) {
	svc, users, _ := newTestService()

	if _, err := svc.Create(context.Background(), aliceRequest(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := users.rows[0]
	if stored.Password != "secret" {
		t.Errorf("expected password stored as given, got %q", stored.Password)
	}
	if stored.Role == nil || stored.Role.Libelle != "USER" {
		t.Errorf("expected resolved role USER, got %+v", stored.Role)
	}
}

func TestUserService_Create_AssignsDistinctIDs(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.Create(context.Background(), aliceRequest(1))
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	req := aliceRequest(1)
	req.Email = "bob@x.com"
	second, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both are %d", first.ID)
	}
}

func TestUserService_Create_IgnoresInputID(t *testing.T) {
	svc, users, _ := newTestService()

	req := aliceRequest(1)
	req.ID = int64Ptr(42)
	resp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != 1 || users.rows[0].ID != 1 {
		t.Errorf("expected store-assigned id 1, got resp=%d stored=%d", resp.ID, users.rows[0].ID)
	}
}

func TestUserService_Create_FailuresAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	users := newStubUserRepo()
	users.createErr = errors.New("db down")
	svc := NewUserService(users, newStubRoleRepo(domain.Role{ID: 1, Libelle: "ADMIN"}), zerolog.New(&buf))

	if _, err := svc.Create(context.Background(), aliceRequest(99)); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), aliceRequest(1)); err == nil {
		t.Fatalf("expected insert error")
	}
	if buf.Len() != 0 {
		t.Fatalf("failures must be left to the caller to log, got %s", buf.String())
	}
}

func TestUserRequest_IDNeverReachesStore(t *testing.T) {
	roles := newStubRoleRepo(domain.Role{ID: 1, Libelle: "ADMIN"})
	svc := NewUserService(newStubUserRepo(), roles, discardLogger)

	req := aliceRequest(1)
	req.ID = int64Ptr(7)
	user, err := svc.toEntity(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 0 {
		t.Errorf("expected zero id on the record to insert, got %d", user.ID)
	}
}

func TestUserService_Create_RoleNotFound(t *testing.T) {
	svc, users, _ := newTestService()

	_, err := svc.Create(context.Background(), aliceRequest(99))
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if len(users.rows) != 0 {
		t.Errorf("no user must be persisted, got %d", len(users.rows))
	}
}

func TestUserService_Create_MissingRoleID(t *testing.T) {
	svc, users, roles := newTestService()

	req := aliceRequest(1)
	req.RoleID = nil
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if roles.lookups != 0 {
		t.Errorf("role store must not be queried without an id, got %d lookups", roles.lookups)
	}
	if len(users.rows) != 0 {
		t.Errorf("no user must be persisted, got %d", len(users.rows))
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, users, _ := newTestService()

	if _, err := svc.Create(context.Background(), aliceRequest(1)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), aliceRequest(2))
	if !errors.Is(err, domain.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
	if len(users.rows) != 1 {
		t.Errorf("expected exactly 1 stored user, got %d", len(users.rows))
	}
}

func TestUserService_Create_RepoError(t *testing.T) {
	svc, users, _ := newTestService()
	users.createErr = errors.New("db unavailable")

	if _, err := svc.Create(context.Background(), aliceRequest(1)); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// ListAll tests
// ---------------------------------------------------------------------------

func TestUserService_ListAll_Empty(t *testing.T) {
	svc, _, _ := newTestService()

	out, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", out)
	}
}

func TestUserService_ListAll_MatchesCreated(t *testing.T) {
	svc, _, _ := newTestService()

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, email := range emails {
		req := aliceRequest(1)
		req.Email = email
		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Fatalf("create %s failed: %v", email, err)
		}
	}

	out, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(emails) {
		t.Fatalf("expected %d users, got %d", len(emails), len(out))
	}
	for i, u := range out {
		if u.Email != emails[i] || u.Nom != "Alice" {
			t.Errorf("item %d: unexpected payload %+v", i, u)
		}
		if u.RoleID == nil || *u.RoleID != 1 {
			t.Errorf("item %d: expected roleId 1, got %v", i, u.RoleID)
		}
	}
}

func TestUserService_ListAll_UserWithoutRole(t *testing.T) {
	svc, users, _ := newTestService()
	users.rows = append(users.rows, domain.User{ID: 7, Nom: "Orphan", Email: "o@x.com", Password: "pw"})

	out, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].RoleID != nil {
		t.Errorf("expected one user with nil roleId, got %+v", out)
	}
}

func TestUserService_ListAll_RepoError(t *testing.T) {
	svc, users, _ := newTestService()
	users.findErr = errors.New("db unavailable")

	if _, err := svc.ListAll(context.Background()); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}
