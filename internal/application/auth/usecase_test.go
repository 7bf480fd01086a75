package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID     map[string]*entity.User
	byEmail  map[string]*entity.User
	byAutoID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:     make(map[string]*entity.User),
		byEmail:  make(map[string]*entity.User),
		byAutoID: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) add(u *entity.User) {
	r.byID[u.ID] = u
	if u.Email != "" {
		r.byEmail[u.Email] = u
	}
	if u.AutoID != "" {
		r.byAutoID[u.AutoID] = u
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.add(u); return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *fakeUserRepo) GetByAutoID(autoID string) (*entity.User, error) {
	return r.byAutoID[autoID], nil
}
func (r *fakeUserRepo) Update(*entity.User) error { return nil }
func (r *fakeUserRepo) ListByTenant(string, string, int, int) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (r *fakeUserRepo) MaxAutoID(string, string) (string, error) { return "", nil }

type fakeTenantRepo struct{ tenants map[string]*entity.Tenant }

func (r *fakeTenantRepo) Create(t *entity.Tenant) error { r.tenants[t.ID] = t; return nil }
func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return r.tenants[id], nil
}
func (r *fakeTenantRepo) GetByNormalizedName(string) (*entity.Tenant, error) { return nil, nil }
func (r *fakeTenantRepo) Update(*entity.Tenant) error { return nil }
func (r *fakeTenantRepo) List(string, int, int) ([]*entity.Tenant, int, error) {
	return nil, 0, nil
}

type fakeTokenRepo struct{ tokens map[string]*entity.RefreshToken }

func (r *fakeTokenRepo) Save(t *entity.RefreshToken) error { r.tokens[t.Token] = t; return nil }
func (r *fakeTokenRepo) Get(token string) (*entity.RefreshToken, error) {
	return r.tokens[token], nil
}
func (r *fakeTokenRepo) Delete(token string) error { delete(r.tokens, token); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "correcto-2024"
)

var authNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

type authFixture struct {
	uc      *AuthUseCase
	users   *fakeUserRepo
	tenants *fakeTenantRepo
	tokens  *fakeTokenRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:   newFakeUserRepo(),
		tenants: &fakeTenantRepo{tenants: make(map[string]*entity.Tenant)},
		tokens:  &fakeTokenRepo{tokens: make(map[string]*entity.RefreshToken)},
	}
	f.uc = NewAuthUseCase(f.users, f.tenants, f.tokens, JWTConfig{
		Secret:      testSecret,
		ExpMinutes:  60,
		RefreshDays: 30,
		Issuer:      "produccion-api-test",
	})
	f.uc.now = func() time.Time { return authNow }

	f.tenants.tenants["tenant-1"] = &entity.Tenant{
		ID: "tenant-1", FactoryName: "Confecciones Norte", Status: entity.TenantActive,
	}
	f.users.add(&entity.User{
		ID: "admin-1", TenantID: "tenant-1", Email: "admin@norte.co",
		PasswordHash: hash(t, testPassword), Role: entity.RoleFactoryAdmin, IsActive: true,
	})
	f.users.add(&entity.User{
		ID: "emp-1", TenantID: "tenant-1", AutoID: "EMP000107",
		PasswordHash: hash(t, testPassword), Role: entity.RoleEmployee, IsActive: true,
	})
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PorEmail(t *testing.T) {
	f := newAuthFixture(t)

	out, err := f.uc.Login(dto.LoginRequest{Identifier: "admin@norte.co", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	require.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "admin-1", out.User.ID)
	require.NotNil(t, out.Tenant)
	assert.Equal(t, "tenant-1", out.Tenant.ID)

	// Los claims del access token deben viajar completos.
	userID, tenantID, role, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", userID)
	assert.Equal(t, "tenant-1", tenantID)
	assert.Equal(t, entity.RoleFactoryAdmin, role)

	// El refresh token queda persistido con su vencimiento.
	stored := f.tokens.tokens[out.RefreshToken]
	require.NotNil(t, stored)
	assert.Equal(t, "admin-1", stored.UserID)
	assert.Equal(t, authNow.Add(30*24*time.Hour), stored.ExpiresAt)
}

func TestLogin_PorAutoIDEsCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)
	out, err := f.uc.Login(dto.LoginRequest{Identifier: "emp000107", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", out.User.ID)
}

func TestLogin_CredencialesInvalidasColapsan(t *testing.T) {
	f := newAuthFixture(t)

	// Usuario inexistente, password incorrecta y usuario inactivo devuelven el
	// mismo error: no se filtra cuál de los tres falló.
	_, err := f.uc.Login(dto.LoginRequest{Identifier: "nadie@norte.co", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.uc.Login(dto.LoginRequest{Identifier: "admin@norte.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	f.users.byEmail["admin@norte.co"].IsActive = false
	_, err = f.uc.Login(dto.LoginRequest{Identifier: "admin@norte.co", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_TenantNoActivoBloqueaATodos(t *testing.T) {
	f := newAuthFixture(t)

	for _, status := range []string{entity.TenantPending, entity.TenantFrozen, entity.TenantRejected} {
		f.tenants.tenants["tenant-1"].Status = status
		_, err := f.uc.Login(dto.LoginRequest{Identifier: "admin@norte.co", Password: testPassword})
		assert.ErrorIs(t, err, domain.ErrTenantInactive, "status %s debe bloquear el login", status)
	}
}

func TestLogin_SuperAdminSinTenant(t *testing.T) {
	f := newAuthFixture(t)
	f.users.add(&entity.User{
		ID: "root-1", Email: "root@plataforma.co",
		PasswordHash: hash(t, testPassword), Role: entity.RoleSuperAdmin, IsActive: true,
	})

	out, err := f.uc.Login(dto.LoginRequest{Identifier: "root@plataforma.co", Password: testPassword})
	require.NoError(t, err)
	assert.Nil(t, out.Tenant, "super_admin no pertenece a ningún tenant")

	_, tenantID, role, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Empty(t, tenantID)
	assert.Equal(t, entity.RoleSuperAdmin, role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh y Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_ReutilizaElMismoToken(t *testing.T) {
	f := newAuthFixture(t)
	login, err := f.uc.Login(dto.LoginRequest{Identifier: "admin@norte.co", Password: testPassword})
	require.NoError(t, err)

	out, err := f.uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, login.RefreshToken, out.RefreshToken, "sin rotación: el refresh token se conserva")
}

func TestRefresh_TokenDesconocido(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.uc.Refresh(dto.RefreshRequest{RefreshToken: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefresh_TokenExpiradoSeElimina(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.tokens["viejo"] = &entity.RefreshToken{
		Token: "viejo", UserID: "admin-1", ExpiresAt: authNow.Add(-time.Minute),
	}

	_, err := f.uc.Refresh(dto.RefreshRequest{RefreshToken: "viejo"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Nil(t, f.tokens.tokens["viejo"], "el token vencido se recolecta al detectarse")
}

func TestRefresh_UsuarioDesactivado(t *testing.T) {
	f := newAuthFixture(t)
	login, err := f.uc.Login(dto.LoginRequest{Identifier: "admin@norte.co", Password: testPassword})
	require.NoError(t, err)

	f.users.byID["admin-1"].IsActive = false
	_, err = f.uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestLogout_Idempotente(t *testing.T) {
	f := newAuthFixture(t)
	login, err := f.uc.Login(dto.LoginRequest{Identifier: "admin@norte.co", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(dto.LogoutRequest{RefreshToken: login.RefreshToken}))
	assert.Nil(t, f.tokens.tokens[login.RefreshToken])

	// Repetir el logout con el mismo token (ya ausente) no es error.
	assert.NoError(t, f.uc.Logout(dto.LogoutRequest{RefreshToken: login.RefreshToken}))

	// Y el refresh token revocado deja de servir.
	_, err = f.uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
