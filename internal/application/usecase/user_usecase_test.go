package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/authz"
	"github.com/jhoicas/Produccion-api/internal/application/autoid"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

func newUserFixture() (*UserUseCase, *memUserRepo) {
	users := newMemUserRepo()
	return NewUserUseCase(users, autoid.New(users)), users
}

var factoryAdminA = authz.Caller{UserID: "adm-a", Role: entity.RoleFactoryAdmin, TenantID: "tenant-a"}

func TestUserCreate_EstampaTenantDelCaller(t *testing.T) {
	uc, users := newUserFixture()

	out, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
		Name: "Ana", Role: entity.RoleEmployee, Password: "clave-123",
	})
	require.NoError(t, err)

	assert.Equal(t, "tenant-a", out.TenantID, "el tenant viene del caller, no del payload")
	assert.Equal(t, "EMP", out.AutoID[:3])
	assert.True(t, out.IsActive)

	stored, err := users.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "clave-123", stored.PasswordHash)
}

func TestUserCreate_RolesPermitidos(t *testing.T) {
	uc, _ := newUserFixture()

	// Solo supervisor y employee se crean por esta vía.
	for _, role := range []string{entity.RoleFactoryAdmin, entity.RoleSuperAdmin, "otro"} {
		_, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
			Name: "X", Role: role, Password: "clave-123",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol %s no debe aceptarse", role)
	}

	out, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
		Name: "Sofía", Role: entity.RoleSupervisor, Password: "clave-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP", out.AutoID[:3])
}

func TestUserCreate_SoloFactoryAdmin(t *testing.T) {
	uc, _ := newUserFixture()
	sup := authz.Caller{UserID: "sup", Role: entity.RoleSupervisor, TenantID: "tenant-a"}
	_, err := uc.Create(sup, dto.CreateUserRequest{
		Name: "Ana", Role: entity.RoleEmployee, Password: "clave-123",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserCreate_CorrelativoPorTenant(t *testing.T) {
	uc, _ := newUserFixture()

	first, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
		Name: "Ana", Role: entity.RoleEmployee, Password: "clave-123",
	})
	require.NoError(t, err)
	second, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
		Name: "Beto", Role: entity.RoleEmployee, Password: "clave-123",
	})
	require.NoError(t, err)

	// El correlativo (todo menos el sufijo de dos dígitos de reloj) avanza.
	assert.Equal(t, "EMP0001", first.AutoID[:7])
	assert.Equal(t, "EMP0002", second.AutoID[:7])

	// Otro tenant arranca su propio correlativo.
	adminB := authz.Caller{UserID: "adm-b", Role: entity.RoleFactoryAdmin, TenantID: "tenant-b"}
	otro, err := uc.Create(adminB, dto.CreateUserRequest{
		Name: "Carla", Role: entity.RoleEmployee, Password: "clave-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP0001", otro.AutoID[:7])
}

func TestUserCreate_ReintentaAnteColision(t *testing.T) {
	uc, users := newUserFixture()

	// Pre-ocupar todos los autoIds EMP0001xx: la primera generación colisiona
	// sí o sí y el alta debe reintentar (el historial vacío siempre produce
	// correlativo 1, así que a los 3 intentos se agota).
	for i := 0; i < 100; i++ {
		users.taken[fmtAutoID("EMP", 1, i)] = true
	}
	_, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
		Name: "Ana", Role: entity.RoleEmployee, Password: "clave-123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "agotados los reintentos se propaga la colisión")
}

func fmtAutoID(prefix string, n, suffix int) string {
	return prefix + pad(n, 4) + pad(suffix, 2)
}

func pad(n, width int) string {
	s := ""
	for i := 0; i < width; i++ {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}

func TestUserDeactivate_DobleVerificacionDeTenant(t *testing.T) {
	uc, _ := newUserFixture()
	out, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
		Name: "Ana", Role: entity.RoleEmployee, Password: "clave-123",
	})
	require.NoError(t, err)

	adminB := authz.Caller{UserID: "adm-b", Role: entity.RoleFactoryAdmin, TenantID: "tenant-b"}
	_, err = uc.Deactivate(adminB, out.ID)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)

	resp, err := uc.Deactivate(factoryAdminA, out.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestUserList_ScopeDeTenant(t *testing.T) {
	uc, _ := newUserFixture()
	_, err := uc.Create(factoryAdminA, dto.CreateUserRequest{
		Name: "Ana", Role: entity.RoleEmployee, Password: "clave-123",
	})
	require.NoError(t, err)
	adminB := authz.Caller{UserID: "adm-b", Role: entity.RoleFactoryAdmin, TenantID: "tenant-b"}
	_, err = uc.Create(adminB, dto.CreateUserRequest{
		Name: "Carla", Role: entity.RoleEmployee, Password: "clave-123",
	})
	require.NoError(t, err)

	// factory_admin solo ve su tenant, aunque pida otro explícitamente.
	out, err := uc.List(factoryAdminA, "tenant-b", dto.UserListQuery{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page.Total)
	assert.Equal(t, "tenant-a", out.Items[0].TenantID)

	// super_admin sin filtro ve todos.
	all, err := uc.List(superAdmin, "", dto.UserListQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}
