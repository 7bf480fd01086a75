package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/authz"
	"github.com/jhoicas/Produccion-api/internal/application/autoid"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase alta y gestión de supervisores y empleados dentro del tenant.
type UserUseCase struct {
	userRepo repository.UserRepository
	autoID   *autoid.Generator
	now      func() time.Time
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, autoID *autoid.Generator) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, autoID: autoID, now: time.Now}
}

// Create da de alta un supervisor o empleado. El tenant se estampa desde el
// caller (nunca del payload) y el autoId se genera en el servidor.
func (uc *UserUseCase) Create(caller authz.Caller, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authz.Require(caller, authz.OpUserCreate); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleSupervisor && in.Role != entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user, err := createWithAutoID(uc.userRepo, uc.autoID, &entity.User{
		ID:           uuid.New().String(),
		TenantID:     caller.TenantID,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// createWithAutoID asigna un autoId generado y persiste. El generador nunca
// falla pero su sufijo de reloj es una mitigación, no una garantía: ante una
// colisión real (23505 del store) se regenera hasta 3 veces.
func createWithAutoID(users repository.UserRepository, gen *autoid.Generator, u *entity.User) (*entity.User, error) {
	var err error
	for i := 0; i < 3; i++ {
		u.AutoID = gen.Generate(u.Role, u.TenantID)
		err = users.Create(u)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, err
}

// List lista usuarios del tenant del caller (super_admin puede ver cualquiera
// pasando el tenant del query, aplicado por el handler vía ScopeTenant).
func (uc *UserUseCase) List(caller authz.Caller, tenantID string, q dto.UserListQuery) (*dto.UserListResponse, error) {
	if err := authz.Require(caller, authz.OpUserList); err != nil {
		return nil, err
	}
	q.DefaultPage()
	scope := authz.ScopeTenant(caller, tenantID)
	list, total, err := uc.userRepo.ListByTenant(scope, q.Role, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: q.Page, Limit: q.Limit, Total: total},
	}, nil
}

// GetByID obtiene un usuario con la doble verificación de tenant.
func (uc *UserUseCase) GetByID(caller authz.Caller, userID string) (*dto.UserResponse, error) {
	if err := authz.Require(caller, authz.OpUserRead); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, user.TenantID); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Deactivate desactiva un usuario del tenant. Un usuario inactivo no puede
// iniciar sesión ni canjear refresh tokens emitidos antes de la baja.
func (uc *UserUseCase) Deactivate(caller authz.Caller, userID string) (*dto.UserResponse, error) {
	if err := authz.Require(caller, authz.OpUserDeactivate); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, user.TenantID); err != nil {
		return nil, err
	}
	user.IsActive = false
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
