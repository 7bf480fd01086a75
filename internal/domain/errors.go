package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrTenantInactive     = errors.New("el tenant no está activo")
	ErrUserInactive       = errors.New("el usuario está desactivado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrCrossTenant        = errors.New("el recurso pertenece a otro tenant")
	ErrInvalidReference   = errors.New("referencia inexistente o fuera del tenant")
	ErrQuantityExceeded   = errors.New("la cantidad supera la meta de la tarea")
	ErrInvalidState       = errors.New("operación ilegal para el estado actual")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
