package dto

// CreateUserRequest alta de supervisor o empleado dentro del tenant del caller.
// El autoId se genera en el servidor (EMP.../SUP...).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"` // supervisor | employee
	Password string `json:"password"`
}

// UserListQuery filtros del listado de usuarios.
type UserListQuery struct {
	Role string `query:"role"`
	PageRequest
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
