package dto

import "time"

// CreateUserRequest alta de usuario (solo gerencia general). StoreID y
// DepartmentID se normalizan según el rol: los valores que el rol no admite
// se descartan.
type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"required"`
	StoreID      string `json:"store_id"`
	DepartmentID string `json:"department_id"`
}

// UpdateUserRequest edición de usuario. Password vacío = sin cambio.
type UpdateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password"`
	Role         string `json:"role" validate:"required"`
	StoreID      string `json:"store_id"`
	DepartmentID string `json:"department_id"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	StoreID      string    `json:"store_id,omitempty"`
	DepartmentID string    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserListResponse listado de personal.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}
