package dto

import "time"

// CreateDepartmentRequest alta de sector.
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// DepartmentResponse salida de un sector.
type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DepartmentListResponse listado de sectores.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
}
