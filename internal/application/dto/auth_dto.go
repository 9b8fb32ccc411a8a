package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + datos del usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	Dashboard string       `json:"dashboard,omitempty"` // pantalla inicial del rol; vacío si el rol no tiene una configurada
	User      UserResponse `json:"user"`
}
