package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=80"`
	Password  string  `json:"password" validate:"required,min=8"`
	Rol       string  `json:"rol" validate:"required,oneof=admin gerente usuario"`
	AlmacenID *string `json:"almacen_id,omitempty" validate:"omitempty,uuid4"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse respuesta de autenticación.
type AuthResponse struct {
	Token     string  `json:"token"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Rol       string  `json:"rol"`
	AlmacenID *string `json:"almacen_id,omitempty"`
}
