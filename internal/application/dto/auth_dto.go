package dto

// RegisterRequest entrada para registrar una cuenta de tienda.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	ActivationCode  string `json:"activation_code" validate:"required"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse datos de la sesión activa.
type SessionResponse struct {
	Username  string `json:"username"`
	StoreName string `json:"store_name"`
	Email     string `json:"email"`
}

// LoginResult resultado interno del login: token firmado + datos de sesión.
type LoginResult struct {
	Token   string
	Session SessionResponse
}
