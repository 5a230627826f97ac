package dto

import "github.com/clinicavet/veterinaria-api/internal/domain/entity"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más la identidad del usuario.
type LoginResponse struct {
	Success     bool             `json:"success"`
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	Usuario     entity.Identidad `json:"usuario"`
}
