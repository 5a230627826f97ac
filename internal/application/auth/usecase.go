package auth

import (
	"context"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain"
	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
	pkgjwt "github.com/clinicavet/veterinaria-api/pkg/jwt"
	"github.com/clinicavet/veterinaria-api/pkg/password"
)

// AuthUseCase caso de uso de autenticación: login y emisión del token.
// Todas las dependencias (repo, hasher, configuración JWT) llegan inyectadas;
// no hay estado mutable ni secretos a nivel de paquete.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	hasher   password.Hasher
	jwtCfg   pkgjwt.Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, hasher password.Hasher, jwtCfg pkgjwt.Config) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, hasher: hasher, jwtCfg: jwtCfg}
}

// Login verifica email y contraseña contra el registro de credenciales y emite
// un token de sesión firmado. Los fallos se distinguen deliberadamente:
// ErrUsuarioNoEncontrado, ErrContrasenaIncorrecta (ambos 401 para el caller)
// y ErrHashNoDisponible (registro corrupto, 500).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarios.BuscarPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if usuario.PasswordHash == "" {
		return nil, domain.ErrHashNoDisponible
	}
	if err := uc.hasher.Verificar(in.Password, usuario.PasswordHash); err != nil {
		return nil, domain.ErrContrasenaIncorrecta
	}

	token, err := pkgjwt.Generar(uc.jwtCfg, usuario.ID, usuario.Email, usuario.Rol)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:     true,
		AccessToken: token,
		TokenType:   "bearer",
		Usuario: entity.Identidad{
			ID:    usuario.ID,
			Email: usuario.Email,
			Rol:   usuario.Rol,
		},
	}, nil
}
