// Package auth implementa registro y login de usuarios con bcrypt y JWT.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
	"github.com/jdvaldes/acopio-api/pkg/config"
	"github.com/jdvaldes/acopio-api/pkg/jwt"
)

// UseCase autenticación y administración de usuarios.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario nuevo con la contraseña hasheada con bcrypt.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existente, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%s: %w", in.Username, domain.ErrUsernameExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		AlmacenID:    in.AlmacenID,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	log.Info().Str("user_id", user.ID).Str("username", user.Username).Str("rol", user.Rol).Msg("usuario registrado")
	return uc.issueToken(user)
}

// Login valida credenciales y emite un token. Usuario inexistente y contraseña
// incorrecta devuelven el mismo error.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login exitoso")
	return uc.issueToken(user)
}

func (uc *UseCase) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	almacenID := ""
	if user.AlmacenID != nil {
		almacenID = *user.AlmacenID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Rol, almacenID, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Rol:       user.Rol,
		AlmacenID: user.AlmacenID,
	}, nil
}
