package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvaldes/acopio-api/internal/application/apptest"
	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/pkg/config"
	"github.com/jdvaldes/acopio-api/pkg/jwt"
)

func newUseCase(t *testing.T) (*UseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	cfg := config.JWTConfig{Secret: "test-secret-no-usar-en-prod", Expiration: 60, Issuer: "acopio-api"}
	return NewUseCase(store.Users, cfg), store
}

func TestRegister_EmiteTokenValido(t *testing.T) {
	uc, _ := newUseCase(t)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "gerente1",
		Password: "contraseña-larga",
		Rol:      entity.RolGerente,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, rol, _, err := jwt.Parse("test-secret-no-usar-en-prod", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, userID)
	assert.Equal(t, entity.RolGerente, rol)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "gerente1", Password: "contraseña-larga", Rol: entity.RolGerente,
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Username: "gerente1", Password: "otra-contraseña", Rol: entity.RolUsuario,
	})
	assert.True(t, errors.Is(err, domain.ErrUsernameExists))
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "admin1", Password: "contraseña-larga", Rol: entity.RolAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "admin1", Password: "contraseña-larga",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RolAdmin, out.Rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "admin1", Password: "contraseña-larga", Rol: entity.RolAdmin,
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "admin1", Password: "incorrecta",
	})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	// Mismo error que contraseña incorrecta: no filtra qué usuarios existen
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "fantasma", Password: "lo-que-sea",
	})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
