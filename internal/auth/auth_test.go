package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

func TestNewService(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 24*time.Hour, service.tokenExp)
}

func TestService_CheckAdminPassword(t *testing.T) {
	service, _ := NewService()

	// default password when ADMIN_API_PASSWORD is unset
	assert.True(t, service.CheckAdminPassword("admin"))
	assert.False(t, service.CheckAdminPassword("wrong"))
	assert.False(t, service.CheckAdminPassword(""))
}

func TestService_GenerateToken(t *testing.T) {
	service, _ := NewService()

	driver := &models.Driver{ID: "d1", Username: "joao", PasswordChanged: false}

	token, err := service.GenerateToken(driver)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := NewService()

	driver := &models.Driver{ID: "d1", Username: "joao", PasswordChanged: true}
	token, _ := service.GenerateToken(driver)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "d1", claims.DriverID)
	assert.Equal(t, "joao", claims.Username)
	assert.True(t, claims.PasswordChanged)

	// the Bearer prefix is tolerated
	claims, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "d1", claims.DriverID)

	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service, _ := NewService()
	service.tokenExp = -time.Hour

	driver := &models.Driver{ID: "d1", Username: "joao"}
	token, _ := service.GenerateToken(driver)

	_, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestService_ValidateToken_MissingExpiry(t *testing.T) {
	service, _ := NewService()

	// tokens without an exp claim are rejected outright
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"driver_id":        "d1",
		"username":         "joao",
		"password_changed": true,
	})
	signed, err := token.SignedString(service.jwtSecret)
	assert.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	service, _ := NewService()
	other := &Service{jwtSecret: []byte("another-secret"), tokenExp: time.Hour}

	driver := &models.Driver{ID: "d1", Username: "joao"}
	token, _ := other.GenerateToken(driver)

	_, err := service.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service, _ := NewService()

	token, err := service.ExtractTokenFromHeader("Bearer abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = service.ExtractTokenFromHeader("")
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("abc123")
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("Basic abc123")
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("Bearer ")
	assert.Equal(t, ErrInvalidToken, err)
}
