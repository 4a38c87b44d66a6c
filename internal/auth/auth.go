package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service issues and validates the JWTs that guard the HTTP API, and holds
// the bcrypt hash of the operator password that gates destructive admin
// endpoints. Driver credentials themselves live in the store and are
// compared verbatim there.
type Service struct {
	jwtSecret     []byte
	tokenExp      time.Duration
	adminPassword []byte // bcrypt hash
}

// NewService builds a Service from the environment: JWT_SECRET, JWT_EXPIRY
// (duration, default 24h) and ADMIN_API_PASSWORD (default "admin").
func NewService() (*Service, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}

	expStr := os.Getenv("JWT_EXPIRY")
	exp := 24 * time.Hour
	if expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			exp = parsed
		}
	}

	adminPass := os.Getenv("ADMIN_API_PASSWORD")
	if adminPass == "" {
		adminPass = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &Service{
		jwtSecret:     []byte(secret),
		tokenExp:      exp,
		adminPassword: hash,
	}, nil
}

// CheckAdminPassword checks the operator password used by destructive
// admin endpoints.
func (s *Service) CheckAdminPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(s.adminPassword, []byte(password)) == nil
}

// GenerateToken generates a JWT for a logged-in driver.
func (s *Service) GenerateToken(driver *models.Driver) (string, error) {
	claims := jwt.MapClaims{
		"driver_id":        driver.ID,
		"username":         driver.Username,
		"password_changed": driver.PasswordChanged,
		"exp":              time.Now().Add(s.tokenExp).Unix(),
		"iat":              time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, with or without the "Bearer "
// prefix, and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*models.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	driverID, ok := claims["driver_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	passwordChanged, ok := claims["password_changed"].(bool)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		DriverID:        driverID,
		Username:        username,
		PasswordChanged: passwordChanged,
	}, nil
}

// ExtractTokenFromHeader extracts the token from an Authorization header.
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}
