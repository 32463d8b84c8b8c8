package services

import (
	"errors"
	"time"

	"estatehub/internal/estate/domain/entities"
)

// Ошибки, связанные с JWT токенами.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// JWTConfig содержит настройки для JWT сервиса.
type JWTConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// JWTClaims определяет состав утверждений токена: subject - email
// учетной записи, role - роль на момент выпуска.
type JWTClaims struct {
	Email     string
	Role      entities.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
