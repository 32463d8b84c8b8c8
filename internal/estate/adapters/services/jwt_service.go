// Package services содержит реализации инфраструктурных сервисов.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"estatehub/internal/estate/domain/entities"
	domain "estatehub/internal/estate/domain/services"
	svc "estatehub/internal/estate/ports/services"
	"estatehub/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue    = "Issue"
	methodValidate = "Validate"

	msgIssuingToken    = "issuing access token"
	msgTokenIssued     = "token issued successfully"
	msgTokenRejected   = "token rejected"
	msgValidatingToken = "validating token"

	//nolint:gosec
	errSigningToken       = "error signing token"
	errCtxGeneratingToken = "generating token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService поверх HMAC-SHA256.
type ServiceJWT struct {
	config domain.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: domain.JWTConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
	}
}

// Issue выпускает подписанный токен с subject=email и утверждением role.
func (s *ServiceJWT) Issue(ctx context.Context, email string, role entities.Role) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("email", email),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, domain.ErrGeneratingJWTToken)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.TokenTTL)

	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, domain.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Validate проверяет подпись и срок действия токена. Любая структурная,
// криптографическая или временная ошибка приводит к отказу без ошибки
// для вызывающей стороны.
func (s *ServiceJWT) Validate(ctx context.Context, tokenString string) bool {
	log := logger.Log(ctx).With(zap.String("method", methodValidate))
	log.Debug(ctx, msgValidatingToken)

	claims, err := s.parseClaims(tokenString)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return false
	}
	return claims.Subject != ""
}

// SubjectOf извлекает email из уже проверенного токена.
func (s *ServiceJWT) SubjectOf(_ context.Context, tokenString string) string {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// RoleOf извлекает роль из уже проверенного токена.
func (s *ServiceJWT) RoleOf(_ context.Context, tokenString string) entities.Role {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return ""
	}
	return entities.Role(claims.Role)
}

// parseClaims разбирает токен и проверяет подпись и срок действия.
func (s *ServiceJWT) parseClaims(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("parsing token: %w", domain.ErrExpiredJWTToken)
		}
		return nil, fmt.Errorf("parsing token: %w: %w", domain.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("parsing token: %w", domain.ErrInvalidJWTToken)
	}

	return claims, nil
}
