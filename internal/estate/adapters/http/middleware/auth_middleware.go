// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/ports/repositories"
	svc "estatehub/internal/estate/ports/services"
	"estatehub/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorUnauthorized = "unauthorized"

	principalKey = "principal"
	bearerPrefix = "Bearer "
)

// NewAuthMiddleware создает промежуточное ПО, извлекающее пользователя
// из заголовка Authorization. Отсутствующий или невалидный токен не
// прерывает запрос: запрос продолжается анонимно, а решение о доступе
// принимают маршруты через RequireAuth.
func NewAuthMiddleware(tokenSvc svc.TokenService, userRepo repositories.UserRepository) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return ctx.Next()
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if !tokenSvc.Validate(requestCtx, token) {
			log.Debug(requestCtx, LogAuthMiddleware, zap.String("reason", "invalid token"))
			return ctx.Next()
		}

		email := tokenSvc.SubjectOf(requestCtx, token)
		user, err := userRepo.FindByEmail(requestCtx, email)
		if err != nil {
			if !errors.Is(err, entities.ErrUserNotFound) {
				log.Error(requestCtx, "error resolving token subject", zap.Error(err))
			}
			return ctx.Next()
		}

		ctx.Locals(principalKey, entities.Principal{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		})

		return ctx.Next()
	}
}

// NewRequireAuth создает промежуточное ПО, отклоняющее анонимные запросы.
func NewRequireAuth() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if _, ok := PrincipalFrom(ctx); !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorUnauthorized,
			})
		}
		return ctx.Next()
	}
}

// PrincipalFrom возвращает пользователя текущего запроса, если он аутентифицирован.
func PrincipalFrom(ctx fiber.Ctx) (entities.Principal, bool) {
	principal, ok := ctx.Locals(principalKey).(entities.Principal)
	return principal, ok
}
