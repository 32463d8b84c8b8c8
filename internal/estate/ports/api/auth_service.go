// Package api определяет порты бизнес-логики приложения.
package api

import (
	"context"

	"estatehub/internal/estate/domain/entities"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, reg *entities.Registration) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*entities.User, error)
}
