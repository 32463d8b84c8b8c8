// Package services определяет порты инфраструктурных сервисов.
package services

import (
	"context"
	"time"

	"estatehub/internal/estate/domain/entities"
)

// TokenService определяет интерфейс для операций с токенами доступа.
// SubjectOf и RoleOf определены только для токенов, прошедших Validate;
// вызывающая сторона обязана проверить токен заранее.
type TokenService interface {
	Issue(ctx context.Context, email string, role entities.Role) (string, time.Time, error)

	Validate(ctx context.Context, token string) bool

	SubjectOf(ctx context.Context, token string) string

	RoleOf(ctx context.Context, token string) entities.Role
}
