// Package repositories определяет порты доступа к хранилищу.
package repositories

import (
	"context"

	"estatehub/internal/estate/domain/entities"
)

// UserRepository определяет операции над учетными записями.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RegistrationRepository атомарно создает учетную запись вместе с
// профилем соответствующей роли: либо сохраняются обе записи, либо ни одной.
type RegistrationRepository interface {
	CreateCustomerAccount(ctx context.Context, user *entities.User, customer *entities.Customer) (*entities.User, error)

	CreateBusinessAccount(ctx context.Context, user *entities.User, business *entities.Business) (*entities.User, error)
}
