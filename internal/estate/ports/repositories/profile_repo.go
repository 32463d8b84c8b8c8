package repositories

import (
	"context"

	"estatehub/internal/estate/domain/entities"
)

// CustomerRepository определяет операции над профилями клиентов.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Customer, error)

	FindByUserID(ctx context.Context, userID string) (*entities.Customer, error)

	List(ctx context.Context) ([]*entities.Customer, error)

	SearchByName(ctx context.Context, query string) ([]*entities.Customer, error)

	Create(ctx context.Context, customer *entities.Customer) (*entities.Customer, error)

	Update(ctx context.Context, customer *entities.Customer) (*entities.Customer, error)

	Delete(ctx context.Context, id string) error
}

// BusinessRepository определяет операции над профилями компаний.
type BusinessRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Business, error)

	FindByUserID(ctx context.Context, userID string) (*entities.Business, error)

	List(ctx context.Context) ([]*entities.Business, error)

	Create(ctx context.Context, business *entities.Business) (*entities.Business, error)

	Update(ctx context.Context, business *entities.Business) (*entities.Business, error)

	Delete(ctx context.Context, id string) error
}
