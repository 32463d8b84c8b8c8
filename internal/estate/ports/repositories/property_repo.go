package repositories

import (
	"context"

	"estatehub/internal/estate/domain/entities"
)

// PropertyRepository определяет операции над объявлениями.
// Список изображений сохраняется и возвращается в порядке загрузки.
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) (*entities.Property, error)

	FindByID(ctx context.Context, id string) (*entities.Property, error)

	FindAll(ctx context.Context) ([]*entities.Property, error)

	FindByListerID(ctx context.Context, listerID string) ([]*entities.Property, error)

	Update(ctx context.Context, property *entities.Property, replaceImages bool) (*entities.Property, error)

	Delete(ctx context.Context, id string) error
}
