package api

import (
	"context"

	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/ports/services"
)

// PropertyUseCase определяет основной порт для операций с объявлениями.
type PropertyUseCase interface {
	List(ctx context.Context) ([]*entities.PropertySummary, error)

	Search(ctx context.Context, criteria entities.SearchCriteria) ([]*entities.PropertySummary, error)

	Get(ctx context.Context, id string) (*entities.Property, error)

	ListByLister(ctx context.Context, principal entities.Principal) ([]*entities.Property, error)

	Create(ctx context.Context, principal entities.Principal, draft *entities.Property, ownerID, listerID string, uploads []services.Upload) (*entities.Property, error)

	Update(ctx context.Context, id string, draft *entities.Property, uploads []services.Upload) (*entities.Property, error)

	Delete(ctx context.Context, id string) error
}
