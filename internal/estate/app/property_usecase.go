package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/ports/api"
	"estatehub/internal/estate/ports/cache"
	"estatehub/internal/estate/ports/repositories"
	svc "estatehub/internal/estate/ports/services"
	"estatehub/pkg/logger"
)

const (
	methodList         = "List"
	methodSearch       = "Search"
	methodGet          = "Get"
	methodListByLister = "ListByLister"
	methodCreate       = "Create"
	methodUpdate       = "Update"
	methodDelete       = "Delete"

	// feedCacheKey хранит сериализованную публичную выдачу объявлений.
	feedCacheKey = "properties:feed"

	msgFeedCacheHit       = "serving property feed from cache"
	msgFeedCacheRefresh   = "property feed cached"
	msgPropertyCreated    = "property created successfully"
	msgPropertyUpdated    = "property updated successfully"
	msgPropertyDeleted    = "property deleted successfully"
	msgErrCacheRead       = "failed to read property feed cache"
	msgErrCacheWrite      = "failed to write property feed cache"
	msgErrCacheInvalidate = "failed to invalidate property feed cache"
	msgErrSaveUpload      = "failed to store uploaded image"

	errCtxListingProperties   = "listing properties"
	errCtxSearchingProperties = "searching properties"
	errCtxFindingProperty     = "finding property"
	errCtxResolvingOwner      = "resolving owner"
	errCtxResolvingLister     = "resolving lister"
	errCtxValidatingProperty  = "validating property"
	errCtxStoringUpload       = "storing upload"
	errCtxCreatingProperty    = "creating property"
	errCtxUpdatingProperty    = "updating property"
	errCtxDeletingProperty    = "deleting property"
)

// PropertyUseCaseImpl реализует интерфейс PropertyUseCase.
type PropertyUseCaseImpl struct {
	propertyRepo repositories.PropertyRepository
	customerRepo repositories.CustomerRepository
	businessRepo repositories.BusinessRepository
	storage      svc.FileStorage
	feedCache    cache.Cache
	feedTTL      time.Duration
}

// NewPropertyUseCase создает новый экземпляр сервиса объявлений.
// feedCache может быть nil, тогда публичная выдача не кэшируется.
func NewPropertyUseCase(
	propertyRepo repositories.PropertyRepository,
	customerRepo repositories.CustomerRepository,
	businessRepo repositories.BusinessRepository,
	storage svc.FileStorage,
	feedCache cache.Cache,
	feedTTL time.Duration,
) api.PropertyUseCase {
	return &PropertyUseCaseImpl{
		propertyRepo: propertyRepo,
		customerRepo: customerRepo,
		businessRepo: businessRepo,
		storage:      storage,
		feedCache:    feedCache,
		feedTTL:      feedTTL,
	}
}

// List возвращает публичную выдачу всех объявлений.
func (u *PropertyUseCaseImpl) List(ctx context.Context) ([]*entities.PropertySummary, error) {
	log := logger.Log(ctx).With(zap.String("method", methodList))

	if u.feedCache != nil {
		cached, err := u.feedCache.Get(ctx, feedCacheKey)
		if err != nil {
			log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		} else if cached != "" {
			var summaries []*entities.PropertySummary
			if err := json.Unmarshal([]byte(cached), &summaries); err == nil {
				log.Debug(ctx, msgFeedCacheHit)
				return summaries, nil
			}
		}
	}

	properties, err := u.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProperties, err)
	}

	summaries, err := u.summarize(ctx, properties)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProperties, err)
	}

	if u.feedCache != nil {
		payload, err := json.Marshal(summaries)
		if err == nil {
			if err := u.feedCache.Set(ctx, feedCacheKey, string(payload), u.feedTTL); err != nil {
				log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
			} else {
				log.Debug(ctx, msgFeedCacheRefresh)
			}
		}
	}

	return summaries, nil
}

// Search возвращает объявления, удовлетворяющие всем заданным критериям.
func (u *PropertyUseCaseImpl) Search(ctx context.Context, criteria entities.SearchCriteria) ([]*entities.PropertySummary, error) {
	properties, err := u.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSearchingProperties, err)
	}

	predicates := buildPredicates(criteria)
	filtered := make([]*entities.Property, 0)
	for _, property := range properties {
		if matches(property, predicates) {
			filtered = append(filtered, property)
		}
	}

	summaries, err := u.summarize(ctx, filtered)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSearchingProperties, err)
	}
	return summaries, nil
}

// Get находит объявление по ID.
func (u *PropertyUseCaseImpl) Get(ctx context.Context, id string) (*entities.Property, error) {
	property, err := u.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrPropertyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingProperty, err)
	}
	return property, nil
}

// ListByLister возвращает объявления, размещенные текущим пользователем.
func (u *PropertyUseCaseImpl) ListByLister(ctx context.Context, principal entities.Principal) ([]*entities.Property, error) {
	properties, err := u.propertyRepo.FindByListerID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProperties, err)
	}
	return properties, nil
}

// Create создает объявление от имени текущего пользователя.
// Владелец зависит от роли: BUSINESS указывает клиента-владельца явно,
// CUSTOMER всегда становится владельцем сам. Разместившим записывается
// текущий пользователь независимо от переданного listerID.
func (u *PropertyUseCaseImpl) Create(ctx context.Context, principal entities.Principal, draft *entities.Property, ownerID, listerID string, uploads []svc.Upload) (*entities.Property, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreate), zap.String("userID", principal.UserID))

	owner, err := u.resolveOwner(ctx, principal, ownerID)
	if err != nil {
		return nil, err
	}
	draft.OwnerID = owner.ID

	if err := u.resolveLister(ctx, principal.Role, listerID); err != nil {
		return nil, err
	}
	draft.ListerID = principal.UserID

	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingProperty, err)
	}

	urls, err := u.storeUploads(ctx, uploads)
	if err != nil {
		log.Error(ctx, msgErrSaveUpload, zap.Error(err))
		return nil, err
	}
	draft.ImageURLs = urls

	created, err := u.propertyRepo.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingProperty, err)
	}

	u.invalidateFeed(ctx)
	log.Info(ctx, msgPropertyCreated, zap.String("propertyID", created.ID))
	return created, nil
}

// Update обновляет объявление; при наличии загрузок список изображений
// целиком заменяется новыми файлами.
func (u *PropertyUseCaseImpl) Update(ctx context.Context, id string, draft *entities.Property, uploads []svc.Upload) (*entities.Property, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdate), zap.String("propertyID", id))

	existing, err := u.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrPropertyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingProperty, err)
	}
	draft.ID = existing.ID
	draft.OwnerID = existing.OwnerID
	draft.ListerID = existing.ListerID
	// Статус объявления при обновлении не меняется.
	draft.Status = existing.Status

	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingProperty, err)
	}

	replaceImages := len(uploads) > 0
	if replaceImages {
		urls, err := u.storeUploads(ctx, uploads)
		if err != nil {
			log.Error(ctx, msgErrSaveUpload, zap.Error(err))
			return nil, err
		}
		draft.ImageURLs = urls
	}

	updated, err := u.propertyRepo.Update(ctx, draft, replaceImages)
	if err != nil {
		if errors.Is(err, entities.ErrPropertyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProperty, err)
	}

	u.invalidateFeed(ctx)
	log.Info(ctx, msgPropertyUpdated)
	return updated, nil
}

// Delete удаляет объявление по ID.
func (u *PropertyUseCaseImpl) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDelete), zap.String("propertyID", id))

	if err := u.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrPropertyNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", errCtxDeletingProperty, err)
	}

	u.invalidateFeed(ctx)
	log.Info(ctx, msgPropertyDeleted)
	return nil
}

// resolveOwner определяет клиента-владельца создаваемого объявления.
func (u *PropertyUseCaseImpl) resolveOwner(ctx context.Context, principal entities.Principal, ownerID string) (*entities.Customer, error) {
	if principal.Role == entities.RoleBusiness {
		owner, err := u.customerRepo.FindByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, entities.ErrCustomerNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("%s: %w", errCtxResolvingOwner, err)
		}
		return owner, nil
	}

	owner, err := u.customerRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			return nil, entities.ErrCustomerProfileMissing
		}
		return nil, fmt.Errorf("%s: %w", errCtxResolvingOwner, err)
	}
	return owner, nil
}

// resolveLister проверяет существование профиля с указанной учетной
// записью. Профиль ищется по роли текущего пользователя.
func (u *PropertyUseCaseImpl) resolveLister(ctx context.Context, role entities.Role, listerID string) error {
	var err error
	if role == entities.RoleBusiness {
		_, err = u.businessRepo.FindByUserID(ctx, listerID)
	} else {
		_, err = u.customerRepo.FindByUserID(ctx, listerID)
	}
	if err != nil {
		if errors.Is(err, entities.ErrBusinessNotFound) || errors.Is(err, entities.ErrCustomerNotFound) {
			return fmt.Errorf("%s: %w", errCtxResolvingLister, entities.ErrListerNotFound)
		}
		return fmt.Errorf("%s: %w", errCtxResolvingLister, err)
	}
	return nil
}

// storeUploads сохраняет файлы в хранилище; любая ошибка прерывает операцию.
func (u *PropertyUseCaseImpl) storeUploads(ctx context.Context, uploads []svc.Upload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		url, err := u.storage.Save(ctx, upload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxStoringUpload, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (u *PropertyUseCaseImpl) invalidateFeed(ctx context.Context) {
	if u.feedCache == nil {
		return
	}
	if err := u.feedCache.Delete(ctx, feedCacheKey); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheInvalidate, zap.Error(err))
	}
}

// summarize дополняет объявления именем клиента-владельца.
func (u *PropertyUseCaseImpl) summarize(ctx context.Context, properties []*entities.Property) ([]*entities.PropertySummary, error) {
	owners := make(map[string]*entities.Customer)

	summaries := make([]*entities.PropertySummary, 0, len(properties))
	for _, property := range properties {
		ownerName := ""
		if property.OwnerID != "" {
			owner, ok := owners[property.OwnerID]
			if !ok {
				found, err := u.customerRepo.FindByID(ctx, property.OwnerID)
				if err != nil && !errors.Is(err, entities.ErrCustomerNotFound) {
					return nil, fmt.Errorf("%s: %w", errCtxResolvingOwner, err)
				}
				owner = found
				owners[property.OwnerID] = owner
			}
			if owner != nil {
				ownerName = owner.FirstName + " " + owner.LastName
			}
		}

		summaries = append(summaries, &entities.PropertySummary{
			ID:            property.ID,
			PropertyType:  property.PropertyType,
			Area:          property.Area,
			NumberOfRooms: property.NumberOfRooms,
			Floor:         property.Floor,
			HeatingType:   property.HeatingType,
			Address:       property.Address,
			Description:   property.Description,
			Price:         property.Price,
			Status:        property.Status,
			ImageURLs:     property.ImageURLs,
			OwnerID:       property.OwnerID,
			OwnerName:     ownerName,
		})
	}

	return summaries, nil
}
