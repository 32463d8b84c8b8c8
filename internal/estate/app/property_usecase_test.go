package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/estate/app"
	"estatehub/internal/estate/domain/entities"
	svc "estatehub/internal/estate/ports/services"
)

// fakeCache - кэш в памяти для проверки работы с публичной выдачей.
type fakeCache struct {
	mu      sync.Mutex
	values  map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *fakeCache) Close() error {
	return nil
}

func validProperty() *entities.Property {
	return &entities.Property{
		PropertyType:  entities.PropertyApartment,
		Area:          85.5,
		NumberOfRooms: "2+1",
		Floor:         3,
		HeatingType:   entities.HeatingCentral,
		Address:       "Istanbul, Kadikoy",
		Description:   "Bright flat near the coast",
		Price:         250000,
		Status:        entities.StatusForSale,
	}
}

func newPropertyMocks() (*mockPropertyRepository, *mockCustomerRepository, *mockBusinessRepository, *mockFileStorage) {
	return new(mockPropertyRepository), new(mockCustomerRepository), new(mockBusinessRepository), new(mockFileStorage)
}

func TestPropertyUseCaseCreate(t *testing.T) {
	ctx := testContext(t)

	t.Run("Компания создает объявление для выбранного клиента", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		principal := entities.Principal{UserID: "user-biz", Email: "agency@example.com", Role: entities.RoleBusiness}
		owner := &entities.Customer{ID: "cust-1", FirstName: "Ivan", LastName: "Petrov"}

		customerRepo.On("FindByID", mock.Anything, "cust-1").Return(owner, nil)
		businessRepo.On("FindByUserID", mock.Anything, "user-other").Return(&entities.Business{ID: "biz-1"}, nil)
		propertyRepo.On("Create", mock.Anything, mock.Anything).Return(validProperty(), nil)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		_, err := useCase.Create(ctx, principal, validProperty(), "cust-1", "user-other", nil)

		require.NoError(t, err)

		saved := propertyRepo.Calls[0].Arguments.Get(1).(*entities.Property)
		assert.Equal(t, "cust-1", saved.OwnerID)
		// Разместившим всегда записывается текущий пользователь,
		// даже если передан чужой listerID.
		assert.Equal(t, "user-biz", saved.ListerID)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("Клиент всегда становится владельцем сам", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		principal := entities.Principal{UserID: "user-1", Role: entities.RoleCustomer}
		owner := &entities.Customer{ID: "cust-1", UserID: "user-1"}

		customerRepo.On("FindByUserID", mock.Anything, "user-1").Return(owner, nil)
		propertyRepo.On("Create", mock.Anything, mock.Anything).Return(validProperty(), nil)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		_, err := useCase.Create(ctx, principal, validProperty(), "ignored", "user-1", nil)

		require.NoError(t, err)

		saved := propertyRepo.Calls[0].Arguments.Get(1).(*entities.Property)
		assert.Equal(t, "cust-1", saved.OwnerID)
		assert.Equal(t, "user-1", saved.ListerID)
	})

	t.Run("Клиент без профиля не может создать объявление", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		principal := entities.Principal{UserID: "user-1", Role: entities.RoleCustomer}
		customerRepo.On("FindByUserID", mock.Anything, "user-1").Return(nil, entities.ErrCustomerNotFound)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		created, err := useCase.Create(ctx, principal, validProperty(), "", "user-1", nil)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrCustomerProfileMissing)
		propertyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Несуществующий профиль разместившего", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		principal := entities.Principal{UserID: "user-biz", Role: entities.RoleBusiness}
		customerRepo.On("FindByID", mock.Anything, "cust-1").Return(&entities.Customer{ID: "cust-1"}, nil)
		businessRepo.On("FindByUserID", mock.Anything, "ghost").Return(nil, entities.ErrBusinessNotFound)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		created, err := useCase.Create(ctx, principal, validProperty(), "cust-1", "ghost", nil)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrListerNotFound)
	})

	t.Run("Сохраненные изображения попадают в объявление", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		principal := entities.Principal{UserID: "user-1", Role: entities.RoleCustomer}
		customerRepo.On("FindByUserID", mock.Anything, "user-1").Return(&entities.Customer{ID: "cust-1"}, nil)
		storage.On("Save", mock.Anything, mock.Anything).Return("/uploads/abc_photo.png", nil)
		propertyRepo.On("Create", mock.Anything, mock.Anything).Return(validProperty(), nil)

		uploads := []svc.Upload{{Filename: "photo.png", Content: strings.NewReader("image bytes")}}

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		_, err := useCase.Create(ctx, principal, validProperty(), "", "user-1", uploads)

		require.NoError(t, err)

		saved := propertyRepo.Calls[0].Arguments.Get(1).(*entities.Property)
		assert.Equal(t, []string{"/uploads/abc_photo.png"}, saved.ImageURLs)
	})

	t.Run("Ошибка сохранения файла прерывает создание", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		principal := entities.Principal{UserID: "user-1", Role: entities.RoleCustomer}
		customerRepo.On("FindByUserID", mock.Anything, "user-1").Return(&entities.Customer{ID: "cust-1"}, nil)

		diskErr := errors.New("disk full")
		storage.On("Save", mock.Anything, mock.Anything).Return("", diskErr)

		uploads := []svc.Upload{{Filename: "photo.png", Content: strings.NewReader("image bytes")}}

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		created, err := useCase.Create(ctx, principal, validProperty(), "", "user-1", uploads)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, diskErr)
		propertyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Некорректное объявление не сохраняется", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		principal := entities.Principal{UserID: "user-1", Role: entities.RoleCustomer}
		customerRepo.On("FindByUserID", mock.Anything, "user-1").Return(&entities.Customer{ID: "cust-1"}, nil)

		draft := validProperty()
		draft.NumberOfRooms = "11+1"

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		created, err := useCase.Create(ctx, principal, draft, "", "user-1", nil)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrUnknownNumberOfRooms)
		propertyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPropertyUseCaseUpdate(t *testing.T) {
	ctx := testContext(t)

	t.Run("Статус, владелец и разместивший сохраняются при обновлении", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		existing := validProperty()
		existing.ID = "prop-1"
		existing.OwnerID = "cust-1"
		existing.ListerID = "user-1"
		existing.Status = entities.StatusSold

		propertyRepo.On("FindByID", mock.Anything, "prop-1").Return(existing, nil)
		propertyRepo.On("Update", mock.Anything, mock.Anything, false).Return(existing, nil)

		draft := validProperty()
		draft.Status = entities.StatusForRent
		draft.Price = 300000

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		_, err := useCase.Update(ctx, "prop-1", draft, nil)

		require.NoError(t, err)

		saved := propertyRepo.Calls[1].Arguments.Get(1).(*entities.Property)
		assert.Equal(t, "prop-1", saved.ID)
		assert.Equal(t, "cust-1", saved.OwnerID)
		assert.Equal(t, "user-1", saved.ListerID)
		assert.Equal(t, entities.StatusSold, saved.Status)
		assert.Equal(t, float64(300000), saved.Price)
	})

	t.Run("Загрузки целиком заменяют список изображений", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		existing := validProperty()
		existing.ID = "prop-1"
		existing.ImageURLs = []string{"/uploads/old.png"}

		propertyRepo.On("FindByID", mock.Anything, "prop-1").Return(existing, nil)
		storage.On("Save", mock.Anything, mock.Anything).Return("/uploads/new.png", nil)
		propertyRepo.On("Update", mock.Anything, mock.Anything, true).Return(existing, nil)

		uploads := []svc.Upload{{Filename: "new.png", Content: strings.NewReader("image bytes")}}

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		_, err := useCase.Update(ctx, "prop-1", validProperty(), uploads)

		require.NoError(t, err)

		saved := propertyRepo.Calls[1].Arguments.Get(1).(*entities.Property)
		assert.Equal(t, []string{"/uploads/new.png"}, saved.ImageURLs)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("Обновление несуществующего объявления", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		propertyRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entities.ErrPropertyNotFound)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		updated, err := useCase.Update(ctx, "ghost", validProperty(), nil)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, entities.ErrPropertyNotFound)
	})
}

func TestPropertyUseCaseDelete(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное удаление", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()
		propertyRepo.On("Delete", mock.Anything, "prop-1").Return(nil)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		err := useCase.Delete(ctx, "prop-1")

		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("Удаление несуществующего объявления", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()
		propertyRepo.On("Delete", mock.Anything, "ghost").Return(entities.ErrPropertyNotFound)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		err := useCase.Delete(ctx, "ghost")

		assert.ErrorIs(t, err, entities.ErrPropertyNotFound)
	})
}

func TestPropertyUseCaseList(t *testing.T) {
	ctx := testContext(t)

	t.Run("Выдача дополняется именем владельца", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()

		property := validProperty()
		property.ID = "prop-1"
		property.OwnerID = "cust-1"

		propertyRepo.On("FindAll", mock.Anything).Return([]*entities.Property{property}, nil)
		customerRepo.On("FindByID", mock.Anything, "cust-1").
			Return(&entities.Customer{ID: "cust-1", FirstName: "Ivan", LastName: "Petrov"}, nil)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, nil, 0)
		summaries, err := useCase.List(ctx)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Ivan Petrov", summaries[0].OwnerName)
	})

	t.Run("Повторная выдача обслуживается из кэша", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()
		feedCache := newFakeCache()

		property := validProperty()
		property.ID = "prop-1"
		property.OwnerID = "cust-1"

		propertyRepo.On("FindAll", mock.Anything).Return([]*entities.Property{property}, nil).Once()
		customerRepo.On("FindByID", mock.Anything, "cust-1").
			Return(&entities.Customer{ID: "cust-1", FirstName: "Ivan", LastName: "Petrov"}, nil).Once()

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, feedCache, time.Minute)

		first, err := useCase.List(ctx)
		require.NoError(t, err)

		second, err := useCase.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, first[0].OwnerName, second[0].OwnerName)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("Изменение объявления сбрасывает кэш выдачи", func(t *testing.T) {
		propertyRepo, customerRepo, businessRepo, storage := newPropertyMocks()
		feedCache := newFakeCache()

		propertyRepo.On("Delete", mock.Anything, "prop-1").Return(nil)

		useCase := app.NewPropertyUseCase(propertyRepo, customerRepo, businessRepo, storage, feedCache, time.Minute)
		require.NoError(t, useCase.Delete(ctx, "prop-1"))

		assert.Contains(t, feedCache.deleted, "properties:feed")
	})
}
