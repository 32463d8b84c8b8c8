package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/estate/app"
	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/domain/services"
	"estatehub/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

func validRegistration() *entities.Registration {
	return &entities.Registration{
		Email:           "ivan@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "CUSTOMER",
		FirstName:       "Ivan",
		LastName:        "Petrov",
		PhoneNumber:     "05551234567",
		Address:         "Moscow, Tverskaya 1",
	}
}

func TestAuthUseCaseRegister(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешная регистрация клиента", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()

		userRepo.On("ExistsByEmail", mock.Anything, reg.Email).Return(false, nil)
		passwordSvc.On("Hash", mock.Anything, reg.Password).Return("hashed", nil)
		registrationRepo.On("CreateCustomerAccount", mock.Anything, mock.Anything, mock.Anything).
			Return(&entities.User{ID: "user-1", Email: reg.Email, Role: entities.RoleCustomer}, nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		require.NoError(t, err)
		assert.Equal(t, "user-1", created.ID)
		assert.Equal(t, entities.RoleCustomer, created.Role)

		createdUser := registrationRepo.Calls[0].Arguments.Get(1).(*entities.User)
		assert.Equal(t, "hashed", createdUser.PasswordHash)
		userRepo.AssertExpectations(t)
		registrationRepo.AssertExpectations(t)
	})

	t.Run("Успешная регистрация компании", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()
		reg.Role = "business"
		reg.BusinessName = "Acme Estates"

		userRepo.On("ExistsByEmail", mock.Anything, reg.Email).Return(false, nil)
		passwordSvc.On("Hash", mock.Anything, reg.Password).Return("hashed", nil)
		registrationRepo.On("CreateBusinessAccount", mock.Anything, mock.Anything, mock.Anything).
			Return(&entities.User{ID: "user-2", Email: reg.Email, Role: entities.RoleBusiness}, nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		require.NoError(t, err)
		assert.Equal(t, entities.RoleBusiness, created.Role)

		business := registrationRepo.Calls[0].Arguments.Get(2).(*entities.Business)
		assert.Equal(t, "Acme Estates", business.BusinessName)
		registrationRepo.AssertExpectations(t)
	})

	t.Run("Некорректный формат email", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()
		reg.Email = "not-an-email"

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrInvalidEmail)
		userRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Email уже занят", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()
		userRepo.On("ExistsByEmail", mock.Anything, reg.Email).Return(true, nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrEmailAlreadyExists)
		registrationRepo.AssertNotCalled(t, "CreateCustomerAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Пароли не совпадают", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()
		reg.ConfirmPassword = "different"
		userRepo.On("ExistsByEmail", mock.Anything, reg.Email).Return(false, nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrPasswordMismatch)
		passwordSvc.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
	})

	t.Run("Неизвестная роль", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()
		reg.Role = "ADMIN"
		userRepo.On("ExistsByEmail", mock.Anything, reg.Email).Return(false, nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrInvalidRole)
	})

	t.Run("Некорректный профиль клиента", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()
		reg.PhoneNumber = "12345"
		userRepo.On("ExistsByEmail", mock.Anything, reg.Email).Return(false, nil)
		passwordSvc.On("Hash", mock.Anything, reg.Password).Return("hashed", nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, entities.ErrInvalidPhoneNumber)
		registrationRepo.AssertNotCalled(t, "CreateCustomerAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Ошибка базы данных при создании учетной записи", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		reg := validRegistration()
		dbErr := errors.New("database error")
		userRepo.On("ExistsByEmail", mock.Anything, reg.Email).Return(false, nil)
		passwordSvc.On("Hash", mock.Anything, reg.Password).Return("hashed", nil)
		registrationRepo.On("CreateCustomerAccount", mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		created, err := useCase.Register(ctx, reg)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthUseCaseLogin(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешный вход", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		user := &entities.User{ID: "user-1", Email: "ivan@example.com", PasswordHash: "hashed", Role: entities.RoleCustomer}
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		passwordSvc.On("Verify", mock.Anything, "secret123", "hashed").Return(true, nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		found, err := useCase.Login(ctx, user.Email, "secret123")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		userRepo.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, entities.ErrUserNotFound)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		found, err := useCase.Login(ctx, "ghost@example.com", "secret123")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Неверный пароль неотличим от неизвестного email", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		user := &entities.User{ID: "user-1", Email: "ivan@example.com", PasswordHash: "hashed"}
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		passwordSvc.On("Verify", mock.Anything, "wrong", "hashed").Return(false, nil)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		found, err := useCase.Login(ctx, user.Email, "wrong")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Ошибка базы данных при поиске пользователя", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		registrationRepo := new(mockRegistrationRepository)
		passwordSvc := new(mockPasswordService)

		dbErr := errors.New("database error")
		userRepo.On("FindByEmail", mock.Anything, "ivan@example.com").Return(nil, dbErr)

		useCase := app.NewAuthUseCase(userRepo, registrationRepo, passwordSvc)
		found, err := useCase.Login(ctx, "ivan@example.com", "secret123")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
	})
}
