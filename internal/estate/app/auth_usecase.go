// Package app содержит реализацию бизнес-логики приложения.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/domain/services"
	"estatehub/internal/estate/ports/api"
	"estatehub/internal/estate/ports/repositories"
	svc "estatehub/internal/estate/ports/services"
	"estatehub/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration  = "starting user registration"
	msgInvalidEmailFormat = "invalid email format"
	msgEmailExists        = "user with this email already exists"
	msgPasswordMismatch   = "password confirmation does not match"
	msgInvalidRole        = "unknown role provided"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgInvalidPassword    = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateAccount     = "failed to create account"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxValidatingRole     = "validating role"
	errCtxValidatingProfile  = "validating profile"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingAccount    = "creating account"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo         repositories.UserRepository
	registrationRepo repositories.RegistrationRepository
	passwordSvc      svc.PasswordService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	registrationRepo repositories.RegistrationRepository,
	passwordSvc svc.PasswordService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		passwordSvc:      passwordSvc,
	}
}

// Register создает учетную запись и профиль выбранной роли.
// Проверки выполняются в фиксированном порядке: занятость email,
// совпадение паролей, известность роли, форма полей профиля.
func (a *AuthUseCaseImpl) Register(ctx context.Context, reg *entities.Registration) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", reg.Email))
	log.Debug(ctx, msgStartRegistration)

	if !emailRegex.MatchString(reg.Email) {
		log.Debug(ctx, msgInvalidEmailFormat)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, entities.ErrInvalidEmail)
	}

	exists, err := a.userRepo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if exists {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, entities.ErrEmailAlreadyExists)
	}

	if reg.Password != reg.ConfirmPassword {
		log.Debug(ctx, msgPasswordMismatch)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrPasswordMismatch)
	}

	role, err := entities.ParseRole(reg.Role)
	if err != nil {
		log.Debug(ctx, msgInvalidRole, zap.String("role", reg.Role))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingRole, err)
	}

	hash, err := a.passwordSvc.Hash(ctx, reg.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user := &entities.User{
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         role,
	}

	var created *entities.User
	switch role {
	case entities.RoleBusiness:
		business := &entities.Business{
			BusinessName: reg.BusinessName,
			FirstName:    reg.FirstName,
			LastName:     reg.LastName,
			Address:      reg.Address,
			PhoneNumber:  reg.PhoneNumber,
		}
		if err := business.Validate(); err != nil {
			log.Debug(ctx, "invalid business profile", zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingProfile, err)
		}
		created, err = a.registrationRepo.CreateBusinessAccount(ctx, user, business)
	case entities.RoleCustomer:
		customer := &entities.Customer{
			FirstName:   reg.FirstName,
			LastName:    reg.LastName,
			Address:     reg.Address,
			PhoneNumber: reg.PhoneNumber,
		}
		if err := customer.Validate(); err != nil {
			log.Debug(ctx, "invalid customer profile", zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingProfile, err)
		}
		created, err = a.registrationRepo.CreateCustomerAccount(ctx, user, customer)
	}
	if err != nil {
		log.Error(ctx, msgErrCreateAccount, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingAccount, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

// Login проверяет учетные данные. Неизвестный email и неверный пароль
// неразличимы для вызывающей стороны.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, services.ErrInvalidCredentials
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword)
		return nil, services.ErrInvalidCredentials
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return user, nil
}
