package services

import (
	"time"

	svc "estatehub/internal/estate/ports/services"
)

// ServiceFactory создает и хранит инфраструктурные сервисы приложения.
type ServiceFactory struct {
	tokenService    svc.TokenService
	passwordService svc.PasswordService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(jwtSecret string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		tokenService:    NewJWT(jwtSecret, tokenTTL),
		passwordService: NewBcrypt(bcryptCost),
	}
}

// TokenService возвращает сервис выпуска и проверки токенов.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return f.tokenService
}

// PasswordService возвращает сервис хэширования паролей.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}
