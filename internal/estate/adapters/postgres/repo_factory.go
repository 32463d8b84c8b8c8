package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"estatehub/internal/estate/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo         repositories.UserRepository
	registrationRepo repositories.RegistrationRepository
	customerRepo     repositories.CustomerRepository
	businessRepo     repositories.BusinessRepository
	propertyRepo     repositories.PropertyRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:         NewUserRepository(pool),
		registrationRepo: NewRegistrationRepository(pool),
		customerRepo:     NewCustomerRepository(pool),
		businessRepo:     NewBusinessRepository(pool),
		propertyRepo:     NewPropertyRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// RegistrationRepository возвращает репозиторий регистрации.
func (f *RepositoryFactory) RegistrationRepository() repositories.RegistrationRepository {
	return f.registrationRepo
}

// CustomerRepository возвращает репозиторий клиентов.
func (f *RepositoryFactory) CustomerRepository() repositories.CustomerRepository {
	return f.customerRepo
}

// BusinessRepository возвращает репозиторий компаний.
func (f *RepositoryFactory) BusinessRepository() repositories.BusinessRepository {
	return f.businessRepo
}

// PropertyRepository возвращает репозиторий объявлений.
func (f *RepositoryFactory) PropertyRepository() repositories.PropertyRepository {
	return f.propertyRepo
}
