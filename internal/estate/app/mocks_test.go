package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"estatehub/internal/estate/domain/entities"
	svc "estatehub/internal/estate/ports/services"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockRegistrationRepository struct {
	mock.Mock
}

func (m *mockRegistrationRepository) CreateCustomerAccount(ctx context.Context, user *entities.User, customer *entities.Customer) (*entities.User, error) {
	args := m.Called(ctx, user, customer)
	created, _ := args.Get(0).(*entities.User)
	return created, args.Error(1)
}

func (m *mockRegistrationRepository) CreateBusinessAccount(ctx context.Context, user *entities.User, business *entities.Business) (*entities.User, error) {
	args := m.Called(ctx, user, business)
	created, _ := args.Get(0).(*entities.User)
	return created, args.Error(1)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id string) (*entities.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*entities.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepository) FindByUserID(ctx context.Context, userID string) (*entities.Customer, error) {
	args := m.Called(ctx, userID)
	customer, _ := args.Get(0).(*entities.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*entities.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*entities.Customer)
	return customers, args.Error(1)
}

func (m *mockCustomerRepository) SearchByName(ctx context.Context, query string) ([]*entities.Customer, error) {
	args := m.Called(ctx, query)
	customers, _ := args.Get(0).([]*entities.Customer)
	return customers, args.Error(1)
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *entities.Customer) (*entities.Customer, error) {
	args := m.Called(ctx, customer)
	created, _ := args.Get(0).(*entities.Customer)
	return created, args.Error(1)
}

func (m *mockCustomerRepository) Update(ctx context.Context, customer *entities.Customer) (*entities.Customer, error) {
	args := m.Called(ctx, customer)
	updated, _ := args.Get(0).(*entities.Customer)
	return updated, args.Error(1)
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBusinessRepository struct {
	mock.Mock
}

func (m *mockBusinessRepository) FindByID(ctx context.Context, id string) (*entities.Business, error) {
	args := m.Called(ctx, id)
	business, _ := args.Get(0).(*entities.Business)
	return business, args.Error(1)
}

func (m *mockBusinessRepository) FindByUserID(ctx context.Context, userID string) (*entities.Business, error) {
	args := m.Called(ctx, userID)
	business, _ := args.Get(0).(*entities.Business)
	return business, args.Error(1)
}

func (m *mockBusinessRepository) List(ctx context.Context) ([]*entities.Business, error) {
	args := m.Called(ctx)
	businesses, _ := args.Get(0).([]*entities.Business)
	return businesses, args.Error(1)
}

func (m *mockBusinessRepository) Create(ctx context.Context, business *entities.Business) (*entities.Business, error) {
	args := m.Called(ctx, business)
	created, _ := args.Get(0).(*entities.Business)
	return created, args.Error(1)
}

func (m *mockBusinessRepository) Update(ctx context.Context, business *entities.Business) (*entities.Business, error) {
	args := m.Called(ctx, business)
	updated, _ := args.Get(0).(*entities.Business)
	return updated, args.Error(1)
}

func (m *mockBusinessRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPropertyRepository struct {
	mock.Mock
}

func (m *mockPropertyRepository) Create(ctx context.Context, property *entities.Property) (*entities.Property, error) {
	args := m.Called(ctx, property)
	created, _ := args.Get(0).(*entities.Property)
	return created, args.Error(1)
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, id string) (*entities.Property, error) {
	args := m.Called(ctx, id)
	property, _ := args.Get(0).(*entities.Property)
	return property, args.Error(1)
}

func (m *mockPropertyRepository) FindAll(ctx context.Context) ([]*entities.Property, error) {
	args := m.Called(ctx)
	properties, _ := args.Get(0).([]*entities.Property)
	return properties, args.Error(1)
}

func (m *mockPropertyRepository) FindByListerID(ctx context.Context, listerID string) ([]*entities.Property, error) {
	args := m.Called(ctx, listerID)
	properties, _ := args.Get(0).([]*entities.Property)
	return properties, args.Error(1)
}

func (m *mockPropertyRepository) Update(ctx context.Context, property *entities.Property, replaceImages bool) (*entities.Property, error) {
	args := m.Called(ctx, property, replaceImages)
	updated, _ := args.Get(0).(*entities.Property)
	return updated, args.Error(1)
}

func (m *mockPropertyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) Save(ctx context.Context, upload svc.Upload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}
