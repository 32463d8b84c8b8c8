package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/ports/repositories"
	"estatehub/pkg/logger"
)

// CustomerRepository реализует интерфейс repositories.CustomerRepository.
type CustomerRepository struct {
	pool PgxPoolInterface
}

// NewCustomerRepository создает новый экземпляр репозитория клиентов.
func NewCustomerRepository(pool PgxPoolInterface) repositories.CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// user_id допускает NULL: профиль может существовать без учетной записи.
const customerColumns = `id, first_name, last_name, address, phone_number, COALESCE(user_id::text, '')`

func scanCustomer(row pgx.Row) (*entities.Customer, error) {
	var customer entities.Customer
	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Address,
		&customer.PhoneNumber,
		&customer.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByID находит профиль клиента по ID.
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "FindByID"))

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE id = $1
    `

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "customer not found", zap.String("id", id))
			return nil, entities.ErrCustomerNotFound
		}
		log.Error(ctx, "error finding customer by id", zap.Error(err))
		return nil, fmt.Errorf("error querying customer by id: %w", err)
	}

	return customer, nil
}

// FindByUserID находит профиль клиента по учетной записи.
func (r *CustomerRepository) FindByUserID(ctx context.Context, userID string) (*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "FindByUserID"))

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE user_id = $1
    `

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "customer not found", zap.String("userID", userID))
			return nil, entities.ErrCustomerNotFound
		}
		log.Error(ctx, "error finding customer by user id", zap.Error(err))
		return nil, fmt.Errorf("error querying customer by user id: %w", err)
	}

	return customer, nil
}

// List возвращает все профили клиентов.
func (r *CustomerRepository) List(ctx context.Context) ([]*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "List"))

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        ORDER BY last_name, first_name
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing customers", zap.Error(err))
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

// SearchByName ищет клиентов по подстроке имени или фамилии без учета регистра.
func (r *CustomerRepository) SearchByName(ctx context.Context, search string) ([]*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "SearchByName"))

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
        ORDER BY last_name, first_name
    `

	rows, err := r.pool.Query(ctx, query, search)
	if err != nil {
		log.Error(ctx, "error searching customers", zap.Error(err))
		return nil, fmt.Errorf("error searching customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

// Create создает профиль клиента.
func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) (*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "Create"))

	query := `
        INSERT INTO customers (first_name, last_name, address, phone_number, user_id)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''))
        RETURNING ` + customerColumns + `
    `

	created, err := scanCustomer(r.pool.QueryRow(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Address,
		customer.PhoneNumber,
		customer.UserID,
	))
	if err != nil {
		log.Error(ctx, "error creating customer", zap.Error(err))
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	return created, nil
}

// Update обновляет профиль клиента.
func (r *CustomerRepository) Update(ctx context.Context, customer *entities.Customer) (*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "Update"))

	query := `
        UPDATE customers
        SET first_name = $2, last_name = $3, address = $4, phone_number = $5
        WHERE id = $1
        RETURNING ` + customerColumns + `
    `

	updated, err := scanCustomer(r.pool.QueryRow(ctx, query,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.Address,
		customer.PhoneNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "customer not found for update", zap.String("id", customer.ID))
			return nil, entities.ErrCustomerNotFound
		}
		log.Error(ctx, "error updating customer", zap.Error(err))
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return updated, nil
}

// Delete удаляет профиль клиента по ID.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "customer"), zap.String("method", "Delete"))

	query := `
        DELETE FROM customers
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting customer", zap.Error(err))
		return fmt.Errorf("error deleting customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "customer not found for deletion", zap.String("id", id))
		return entities.ErrCustomerNotFound
	}

	return nil
}

func collectCustomers(rows pgx.Rows) ([]*entities.Customer, error) {
	customers := make([]*entities.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}
