package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/ports/repositories"
	"estatehub/pkg/logger"
)

const (
	errMsgBeginTx       = "error beginning transaction"
	errMsgCommitTx      = "error committing transaction"
	errMsgInsertUser    = "error inserting user"
	errMsgInsertProfile = "error inserting profile"
)

// RegistrationRepository реализует интерфейс repositories.RegistrationRepository.
// Учетная запись и профиль создаются в одной транзакции.
type RegistrationRepository struct {
	pool PgxPoolInterface
}

// NewRegistrationRepository создает новый экземпляр репозитория регистрации.
func NewRegistrationRepository(pool PgxPoolInterface) repositories.RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

// CreateCustomerAccount атомарно создает учетную запись и профиль клиента.
func (r *RegistrationRepository) CreateCustomerAccount(ctx context.Context, user *entities.User, customer *entities.Customer) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "registration"), zap.String("method", "CreateCustomerAccount"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, errMsgBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgBeginTx, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := insertUser(ctx, tx, user)
	if err != nil {
		log.Error(ctx, errMsgInsertUser, zap.Error(err))
		return nil, err
	}

	query := `
        INSERT INTO customers (first_name, last_name, address, phone_number, user_id)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err = tx.Exec(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Address,
		customer.PhoneNumber,
		created.ID,
	)
	if err != nil {
		log.Error(ctx, errMsgInsertProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgInsertProfile, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, errMsgCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgCommitTx, err)
	}

	return created, nil
}

// CreateBusinessAccount атомарно создает учетную запись и профиль компании.
func (r *RegistrationRepository) CreateBusinessAccount(ctx context.Context, user *entities.User, business *entities.Business) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "registration"), zap.String("method", "CreateBusinessAccount"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, errMsgBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgBeginTx, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := insertUser(ctx, tx, user)
	if err != nil {
		log.Error(ctx, errMsgInsertUser, zap.Error(err))
		return nil, err
	}

	query := `
        INSERT INTO businesses (business_name, first_name, last_name, address, phone_number, user_id)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err = tx.Exec(ctx, query,
		business.BusinessName,
		business.FirstName,
		business.LastName,
		business.Address,
		business.PhoneNumber,
		created.ID,
	)
	if err != nil {
		log.Error(ctx, errMsgInsertProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgInsertProfile, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, errMsgCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgCommitTx, err)
	}

	return created, nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
}

func insertUser(ctx context.Context, q rowQuerier, user *entities.User) (*entities.User, error) {
	query := `
        INSERT INTO users (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, email, password_hash, role, created_at
    `

	var created entities.User
	err := q.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsgInsertUser, err)
	}

	return &created, nil
}
