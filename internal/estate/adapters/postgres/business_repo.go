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

// BusinessRepository реализует интерфейс repositories.BusinessRepository.
type BusinessRepository struct {
	pool PgxPoolInterface
}

// NewBusinessRepository создает новый экземпляр репозитория компаний.
func NewBusinessRepository(pool PgxPoolInterface) repositories.BusinessRepository {
	return &BusinessRepository{pool: pool}
}

// user_id допускает NULL: профиль может существовать без учетной записи.
const businessColumns = `id, business_name, first_name, last_name, address, phone_number, COALESCE(user_id::text, '')`

func scanBusiness(row pgx.Row) (*entities.Business, error) {
	var business entities.Business
	err := row.Scan(
		&business.ID,
		&business.BusinessName,
		&business.FirstName,
		&business.LastName,
		&business.Address,
		&business.PhoneNumber,
		&business.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// FindByID находит профиль компании по ID.
func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*entities.Business, error) {
	log := logger.Log(ctx).With(zap.String("repository", "business"), zap.String("method", "FindByID"))

	query := `
        SELECT ` + businessColumns + `
        FROM businesses
        WHERE id = $1
    `

	business, err := scanBusiness(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "business not found", zap.String("id", id))
			return nil, entities.ErrBusinessNotFound
		}
		log.Error(ctx, "error finding business by id", zap.Error(err))
		return nil, fmt.Errorf("error querying business by id: %w", err)
	}

	return business, nil
}

// FindByUserID находит профиль компании по учетной записи.
func (r *BusinessRepository) FindByUserID(ctx context.Context, userID string) (*entities.Business, error) {
	log := logger.Log(ctx).With(zap.String("repository", "business"), zap.String("method", "FindByUserID"))

	query := `
        SELECT ` + businessColumns + `
        FROM businesses
        WHERE user_id = $1
    `

	business, err := scanBusiness(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "business not found", zap.String("userID", userID))
			return nil, entities.ErrBusinessNotFound
		}
		log.Error(ctx, "error finding business by user id", zap.Error(err))
		return nil, fmt.Errorf("error querying business by user id: %w", err)
	}

	return business, nil
}

// List возвращает все профили компаний.
func (r *BusinessRepository) List(ctx context.Context) ([]*entities.Business, error) {
	log := logger.Log(ctx).With(zap.String("repository", "business"), zap.String("method", "List"))

	query := `
        SELECT ` + businessColumns + `
        FROM businesses
        ORDER BY business_name
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing businesses", zap.Error(err))
		return nil, fmt.Errorf("error listing businesses: %w", err)
	}
	defer rows.Close()

	businesses := make([]*entities.Business, 0)
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning business row: %w", err)
		}
		businesses = append(businesses, business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}

	return businesses, nil
}

// Create создает профиль компании.
func (r *BusinessRepository) Create(ctx context.Context, business *entities.Business) (*entities.Business, error) {
	log := logger.Log(ctx).With(zap.String("repository", "business"), zap.String("method", "Create"))

	query := `
        INSERT INTO businesses (business_name, first_name, last_name, address, phone_number, user_id)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
        RETURNING ` + businessColumns + `
    `

	created, err := scanBusiness(r.pool.QueryRow(ctx, query,
		business.BusinessName,
		business.FirstName,
		business.LastName,
		business.Address,
		business.PhoneNumber,
		business.UserID,
	))
	if err != nil {
		log.Error(ctx, "error creating business", zap.Error(err))
		return nil, fmt.Errorf("error creating business: %w", err)
	}

	return created, nil
}

// Update обновляет профиль компании.
func (r *BusinessRepository) Update(ctx context.Context, business *entities.Business) (*entities.Business, error) {
	log := logger.Log(ctx).With(zap.String("repository", "business"), zap.String("method", "Update"))

	query := `
        UPDATE businesses
        SET business_name = $2, first_name = $3, last_name = $4, address = $5, phone_number = $6
        WHERE id = $1
        RETURNING ` + businessColumns + `
    `

	updated, err := scanBusiness(r.pool.QueryRow(ctx, query,
		business.ID,
		business.BusinessName,
		business.FirstName,
		business.LastName,
		business.Address,
		business.PhoneNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "business not found for update", zap.String("id", business.ID))
			return nil, entities.ErrBusinessNotFound
		}
		log.Error(ctx, "error updating business", zap.Error(err))
		return nil, fmt.Errorf("error updating business: %w", err)
	}

	return updated, nil
}

// Delete удаляет профиль компании по ID.
func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "business"), zap.String("method", "Delete"))

	query := `
        DELETE FROM businesses
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting business", zap.Error(err))
		return fmt.Errorf("error deleting business: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "business not found for deletion", zap.String("id", id))
		return entities.ErrBusinessNotFound
	}

	return nil
}
