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

// PropertyRepository реализует интерфейс repositories.PropertyRepository.
// Изображения объявления хранятся отдельной таблицей и упорядочены
// по позиции загрузки.
type PropertyRepository struct {
	pool PgxPoolInterface
}

// NewPropertyRepository создает новый экземпляр репозитория объявлений.
func NewPropertyRepository(pool PgxPoolInterface) repositories.PropertyRepository {
	return &PropertyRepository{pool: pool}
}

const propertyColumns = `id, property_type, area, number_of_rooms, floor, heating_type,
               address, description, price, status, owner_id, lister_id, created_at, updated_at`

func scanProperty(row pgx.Row) (*entities.Property, error) {
	var property entities.Property
	err := row.Scan(
		&property.ID,
		&property.PropertyType,
		&property.Area,
		&property.NumberOfRooms,
		&property.Floor,
		&property.HeatingType,
		&property.Address,
		&property.Description,
		&property.Price,
		&property.Status,
		&property.OwnerID,
		&property.ListerID,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Create создает объявление вместе со списком изображений в одной транзакции.
func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) (*entities.Property, error) {
	log := logger.Log(ctx).With(zap.String("repository", "property"), zap.String("method", "Create"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, errMsgBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgBeginTx, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
        INSERT INTO properties (property_type, area, number_of_rooms, floor, heating_type,
               address, description, price, status, owner_id, lister_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + propertyColumns + `
    `

	created, err := scanProperty(tx.QueryRow(ctx, query,
		property.PropertyType,
		property.Area,
		property.NumberOfRooms,
		property.Floor,
		property.HeatingType,
		property.Address,
		property.Description,
		property.Price,
		property.Status,
		property.OwnerID,
		property.ListerID,
	))
	if err != nil {
		log.Error(ctx, "error creating property", zap.Error(err))
		return nil, fmt.Errorf("error creating property: %w", err)
	}

	if err := insertImages(ctx, tx, created.ID, property.ImageURLs); err != nil {
		log.Error(ctx, "error inserting property images", zap.Error(err))
		return nil, err
	}
	created.ImageURLs = property.ImageURLs

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, errMsgCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgCommitTx, err)
	}

	return created, nil
}

// FindByID находит объявление по ID вместе с изображениями.
func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*entities.Property, error) {
	log := logger.Log(ctx).With(zap.String("repository", "property"), zap.String("method", "FindByID"))

	query := `
        SELECT ` + propertyColumns + `
        FROM properties
        WHERE id = $1
    `

	property, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "property not found", zap.String("id", id))
			return nil, entities.ErrPropertyNotFound
		}
		log.Error(ctx, "error finding property by id", zap.Error(err))
		return nil, fmt.Errorf("error querying property by id: %w", err)
	}

	urls, err := r.loadImages(ctx, property.ID)
	if err != nil {
		log.Error(ctx, "error loading property images", zap.Error(err))
		return nil, err
	}
	property.ImageURLs = urls

	return property, nil
}

// FindAll возвращает все объявления с изображениями.
func (r *PropertyRepository) FindAll(ctx context.Context) ([]*entities.Property, error) {
	return r.findMany(ctx, "FindAll", `
        SELECT `+propertyColumns+`
        FROM properties
        ORDER BY created_at DESC
    `)
}

// FindByListerID возвращает объявления, размещенные указанной учетной записью.
func (r *PropertyRepository) FindByListerID(ctx context.Context, listerID string) ([]*entities.Property, error) {
	return r.findMany(ctx, "FindByListerID", `
        SELECT `+propertyColumns+`
        FROM properties
        WHERE lister_id = $1
        ORDER BY created_at DESC
    `, listerID)
}

// Update обновляет объявление; при replaceImages список изображений
// целиком заменяется содержимым property.ImageURLs.
func (r *PropertyRepository) Update(ctx context.Context, property *entities.Property, replaceImages bool) (*entities.Property, error) {
	log := logger.Log(ctx).With(zap.String("repository", "property"), zap.String("method", "Update"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, errMsgBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgBeginTx, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
        UPDATE properties
        SET property_type = $2, area = $3, number_of_rooms = $4, floor = $5, heating_type = $6,
            address = $7, description = $8, price = $9, status = $10, updated_at = now()
        WHERE id = $1
        RETURNING ` + propertyColumns + `
    `

	updated, err := scanProperty(tx.QueryRow(ctx, query,
		property.ID,
		property.PropertyType,
		property.Area,
		property.NumberOfRooms,
		property.Floor,
		property.HeatingType,
		property.Address,
		property.Description,
		property.Price,
		property.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "property not found for update", zap.String("id", property.ID))
			return nil, entities.ErrPropertyNotFound
		}
		log.Error(ctx, "error updating property", zap.Error(err))
		return nil, fmt.Errorf("error updating property: %w", err)
	}

	if replaceImages {
		_, err = tx.Exec(ctx, `DELETE FROM property_images WHERE property_id = $1`, updated.ID)
		if err != nil {
			log.Error(ctx, "error deleting property images", zap.Error(err))
			return nil, fmt.Errorf("error deleting property images: %w", err)
		}
		if err := insertImages(ctx, tx, updated.ID, property.ImageURLs); err != nil {
			log.Error(ctx, "error inserting property images", zap.Error(err))
			return nil, err
		}
		updated.ImageURLs = property.ImageURLs
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, errMsgCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsgCommitTx, err)
	}

	if !replaceImages {
		urls, err := r.loadImages(ctx, updated.ID)
		if err != nil {
			log.Error(ctx, "error loading property images", zap.Error(err))
			return nil, err
		}
		updated.ImageURLs = urls
	}

	return updated, nil
}

// Delete удаляет объявление по ID; изображения удаляются каскадно.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "property"), zap.String("method", "Delete"))

	query := `
        DELETE FROM properties
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting property", zap.Error(err))
		return fmt.Errorf("error deleting property: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "property not found for deletion", zap.String("id", id))
		return entities.ErrPropertyNotFound
	}

	return nil
}

func (r *PropertyRepository) findMany(ctx context.Context, method, query string, args ...interface{}) ([]*entities.Property, error) {
	log := logger.Log(ctx).With(zap.String("repository", "property"), zap.String("method", method))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error querying properties", zap.Error(err))
		return nil, fmt.Errorf("error querying properties: %w", err)
	}
	defer rows.Close()

	properties := make([]*entities.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning property row: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	for _, property := range properties {
		urls, err := r.loadImages(ctx, property.ID)
		if err != nil {
			log.Error(ctx, "error loading property images", zap.Error(err))
			return nil, err
		}
		property.ImageURLs = urls
	}

	return properties, nil
}

func (r *PropertyRepository) loadImages(ctx context.Context, propertyID string) ([]string, error) {
	query := `
        SELECT url
        FROM property_images
        WHERE property_id = $1
        ORDER BY position
    `

	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("error querying property images: %w", err)
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("error scanning image row: %w", err)
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating image rows: %w", err)
	}

	return urls, nil
}

func insertImages(ctx context.Context, tx pgx.Tx, propertyID string, urls []string) error {
	query := `
        INSERT INTO property_images (property_id, position, url)
        VALUES ($1, $2, $3)
    `

	for position, url := range urls {
		if _, err := tx.Exec(ctx, query, propertyID, position, url); err != nil {
			return fmt.Errorf("error inserting property image: %w", err)
		}
	}
	return nil
}
