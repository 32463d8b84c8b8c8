package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/estate/adapters/postgres"
	"estatehub/internal/estate/domain/entities"
)

var businessTestColumns = []string{"id", "business_name", "first_name", "last_name", "address", "phone_number", "user_id"}

func TestBusinessRepositoryFindByUserID(t *testing.T) {
	ctx := testContext(t)

	t.Run("Профиль компании найден по учетной записи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(businessTestColumns).
			AddRow("biz-1", "Acme Estates", "Ivan", "Petrov", "Moscow, Tverskaya 1", "05551234567", "user-1")

		mock.ExpectQuery("SELECT id, business_name, first_name, last_name").
			WithArgs("user-1").
			WillReturnRows(rows)

		repo := postgres.NewBusinessRepository(mock)
		business, err := repo.FindByUserID(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "biz-1", business.ID)
		assert.Equal(t, "Acme Estates", business.BusinessName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Профиль компании не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, business_name, first_name, last_name").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewBusinessRepository(mock)
		business, err := repo.FindByUserID(ctx, "ghost")

		assert.Nil(t, business)
		assert.ErrorIs(t, err, entities.ErrBusinessNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBusinessRepositoryList(t *testing.T) {
	ctx := testContext(t)

	t.Run("Возвращаются все профили компаний", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(businessTestColumns).
			AddRow("biz-1", "Acme Estates", "Ivan", "Petrov", "Moscow, Tverskaya 1", "05551234567", "").
			AddRow("biz-2", "Best Homes", "Anna", "Sidorova", "Kazan, Bauman 5", "05559876543", "user-2")

		mock.ExpectQuery("SELECT id, business_name, first_name, last_name").
			WillReturnRows(rows)

		repo := postgres.NewBusinessRepository(mock)
		businesses, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, businesses, 2)
		assert.Equal(t, "Best Homes", businesses[1].BusinessName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
