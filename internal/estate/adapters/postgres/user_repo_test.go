package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/estate/adapters/postgres"
	"estatehub/internal/estate/domain/entities"
	"estatehub/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное получение пользователя по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
			AddRow("user-1", "ivan@example.com", "hashed", entities.RoleCustomer, now)

		mock.ExpectQuery("SELECT id, email, password_hash, role, created_at").
			WithArgs("ivan@example.com").
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "ivan@example.com")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, entities.RoleCustomer, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, role, created_at").
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "ghost@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при поиске по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbErr := errors.New("connection refused")
		mock.ExpectQuery("SELECT id, email, password_hash, role, created_at").
			WithArgs("ivan@example.com").
			WillReturnError(dbErr)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "ivan@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositoryFindByID(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное получение пользователя по ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
			AddRow("user-1", "ivan@example.com", "hashed", entities.RoleBusiness, now)

		mock.ExpectQuery("SELECT id, email, password_hash, role, created_at").
			WithArgs("user-1").
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "ivan@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден по ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, role, created_at").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, "ghost")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositoryExistsByEmail(t *testing.T) {
	ctx := testContext(t)

	t.Run("Email занят", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("ivan@example.com").
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)
		exists, err := repo.ExistsByEmail(ctx, "ivan@example.com")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email свободен", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"exists"}).AddRow(false)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("new@example.com").
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)
		exists, err := repo.ExistsByEmail(ctx, "new@example.com")

		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
