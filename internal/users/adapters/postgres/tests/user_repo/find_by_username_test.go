package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermgmt/internal/users/adapters/postgres"
	"usermgmt/internal/users/domain/entities"
	"usermgmt/internal/users/domain/services"
	"usermgmt/pkg/logger"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	expectedUser := entities.User{
		ID:           42,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешный поиск пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs(expectedUser.Username).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
					AddRow(expectedUser.ID, expectedUser.Username, expectedUser.Email, expectedUser.PasswordHash, expectedUser.CreatedAt),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, expectedUser.Username)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, expectedUser, *user)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, "missing")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка при поиске пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("alice").
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, "alice")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error querying user by username")
		assert.ErrorIs(t, err, services.ErrStorageUnavailable)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
