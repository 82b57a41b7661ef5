package txmanager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermgmt/internal/users/adapters/postgres"
	"usermgmt/internal/users/domain/entities"
	"usermgmt/internal/users/domain/services"
	"usermgmt/internal/users/ports/repositories"
	"usermgmt/pkg/logger"
)

func TestTxManager_Do(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	t.Run("Commit при успешном выполнении", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT .+ FROM users .+").
			WithArgs("alice").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectCommit()

		manager := postgres.NewTxManager(mock)
		err = manager.Do(ctx, func(ctx context.Context, users repositories.UserRepository) error {
			_, findErr := users.FindByUsername(ctx, "alice")
			if !errors.Is(findErr, entities.ErrUserNotFound) {
				return findErr
			}
			return nil
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback при ошибке функции", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		fnErr := errors.New("registration failed")

		mock.ExpectBegin()
		mock.ExpectRollback()

		manager := postgres.NewTxManager(mock)
		err = manager.Do(ctx, func(ctx context.Context, users repositories.UserRepository) error {
			return fnErr
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, fnErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при открытии транзакции", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		manager := postgres.NewTxManager(mock)
		err = manager.Do(ctx, func(ctx context.Context, users repositories.UserRepository) error {
			t.Fatal("function must not run without a transaction")
			return nil
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrStorageUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при фиксации транзакции", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		manager := postgres.NewTxManager(mock)
		err = manager.Do(ctx, func(ctx context.Context, users repositories.UserRepository) error {
			return nil
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrStorageUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
