package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"usermgmt/internal/users/domain/services"
	"usermgmt/internal/users/ports/repositories"
	"usermgmt/pkg/logger"
)

// TxBeginner покрывает pgxpool.Pool и pgxmock.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager выполняет функцию с репозиторием в рамках одной транзакции:
// соединение захватывается на время запроса и гарантированно освобождается,
// commit при успехе, rollback на любом пути с ошибкой.
type TxManager struct {
	pool TxBeginner
}

// NewTxManager создает новый менеджер транзакций.
func NewTxManager(pool TxBeginner) repositories.UserUnitOfWork {
	return &TxManager{pool: pool}
}

// Do запускает fn с репозиторием, привязанным к транзакции.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context, users repositories.UserRepository) error) error {
	log := logger.Log(ctx).With(zap.String("component", "tx_manager"))

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error beginning transaction", zap.Error(err))
		return fmt.Errorf("beginning transaction: %w: %w", services.ErrStorageUnavailable, err)
	}

	if err := fn(ctx, NewUserRepository(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Error(ctx, "error rolling back transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing transaction", zap.Error(err))
		return fmt.Errorf("committing transaction: %w: %w", services.ErrStorageUnavailable, err)
	}

	return nil
}
