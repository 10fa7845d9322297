package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
)

// querier общий набор методов pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// Repository хранилище инцидентов, отчётов, голосов и участников в PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// q возвращает транзакцию из контекста, если она открыта, иначе пул
func (r *Repository) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.db
}

// WithinTx выполняет fn в транзакции READ COMMITTED
func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.withTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinSerializableTx выполняет fn в транзакции SERIALIZABLE
func (r *Repository) WithinSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.withTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (r *Repository) withTx(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) (err error) {
	// вложенный вызов переиспользует уже открытую транзакцию
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := r.db.BeginTx(ctx, opts)
	if err != nil {
		return mapError(err, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return mapError(err, "failed to commit transaction")
	}
	return nil
}

// mapError переводит ошибки драйвера в типизированные ошибки приложения
func mapError(err error, msg string) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "хранилище не ответило вовремя")
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "хранилище недоступно")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "конфликт параллельных изменений, повторите запрос")
		case pgerrcode.ForeignKeyViolation:
			return apperror.Wrap(err, apperror.ErrCodeNotFound, "связанная запись не найдена")
		case pgerrcode.CheckViolation:
			return apperror.Wrap(err, apperror.ErrCodeValidation, "значение не прошло проверку хранилища")
		}
	}

	if pgconn.SafeToRetry(err) {
		return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "хранилище недоступно")
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == constraint
}
