package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bmcquade/lifedesk-backend/internal/logger"
)

// RecordRepo is the persistence gateway shared by all three record types.
// Lookups that match nothing return a nil record and a nil error; errors are
// reserved for store faults.
type RecordRepo[T any] interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*T, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error)
	GetByField(ctx context.Context, tx *gorm.DB, field string, value interface{}) (*T, error)
	Create(ctx context.Context, tx *gorm.DB, record *T) (*T, error)
	Save(ctx context.Context, tx *gorm.DB, record *T) (*T, error)
	Delete(ctx context.Context, tx *gorm.DB, record *T) error
}

type recordRepo[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecordRepo[T any](db *gorm.DB, baseLog *logger.Logger, name string) RecordRepo[T] {
	repoLog := baseLog.With("repo", name)
	return &recordRepo[T]{db: db, log: repoLog}
}

func (r *recordRepo[T]) GetAll(ctx context.Context, tx *gorm.DB) ([]*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*T

	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *recordRepo[T]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result T

	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *recordRepo[T]) GetByField(ctx context.Context, tx *gorm.DB, field string, value interface{}) (*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result T

	if err := transaction.WithContext(ctx).
		Where(map[string]interface{}{field: value}).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *recordRepo[T]) Create(ctx context.Context, tx *gorm.DB, record *T) (*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *recordRepo[T]) Save(ctx context.Context, tx *gorm.DB, record *T) (*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *recordRepo[T]) Delete(ctx context.Context, tx *gorm.DB, record *T) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Delete(record).Error; err != nil {
		return err
	}
	return nil
}
