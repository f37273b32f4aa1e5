package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type idempotencyRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db, now: time.Now}
}

func (r *idempotencyRepository) Get(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("idempotency_key = ? AND operator_id = ? AND expires_at > ?", key, operatorID, r.now()).
		First(&ikey).Error
	return notFound(&ikey, err)
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	return r.db.WithContext(ctx).Create(ikey).Error
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now()).
		Delete(&entity.IdempotencyKey{})
	return result.RowsAffected, result.Error
}
