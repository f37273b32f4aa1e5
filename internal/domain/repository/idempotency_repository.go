package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// Get returns the unexpired entry for key, or nil.
	Get(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, record *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) (int64, error)
}
