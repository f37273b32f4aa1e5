package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
)

// PayableRepository defines the interface for bill operations
type PayableRepository interface {
	Create(ctx context.Context, payable *entity.Payable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payable, error)
	Update(ctx context.Context, payable *entity.Payable) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List orders by due date; a nil status returns every bill.
	List(ctx context.Context, status *enum.PayableStatus) ([]entity.Payable, error)
}
