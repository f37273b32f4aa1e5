package repository

import (
	"context"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
)

// TableRepository stores the fixed pool of dining tables.
type TableRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Table, error)
	List(ctx context.Context) ([]entity.Table, error)
	// Save writes the full table row, including cleared fields.
	Save(ctx context.Context, table *entity.Table) error
}
