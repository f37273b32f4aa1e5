package repository

import (
	"context"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new dining table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) GetByID(ctx context.Context, id int) (*entity.Table, error) {
	var table entity.Table
	err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error
	return notFound(&table, err)
}

func (r *tableRepository) List(ctx context.Context) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tables).Error
	return tables, err
}

// Save writes every column, so a freed table's nil OpenedAt and
// CustomerName are stored as NULL.
func (r *tableRepository) Save(ctx context.Context, table *entity.Table) error {
	if table.Items == nil {
		table.Items = entity.OrderLines{}
	}
	return r.db.WithContext(ctx).Save(table).Error
}
