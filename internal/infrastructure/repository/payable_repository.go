package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type payableRepository struct {
	db *gorm.DB
}

// NewPayableRepository creates a new payable repository
func NewPayableRepository(db *gorm.DB) domainRepo.PayableRepository {
	return &payableRepository{db: db}
}

func (r *payableRepository) Create(ctx context.Context, payable *entity.Payable) error {
	return r.db.WithContext(ctx).Create(payable).Error
}

func (r *payableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payable, error) {
	var payable entity.Payable
	err := r.db.WithContext(ctx).First(&payable, "id = ?", id).Error
	return notFound(&payable, err)
}

func (r *payableRepository) Update(ctx context.Context, payable *entity.Payable) error {
	return r.db.WithContext(ctx).Save(payable).Error
}

func (r *payableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Payable{}, "id = ?", id).Error
}

func (r *payableRepository) List(ctx context.Context, status *enum.PayableStatus) ([]entity.Payable, error) {
	query := r.db.WithContext(ctx).Model(&entity.Payable{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var payables []entity.Payable
	err := query.Order("due_date ASC").Find(&payables).Error
	return payables, err
}
