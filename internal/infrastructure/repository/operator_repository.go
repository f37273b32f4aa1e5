package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) domainRepo.OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	return r.db.WithContext(ctx).Create(operator).Error
}

func (r *operatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "id = ?", id).Error
	return notFound(&operator, err)
}

func (r *operatorRepository) GetByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "username = ?", username).Error
	return notFound(&operator, err)
}

func (r *operatorRepository) Update(ctx context.Context, operator *entity.Operator) error {
	return r.db.WithContext(ctx).Save(operator).Error
}

func (r *operatorRepository) List(ctx context.Context) ([]entity.Operator, error) {
	var operators []entity.Operator
	err := r.db.WithContext(ctx).Order("username ASC").Find(&operators).Error
	return operators, err
}

func (r *operatorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Operator{}).Count(&n).Error
	return n, err
}
