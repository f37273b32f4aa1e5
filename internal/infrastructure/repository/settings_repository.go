package repository

import (
	"context"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (*entity.StoreSetting, error) {
	var setting entity.StoreSetting
	err := r.db.WithContext(ctx).First(&setting, "setting_key = ?", key).Error
	return notFound(&setting, err)
}

// Upsert replaces the value for the key; the last write wins.
func (r *settingsRepository) Upsert(ctx context.Context, setting *entity.StoreSetting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}
