package repository

import (
	"context"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
)

// SettingsRepository stores opaque key/value settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*entity.StoreSetting, error)
	Upsert(ctx context.Context, setting *entity.StoreSetting) error
}
