package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
)

// SettingsService handles the storefront settings blobs
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetFooter returns the stored footer, or the defaults when none is
// stored or the blob cannot be read.
func (s *SettingsService) GetFooter(ctx context.Context) (*entity.FooterData, error) {
	setting, err := s.settingsRepo.Get(ctx, entity.SettingKeyFooter)
	if err != nil {
		return nil, err
	}

	footer := entity.DefaultFooter()
	if setting == nil {
		return &footer, nil
	}
	if err := json.Unmarshal([]byte(setting.Value), &footer); err != nil {
		log.Printf("settings: unreadable %s, using defaults: %v", entity.SettingKeyFooter, err)
		footer = entity.DefaultFooter()
	}
	return &footer, nil
}

// UpdateFooter replaces the footer; last write wins
func (s *SettingsService) UpdateFooter(ctx context.Context, footer *entity.FooterData) (*entity.FooterData, error) {
	value, err := json.Marshal(footer)
	if err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Upsert(ctx, &entity.StoreSetting{
		Key:   entity.SettingKeyFooter,
		Value: string(value),
	}); err != nil {
		return nil, err
	}
	return footer, nil
}
