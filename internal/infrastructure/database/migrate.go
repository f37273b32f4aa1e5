package database

import (
	"fmt"
	"log"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"gorm.io/gorm"
)

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog
		&entity.Category{},
		&entity.MenuItem{},

		// Floor
		&entity.Table{},

		// Cashier ledger
		&entity.CashierSession{},
		&entity.DailyRecord{},
		&entity.Expense{},
		&entity.Payable{},

		// System
		&entity.Operator{},
		&entity.StoreSetting{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
