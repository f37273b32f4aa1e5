package database

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedOptions controls first-start data.
type SeedOptions struct {
	TableCount    int
	AdminUsername string
	AdminPassword string
}

// DefaultCategories are created on an empty catalog, in this order.
var DefaultCategories = []string{
	"Café da Manhã",
	"Brunch",
	"Entradas",
	"Petiscos",
	"Pratos Principais",
	"Carnes",
	"Peixes",
	"Massas",
	"Lanches",
	"Sobremesas",
	"Bebidas",
	"Drinks Especiais",
	"Vinhos",
}

func defaultMenu() []entity.MenuItem {
	item := func(name, description, price, category, image string, stock int) entity.MenuItem {
		return entity.MenuItem{
			Name:        name,
			Description: description,
			Price:       decimal.RequireFromString(price),
			Category:    category,
			ImageURL:    image,
			IsAvailable: true,
			Stock:       stock,
		}
	}
	return []entity.MenuItem{
		item("Dadinhos de Queijo Coalho", "Cubos de queijo coalho crocantes acompanhados de melaço de cana picante.",
			"32.00", "Entradas", "https://picsum.photos/400/300?random=1", 50),
		item("Baião de Dois Gourmet", "Arroz com feijão fradinho, carne de sol desfiada, queijo coalho e manteiga de garrafa.",
			"58.00", "Pratos Principais", "https://picsum.photos/400/300?random=2", 30),
		item("Cartola Sertaneja", "Banana frita com queijo manteiga, polvilhada com açúcar e canela.",
			"24.00", "Sobremesas", "https://picsum.photos/400/300?random=3", 20),
		item("Suco de Cajuína", "Tradicional bebida nordestina feita de caju clarificado.",
			"12.00", "Bebidas", "https://picsum.photos/400/300?random=4", 100),
	}
}

// Seed creates default data that is missing. Running it twice is harmless.
func Seed(db *gorm.DB, opts SeedOptions) error {
	log.Println("Seeding default data...")

	steps := []struct {
		name string
		fn   func(*gorm.DB, SeedOptions) error
	}{
		{"categories", seedCategories},
		{"menu", seedMenu},
		{"tables", seedTables},
		{"footer", seedFooter},
		{"admin operator", seedAdmin},
	}
	for _, step := range steps {
		if err := step.fn(db, opts); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

func seedCategories(db *gorm.DB, _ SeedOptions) error {
	var n int64
	if err := db.Model(&entity.Category{}).Count(&n).Error; err != nil || n > 0 {
		return err
	}
	categories := make([]entity.Category, len(DefaultCategories))
	for i, name := range DefaultCategories {
		categories[i] = entity.Category{Name: name, Position: i + 1}
	}
	return db.Create(&categories).Error
}

func seedMenu(db *gorm.DB, _ SeedOptions) error {
	var n int64
	if err := db.Model(&entity.MenuItem{}).Count(&n).Error; err != nil || n > 0 {
		return err
	}
	items := defaultMenu()
	return db.Create(&items).Error
}

func seedTables(db *gorm.DB, opts SeedOptions) error {
	for id := 1; id <= opts.TableCount; id++ {
		table := entity.Table{ID: id, Items: entity.OrderLines{}}
		if err := db.Where(entity.Table{ID: id}).FirstOrCreate(&table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedFooter(db *gorm.DB, _ SeedOptions) error {
	var n int64
	if err := db.Model(&entity.StoreSetting{}).Where("setting_key = ?", entity.SettingKeyFooter).Count(&n).Error; err != nil || n > 0 {
		return err
	}
	value, err := json.Marshal(entity.DefaultFooter())
	if err != nil {
		return err
	}
	return db.Create(&entity.StoreSetting{Key: entity.SettingKeyFooter, Value: string(value)}).Error
}

func seedAdmin(db *gorm.DB, opts SeedOptions) error {
	var n int64
	if err := db.Model(&entity.Operator{}).Count(&n).Error; err != nil || n > 0 {
		return err
	}

	password := opts.AdminPassword
	if password == "" {
		buf := make([]byte, 9)
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		password = hex.EncodeToString(buf)
		log.Printf("ADMIN_PASSWORD not set; generated password for %q: %s", opts.AdminUsername, password)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := entity.Operator{
		Username:     opts.AdminUsername,
		DisplayName:  "Administrador",
		PasswordHash: hash,
		Role:         enum.OperatorRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Admin operator created: %s", admin.Username)
	return nil
}
