package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return notFound(&item, err)
}

func (r *menuItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return []entity.MenuItem{}, nil
	}
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) List(ctx context.Context, filter domainRepo.MenuFilter) ([]entity.MenuItem, error) {
	query := r.db.WithContext(ctx).Model(&entity.MenuItem{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var items []entity.MenuItem
	err := query.Order("category ASC").Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}

// AdjustStock clamps in SQL so concurrent writers can never drive stock
// negative. The underflow flag comes from the read before the update and
// is informational only.
func (r *menuItemRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	var current entity.MenuItem
	if err := r.db.WithContext(ctx).Select("id", "stock").First(&current, "id = ?", id).Error; err != nil {
		return false, err
	}

	err := r.db.WithContext(ctx).
		Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("CASE WHEN stock + ? < 0 THEN 0 ELSE stock + ? END", delta, delta)).Error
	if err != nil {
		return false, err
	}

	return delta < 0 && current.Stock+delta < 0, nil
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	return notFound(&category, err)
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	return notFound(&category, err)
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).Order("position ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) NextPosition(ctx context.Context) (int, error) {
	var max int
	row := r.db.WithContext(ctx).Model(&entity.Category{}).Select("COALESCE(MAX(position), 0)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	return max + 1, nil
}
