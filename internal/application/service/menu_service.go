package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/apperror"
	"github.com/sertaogourmet/pos-api/pkg/enhancer"
	"github.com/shopspring/decimal"
)

const defaultItemName = "Novo"

// MenuService handles catalog administration
type MenuService struct {
	menuRepo     repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
	enhancer     enhancer.Enhancer
}

// NewMenuService creates a new menu service
func NewMenuService(
	menuRepo repository.MenuItemRepository,
	categoryRepo repository.CategoryRepository,
	enh enhancer.Enhancer,
) *MenuService {
	if enh == nil {
		enh = enhancer.Noop{}
	}
	return &MenuService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		enhancer:     enh,
	}
}

// ListMenu returns the items currently on sale
func (s *MenuService) ListMenu(ctx context.Context, category string) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx, repository.MenuFilter{Category: category, AvailableOnly: true})
}

// ListItems returns catalog items, including withdrawn ones
func (s *MenuService) ListItems(ctx context.Context, filter repository.MenuFilter) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx, filter)
}

// GetItem retrieves a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// MenuItemInput carries item fields; nil pointers are left unchanged on
// update and defaulted on create.
type MenuItemInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CostPrice   *decimal.Decimal
	Category    *string
	ImageURL    *string
	IsAvailable *bool
	Stock       *int
}

func (in *MenuItemInput) validate() error {
	var errs []apperror.FieldError
	if in.Price != nil {
		if in.Price.IsNegative() {
			errs = append(errs, apperror.FieldError{Field: "price", Message: "must not be negative"})
		} else if !isCents(*in.Price) {
			errs = append(errs, apperror.FieldError{Field: "price", Message: centsMessage})
		}
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			errs = append(errs, apperror.FieldError{Field: "cost_price", Message: "must not be negative"})
		} else if !isCents(*in.CostPrice) {
			errs = append(errs, apperror.FieldError{Field: "cost_price", Message: centsMessage})
		}
	}
	if in.Stock != nil && *in.Stock < 0 {
		errs = append(errs, apperror.FieldError{Field: "stock", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}
	return nil
}

func (s *MenuService) requireCategory(ctx context.Context, name string) error {
	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "category", Message: "unknown category " + name},
		})
	}
	return nil
}

// CreateItem adds a catalog item. Name defaults to "Novo" and category to
// the first category.
func (s *MenuService) CreateItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        defaultItemName,
		Price:       decimal.Zero,
		IsAvailable: true,
	}
	if input.Category == nil || strings.TrimSpace(*input.Category) == "" {
		categories, err := s.categoryRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(categories) == 0 {
			return nil, apperror.NewBadRequestError("Create a category first")
		}
		item.Category = categories[0].Name
	}

	if err := s.apply(ctx, item, input); err != nil {
		return nil, err
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem changes the given fields of an item. Open orders keep the
// name and price they were rung up with.
func (s *MenuService) UpdateItem(ctx context.Context, id uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, item, input); err != nil {
		return nil, err
	}
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) apply(ctx context.Context, item *entity.MenuItem, input *MenuItemInput) error {
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			item.Name = name
		}
	}
	if input.Description != nil {
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.CostPrice != nil {
		cost := *input.CostPrice
		item.CostPrice = &cost
	}
	if input.Category != nil {
		if name := strings.TrimSpace(*input.Category); name != "" {
			item.Category = name
		}
	}
	if input.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.Stock != nil {
		item.Stock = *input.Stock
	}
	return s.requireCategory(ctx, item.Category)
}

// SetAvailability puts an item on sale or withdraws it
func (s *MenuService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.MenuItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.IsAvailable = available
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustStock moves stock by delta, clamping at zero.
func (s *MenuService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.MenuItem, error) {
	if _, err := s.GetItem(ctx, id); err != nil {
		return nil, err
	}

	underflow, err := s.menuRepo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if underflow {
		log.Printf("menu: stock for %s clamped at 0 (delta %d)", id, delta)
	}
	return s.GetItem(ctx, id)
}

// EnhanceDescription asks the enhancer for a better description. It
// returns the input unchanged on any failure.
func (s *MenuService) EnhanceDescription(ctx context.Context, name, description string) string {
	return s.enhancer.Enhance(ctx, name, description)
}

// ListCategories lists categories in insertion order
func (s *MenuService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory adds a category; names are unique.
func (s *MenuService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "is required"}})
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category with this name already exists")
	}

	position, err := s.categoryRepo.NextPosition(ctx)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{Name: name, Position: position}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Items keep their category label.
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
