package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
)

// MenuFilter narrows catalog listings.
type MenuFilter struct {
	Category      string
	AvailableOnly bool
	Search        string
}

// MenuItemRepository defines the interface for catalog item operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	// GetByIDs retrieves multiple items in a single query.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	List(ctx context.Context, filter MenuFilter) ([]entity.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	// AdjustStock adds delta to stock, never letting it fall below zero.
	// underflow is true when a negative delta exceeded the stock on hand.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (underflow bool, err error)
}

// CategoryRepository defines the interface for category operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns categories in insertion order.
	List(ctx context.Context) ([]entity.Category, error)
	NextPosition(ctx context.Context) (int, error)
}
