package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/apperror"
)

// TableService drives dine-in tables and walk-up quick sales.
type TableService struct {
	mu        sync.Mutex
	tableRepo repository.TableRepository
	menuRepo  repository.MenuItemRepository
	cashier   *CashierService
	now       func() time.Time
}

// NewTableService creates a new table service
func NewTableService(
	tableRepo repository.TableRepository,
	menuRepo repository.MenuItemRepository,
	cashier *CashierService,
) *TableService {
	return &TableService{
		tableRepo: tableRepo,
		menuRepo:  menuRepo,
		cashier:   cashier,
		now:       time.Now,
	}
}

// ListTables lists the whole table pool
func (s *TableService) ListTables(ctx context.Context) ([]entity.Table, error) {
	return s.tableRepo.List(ctx)
}

// GetTable retrieves a table by ID
func (s *TableService) GetTable(ctx context.Context, id int) (*entity.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

func (s *TableService) sellable(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	if !item.IsAvailable {
		return nil, apperror.NewBadRequestError("Menu item is not available: " + item.Name)
	}
	return item, nil
}

// AddItem adds one unit of a menu item to the table, snapshotting its
// current name and price.
func (s *TableService) AddItem(ctx context.Context, tableID int, menuItemID uuid.UUID) (*entity.Table, error) {
	item, err := s.sellable(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	table.AddItem(item, s.now())
	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// AdjustQuantity moves a line's quantity by delta. Emptying the table
// frees it.
func (s *TableService) AdjustQuantity(ctx context.Context, tableID int, menuItemID uuid.UUID, delta int) (*entity.Table, error) {
	if delta == 0 {
		return nil, apperror.NewBadRequestError("Delta must not be zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if !table.AdjustQuantity(menuItemID, delta) {
		return nil, apperror.NewNotFoundError("Table item")
	}
	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// SetCustomerName sets or, with an empty name, clears the table's customer.
func (s *TableService) SetCustomerName(ctx context.Context, tableID int, name string) (*entity.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	table.CustomerName = normalizeName(&name)
	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	PaymentMethod enum.PaymentMethod
	OperatorID    *uuid.UUID
}

// Checkout finalizes the table's order as a sale and frees the table.
// The record and the freed table are written together, so a failed
// checkout leaves the table as it was and can be retried.
func (s *TableService) Checkout(ctx context.Context, tableID int, input *CheckoutInput) (*entity.DailyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if !table.IsActive() {
		return nil, apperror.NewBadRequestError("Table has no items")
	}

	saleInput := &RecordSaleInput{
		Items:         table.Items,
		PaymentMethod: input.PaymentMethod,
		TableID:       table.ID,
		CustomerName:  table.CustomerName,
		Origin:        enum.SaleOriginTable,
		OperatorID:    input.OperatorID,
	}
	if table.OpenedAt != nil {
		saleInput.OpenedAt = *table.OpenedAt
	}

	freed := *table
	freed.Reset()
	saleInput.FreeTable = &freed

	return s.cashier.RecordSale(ctx, saleInput)
}

// QuickSaleItem is one cart line as sent by the client.
type QuickSaleItem struct {
	MenuItemID uuid.UUID
	Quantity   int
}

// QuickSaleInput represents a walk-up sale
type QuickSaleInput struct {
	Items         []QuickSaleItem
	PaymentMethod enum.PaymentMethod
	CustomerName  *string
	OperatorID    *uuid.UUID
}

// QuickSale prices the cart from the catalog and records it as a sale
// with no table.
func (s *TableService) QuickSale(ctx context.Context, input *QuickSaleInput) (*entity.DailyRecord, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "items", Message: "at least one item is required"}})
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Quantity < 1 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "items", Message: "quantity must be at least 1"}})
		}
		ids = append(ids, it.MenuItemID)
	}

	items, err := s.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[uuid.UUID]*entity.MenuItem, len(items))
	for i := range items {
		catalog[items[i].ID] = &items[i]
	}

	var lines entity.OrderLines
	for _, it := range input.Items {
		item, ok := catalog[it.MenuItemID]
		if !ok {
			return nil, apperror.NewNotFoundError("Menu item")
		}
		if !item.IsAvailable {
			return nil, apperror.NewBadRequestError("Menu item is not available: " + item.Name)
		}
		lines = lines.Add(item)
		if it.Quantity > 1 {
			lines, _ = lines.Adjust(item.ID, it.Quantity-1)
		}
	}

	// A zero OpenedAt makes the record open and close at the same instant.
	return s.cashier.RecordSale(ctx, &RecordSaleInput{
		Items:         lines,
		PaymentMethod: input.PaymentMethod,
		TableID:       entity.QuickSaleTableID,
		CustomerName:  input.CustomerName,
		Origin:        enum.SaleOriginQuickSale,
		OperatorID:    input.OperatorID,
	})
}
