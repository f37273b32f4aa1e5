package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/pkg/pagination"
)

// CashierSessionRepository persists the session history.
type CashierSessionRepository interface {
	Create(ctx context.Context, session *entity.CashierSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashierSession, error)
	Update(ctx context.Context, session *entity.CashierSession) error
	// ListByStatus returns matching sessions, newest first.
	ListByStatus(ctx context.Context, status enum.SessionStatus) ([]entity.CashierSession, error)
	// List returns a page of the history, newest first.
	List(ctx context.Context, params *pagination.Params) ([]entity.CashierSession, int64, error)
}

// SaleRepository persists DailyRecords.
type SaleRepository interface {
	Create(ctx context.Context, record *entity.DailyRecord) error
	// CreateWithTableReset inserts the record and saves the freed table in
	// one transaction; neither write survives if the other fails.
	CreateWithTableReset(ctx context.Context, record *entity.DailyRecord, table *entity.Table) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.DailyRecord, error)
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]entity.DailyRecord, error)
}

// ExpenseRepository persists Expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	// CreateForPayable inserts the expense, links it on the bill and saves
	// the bill in one transaction.
	CreateForPayable(ctx context.Context, expense *entity.Expense, payable *entity.Payable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Expense, error)
	// ListAll returns every expense, newest first.
	ListAll(ctx context.Context) ([]entity.Expense, error)
}
