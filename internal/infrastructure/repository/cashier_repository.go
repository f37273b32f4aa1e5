package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	domainRepo "github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type cashierSessionRepository struct {
	db *gorm.DB
}

// NewCashierSessionRepository creates a new cashier session repository
func NewCashierSessionRepository(db *gorm.DB) domainRepo.CashierSessionRepository {
	return &cashierSessionRepository{db: db}
}

func (r *cashierSessionRepository) Create(ctx context.Context, session *entity.CashierSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *cashierSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashierSession, error) {
	var session entity.CashierSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	return notFound(&session, err)
}

func (r *cashierSessionRepository) Update(ctx context.Context, session *entity.CashierSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *cashierSessionRepository) ListByStatus(ctx context.Context, status enum.SessionStatus) ([]entity.CashierSession, error) {
	var sessions []entity.CashierSession
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("opened_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *cashierSessionRepository) List(ctx context.Context, params *pagination.Params) ([]entity.CashierSession, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.CashierSession{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []entity.CashierSession
	err := r.db.WithContext(ctx).
		Order("opened_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&sessions).Error
	return sessions, total, err
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale record repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, record *entity.DailyRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *saleRepository) CreateWithTableReset(ctx context.Context, record *entity.DailyRecord, table *entity.Table) error {
	if table.Items == nil {
		table.Items = entity.OrderLines{}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Save(table).Error
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyRecord, error) {
	var record entity.DailyRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	return notFound(&record, err)
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DailyRecord{}, "id = ?", id).Error
}

func (r *saleRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.DailyRecord, error) {
	var records []entity.DailyRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("closed_at DESC").
		Find(&records).Error
	return records, err
}

func (r *saleRepository) ListAll(ctx context.Context) ([]entity.DailyRecord, error) {
	var records []entity.DailyRecord
	err := r.db.WithContext(ctx).Order("closed_at DESC").Find(&records).Error
	return records, err
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) CreateForPayable(ctx context.Context, expense *entity.Expense, payable *entity.Payable) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return err
		}
		payable.ExpenseID = &expense.ID
		return tx.Save(payable).Error
	})
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	return notFound(&expense, err)
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("occurred_at DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) ListAll(ctx context.Context) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).Order("occurred_at DESC").Find(&expenses).Error
	return expenses, err
}
