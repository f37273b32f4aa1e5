package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// PayableService tracks bills owed by the restaurant
type PayableService struct {
	mu          sync.Mutex
	payableRepo repository.PayableRepository
	cashier     *CashierService
	now         func() time.Time
}

// NewPayableService creates a new payable service
func NewPayableService(payableRepo repository.PayableRepository, cashier *CashierService) *PayableService {
	return &PayableService{
		payableRepo: payableRepo,
		cashier:     cashier,
		now:         time.Now,
	}
}

// CreatePayableInput represents the create payable input
type CreatePayableInput struct {
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
}

// CreatePayable registers a pending bill
func (s *PayableService) CreatePayable(ctx context.Context, input *CreatePayableInput) (*entity.Payable, error) {
	description := strings.TrimSpace(input.Description)
	var errs []apperror.FieldError
	if description == "" {
		errs = append(errs, apperror.FieldError{Field: "description", Message: "is required"})
	}
	if !input.Amount.IsPositive() {
		errs = append(errs, apperror.FieldError{Field: "amount", Message: "must be greater than zero"})
	} else if !isCents(input.Amount) {
		errs = append(errs, apperror.FieldError{Field: "amount", Message: centsMessage})
	}
	if input.DueDate.IsZero() {
		errs = append(errs, apperror.FieldError{Field: "due_date", Message: "is required"})
	}
	if len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	payable := &entity.Payable{
		Description: description,
		Amount:      input.Amount,
		DueDate:     entity.CalendarDate(input.DueDate),
		Status:      enum.PayableStatusPending,
	}
	if err := s.payableRepo.Create(ctx, payable); err != nil {
		return nil, err
	}
	return payable, nil
}

// ListPayables lists bills by due date; nil status lists all
func (s *PayableService) ListPayables(ctx context.Context, status *enum.PayableStatus) ([]entity.Payable, error) {
	return s.payableRepo.List(ctx, status)
}

// GetPayable retrieves a bill by ID
func (s *PayableService) GetPayable(ctx context.Context, id uuid.UUID) (*entity.Payable, error) {
	payable, err := s.payableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payable == nil {
		return nil, apperror.NewNotFoundError("Payable")
	}
	return payable, nil
}

// MarkPaidInput represents the mark paid input
type MarkPaidInput struct {
	PaidAt        *time.Time
	RecordExpense bool
	OperatorID    *uuid.UUID
}

// MarkPaidOutput reports whether the payment reached the cashier ledger.
type MarkPaidOutput struct {
	Payable         *entity.Payable `json:"payable"`
	Expense         *entity.Expense `json:"expense,omitempty"`
	ExpenseRecorded bool            `json:"expense_recorded"`
	Message         string          `json:"message,omitempty"`
}

// MarkPaid settles a pending bill. When asked, the payment is also booked
// as an expense of the open session; with no session open the bill is
// still settled and no expense is created.
//
// The expense and the settled bill are written in one transaction, so a
// failed call leaves the bill pending with no expense booked.
func (s *PayableService) MarkPaid(ctx context.Context, id uuid.UUID, input *MarkPaidInput) (*MarkPaidOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payable, err := s.GetPayable(ctx, id)
	if err != nil {
		return nil, err
	}
	if payable.IsPaid() {
		return nil, apperror.NewConflictError("Payable is already paid")
	}

	paidAt := s.now()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}
	settled := *payable
	settled.Status = enum.PayableStatusPaid
	settled.PaidAt = &paidAt

	out := &MarkPaidOutput{Payable: &settled}

	if input.RecordExpense {
		expense, err := s.cashier.RecordExpense(ctx, &RecordExpenseInput{
			Description: "Pagamento: " + payable.Description,
			Amount:      payable.Amount,
			Category:    entity.PayableExpenseCategory,
			PayableID:   &payable.ID,
			OperatorID:  input.OperatorID,
			Settles:     &settled,
		})
		switch {
		case errors.Is(err, apperror.ErrNoOpenSession):
			out.Message = "No cashier session is open; the payment was not recorded as an expense"
		case err != nil:
			return nil, err
		default:
			out.Expense = expense
			out.ExpenseRecorded = true
			return out, nil
		}
	}

	if err := s.payableRepo.Update(ctx, &settled); err != nil {
		return nil, err
	}
	return out, nil
}

// DeletePayable removes a bill at any status
func (s *PayableService) DeletePayable(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPayable(ctx, id); err != nil {
		return err
	}
	return s.payableRepo.Delete(ctx, id)
}
