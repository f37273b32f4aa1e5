package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/domain/ledger"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/apperror"
	"github.com/sertaogourmet/pos-api/pkg/email"
	"github.com/sertaogourmet/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// CashierService runs the cash drawer: it opens and closes sessions and
// tags every sale and expense with the session that was open when it
// happened. The open session is always looked up from the store, never
// cached.
type CashierService struct {
	mu          sync.Mutex
	sessionRepo repository.CashierSessionRepository
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	menuRepo    repository.MenuItemRepository
	thresholds  ledger.Thresholds
	now         func() time.Time

	mailer    email.Sender
	reportTo  []string
	storeName string
}

// NewCashierService creates a new cashier service
func NewCashierService(
	sessionRepo repository.CashierSessionRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	menuRepo repository.MenuItemRepository,
	thresholds ledger.Thresholds,
) *CashierService {
	return &CashierService{
		sessionRepo: sessionRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		menuRepo:    menuRepo,
		thresholds:  thresholds,
		now:         time.Now,
	}
}

// WithCloseReport mails a plain-text summary to the given recipients
// whenever a session is closed.
func (s *CashierService) WithCloseReport(mailer email.Sender, to []string, storeName string) *CashierService {
	s.mailer = mailer
	s.reportTo = to
	s.storeName = storeName
	return s
}

// SessionView pairs a session with its derived statement.
type SessionView struct {
	Session   *entity.CashierSession `json:"session"`
	Statement ledger.Statement       `json:"statement"`
}

// Current returns the open session, or nil when the drawer is closed.
func (s *CashierService) Current(ctx context.Context) (*entity.CashierSession, error) {
	sessions, err := s.sessionRepo.ListByStatus(ctx, enum.SessionStatusOpen)
	if err != nil {
		return nil, err
	}

	switch len(sessions) {
	case 0:
		return nil, nil
	case 1:
		return &sessions[0], nil
	default:
		ids := make([]string, len(sessions))
		for i := range sessions {
			ids[i] = sessions[i].ID.String()
		}
		log.Printf("cashier: %d open sessions found: %s", len(sessions), strings.Join(ids, ", "))
		return nil, apperror.NewDataIntegrityError(ids)
	}
}

// CurrentView returns the open session with its live statement, or nil.
func (s *CashierService) CurrentView(ctx context.Context) (*SessionView, error) {
	session, err := s.Current(ctx)
	if err != nil || session == nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *CashierService) requireOpen(ctx context.Context) (*entity.CashierSession, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.ErrNoOpenSession
	}
	return session, nil
}

// Statement folds the records and expenses tagged with session.
func (s *CashierService) Statement(ctx context.Context, session *entity.CashierSession) (ledger.Statement, error) {
	records, err := s.saleRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return ledger.Statement{}, err
	}
	expenses, err := s.expenseRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return ledger.Statement{}, err
	}
	return ledger.SessionStatement(session, records, expenses, s.thresholds), nil
}

func (s *CashierService) view(ctx context.Context, session *entity.CashierSession) (*SessionView, error) {
	st, err := s.Statement(ctx, session)
	if err != nil {
		return nil, err
	}
	return &SessionView{Session: session, Statement: st}, nil
}

// OpenSessionInput represents the open session input
type OpenSessionInput struct {
	OpeningBalance decimal.Decimal
	OperatorID     *uuid.UUID
}

// Open starts a new session. It refuses while another one is open.
func (s *CashierService) Open(ctx context.Context, input *OpenSessionInput) (*entity.CashierSession, error) {
	if input.OpeningBalance.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "opening_balance", Message: "must not be negative"},
		})
	}
	if !isCents(input.OpeningBalance) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "opening_balance", Message: centsMessage},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, apperror.ErrDuplicateOpen
	}

	session := &entity.CashierSession{
		OpenedAt:       s.now(),
		OpeningBalance: input.OpeningBalance,
		Status:         enum.SessionStatusOpen,
		OpenedBy:       input.OperatorID,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("cashier: session %s opened with %s", session.ID, session.OpeningBalance.StringFixed(2))
	return session, nil
}

// CloseSessionInput represents the close session input
type CloseSessionInput struct {
	ActualCash decimal.Decimal
	OperatorID *uuid.UUID
}

// Close records the physical count and closes the open session. Expected
// cash and variance are returned but not stored.
func (s *CashierService) Close(ctx context.Context, input *CloseSessionInput) (*SessionView, error) {
	if input.ActualCash.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "actual_cash", Message: "must not be negative"},
		})
	}
	if !isCents(input.ActualCash) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "actual_cash", Message: centsMessage},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.requireOpen(ctx)
	if err != nil {
		return nil, err
	}

	closedAt := s.now()
	counted := input.ActualCash
	closed := *session
	closed.Status = enum.SessionStatusClosed
	closed.ClosedAt = &closedAt
	closed.ClosingBalance = &counted
	closed.ClosedBy = input.OperatorID

	if err := s.sessionRepo.Update(ctx, &closed); err != nil {
		return nil, err
	}

	v, err := s.view(ctx, &closed)
	if err != nil {
		return nil, err
	}

	log.Printf("cashier: session %s closed, expected %s counted %s (%s)",
		closed.ID, v.Statement.ExpectedCashInDrawer.StringFixed(2), counted.StringFixed(2), v.Statement.VarianceClass)

	if s.mailer != nil && len(s.reportTo) > 0 {
		go s.sendCloseReport(*v)
	}
	return v, nil
}

func (s *CashierService) sendCloseReport(v SessionView) {
	st := v.Statement
	var b strings.Builder
	fmt.Fprintf(&b, "%s - Fechamento de caixa\n\n", s.storeName)
	fmt.Fprintf(&b, "Abertura:          %s\n", v.Session.OpenedAt.Format("02/01/2006 15:04"))
	if v.Session.ClosedAt != nil {
		fmt.Fprintf(&b, "Fechamento:        %s\n", v.Session.ClosedAt.Format("02/01/2006 15:04"))
	}
	fmt.Fprintf(&b, "Fundo de troco:    %s\n", st.OpeningBalance.StringFixed(2))
	fmt.Fprintf(&b, "Vendas dinheiro:   %s\n", st.CashSales.StringFixed(2))
	fmt.Fprintf(&b, "Vendas digitais:   %s\n", st.DigitalSales.StringFixed(2))
	fmt.Fprintf(&b, "Despesas:          %s\n", st.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Esperado em caixa: %s\n", st.ExpectedCashInDrawer.StringFixed(2))
	if st.ClosingBalance != nil && st.Variance != nil {
		fmt.Fprintf(&b, "Contado:           %s\n", st.ClosingBalance.StringFixed(2))
		fmt.Fprintf(&b, "Diferença:         %s (%s)\n", st.Variance.StringFixed(2), st.VarianceClass)
	}

	subject := fmt.Sprintf("Fechamento de caixa %s", v.Session.OpenedAt.Format("02/01/2006"))
	if err := s.mailer.SendText(s.reportTo, subject, b.String()); err != nil {
		log.Printf("cashier: close report for session %s not sent: %v", v.Session.ID, err)
	}
}

// RecordSaleInput represents a finalized order. Total is always derived
// from Items.
type RecordSaleInput struct {
	Items         entity.OrderLines
	PaymentMethod enum.PaymentMethod
	TableID       int
	CustomerName  *string
	OpenedAt      time.Time
	Origin        enum.SaleOrigin
	Note          string
	Total         *decimal.Decimal // manual entries only
	OperatorID    *uuid.UUID
	// FreeTable, when set, is saved in the same transaction as the record.
	FreeTable     *entity.Table
}

// RecordSale persists a DailyRecord against the open session, then
// decrements stock for each line. A stock failure never undoes the sale.
func (s *CashierService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.DailyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordSale(ctx, input)
}

func (s *CashierService) recordSale(ctx context.Context, input *RecordSaleInput) (*entity.DailyRecord, error) {
	if err := validateSale(input); err != nil {
		return nil, err
	}

	session, err := s.requireOpen(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	openedAt := input.OpenedAt
	if openedAt.IsZero() {
		openedAt = now
	}

	total := input.Items.Total()
	if input.Origin == enum.SaleOriginManual && input.Total != nil {
		total = *input.Total
	}

	items := input.Items.Clone()
	if items == nil {
		items = entity.OrderLines{}
	}

	record := &entity.DailyRecord{
		SessionID:     session.ID,
		TableID:       input.TableID,
		Origin:        input.Origin,
		CustomerName:  normalizeName(input.CustomerName),
		Note:          input.Note,
		OpenedAt:      openedAt,
		ClosedAt:      now,
		Items:         items,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		OperatorID:    input.OperatorID,
	}
	if input.FreeTable != nil {
		err = s.saleRepo.CreateWithTableReset(ctx, record, input.FreeTable)
	} else {
		err = s.saleRepo.Create(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	s.decrementStock(ctx, record)
	return record, nil
}

func (s *CashierService) decrementStock(ctx context.Context, record *entity.DailyRecord) {
	for _, line := range record.Items {
		underflow, err := s.menuRepo.AdjustStock(ctx, line.MenuItemID, -line.Quantity)
		if err != nil {
			log.Printf("cashier: stock for %s not decremented after sale %s: %v", line.MenuItemID, record.ID, err)
			continue
		}
		if underflow {
			log.Printf("cashier: stock for %q clamped at 0 after sale %s", line.Name, record.ID)
		}
	}
}

func validateSale(input *RecordSaleInput) error {
	var errs []apperror.FieldError
	if !input.PaymentMethod.Valid() {
		errs = append(errs, apperror.FieldError{Field: "payment_method", Message: "unknown payment method"})
	}
	if input.TableID < 0 {
		errs = append(errs, apperror.FieldError{Field: "table_id", Message: "must not be negative"})
	}
	if input.Origin != enum.SaleOriginManual && len(input.Items) == 0 {
		errs = append(errs, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for _, l := range input.Items {
		if l.Quantity < 1 {
			errs = append(errs, apperror.FieldError{Field: "items", Message: fmt.Sprintf("quantity of %q must be at least 1", l.Name)})
		}
		if l.Price.IsNegative() {
			errs = append(errs, apperror.FieldError{Field: "items", Message: fmt.Sprintf("price of %q must not be negative", l.Name)})
		}
		if !isCents(l.Price) {
			errs = append(errs, apperror.FieldError{Field: "items", Message: fmt.Sprintf("price of %q %s", l.Name, centsMessage)})
		}
	}
	if input.Total != nil && !isCents(*input.Total) {
		errs = append(errs, apperror.FieldError{Field: "amount", Message: centsMessage})
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}
	return nil
}

// RecordExpenseInput represents the record expense input
type RecordExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	PayableID   *uuid.UUID
	OperatorID  *uuid.UUID
	// Settles, when set, is saved with the expense linked in one transaction.
	Settles     *entity.Payable
}

// RecordExpense persists an Expense against the open session.
func (s *CashierService) RecordExpense(ctx context.Context, input *RecordExpenseInput) (*entity.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordExpense(ctx, input)
}

func (s *CashierService) recordExpense(ctx context.Context, input *RecordExpenseInput) (*entity.Expense, error) {
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
	if len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	session, err := s.requireOpen(ctx)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = entity.DefaultExpenseCategory
	}

	expense := &entity.Expense{
		SessionID:   session.ID,
		Description: description,
		Amount:      input.Amount,
		Category:    category,
		Timestamp:   s.now(),
		PayableID:   input.PayableID,
		OperatorID:  input.OperatorID,
	}
	if input.Settles != nil {
		err = s.expenseRepo.CreateForPayable(ctx, expense, input.Settles)
	} else {
		err = s.expenseRepo.Create(ctx, expense)
	}
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ManualEntryInput represents an operator-typed inflow or outflow.
type ManualEntryInput struct {
	Kind          enum.ManualEntryKind
	Description   string
	Amount        decimal.Decimal
	PaymentMethod enum.PaymentMethod
	OperatorID    *uuid.UUID
}

// ManualEntryResult holds whichever ledger entry the manual entry became.
type ManualEntryResult struct {
	Kind    enum.ManualEntryKind `json:"kind"`
	Sale    *entity.DailyRecord  `json:"sale,omitempty"`
	Expense *entity.Expense      `json:"expense,omitempty"`
}

// RecordManualEntry books an inflow as an item-less sale record and an
// outflow as an expense.
func (s *CashierService) RecordManualEntry(ctx context.Context, input *ManualEntryInput) (*ManualEntryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch input.Kind {
	case enum.ManualEntryInflow:
		description := strings.TrimSpace(input.Description)
		if description == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "description", Message: "is required"}})
		}
		if !input.Amount.IsPositive() {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "amount", Message: "must be greater than zero"}})
		}
		amount := input.Amount
		record, err := s.recordSale(ctx, &RecordSaleInput{
			PaymentMethod: input.PaymentMethod,
			TableID:       entity.QuickSaleTableID,
			Origin:        enum.SaleOriginManual,
			Note:          description,
			Total:         &amount,
			OperatorID:    input.OperatorID,
		})
		if err != nil {
			return nil, err
		}
		return &ManualEntryResult{Kind: input.Kind, Sale: record}, nil

	case enum.ManualEntryOutflow:
		expense, err := s.recordExpense(ctx, &RecordExpenseInput{
			Description: input.Description,
			Amount:      input.Amount,
			Category:    entity.DefaultExpenseCategory,
			OperatorID:  input.OperatorID,
		})
		if err != nil {
			return nil, err
		}
		return &ManualEntryResult{Kind: input.Kind, Expense: expense}, nil

	default:
		return nil, apperror.NewBadRequestError("Unknown manual entry kind")
	}
}

// Operation kinds accepted by DeleteOperation.
const (
	OperationSale    = "sale"
	OperationExpense = "expense"
)

// DeleteOperation removes a sale record or expense as a correction. Stock
// is not restored and no trace of the deletion is kept.
func (s *CashierService) DeleteOperation(ctx context.Context, kind string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case OperationSale:
		record, err := s.saleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if record == nil {
			return apperror.NewNotFoundError("Sale")
		}
		if err := s.saleRepo.Delete(ctx, id); err != nil {
			return err
		}
		log.Printf("cashier: sale %s (%s) deleted", id, record.Total.StringFixed(2))
		return nil

	case OperationExpense:
		expense, err := s.expenseRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if expense == nil {
			return apperror.NewNotFoundError("Expense")
		}
		if err := s.expenseRepo.Delete(ctx, id); err != nil {
			return err
		}
		log.Printf("cashier: expense %s (%s) deleted", id, expense.Amount.StringFixed(2))
		return nil

	default:
		return apperror.NewBadRequestError("Operation kind must be sale or expense")
	}
}

// History lists sessions, newest first.
func (s *CashierService) History(ctx context.Context, params *pagination.Params) (*pagination.Result[entity.CashierSession], error) {
	sessions, total, err := s.sessionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(sessions, params, total), nil
}

// SessionDetail recomputes the statement of any session from history.
func (s *CashierService) SessionDetail(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Cashier session")
	}
	return s.view(ctx, session)
}

// GetSale retrieves a sale record by ID
func (s *CashierService) GetSale(ctx context.Context, id uuid.UUID) (*entity.DailyRecord, error) {
	record, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return record, nil
}

const centsMessage = "must have at most 2 decimal places"

// isCents reports whether d fits a decimal(12,2) column without rounding.
// Trailing zeros are fine: 1.500 passes.
func isCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

func normalizeName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
