package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/domain/ledger"
	"github.com/sertaogourmet/pos-api/pkg/apperror"
	"github.com/sertaogourmet/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	sessions *fakeSessionRepo
	sales    *fakeSaleRepo
	expenses *fakeExpenseRepo
	menu     *fakeMenuRepo
	tables   *fakeTableRepo
	cashier  *CashierService
	tableSvc *TableService
}

func newFixture() *fixture {
	f := &fixture{
		sessions: &fakeSessionRepo{},
		sales:    &fakeSaleRepo{},
		expenses: &fakeExpenseRepo{},
		menu:     newFakeMenuRepo(),
		tables:   newFakeTableRepo(12),
	}
	f.sales.tables = f.tables
	f.cashier = NewCashierService(f.sessions, f.sales, f.expenses, f.menu, ledger.DefaultThresholds())
	f.tableSvc = NewTableService(f.tables, f.menu, f.cashier)
	return f
}

func (f *fixture) item(name, price string, stock int) *entity.MenuItem {
	item := &entity.MenuItem{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Category:    "Pratos Principais",
		IsAvailable: true,
		Stock:       stock,
	}
	_ = f.menu.Create(context.Background(), item)
	return item
}

func (f *fixture) open(t *testing.T, balance string) *entity.CashierSession {
	t.Helper()
	s, err := f.cashier.Open(context.Background(), &OpenSessionInput{OpeningBalance: decimal.RequireFromString(balance)})
	require.NoError(t, err)
	return s
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func lines(item *entity.MenuItem, qty int) entity.OrderLines {
	return entity.OrderLines{entity.NewOrderLine(item, qty)}
}

func TestCashierExactClose(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dish := f.item("Moqueca", "50.00", 10)
	f.open(t, "100.00")

	_, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(dish, 1), PaymentMethod: enum.PaymentMethodCash, TableID: 3})
	require.NoError(t, err)
	_, err = f.cashier.RecordExpense(ctx, &RecordExpenseInput{Description: "Gelo", Amount: dec("20.00")})
	require.NoError(t, err)

	v, err := f.cashier.Close(ctx, &CloseSessionInput{ActualCash: dec("130.00")})
	require.NoError(t, err)

	assert.Equal(t, enum.SessionStatusClosed, v.Session.Status)
	assert.NotNil(t, v.Session.ClosedAt)
	assert.True(t, v.Statement.ExpectedCashInDrawer.Equal(dec("130")))
	require.NotNil(t, v.Statement.Variance)
	assert.True(t, v.Statement.Variance.IsZero())
	assert.Equal(t, ledger.VarianceNormal, v.Statement.VarianceClass)

	current, err := f.cashier.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCashierPixStaysOutOfExpectedCash(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dish := f.item("Moqueca", "50.00", 10)
	combo := f.item("Baião", "80.00", 10)
	f.open(t, "100.00")

	_, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(dish, 1), PaymentMethod: enum.PaymentMethodCash, TableID: 1})
	require.NoError(t, err)
	_, err = f.cashier.RecordExpense(ctx, &RecordExpenseInput{Description: "Gelo", Amount: dec("20")})
	require.NoError(t, err)

	before, err := f.cashier.CurrentView(ctx)
	require.NoError(t, err)

	_, err = f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(combo, 1), PaymentMethod: enum.PaymentMethodPIX, TableID: 2})
	require.NoError(t, err)

	after, err := f.cashier.CurrentView(ctx)
	require.NoError(t, err)

	assert.True(t, before.Statement.ExpectedCashInDrawer.Equal(after.Statement.ExpectedCashInDrawer))
	assert.True(t, after.Statement.DigitalSales.Equal(dec("80")))
	assert.True(t, after.Statement.TotalRevenue.Equal(dec("130")))
	assert.True(t, after.Statement.ExpectedCashInDrawer.Equal(dec("130")))
}

func TestCashierRejectsWithoutOpenSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dish := f.item("Moqueca", "50.00", 4)

	_, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(dish, 2), PaymentMethod: enum.PaymentMethodCash})
	assert.True(t, errors.Is(err, apperror.ErrNoOpenSession))
	assert.Equal(t, 0, f.sales.count())
	assert.Equal(t, 4, f.menu.stock(dish.ID))

	_, err = f.cashier.RecordExpense(ctx, &RecordExpenseInput{Description: "Gás", Amount: dec("10")})
	assert.True(t, errors.Is(err, apperror.ErrNoOpenSession))

	_, err = f.cashier.Close(ctx, &CloseSessionInput{ActualCash: dec("0")})
	assert.True(t, errors.Is(err, apperror.ErrNoOpenSession))
}

func TestCashierRefusesSecondOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.open(t, "50")

	_, err := f.cashier.Open(ctx, &OpenSessionInput{OpeningBalance: dec("10")})
	assert.True(t, errors.Is(err, apperror.ErrDuplicateOpen))

	current, err := f.cashier.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
}

func TestCashierConcurrentOpenLeavesOneSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	var wg sync.WaitGroup
	var mu sync.Mutex
	opened, refused := 0, 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.cashier.Open(ctx, &OpenSessionInput{OpeningBalance: dec("10")})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				opened++
			} else if errors.Is(err, apperror.ErrDuplicateOpen) {
				refused++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, opened)
	assert.Equal(t, 19, refused)
	open, _ := f.sessions.ListByStatus(ctx, enum.SessionStatusOpen)
	assert.Len(t, open, 1)
}

func TestCashierDetectsTwoOpenSessions(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_ = f.sessions.Create(ctx, &entity.CashierSession{Status: enum.SessionStatusOpen, OpenedAt: time.Now()})
	_ = f.sessions.Create(ctx, &entity.CashierSession{Status: enum.SessionStatusOpen, OpenedAt: time.Now()})

	_, err := f.cashier.Current(ctx)
	assert.True(t, errors.Is(err, apperror.ErrDataIntegrity))

	_, err = f.cashier.Open(ctx, &OpenSessionInput{OpeningBalance: dec("1")})
	assert.True(t, errors.Is(err, apperror.ErrDataIntegrity))
}

func TestCashierOpenRejectsNegativeFloat(t *testing.T) {
	f := newFixture()
	_, err := f.cashier.Open(context.Background(), &OpenSessionInput{OpeningBalance: dec("-1")})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestCashierRejectsSubCentAmounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.cashier.Open(ctx, &OpenSessionInput{OpeningBalance: dec("100.005")})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
	assert.Equal(t, "opening_balance", apperror.GetAppError(err).Errors[0].Field)

	f.open(t, "100.000")

	_, err = f.cashier.RecordExpense(ctx, &RecordExpenseInput{Description: "Troco", Amount: dec("0.001")})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = f.cashier.RecordManualEntry(ctx, &ManualEntryInput{
		Kind: enum.ManualEntryInflow, Description: "Gorjeta", Amount: dec("10.555"), PaymentMethod: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, "amount", apperror.GetAppError(err).Errors[0].Field)

	_, err = f.cashier.RecordSale(ctx, &RecordSaleInput{
		Items:         entity.OrderLines{{MenuItemID: uuid.New(), Name: "Cuscuz", Price: dec("7.499"), Quantity: 1}},
		PaymentMethod: enum.PaymentMethodCash,
		Origin:        enum.SaleOriginQuickSale,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = f.cashier.Close(ctx, &CloseSessionInput{ActualCash: dec("99.999")})
	require.Error(t, err)
	assert.Equal(t, "actual_cash", apperror.GetAppError(err).Errors[0].Field)

	assert.Equal(t, 0, f.sales.count())
	all, _ := f.expenses.ListAll(ctx)
	assert.Empty(t, all)
}

func TestRecordSaleClampsStockAndKeepsFullTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	x := f.item("X", "12.50", 3)
	f.open(t, "0")

	record, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(x, 5), PaymentMethod: enum.PaymentMethodCard})
	require.NoError(t, err)

	assert.True(t, record.Total.Equal(dec("62.50")))
	assert.Equal(t, 0, f.menu.stock(x.ID))
}

func TestRecordSaleTotalIgnoresLaterPriceChanges(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	x := f.item("Cartola", "24.00", 10)
	f.open(t, "0")

	record, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(x, 2), PaymentMethod: enum.PaymentMethodCash})
	require.NoError(t, err)

	x.Price = dec("99")
	require.NoError(t, f.menu.Update(ctx, x))

	stored, err := f.cashier.GetSale(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(dec("48")))
	assert.True(t, stored.Total.Equal(stored.Items.Total()))
}

func TestRecordSaleValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	x := f.item("X", "1", 1)
	f.open(t, "0")

	_, err := f.cashier.RecordSale(ctx, &RecordSaleInput{PaymentMethod: enum.PaymentMethodCash})
	assert.Error(t, err)

	_, err = f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(x, 1), PaymentMethod: enum.PaymentMethod(9)})
	assert.Error(t, err)
	assert.Equal(t, 0, f.sales.count())
}

func TestManualEntries(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.open(t, "100")

	in, err := f.cashier.RecordManualEntry(ctx, &ManualEntryInput{
		Kind: enum.ManualEntryInflow, Description: "Reforço de troco", Amount: dec("40"), PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.NotNil(t, in.Sale)
	assert.Empty(t, in.Sale.Items)
	assert.Equal(t, enum.SaleOriginManual, in.Sale.Origin)
	assert.Equal(t, "Reforço de troco", in.Sale.Label())
	assert.True(t, in.Sale.Total.Equal(dec("40")))

	out, err := f.cashier.RecordManualEntry(ctx, &ManualEntryInput{
		Kind: enum.ManualEntryOutflow, Description: "Sangria", Amount: dec("30"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Expense)

	v, err := f.cashier.CurrentView(ctx)
	require.NoError(t, err)
	assert.True(t, v.Statement.ExpectedCashInDrawer.Equal(dec("110")))
}

func TestDeleteOperation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	x := f.item("X", "10", 5)
	f.open(t, "0")

	record, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(x, 2), PaymentMethod: enum.PaymentMethodCash})
	require.NoError(t, err)
	expense, err := f.cashier.RecordExpense(ctx, &RecordExpenseInput{Description: "Gelo", Amount: dec("5")})
	require.NoError(t, err)

	require.NoError(t, f.cashier.DeleteOperation(ctx, OperationSale, record.ID))
	require.NoError(t, f.cashier.DeleteOperation(ctx, OperationExpense, expense.ID))

	// Corrections do not give stock back.
	assert.Equal(t, 3, f.menu.stock(x.ID))

	err = f.cashier.DeleteOperation(ctx, OperationSale, record.ID)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	err = f.cashier.DeleteOperation(ctx, "refund", uuid.New())
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSessionDetailRecomputesAfterClose(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	x := f.item("X", "35", 5)
	f.open(t, "200")

	_, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(x, 2), PaymentMethod: enum.PaymentMethodCash})
	require.NoError(t, err)
	_, err = f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(x, 1), PaymentMethod: enum.PaymentMethodPIX})
	require.NoError(t, err)
	_, err = f.cashier.RecordExpense(ctx, &RecordExpenseInput{Description: "Feira", Amount: dec("45")})
	require.NoError(t, err)

	closed, err := f.cashier.Close(ctx, &CloseSessionInput{ActualCash: dec("220")})
	require.NoError(t, err)

	// Later activity in another session must not leak in.
	f.open(t, "10")
	_, err = f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(x, 1), PaymentMethod: enum.PaymentMethodCash})
	require.NoError(t, err)

	detail, err := f.cashier.SessionDetail(ctx, closed.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, closed.Statement.ExpectedCashInDrawer.String(), detail.Statement.ExpectedCashInDrawer.String())
	assert.Equal(t, closed.Statement.Variance.String(), detail.Statement.Variance.String())
	assert.True(t, detail.Statement.Variance.Equal(dec("-5")))
	assert.Equal(t, ledger.VarianceWarning, detail.Statement.VarianceClass)

	_, err = f.cashier.SessionDetail(ctx, uuid.New())
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.open(t, "1")
	_, err := f.cashier.Close(ctx, &CloseSessionInput{ActualCash: dec("1")})
	require.NoError(t, err)
	second := f.open(t, "2")

	page, err := f.cashier.History(ctx, &pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, second.ID, page.Items[0].ID)
	assert.EqualValues(t, 2, page.Pagination.Total)
}

type fakeSender struct {
	sent chan string
}

func (s *fakeSender) SendText(to []string, subject, body string) error {
	s.sent <- subject + "\n" + body
	return nil
}

func TestCloseSendsReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sender := &fakeSender{sent: make(chan string, 1)}
	f.cashier.WithCloseReport(sender, []string{"dono@sertao.com"}, "Sertão Gourmet")
	f.open(t, "100")

	_, err := f.cashier.Close(ctx, &CloseSessionInput{ActualCash: dec("90")})
	require.NoError(t, err)

	select {
	case msg := <-sender.sent:
		assert.Contains(t, msg, "Fechamento de caixa")
		assert.Contains(t, msg, "Esperado em caixa: 100.00")
		assert.Contains(t, msg, "-10.00")
	case <-time.After(2 * time.Second):
		t.Fatal("close report was not sent")
	}
}
