package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func seededReports(t *testing.T) (*fixture, *ReportService, *fakePayableRepo) {
	t.Helper()
	ctx := context.Background()
	f := newFixture()
	payables := &fakePayableRepo{}
	reports := NewReportService(f.sales, f.expenses, payables, time.UTC)

	baiao := f.item("Baião de Dois", "58.00", 100)
	suco := f.item("Suco de Cajá", "12.00", 100)
	f.open(t, "100")

	_, err := f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(baiao, 2), PaymentMethod: enum.PaymentMethodCash, TableID: 4})
	require.NoError(t, err)
	_, err = f.cashier.RecordSale(ctx, &RecordSaleInput{Items: lines(suco, 5), PaymentMethod: enum.PaymentMethodPIX})
	require.NoError(t, err)
	_, err = f.cashier.RecordExpense(ctx, &RecordExpenseInput{Description: "Gelo", Amount: dec("16")})
	require.NoError(t, err)
	return f, reports, payables
}

func TestReportSummary(t *testing.T) {
	_, reports, _ := seededReports(t)

	s, err := reports.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, s.TotalRevenue.Equal(dec("176")))
	assert.True(t, s.TotalExpenses.Equal(dec("16")))
	assert.True(t, s.Profit.Equal(dec("160")))
	assert.Equal(t, 2, s.SalesCount)
	assert.Equal(t, 1, s.ExpenseCount)
}

func TestReportFeed(t *testing.T) {
	_, reports, _ := seededReports(t)

	feed, err := reports.Feed(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, feed, 3)

	var sawExpense bool
	for i, e := range feed {
		if i > 0 {
			assert.False(t, e.Timestamp.After(feed[i-1].Timestamp))
		}
		if e.Kind == ledger.EntryExpense {
			sawExpense = true
			assert.True(t, e.Amount.IsNegative())
		}
	}
	assert.True(t, sawExpense)

	empty, err := reports.Feed(context.Background(), time.Now().Add(time.Hour), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReportTopProducts(t *testing.T) {
	_, reports, _ := seededReports(t)

	top, err := reports.TopProducts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Suco de Cajá", top[0].Name)
	assert.Equal(t, 5, top[0].Quantity)

	top, err = reports.TopProducts(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestReportMonthlyAndAging(t *testing.T) {
	ctx := context.Background()
	_, reports, payables := seededReports(t)

	monthly, err := reports.Monthly(ctx)
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.True(t, monthly[0].Balance.Equal(dec("160")))

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	reports.now = func() time.Time { return now }
	_ = payables.Create(ctx, &entity.Payable{Description: "Luz", Amount: dec("100"), DueDate: now.AddDate(0, 0, -10)})
	_ = payables.Create(ctx, &entity.Payable{Description: "Aluguel", Amount: dec("900"), DueDate: now.AddDate(0, 0, 3)})

	aging, err := reports.PayablesAging(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, aging.PendingCount)
	assert.Equal(t, "current", aging.Buckets[0].Label)
	assert.True(t, aging.Buckets[0].Amount.Equal(dec("900")))
	assert.Equal(t, 1, aging.Buckets[1].Count)
}

func TestReportExportXLSX(t *testing.T) {
	_, reports, _ := seededReports(t)

	var buf bytes.Buffer
	require.NoError(t, reports.ExportXLSX(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Transações", "Mensal"}, f.GetSheetList())
	rows, err := f.GetRows("Transações")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
