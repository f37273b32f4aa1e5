package service

import (
	"context"
	"io"
	"time"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/ledger"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/export"
)

const defaultTopProducts = 10

// ReportService exposes the read-only ledger views over full history
type ReportService struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	payableRepo repository.PayableRepository
	loc         *time.Location
	now         func() time.Time
}

// NewReportService creates a new report service. Months are cut in loc.
func NewReportService(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	payableRepo repository.PayableRepository,
	loc *time.Location,
) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		payableRepo: payableRepo,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *ReportService) history(ctx context.Context) ([]entity.DailyRecord, []entity.Expense, error) {
	records, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return records, expenses, nil
}

// Summary returns all-time revenue, expenses and profit
func (s *ReportService) Summary(ctx context.Context) (*ledger.Summary, error) {
	records, expenses, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	summary := ledger.Summarize(records, expenses)
	return &summary, nil
}

// Feed returns the signed transactions feed, newest first, limited to
// [from, to). Zero bounds are open.
func (s *ReportService) Feed(ctx context.Context, from, to time.Time) ([]ledger.Entry, error) {
	records, expenses, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Between(ledger.Feed(records, expenses), from, to), nil
}

// Monthly returns the profit and loss rollup, newest month first
func (s *ReportService) Monthly(ctx context.Context) ([]ledger.MonthlyTotals, error) {
	records, expenses, err := s.history(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.MonthlyRollup(records, expenses, s.loc), nil
}

// TopProducts ranks menu items by units sold
func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]ledger.ProductSales, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	records, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.TopProducts(records, limit), nil
}

// PayablesAging buckets pending bills by days past due
func (s *ReportService) PayablesAging(ctx context.Context) (*ledger.Aging, error) {
	payables, err := s.payableRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	aging := ledger.PayablesAging(payables, s.now().In(s.loc))
	return &aging, nil
}

// ExportXLSX writes the feed and the monthly rollup as a workbook.
func (s *ReportService) ExportXLSX(ctx context.Context, w io.Writer) error {
	records, expenses, err := s.history(ctx)
	if err != nil {
		return err
	}

	feed := ledger.Feed(records, expenses)
	feedRows := make([][]interface{}, 0, len(feed))
	for _, e := range feed {
		kind := "Venda"
		detail := e.PaymentMethod
		if e.Kind == ledger.EntryExpense {
			kind = "Despesa"
			detail = e.Category
		}
		feedRows = append(feedRows, []interface{}{
			e.Timestamp.In(s.loc).Format("02/01/2006 15:04"),
			kind,
			e.Description,
			detail,
			e.Amount.InexactFloat64(),
		})
	}

	monthly := ledger.MonthlyRollup(records, expenses, s.loc)
	monthRows := make([][]interface{}, 0, len(monthly))
	for _, m := range monthly {
		monthRows = append(monthRows, []interface{}{
			m.Period,
			m.Revenue.InexactFloat64(),
			m.Expenses.InexactFloat64(),
			m.Balance.InexactFloat64(),
			m.SalesCount,
			m.ExpenseCount,
		})
	}

	return export.WriteXLSX(w,
		export.Sheet{
			Name:    "Transações",
			Headers: []string{"Data", "Tipo", "Descrição", "Forma/Categoria", "Valor"},
			Rows:    feedRows,
			Widths:  []float64{18, 10, 32, 18, 12},
		},
		export.Sheet{
			Name:    "Mensal",
			Headers: []string{"Mês", "Receita", "Despesas", "Saldo", "Vendas", "Despesas (qtd)"},
			Rows:    monthRows,
			Widths:  []float64{10, 12, 12, 12, 10, 14},
		},
	)
}
