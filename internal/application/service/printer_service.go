package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/pkg/printer"
	"github.com/sertaogourmet/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	cashier     *CashierService
	settings    *SettingsService
	storeName   string
	currency    string
	charWidth   int
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	cashier *CashierService,
	settings *SettingsService,
	storeName, currency string,
	charWidth int,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		cashier:     cashier,
		settings:    settings,
		storeName:   storeName,
		currency:    currency,
		charWidth:   charWidth,
		printerType: p.Type(),
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(ctx),
		Type:       s.printerType,
	}
}

// SaleReceipt composes the receipt of a sale without printing it.
func (s *PrinterService) SaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	record, err := s.cashier.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	footer, err := s.settings.GetFooter(ctx)
	if err != nil {
		return nil, err
	}

	storeName := footer.BrandName
	if storeName == "" {
		storeName = s.storeName
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: storeName,
			Location:  footer.Location,
			Hours:     footer.Hours,
		},
		Number:        utils.ShortRef("VND", record.ID),
		Date:          record.ClosedAt,
		Label:         record.Label(),
		PaymentMethod: record.PaymentMethod.String(),
		Total:         record.Total,
		Footer:        footer.Copyright,
	}
	if record.CustomerName != nil {
		receipt.Customer = *record.CustomerName
	}
	for _, l := range record.Items {
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Total:     l.Subtotal(),
		})
	}
	return receipt, nil
}

// PrintSaleReceipt prints a sale receipt. The receipt is returned even
// when the printer fails.
func (s *PrinterService) PrintSaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.SaleReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(ctx, s.FormatReceipt(receipt)); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// SessionReport composes the close-out report of a session.
func (s *PrinterService) SessionReport(ctx context.Context, sessionID uuid.UUID) (*entity.SessionReport, error) {
	v, err := s.cashier.SessionDetail(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	st := v.Statement
	return &entity.SessionReport{
		StoreName:      s.storeName,
		Number:         utils.ShortRef("CX", v.Session.ID),
		OpenedAt:       v.Session.OpenedAt,
		ClosedAt:       v.Session.ClosedAt,
		OpeningBalance: st.OpeningBalance,
		CashSales:      st.CashSales,
		PixSales:       st.PixSales,
		CardSales:      st.CardSales,
		TotalExpenses:  st.TotalExpenses,
		Expected:       st.ExpectedCashInDrawer,
		Counted:        st.ClosingBalance,
		Variance:       st.Variance,
		VarianceClass:  string(st.VarianceClass),
		SalesCount:     st.SalesCount,
		ExpenseCount:   st.ExpenseCount,
	}, nil
}

// PrintSessionReport prints a session close-out report.
func (s *PrinterService) PrintSessionReport(ctx context.Context, sessionID uuid.UUID) (*entity.SessionReport, error) {
	report, err := s.SessionReport(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(ctx, s.FormatSessionReport(report)); err != nil {
		log.Printf("Printer error (session %s): %v", sessionID, err)
		return report, fmt.Errorf("failed to print session report: %w", err)
	}
	return report, nil
}

func (s *PrinterService) money(d decimal.Decimal) string {
	return s.currency + " " + d.StringFixed(2)
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Location != "" {
		doc.Text(r.Header.Location)
	}
	if r.Header.Hours != "" {
		doc.Text(r.Header.Hours)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Pedido:", r.Number).
		KeyValue("Data:", r.Date.Format("02/01/2006 15:04")).
		KeyValue("Origem:", r.Label)

	if r.Customer != "" {
		doc.KeyValue("Cliente:", r.Customer)
	}

	doc.Separator('-')

	for _, line := range r.Lines {
		doc.ItemLine(line.Quantity, line.Name, line.Total.StringFixed(2))
		if line.Quantity > 1 {
			doc.TextF("  @ %s cada", line.UnitPrice.StringFixed(2))
		}
	}

	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("TOTAL:", s.money(r.Total)).
		SetBold(false).
		KeyValue("Pagamento:", r.PaymentMethod)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		FeedLines(1).
		Text("Obrigado pela preferência!")
	if r.Footer != "" {
		doc.Text(r.Footer)
	}
	doc.SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatSessionReport converts a SessionReport into ESC/POS bytes.
func (s *PrinterService) FormatSessionReport(r *entity.SessionReport) []byte {
	doc := printer.NewDocument(s.charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(r.StoreName).
		Text("FECHAMENTO DE CAIXA").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Caixa:", r.Number).
		KeyValue("Abertura:", r.OpenedAt.Format("02/01/2006 15:04"))
	if r.ClosedAt != nil {
		doc.KeyValue("Fechamento:", r.ClosedAt.Format("02/01/2006 15:04"))
	}

	doc.Separator('-').
		KeyValue("Fundo de troco:", s.money(r.OpeningBalance)).
		KeyValue("Dinheiro:", s.money(r.CashSales)).
		KeyValue("PIX:", s.money(r.PixSales)).
		KeyValue("Cartão:", s.money(r.CardSales)).
		KeyValue("Despesas:", s.money(r.TotalExpenses)).
		Separator('-').
		SetBold(true).
		KeyValue("Esperado:", s.money(r.Expected)).
		SetBold(false)

	if r.Counted != nil {
		doc.KeyValue("Contado:", s.money(*r.Counted))
	}
	if r.Variance != nil {
		doc.KeyValue("Diferença:", s.money(*r.Variance))
		if r.VarianceClass != "" {
			doc.KeyValue("Situação:", r.VarianceClass)
		}
	}

	doc.Separator('-').
		TextF("%d vendas, %d despesas", r.SalesCount, r.ExpenseCount).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
