package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAddTwiceThenRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	feijoada := f.item("Feijoada", "58.00", 10)

	_, err := f.tableSvc.AddItem(ctx, 5, feijoada.ID)
	require.NoError(t, err)
	table, err := f.tableSvc.AddItem(ctx, 5, feijoada.ID)
	require.NoError(t, err)

	require.Len(t, table.Items, 1)
	assert.Equal(t, 2, table.Items[0].Quantity)
	assert.True(t, table.Total().Equal(dec("116.00")))
	assert.True(t, table.IsActive())
	assert.NotNil(t, table.OpenedAt)

	table, err = f.tableSvc.SetCustomerName(ctx, 5, "  Joana ")
	require.NoError(t, err)
	assert.Equal(t, "Joana", *table.CustomerName)

	table, err = f.tableSvc.AdjustQuantity(ctx, 5, feijoada.ID, -2)
	require.NoError(t, err)
	assert.False(t, table.IsActive())
	assert.Empty(t, table.Items)
	assert.Nil(t, table.OpenedAt)
	assert.Nil(t, table.CustomerName)

	stored, err := f.tableSvc.GetTable(ctx, 5)
	require.NoError(t, err)
	assert.False(t, stored.IsActive())
}

func TestTableAddRejectsUnavailableOrMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	item := f.item("Vinho", "90", 1)
	item.IsAvailable = false
	require.NoError(t, f.menu.Update(ctx, item))

	_, err := f.tableSvc.AddItem(ctx, 1, item.ID)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = f.tableSvc.AddItem(ctx, 1, uuid.New())
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	_, err = f.tableSvc.AddItem(ctx, 99, f.item("Suco", "12", 1).ID)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestTableSnapshotsPriceAtAddTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	item := f.item("Baião", "58.00", 10)

	_, err := f.tableSvc.AddItem(ctx, 2, item.ID)
	require.NoError(t, err)

	item.Price = dec("70.00")
	require.NoError(t, f.menu.Update(ctx, item))

	table, err := f.tableSvc.AddItem(ctx, 2, item.ID)
	require.NoError(t, err)
	assert.True(t, table.Items[0].Price.Equal(dec("58.00")))
	assert.True(t, table.Total().Equal(dec("116.00")))
}

func TestCheckoutClosesTableLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.item("Dadinhos", "32.00", 10)
	b := f.item("Suco", "12.00", 10)
	f.open(t, "100")

	_, err := f.tableSvc.AddItem(ctx, 7, a.ID)
	require.NoError(t, err)
	_, err = f.tableSvc.AddItem(ctx, 7, b.ID)
	require.NoError(t, err)
	_, err = f.tableSvc.AddItem(ctx, 7, b.ID)
	require.NoError(t, err)
	before, err := f.tableSvc.SetCustomerName(ctx, 7, "Carlos")
	require.NoError(t, err)

	record, err := f.tableSvc.Checkout(ctx, 7, &CheckoutInput{PaymentMethod: enum.PaymentMethodCard})
	require.NoError(t, err)

	assert.Equal(t, 1, f.sales.count())
	assert.Equal(t, 7, record.TableID)
	assert.Equal(t, enum.SaleOriginTable, record.Origin)
	assert.Equal(t, enum.PaymentMethodCard, record.PaymentMethod)
	assert.Equal(t, before.Items, record.Items)
	assert.True(t, record.Total.Equal(dec("56.00")))
	assert.Equal(t, "Carlos", *record.CustomerName)
	assert.Equal(t, *before.OpenedAt, record.OpenedAt)
	assert.Equal(t, 8, f.menu.stock(b.ID))

	table, err := f.tableSvc.GetTable(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, table.Items)
	assert.False(t, table.IsActive())
	assert.Nil(t, table.CustomerName)
	assert.Nil(t, table.OpenedAt)
}

func TestCheckoutWithoutSessionKeepsTable(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.item("Dadinhos", "32.00", 10)

	_, err := f.tableSvc.AddItem(ctx, 3, a.ID)
	require.NoError(t, err)

	_, err = f.tableSvc.Checkout(ctx, 3, &CheckoutInput{PaymentMethod: enum.PaymentMethodCash})
	assert.True(t, errors.Is(err, apperror.ErrNoOpenSession))

	table, err := f.tableSvc.GetTable(ctx, 3)
	require.NoError(t, err)
	assert.True(t, table.IsActive())
	assert.Equal(t, 10, f.menu.stock(a.ID))
}

func TestCheckoutEmptyTable(t *testing.T) {
	f := newFixture()
	f.open(t, "0")
	_, err := f.tableSvc.Checkout(context.Background(), 1, &CheckoutInput{PaymentMethod: enum.PaymentMethodCash})
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestQuickSale(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.item("Cartola", "24.00", 10)
	b := f.item("Suco", "12.00", 1)
	f.open(t, "0")

	name := "Balcão 1"
	record, err := f.tableSvc.QuickSale(ctx, &QuickSaleInput{
		Items: []QuickSaleItem{
			{MenuItemID: a.ID, Quantity: 2},
			{MenuItemID: b.ID, Quantity: 3},
			{MenuItemID: a.ID, Quantity: 1},
		},
		PaymentMethod: enum.PaymentMethodPIX,
		CustomerName:  &name,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, record.TableID)
	assert.Equal(t, enum.SaleOriginQuickSale, record.Origin)
	assert.Equal(t, "Balcão", record.Label())
	require.Len(t, record.Items, 2)
	assert.Equal(t, 3, record.Items[0].Quantity)
	assert.True(t, record.Total.Equal(dec("108.00")))
	assert.Equal(t, record.OpenedAt, record.ClosedAt)
	assert.Equal(t, 0, f.menu.stock(b.ID))
}

func TestQuickSaleValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.item("Cartola", "24.00", 10)
	f.open(t, "0")

	_, err := f.tableSvc.QuickSale(ctx, &QuickSaleInput{PaymentMethod: enum.PaymentMethodCash})
	assert.Error(t, err)

	_, err = f.tableSvc.QuickSale(ctx, &QuickSaleInput{
		Items:         []QuickSaleItem{{MenuItemID: a.ID, Quantity: 0}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.Error(t, err)

	_, err = f.tableSvc.QuickSale(ctx, &QuickSaleInput{
		Items:         []QuickSaleItem{{MenuItemID: uuid.New(), Quantity: 1}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, f.sales.count())
}

func TestCheckoutRetryAfterFailedTableReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.open(t, "100")
	tapioca := f.item("Tapioca", "15.00", 10)

	_, err := f.tableSvc.AddItem(ctx, 4, tapioca.ID)
	require.NoError(t, err)

	f.tables.failSaves = 1
	_, err = f.tableSvc.Checkout(ctx, 4, &CheckoutInput{PaymentMethod: enum.PaymentMethodCash})
	require.ErrorIs(t, err, errConnReset)
	assert.Equal(t, 0, f.sales.count())
	assert.Equal(t, 10, f.menu.stock(tapioca.ID))

	table, err := f.tableSvc.GetTable(ctx, 4)
	require.NoError(t, err)
	assert.True(t, table.IsActive())

	record, err := f.tableSvc.Checkout(ctx, 4, &CheckoutInput{PaymentMethod: enum.PaymentMethodCash})
	require.NoError(t, err)
	assert.True(t, record.Total.Equal(dec("15")))
	assert.Equal(t, 1, f.sales.count())
	assert.Equal(t, 9, f.menu.stock(tapioca.ID))

	table, err = f.tableSvc.GetTable(ctx, 4)
	require.NoError(t, err)
	assert.False(t, table.IsActive())
}
