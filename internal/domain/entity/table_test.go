package entity

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(name, price string) *MenuItem {
	return &MenuItem{ID: uuid.New(), Name: name, Price: decimal.RequireFromString(price), IsAvailable: true}
}

func TestTableAddItemMergesLines(t *testing.T) {
	feijoada := menuItem("Feijoada", "58.00")
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	var table Table
	table.AddItem(feijoada, now)
	table.AddItem(feijoada, now.Add(time.Minute))

	require.Len(t, table.Items, 1)
	assert.Equal(t, 2, table.Items[0].Quantity)
	assert.True(t, table.Total().Equal(decimal.RequireFromString("116.00")))
	assert.True(t, table.IsActive())
	assert.Equal(t, now, *table.OpenedAt)
}

func TestTableAdjustToZeroFreesTable(t *testing.T) {
	feijoada := menuItem("Feijoada", "58.00")
	name := "Ana"
	table := Table{ID: 5, CustomerName: &name}
	table.AddItem(feijoada, time.Now())
	table.AddItem(feijoada, time.Now())

	ok := table.AdjustQuantity(feijoada.ID, -2)

	assert.True(t, ok)
	assert.Empty(t, table.Items)
	assert.False(t, table.IsActive())
	assert.Nil(t, table.OpenedAt)
	assert.Nil(t, table.CustomerName)
}

func TestTableAdjustClampsBelowZero(t *testing.T) {
	item := menuItem("Suco", "12.00")
	var table Table
	table.AddItem(item, time.Now())

	assert.True(t, table.AdjustQuantity(item.ID, -5))
	assert.Empty(t, table.Items)
}

func TestTableAdjustUnknownLine(t *testing.T) {
	var table Table
	table.AddItem(menuItem("Suco", "12.00"), time.Now())

	assert.False(t, table.AdjustQuantity(uuid.New(), 1))
	assert.Len(t, table.Items, 1)
}

func TestOrderLineSnapshotIgnoresLaterPriceChange(t *testing.T) {
	item := menuItem("Cartola", "24.00")
	lines := OrderLines{}.Add(item)

	item.Price = decimal.RequireFromString("30.00")
	item.Name = "Cartola Nova"

	assert.True(t, lines.Total().Equal(decimal.RequireFromString("24.00")))
	assert.Equal(t, "Cartola", lines[0].Name)
}

func TestOrderLinesAddDoesNotAlias(t *testing.T) {
	item := menuItem("Suco", "12.00")
	a := OrderLines{}.Add(item)
	b := a.Add(item)

	assert.Equal(t, 1, a[0].Quantity)
	assert.Equal(t, 2, b[0].Quantity)
}

func TestTableJSONIncludesDerivedFields(t *testing.T) {
	var table Table
	table.ID = 3
	table.AddItem(menuItem("Suco", "12.00"), time.Now())

	b, err := json.Marshal(table)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, true, out["is_active"])
	assert.Equal(t, "12", out["total"])
	assert.EqualValues(t, 3, out["id"])
}

func TestDailyRecordLabel(t *testing.T) {
	assert.Equal(t, "Balcão", (&DailyRecord{TableID: 0}).Label())
	assert.Equal(t, "Mesa 7", (&DailyRecord{TableID: 7}).Label())
}

func TestPayableDaysOverdue(t *testing.T) {
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	p := Payable{DueDate: time.Date(2026, 5, 1, 23, 0, 0, 0, time.UTC)}
	assert.Equal(t, 9, p.DaysOverdue(now))

	p.DueDate = time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, -2, p.DaysOverdue(now))
}

func TestPayableDaysOverdueInStoreZone(t *testing.T) {
	recife, err := time.LoadLocation("America/Recife")
	require.NoError(t, err)

	// 21:00 in Recife is already the next day in UTC.
	now := time.Date(2026, 5, 10, 21, 0, 0, 0, recife)
	p := Payable{DueDate: CalendarDate(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))}
	assert.Equal(t, 0, p.DaysOverdue(now))
	assert.Equal(t, 0, p.DaysOverdue(time.Date(2026, 5, 10, 0, 30, 0, 0, recife)))
	assert.Equal(t, 1, p.DaysOverdue(now.Add(4*time.Hour)))

	// a client sending local midnight keeps its calendar day
	p.DueDate = CalendarDate(time.Date(2026, 5, 10, 0, 0, 0, 0, recife))
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), p.DueDate)
	assert.Equal(t, 0, p.DaysOverdue(now))
}

func TestPayableDaysOverdueAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is a 23-hour day in New York.
	p := Payable{DueDate: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 2, p.DaysOverdue(time.Date(2026, 3, 9, 0, 10, 0, 0, ny)))
}
