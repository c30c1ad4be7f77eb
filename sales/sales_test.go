package sales

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokopos/models"
	"tokopos/storedb"
)

func trxAt(ts time.Time, total float64, items ...models.CartItem) models.Transaction {
	return models.Transaction{ID: "TRX" + ts.Format("20060102150405"), Items: items, Total: total, Timestamp: ts}
}

func line(id, name string, qty int, price float64) models.CartItem {
	return models.CartItem{
		Product:  models.Product{ID: id, Name: name, Price: price},
		Quantity: qty,
	}
}

func TestSummarizeEmptyWindow(t *testing.T) {
	w := WindowFor(PeriodDay, time.Now())
	m := Summarize(nil, w)

	assert.Zero(t, m.TotalSales)
	assert.Zero(t, m.TotalTransactions)
	assert.Zero(t, m.AverageTransactionValue)
	assert.Zero(t, m.ProductsSold)
}

func TestSummarizeMetrics(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	w := WindowFor(PeriodDay, anchor)

	transactions := []models.Transaction{
		trxAt(anchor, 45000, line("a", "Rice", 3, 15000)),
		trxAt(anchor.Add(time.Hour), 5000, line("b", "Soap", 1, 5000)),
		trxAt(anchor.AddDate(0, 0, -1), 99999, line("c", "Oil", 9, 11111)),
	}

	m := Summarize(transactions, w)
	assert.Equal(t, 50000.0, m.TotalSales)
	assert.Equal(t, 2, m.TotalTransactions)
	assert.Equal(t, 25000.0, m.AverageTransactionValue)
	assert.Equal(t, 4, m.ProductsSold)
}

func TestWindowBoundariesHalfOpen(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)

	for _, period := range []Period{PeriodDay, PeriodMonth, PeriodYear} {
		w := WindowFor(period, anchor)
		assert.True(t, w.Contains(w.Start), "%s: start boundary included", period)
		assert.False(t, w.Contains(w.End), "%s: end boundary excluded", period)
		assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)), "%s: last instant included", period)
	}
}

func TestWindowSpans(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.Local)

	day := WindowFor(PeriodDay, anchor)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local), day.Start)
	assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.Local), day.End)

	month := WindowFor(PeriodMonth, anchor)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), month.Start)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local), month.End)

	year := WindowFor(PeriodYear, anchor)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), year.Start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local), year.End)
}

func TestTopProductsRanksByRevenue(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	w := WindowFor(PeriodDay, anchor)

	transactions := []models.Transaction{
		trxAt(anchor, 3000, line("a", "Candy", 3, 1000)),
		trxAt(anchor.Add(time.Minute), 5000, line("b", "Coffee", 1, 5000)),
	}

	top := TopProducts(transactions, w, TopProductLimit)
	require.Len(t, top, 2)
	assert.Equal(t, "Coffee", top[0].Name, "higher revenue wins despite lower quantity")
	assert.Equal(t, 5000.0, top[0].Revenue)
	assert.Equal(t, "Candy", top[1].Name)
	assert.Equal(t, 3, top[1].Quantity)
}

func TestTopProductsAccumulatesAndTruncates(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	w := WindowFor(PeriodDay, anchor)

	var transactions []models.Transaction
	for i := 0; i < 7; i++ {
		id := string(rune('a' + i))
		transactions = append(transactions,
			trxAt(anchor.Add(time.Duration(i)*time.Minute), 0, line(id, "P"+id, 1, float64(1000*(i+1)))))
	}
	// second sale of product "a"
	transactions = append(transactions, trxAt(anchor.Add(time.Hour), 0, line("a", "Pa", 4, 1000)))

	top := TopProducts(transactions, w, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "Pg", top[0].Name)
	// product "a": 5 units, revenue 5000 at retail
	for _, ps := range top {
		if ps.ProductID == "a" {
			assert.Equal(t, 5, ps.Quantity)
			assert.Equal(t, 5000.0, ps.Revenue)
		}
	}
}

func TestTopProductsRetailValuationIgnoresWholesaleFlag(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	w := WindowFor(PeriodDay, anchor)

	wholesaleLine := models.CartItem{
		Product:     models.Product{ID: "a", Name: "Rice", Price: 15000, WholesalePrice: 10000, MinWholesaleQty: 5},
		Quantity:    5,
		IsWholesale: true,
	}
	top := TopProducts([]models.Transaction{trxAt(anchor, 50000, wholesaleLine)}, w, 5)

	require.Len(t, top, 1)
	assert.Equal(t, 75000.0, top[0].Revenue, "ranking values lines at retail")
}

func TestServiceReportReadsStore(t *testing.T) {
	store := storedb.NewMemory()
	anchor := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	require.NoError(t, store.Put(storedb.Transactions, []models.Transaction{
		trxAt(anchor, 45000, line("a", "Rice", 3, 15000)),
	}))

	svc := NewService(store)
	metrics, top, err := svc.Report(PeriodDay, anchor)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.TotalTransactions)
	require.Len(t, top, 1)
	assert.Equal(t, "Rice", top[0].Name)

	// empty store reports zeros, not an error
	empty := NewService(storedb.NewMemory())
	metrics, top, err = empty.Report(PeriodDay, anchor)
	require.NoError(t, err)
	assert.Zero(t, metrics.TotalTransactions)
	assert.Empty(t, top)
}

func TestWriteJournalCSV(t *testing.T) {
	ts := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local)
	trx := trxAt(ts, 35000, line("a", "Rice", 2, 15000), line("b", "Soap", 1, 5000))
	trx.ID = "TRX1741609800000"

	var buf bytes.Buffer
	require.NoError(t, WriteJournalCSV(&buf, []models.Transaction{trx}))

	want := "Date,Transaction ID,Items,Total\n" +
		"2025-03-10 14:30:00,TRX1741609800000,\"Rice (2), Soap (1)\",35000\n"
	assert.Equal(t, want, buf.String())
}
