// Package sales computes reporting views over the transaction log.
package sales

import (
	"errors"
	"sort"
	"time"

	"tokopos/models"
	"tokopos/storedb"
)

// TopProductLimit is the length of the top-seller ranking.
const TopProductLimit = 5

type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Window is a half-open [Start, End) interval: a transaction stamped
// exactly at End is excluded, one stamped at Start is included.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// WindowFor builds the calendar day, month, or year containing anchor, in
// anchor's location. Unknown periods fall back to the day window.
func WindowFor(period Period, anchor time.Time) Window {
	year, month, day := anchor.Date()
	loc := anchor.Location()

	switch period {
	case PeriodMonth:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}
	case PeriodYear:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}
	default:
		start := time.Date(year, month, day, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}
	}
}

// Filter keeps the transactions whose timestamp falls inside w.
func Filter(transactions []models.Transaction, w Window) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if w.Contains(t.Timestamp) {
			out = append(out, t)
		}
	}
	return out
}

// Summarize computes the window's metrics. An empty window yields all
// zeros; the average never divides by zero.
func Summarize(transactions []models.Transaction, w Window) models.SalesMetrics {
	var m models.SalesMetrics
	for _, t := range Filter(transactions, w) {
		m.TotalSales += t.Total
		m.TotalTransactions++
		for _, line := range t.Items {
			m.ProductsSold += line.Quantity
		}
	}
	if m.TotalTransactions > 0 {
		m.AverageTransactionValue = m.TotalSales / float64(m.TotalTransactions)
	}
	return m
}

// TopProducts ranks the window's products by revenue, descending, keeping
// encounter order on ties and truncating to limit. Revenue is valued at
// the retail price for every line, the same valuation the journal rows
// use; receipt totals are the tiered ones.
func TopProducts(transactions []models.Transaction, w Window, limit int) []models.ProductSales {
	totals := make(map[string]*models.ProductSales)
	var order []string

	for _, t := range Filter(transactions, w) {
		for _, line := range t.Items {
			ps, ok := totals[line.Product.ID]
			if !ok {
				ps = &models.ProductSales{ProductID: line.Product.ID, Name: line.Product.Name}
				totals[line.Product.ID] = ps
				order = append(order, line.Product.ID)
			}
			ps.Quantity += line.Quantity
			ps.Revenue += float64(line.Quantity) * line.Product.Price
		}
	}

	ranked := make([]models.ProductSales, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *totals[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Service reads the transaction log from the record store on demand.
type Service struct {
	store storedb.Store
}

func NewService(store storedb.Store) *Service {
	return &Service{store: store}
}

// Transactions returns the full log, oldest first.
func (s *Service) Transactions() ([]models.Transaction, error) {
	var history []models.Transaction
	if err := s.store.Get(storedb.Transactions, &history); err != nil {
		if errors.Is(err, storedb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return history, nil
}

// Report computes the metrics and top-seller ranking for the window
// containing anchor.
func (s *Service) Report(period Period, anchor time.Time) (models.SalesMetrics, []models.ProductSales, error) {
	history, err := s.Transactions()
	if err != nil {
		return models.SalesMetrics{}, nil, err
	}
	w := WindowFor(period, anchor)
	return Summarize(history, w), TopProducts(history, w, TopProductLimit), nil
}
