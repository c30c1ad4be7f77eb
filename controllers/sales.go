package controllers

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"tokopos/sales"

	"github.com/gofiber/fiber/v2"
)

type SalesController struct {
	Sales *sales.Service
}

// Report returns the metrics and top sellers for the day/month/year window
// anchored at the date query parameter (default today).
func (ct *SalesController) Report(c *fiber.Ctx) error {
	period := sales.Period(c.Query("period", string(sales.PeriodDay)))
	switch period {
	case sales.PeriodDay, sales.PeriodMonth, sales.PeriodYear:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "period must be day, month, or year"})
	}

	anchor := time.Now()
	if date := c.Query("date"); date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		anchor = parsed
	}

	metrics, top, err := ct.Sales.Report(period, anchor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"metrics":      metrics,
		"top_products": top,
	})
}

// Journal lists every transaction, newest first.
func (ct *SalesController) Journal(c *fiber.Ctx) error {
	transactions, err := ct.Sales.Transactions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})
	return c.JSON(fiber.Map{"transactions": transactions})
}

// ExportCSV downloads the journal as a CSV file.
func (ct *SalesController) ExportCSV(c *fiber.Ctx) error {
	transactions, err := ct.Sales.Transactions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := sales.WriteJournalCSV(&buf, transactions); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("sales-journal-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
