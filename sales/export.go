package sales

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tokopos/models"
)

// WriteJournalCSV writes the sales journal, one row per transaction, with
// the item summary as "Name (qty)" pairs.
func WriteJournalCSV(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Transaction ID", "Items", "Total"}); err != nil {
		return err
	}

	for _, t := range transactions {
		summary := make([]string, 0, len(t.Items))
		for _, line := range t.Items {
			summary = append(summary, fmt.Sprintf("%s (%d)", line.Product.Name, line.Quantity))
		}

		row := []string{
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.ID,
			strings.Join(summary, ", "),
			strconv.FormatFloat(t.Total, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
