package models

// SalesMetrics summarizes the transactions inside one reporting window.
type SalesMetrics struct {
	TotalSales              float64 `json:"total_sales"`
	TotalTransactions       int     `json:"total_transactions"`
	AverageTransactionValue float64 `json:"average_transaction_value"`
	ProductsSold            int     `json:"products_sold"`
}

// ProductSales is one row of the top-seller ranking.
type ProductSales struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}
