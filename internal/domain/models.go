package domain

type Product struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
	CreatedAt string  `db:"created_at"`
	UpdatedAt string  `db:"updated_at"`
}

type Sale struct {
	ID            int64   `db:"id"`
	InvoiceNumber string  `db:"invoice_number"`
	ProductID     int64   `db:"product_id"`
	Quantity      int     `db:"quantity"`
	TotalPrice    float64 `db:"total_price"`
	SaleDate      string  `db:"sale_date"`
	Cashier       string  `db:"cashier_username"`
}

// SaleRecord is a sale row joined with the name of the product it was
// recorded against, ordered most recent first by the store.
type SaleRecord struct {
	ID            int64   `db:"id"`
	InvoiceNumber string  `db:"invoice_number"`
	ProductName   string  `db:"product_name"`
	Quantity      int     `db:"quantity"`
	TotalPrice    float64 `db:"total_price"`
	SaleDate      string  `db:"sale_date"`
	Cashier       string  `db:"cashier_username"`
}

type Stock struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty"`
}
