package services

import (
	"strings"

	"tillpoint/internal/domain"
	"tillpoint/internal/repos"
)

type SalesService struct {
	Sales *repos.SaleRepo
}

func NewSalesService(sales *repos.SaleRepo) *SalesService {
	return &SalesService{Sales: sales}
}

// RecordSale checks and decrements stock and inserts the sale as a
// single atomic unit; a failure after the decrement rolls everything back.
func (s *SalesService) RecordSale(invoice string, productID int64, qty int, total float64, cashier string) error {
	invoice = strings.TrimSpace(invoice)
	if invoice == "" || cashier == "" || qty <= 0 || total <= 0 {
		return ErrInvalidInput
	}
	return s.Sales.Record(invoice, productID, qty, total, cashier)
}

func (s *SalesService) ListSales() ([]domain.SaleRecord, error) {
	return s.Sales.List()
}
