package services

import (
	"errors"
	"strings"

	"tillpoint/internal/domain"
	"tillpoint/internal/repos"
)

// ErrInvalidInput is the validation-failure kind: nothing was written.
var ErrInvalidInput = errors.New("invalid input")

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) AddProduct(name, category string, price float64, quantity int) (int64, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" || price <= 0 || quantity < 0 {
		return 0, ErrInvalidInput
	}
	return s.Prods.Insert(name, category, price, quantity)
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Search(q, category string) ([]domain.Product, error) {
	return s.Prods.Search(strings.TrimSpace(q), strings.TrimSpace(category))
}

// UpdateProduct applies a partial update. Supplied fields are checked
// before anything is written; absent fields leave columns unchanged.
func (s *CatalogService) UpdateProduct(id int64, u repos.ProductUpdate) error {
	if u.Empty() {
		return ErrInvalidInput
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return ErrInvalidInput
	}
	if u.Category != nil && strings.TrimSpace(*u.Category) == "" {
		return ErrInvalidInput
	}
	if u.Price != nil && *u.Price <= 0 {
		return ErrInvalidInput
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return ErrInvalidInput
	}
	return s.Prods.Update(id, u)
}

func (s *CatalogService) DeleteProduct(id int64) error {
	return s.Prods.Delete(id)
}

// CheckStock converts quantity into IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *CatalogService) CheckStock(id int64) (domain.Stock, error) {
	qty, err := s.Prods.Qty(id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return domain.Stock{Status: "OUT_OF_STOCK", Qty: 0}, nil
		}
		return domain.Stock{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case qty >= 5:
		status = "IN_STOCK"
	case qty > 0:
		status = "LOW_STOCK"
	}
	return domain.Stock{Status: status, Qty: qty}, nil
}
