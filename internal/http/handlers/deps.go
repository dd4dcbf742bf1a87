package handlers

import (
	"tillpoint/internal/repos"
	"tillpoint/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AdminHandler   *AdminHandler
	ProductHandler *ProductHandler
	SaleHandler    *SaleHandler
	CashierHandler *CashierHandler
	StockHandler   *StockHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	salesSvc := services.NewSalesService(saleRepo)

	return &Deps{
		AdminHandler:   &AdminHandler{Catalog: catalogSvc, Sales: salesSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		SaleHandler:    &SaleHandler{Sales: salesSvc, Catalog: catalogSvc},
		CashierHandler: &CashierHandler{Auth: auth},
		StockHandler:   &StockHandler{Catalog: catalogSvc},
	}
}
