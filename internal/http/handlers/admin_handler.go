package handlers

import (
	applog "tillpoint/internal/log"
	"tillpoint/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Sales   *services.SalesService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	sales, _ := h.Sales.ListSales()
	low := 0
	for _, p := range products {
		if p.Quantity < 5 {
			low++
		}
	}
	return render(c, "admin_dashboard", fiber.Map{
		"ProductCount": len(products),
		"SaleCount":    len(sales),
		"LowStock":     low,
	})
}
