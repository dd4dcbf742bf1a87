package handlers

import (
	"errors"

	"tillpoint/internal/domain"
	applog "tillpoint/internal/log"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
	"tillpoint/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	Sales   *services.SalesService
	Catalog *services.CatalogService
}

// GET /pos
func (h *SaleHandler) POSForm(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "pos.products.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "pos", fiber.Map{"Products": products})
}

// POST /pos/sales
// The cashier on the sale is the logged-in account, not a form field.
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/login")
	}

	fail := func(msg string) error {
		products, _ := h.Catalog.ListProducts()
		return c.Status(400).Render("pos", fiber.Map{"Err": msg, "Products": products})
	}

	invoice, okI := validate.Invoice(c.FormValue("invoice"))
	productID, okID := validate.ID(c.FormValue("product_id"))
	qty, okQ := validate.Qty(c.FormValue("quantity"))
	total, okT := validate.Price(c.FormValue("total"))
	if !okI || !okID || !okQ || qty < 1 || !okT {
		applog.Security(c, "validation.fail", map[string]any{"form": "sale.record"})
		return fail("Invalid sale details")
	}

	if err := h.Sales.RecordSale(invoice, productID, qty, total, u.Username); err != nil {
		msg := "Failed to record sale"
		switch {
		case errors.Is(err, repos.ErrNotFound):
			msg = "Product not found"
		case errors.Is(err, repos.ErrInsufficientStock):
			msg = "Not enough stock"
		}
		applog.Error(c, "pos.sale.fail", err, map[string]any{"invoice": invoice, "product_id": productID, "qty": qty})
		return fail(msg)
	}

	applog.Audit(c, "pos.sale.recorded", map[string]any{"invoice": invoice, "product_id": productID, "qty": qty, "total": total})
	return c.Redirect("/pos")
}

// GET /admin/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.Sales.ListSales()
	if err != nil {
		applog.Error(c, "admin.sales.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load sales"})
	}
	return render(c, "sales", fiber.Map{"Sales": sales})
}
