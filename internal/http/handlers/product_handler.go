package handlers

import (
	"errors"
	"strings"

	applog "tillpoint/internal/log"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
	"tillpoint/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /admin/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	category := strings.TrimSpace(c.Query("category"))

	var (
		products any
		err      error
	)
	if q != "" || category != "" {
		products, err = h.Catalog.Search(q, category)
	} else {
		products, err = h.Catalog.ListProducts()
	}
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}
	return render(c, "products", fiber.Map{"Products": products, "Q": q, "Category": category})
}

// POST /admin/products
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	fail := func(msg string) error {
		products, _ := h.Catalog.ListProducts()
		return c.Status(400).Render("products", fiber.Map{"Err": msg, "Products": products, "Q": "", "Category": ""})
	}

	name, okN := validate.Name(c.FormValue("name"))
	category, okC := validate.Name(c.FormValue("category"))
	price, okP := validate.Price(c.FormValue("price"))
	qty, okQ := validate.Qty(c.FormValue("quantity"))
	if !okN || !okC || !okP || !okQ {
		applog.Security(c, "validation.fail", map[string]any{"form": "product.add"})
		return fail("Invalid product details")
	}

	id, err := h.Catalog.AddProduct(name, category, price, qty)
	if err != nil {
		applog.Error(c, "admin.products.add.fail", err, map[string]any{"name": name})
		return fail("Failed to add product")
	}
	applog.Audit(c, "admin.products.add", map[string]any{"product_id": id, "name": name})
	return c.Redirect("/admin/products")
}

// GET /admin/products/:id/edit
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	return render(c, "product_edit", fiber.Map{"P": p})
}

// POST /admin/products/:id
// Blank form fields are treated as "leave unchanged".
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}

	fail := func(msg string) error {
		p, err := h.Catalog.GetProduct(id)
		if err != nil {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
		}
		return c.Status(400).Render("product_edit", fiber.Map{"Err": msg, "P": p})
	}

	var u repos.ProductUpdate
	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		u.Name = &v
	}
	if v := strings.TrimSpace(c.FormValue("category")); v != "" {
		u.Category = &v
	}
	if v := strings.TrimSpace(c.FormValue("price")); v != "" {
		price, okP := validate.Price(v)
		if !okP {
			return fail("Invalid price")
		}
		u.Price = &price
	}
	if v := strings.TrimSpace(c.FormValue("quantity")); v != "" {
		qty, okQ := validate.Qty(v)
		if !okQ {
			return fail("Invalid quantity")
		}
		u.Quantity = &qty
	}

	if err := h.Catalog.UpdateProduct(id, u); err != nil {
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product_id": id})
		return fail("Failed to update product")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		// Products with recorded sales stay put (RESTRICT).
		msg := "Failed to delete product"
		if errors.Is(err, repos.ErrNotFound) {
			msg = "Product not found"
		}
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(400).Render("notfound", fiber.Map{"Message": msg})
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}
