package handlers

import (
	"errors"

	applog "tillpoint/internal/log"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
	"tillpoint/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CashierHandler struct {
	Auth *services.AuthService
}

// GET /admin/cashiers
func (h *CashierHandler) List(c *fiber.Ctx) error {
	names, err := h.Auth.ListCashiers()
	if err != nil {
		applog.Error(c, "admin.cashiers.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load cashiers"})
	}
	return render(c, "cashiers", fiber.Map{"Cashiers": names})
}

func (h *CashierHandler) fail(c *fiber.Ctx, msg string) error {
	names, _ := h.Auth.ListCashiers()
	return c.Status(400).Render("cashiers", fiber.Map{"Err": msg, "Cashiers": names})
}

// POST /admin/cashiers
func (h *CashierHandler) Add(c *fiber.Ctx) error {
	username, okU := validate.Username(c.FormValue("username"))
	pass := c.FormValue("password")
	if !okU || !validate.Password(pass) {
		applog.Security(c, "validation.fail", map[string]any{"form": "cashier.add"})
		return h.fail(c, "Invalid username or password")
	}

	if err := h.Auth.AddCashier(username, pass); err != nil {
		// A taken username reads the same as any other failure here;
		// the log keeps the distinction.
		applog.Error(c, "admin.cashiers.add.fail", err, map[string]any{"username": username})
		return h.fail(c, "Failed to add cashier")
	}
	applog.Audit(c, "admin.cashiers.add", map[string]any{"username": username})
	return c.Redirect("/admin/cashiers")
}

// POST /admin/cashiers/delete
// Only cashier-role accounts can be removed; admins are off limits.
func (h *CashierHandler) Remove(c *fiber.Ctx) error {
	username, ok := validate.Username(c.FormValue("username"))
	if !ok {
		return h.fail(c, "Invalid username")
	}
	if err := h.Auth.RemoveCashier(username); err != nil {
		msg := "Failed to remove cashier"
		if errors.Is(err, repos.ErrNotFound) {
			msg = "No such cashier"
		}
		applog.Error(c, "admin.cashiers.remove.fail", err, map[string]any{"username": username})
		return h.fail(c, msg)
	}
	applog.Audit(c, "admin.cashiers.remove", map[string]any{"username": username})
	return c.Redirect("/admin/cashiers")
}
