package domain

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

type User struct {
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
	Role     string `db:"role"`
}
