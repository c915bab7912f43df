package entity

// Role is the closed set of access roles. Every gated operation names the
// single role it requires; there is no hierarchy between roles.
type Role string

const (
	RoleManager    Role = "manager"
	RoleStockClerk Role = "stock_clerk"
	RoleCashier    Role = "cashier"
)

// User is a roster account. Role is fixed at construction and never changes
// for the lifetime of the process.
type User struct {
	Username   string
	Credential string
	Role       Role
}
