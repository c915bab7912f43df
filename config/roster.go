package config

import (
	"os"

	entity "github.com/acharyaarish/Inventory-Management/model/entity"
)

// DefaultRoster returns the fixed login roster: one account per role.
// Credentials default to the account name and can be overridden per env var,
// e.g. MANAGER_PASS=s3cret. The roster is passed into the user repository at
// bootstrap; nothing else reads it.
func DefaultRoster() []entity.User {
	return []entity.User{
		{Username: "manager", Credential: envOr("MANAGER_PASS", "manager"), Role: entity.RoleManager},
		{Username: "clerk", Credential: envOr("CLERK_PASS", "clerk"), Role: entity.RoleStockClerk},
		{Username: "cashier", Credential: envOr("CASHIER_PASS", "cashier"), Role: entity.RoleCashier},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
