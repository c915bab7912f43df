package user

import (
	"testing"

	entity "github.com/acharyaarish/Inventory-Management/model/entity"
)

func testRoster() *Roster {
	return NewRoster([]entity.User{
		{Username: "manager", Credential: "manager", Role: entity.RoleManager},
		{Username: "clerk", Credential: "clerk", Role: entity.RoleStockClerk},
		{Username: "cashier", Credential: "cashier", Role: entity.RoleCashier},
	})
}

func TestFind(t *testing.T) {
	roster := testRoster()
	u, ok := roster.Find("clerk", "clerk")
	if !ok {
		t.Fatal("Find: want ok")
	}
	if u.Role != entity.RoleStockClerk {
		t.Errorf("Role = %s, want stock_clerk", u.Role)
	}
}

func TestFind_WrongCredential(t *testing.T) {
	roster := testRoster()
	if _, ok := roster.Find("manager", "wrong"); ok {
		t.Error("Find with wrong credential: want not found")
	}
}

func TestFind_UnknownUsername(t *testing.T) {
	roster := testRoster()
	if _, ok := roster.Find("admin", "manager"); ok {
		t.Error("Find with unknown username: want not found")
	}
}

func TestFind_CaseSensitive(t *testing.T) {
	roster := testRoster()
	if _, ok := roster.Find("Manager", "manager"); ok {
		t.Error("Find is case-sensitive: want not found")
	}
	if _, ok := roster.Find("manager", "Manager"); ok {
		t.Error("Find is case-sensitive: want not found")
	}
}
