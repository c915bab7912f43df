package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "github.com/acharyaarish/Inventory-Management/model/entity"
	inventoryEntity "github.com/acharyaarish/Inventory-Management/model/entity/inventory"
	salesEntity "github.com/acharyaarish/Inventory-Management/model/entity/sales"
	inventoryRepo "github.com/acharyaarish/Inventory-Management/model/repository/inventory"
	salesRepo "github.com/acharyaarish/Inventory-Management/model/repository/sales"
	userRepo "github.com/acharyaarish/Inventory-Management/model/repository/user"
)

func testSession(t *testing.T, script string) (*Session, *bytes.Buffer, *inventoryRepo.InventoryRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&inventoryEntity.InventoryItem{}, &salesEntity.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	roster := userRepo.NewRoster([]entity.User{
		{Username: "manager", Credential: "manager", Role: entity.RoleManager},
		{Username: "clerk", Credential: "clerk", Role: entity.RoleStockClerk},
		{Username: "cashier", Credential: "cashier", Role: entity.RoleCashier},
	})
	catalog := inventoryRepo.NewInventoryRepository(db)
	orders := salesRepo.NewOrderRepository(db)
	out := &bytes.Buffer{}
	s := New(roster, catalog, orders, 5, strings.NewReader(script), out)
	return s, out, catalog
}

func TestRun_FailedLoginRefusesSession(t *testing.T) {
	s, out, _ := testSession(t, "manager\nwrong\n")
	s.Run()

	if !strings.Contains(out.String(), "Invalid username or password.") {
		t.Errorf("output missing generic login failure:\n%s", out)
	}
	if strings.Contains(out.String(), "Menu:") {
		t.Error("session loop must not start after a failed login")
	}
}

func TestRun_ManagerAddsSearchesAndOrders(t *testing.T) {
	script := strings.Join([]string{
		"manager", "manager", // login
		"1", "A1", "Widget", "10", "2.00", // add item
		"4", "widget", // search, case-insensitive
		"6", "O1", "A1", "4", // create order
		"8", // view orders
		"9", // logout
	}, "\n") + "\n"
	s, out, catalog := testSession(t, script)
	s.Run()

	got := out.String()
	for _, want := range []string{
		"Login successful! Welcome manager (manager)",
		"Item 'Widget' added to inventory.",
		"Price (with GST): $2.20",
		"Order 'O1' created for 4 units of 'Widget'.",
		"Order ID: O1, Item: Widget, Quantity: 4, Status: Created",
		"Logging out!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	item, err := catalog.Get("A1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.Quantity != 6 {
		t.Errorf("A1 quantity = %d, want 6 after ordering 4 of 10", item.Quantity)
	}
}

func TestRun_ClerkDeniedMutation(t *testing.T) {
	script := strings.Join([]string{
		"clerk", "clerk",
		"2", // delete item, manager-gated: denied before any prompt
		"9",
	}, "\n") + "\n"
	s, out, _ := testSession(t, script)
	s.Run()

	got := out.String()
	if !strings.Contains(got, "Error: access denied: stock_clerks are not authorized to perform this operation.") {
		t.Errorf("output missing access denial:\n%s", got)
	}
	if strings.Contains(got, "Enter item ID:") {
		t.Error("denied operation must not prompt for arguments")
	}
}

func TestRun_CashierCanReadButNotOrder(t *testing.T) {
	script := strings.Join([]string{
		"cashier", "cashier",
		"5", // low stock alert: ungated
		"6", // create order: manager-gated
		"8", // view orders: ungated
		"9",
	}, "\n") + "\n"
	s, out, _ := testSession(t, script)
	s.Run()

	got := out.String()
	if !strings.Contains(got, "All items have sufficient stock.") {
		t.Errorf("output missing low stock report:\n%s", got)
	}
	if !strings.Contains(got, "Error: access denied: cashiers are not authorized") {
		t.Errorf("output missing access denial:\n%s", got)
	}
	if !strings.Contains(got, "No orders available.") {
		t.Errorf("output missing empty order list:\n%s", got)
	}
}

func TestRun_DomainErrorsKeepSessionAlive(t *testing.T) {
	script := strings.Join([]string{
		"manager", "manager",
		"2", "A2", // delete unknown item
		"1", "A1", "Widget", "6", "2.00",
		"6", "O2", "A1", "100", // insufficient stock
		"7", "ghost", // fulfill unknown order
		"9",
	}, "\n") + "\n"
	s, out, catalog := testSession(t, script)
	s.Run()

	got := out.String()
	for _, want := range []string{
		"Error: item with ID 'A2' not found.",
		"Error: not enough stock for 'Widget': only 6 units available, 100 requested.",
		"Error: order with ID 'ghost' not found.",
		"Logging out!", // every error was recoverable
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	item, err := catalog.Get("A1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.Quantity != 6 {
		t.Errorf("A1 quantity = %d, want 6 (rejected order left no partial effect)", item.Quantity)
	}
}

func TestRun_RejectsMalformedNumbersWithoutCrashing(t *testing.T) {
	script := strings.Join([]string{
		"manager", "manager",
		"1", "A1", "Widget", "lots", "10", "2.00", // retry after bad quantity
		"9",
	}, "\n") + "\n"
	s, out, catalog := testSession(t, script)
	s.Run()

	if !strings.Contains(out.String(), "Please enter a non-negative whole number.") {
		t.Errorf("output missing parse retry prompt:\n%s", out)
	}
	item, err := catalog.Get("A1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.Quantity != 10 {
		t.Errorf("A1 quantity = %d, want 10", item.Quantity)
	}
}
