package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/shopspring/decimal"

	"github.com/acharyaarish/Inventory-Management/config"
	"github.com/acharyaarish/Inventory-Management/core/auth"
	entity "github.com/acharyaarish/Inventory-Management/model/entity"
	inventoryEntity "github.com/acharyaarish/Inventory-Management/model/entity/inventory"
	inventoryRepo "github.com/acharyaarish/Inventory-Management/model/repository/inventory"
	salesRepo "github.com/acharyaarish/Inventory-Management/model/repository/sales"
	userRepo "github.com/acharyaarish/Inventory-Management/model/repository/user"
)

// Session drives the interactive menu for one authenticated user. All domain
// rules live in the repositories and core/auth; the session only parses
// input, gates actions by role, and renders results.
type Session struct {
	roster    *userRepo.Roster
	catalog   *inventoryRepo.InventoryRepository
	orders    *salesRepo.OrderRepository
	threshold int

	in    *bufio.Scanner
	out   io.Writer
	clock func() time.Time
}

func New(roster *userRepo.Roster, catalog *inventoryRepo.InventoryRepository, orders *salesRepo.OrderRepository, threshold int, in io.Reader, out io.Writer) *Session {
	return &Session{
		roster:    roster,
		catalog:   catalog,
		orders:    orders,
		threshold: threshold,
		in:        bufio.NewScanner(in),
		out:       out,
		clock:     time.Now,
	}
}

// Run authenticates and loops over the menu until logout or EOF. A failed
// login refuses the session entirely; domain errors are reported and the
// loop continues.
func (s *Session) Run() {
	banner := "Inventory"
	if config.AppConfig != nil && config.AppConfig.AppName != "" {
		banner = config.AppConfig.AppName
	}
	fmt.Fprintln(s.out, figure.NewFigure(banner, "", true).String())

	user, ok := s.login()
	if !ok {
		return
	}

	for {
		fmt.Fprintf(s.out, "\nSystem Date and Time: %s\n", s.clock().Format("2006-01-02 15:04:05"))
		s.printMenu()
		choice, ok := s.prompt("Enter your choice (1-9): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.gated(user, entity.RoleManager, s.addItem)
		case "2":
			s.gated(user, entity.RoleManager, s.deleteItem)
		case "3":
			s.gated(user, entity.RoleManager, s.updateItem)
		case "4":
			s.searchItem()
		case "5":
			s.lowStockAlert()
		case "6":
			s.gated(user, entity.RoleManager, s.createOrder)
		case "7":
			s.fulfillOrder()
		case "8":
			s.viewOrders()
		case "9":
			fmt.Fprintln(s.out, "Logging out!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Session) login() (*entity.User, bool) {
	username, ok := s.prompt("Enter username: ")
	if !ok {
		return nil, false
	}
	credential, ok := s.prompt("Enter password: ")
	if !ok {
		return nil, false
	}
	user, found := s.roster.Find(username, credential)
	if !found {
		// Generic message: never reveal which field mismatched.
		fmt.Fprintln(s.out, "Invalid username or password.")
		return nil, false
	}
	fmt.Fprintf(s.out, "Login successful! Welcome %s (%s)\n", user.Username, user.Role)
	return user, true
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, `
Menu:
1. Add Item
2. Delete Item
3. Update Item
4. Search Item
5. Low Stock Alert
6. Create Order
7. Fulfill Order
8. View Orders
9. Logout
`)
}

// gated runs action only when the user holds exactly the required role.
// The denial message comes from the error itself, nowhere else.
func (s *Session) gated(user *entity.User, required entity.Role, action func()) {
	if err := auth.Authorize(user, required); err != nil {
		s.report(err)
		return
	}
	action()
}

func (s *Session) addItem() {
	itemID, ok1 := s.prompt("Enter item ID: ")
	name, ok2 := s.prompt("Enter item name: ")
	quantity, ok3 := s.promptInt("Enter item quantity: ")
	price, ok4 := s.promptDecimal("Enter item price (before GST): ")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}
	item := &inventoryEntity.InventoryItem{ItemID: itemID, Name: name, Quantity: quantity, UnitPrice: price}
	if err := s.catalog.Add(item); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Item '%s' added to inventory.\n", name)
}

func (s *Session) deleteItem() {
	itemID, ok := s.prompt("Enter item ID: ")
	if !ok {
		return
	}
	if err := s.catalog.Delete(itemID); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Item with ID '%s' deleted from inventory.\n", itemID)
}

func (s *Session) updateItem() {
	itemID, ok1 := s.prompt("Enter item ID: ")
	quantity, ok2 := s.promptInt("Enter new quantity: ")
	price, ok3 := s.promptDecimal("Enter new price (before GST): ")
	if !ok1 || !ok2 || !ok3 {
		return
	}
	if err := s.catalog.Update(itemID, quantity, price); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Item with ID '%s' updated.\n", itemID)
}

func (s *Session) searchItem() {
	name, ok := s.prompt("Enter item name to search: ")
	if !ok {
		return
	}
	items, err := s.catalog.SearchByName(name)
	if err != nil {
		s.report(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintf(s.out, "No items found with name '%s'.\n", name)
		return
	}
	for _, item := range items {
		fmt.Fprintln(s.out, item)
	}
}

func (s *Session) lowStockAlert() {
	items, err := s.catalog.LowStock(s.threshold)
	if err != nil {
		s.report(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "All items have sufficient stock.")
		return
	}
	fmt.Fprintln(s.out, "Low stock alert for the following items:")
	for _, item := range items {
		fmt.Fprintln(s.out, item)
	}
}

func (s *Session) createOrder() {
	orderID, ok1 := s.prompt("Enter order ID: ")
	itemID, ok2 := s.prompt("Enter item ID to order: ")
	quantity, ok3 := s.promptInt("Enter quantity to order: ")
	if !ok1 || !ok2 || !ok3 {
		return
	}
	order, err := s.orders.Create(orderID, itemID, quantity)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Order '%s' created for %d units of '%s'.\n", order.OrderID, order.Quantity, order.ItemName)
}

func (s *Session) fulfillOrder() {
	orderID, ok := s.prompt("Enter order ID to fulfill: ")
	if !ok {
		return
	}
	if err := s.orders.Fulfill(orderID); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Order '%s' has been fulfilled.\n", orderID)
}

func (s *Session) viewOrders() {
	orders, err := s.orders.List()
	if err != nil {
		s.report(err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(s.out, "No orders available.")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(s.out, "Order ID: %s, Item: %s, Quantity: %d, Status: %s\n", o.OrderID, o.ItemName, o.Quantity, o.Status)
	}
}

// report renders a recoverable domain error; the session loop continues.
func (s *Session) report(err error) {
	fmt.Fprintf(s.out, "Error: %s.\n", err)
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptInt keeps asking until a non-negative integer is entered.
func (s *Session) promptInt(label string) (int, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fmt.Fprintln(s.out, "Please enter a non-negative whole number.")
			continue
		}
		return n, true
	}
}

// promptDecimal keeps asking until a non-negative decimal is entered.
func (s *Session) promptDecimal(label string) (decimal.Decimal, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			fmt.Fprintln(s.out, "Please enter a non-negative price.")
			continue
		}
		return d, true
	}
}
