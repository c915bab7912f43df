package entity

import "fmt"

// ItemNotFoundError reports a catalog lookup for an unknown item ID.
type ItemNotFoundError struct {
	ItemID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item with ID '%s' not found", e.ItemID)
}

// OrderNotFoundError reports an order ledger lookup for an unknown order ID.
type OrderNotFoundError struct {
	OrderID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order with ID '%s' not found", e.OrderID)
}

// AccessDeniedError reports a role-gated operation attempted by the wrong role.
type AccessDeniedError struct {
	ActualRole   Role
	RequiredRole Role
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: %ss are not authorized to perform this operation", e.ActualRole)
}

// InsufficientStockError reports an order request exceeding available stock.
// The referenced item is left untouched.
type InsufficientStockError struct {
	ItemName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for '%s': only %d units available, %d requested", e.ItemName, e.Available, e.Requested)
}

// DuplicateOrderError reports an order ID that already exists in the ledger.
// Duplicate IDs are rejected outright; overwriting would lose the stock
// reserved by the superseded order.
type DuplicateOrderError struct {
	OrderID string
}

func (e *DuplicateOrderError) Error() string {
	return fmt.Sprintf("order with ID '%s' already exists", e.OrderID)
}
