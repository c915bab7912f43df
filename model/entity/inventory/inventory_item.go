package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// surchargeRate is the fixed 10% GST applied to the stored price at display
// time only. The persisted UnitPrice is always surcharge-exclusive.
var surchargeRate = decimal.RequireFromString("1.10")

// InventoryItem represents one row of the inventory_item table. Quantity is
// never negative; ItemID is the unique key within the catalog.
type InventoryItem struct {
	ItemID    string          `gorm:"column:item_id;type:varchar(64);primaryKey" json:"item_id"`
	Name      string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"column:quantity;not null;default:0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(12,4);not null;default:0" json:"unit_price"`
}

func (InventoryItem) TableName() string {
	return "inventory_item"
}

// DisplayPrice returns the unit price with the GST surcharge applied.
func (i InventoryItem) DisplayPrice() decimal.Decimal {
	return i.UnitPrice.Mul(surchargeRate)
}

// String renders the item the way the session menu prints it.
func (i InventoryItem) String() string {
	return fmt.Sprintf("Item ID: %s, Name: %s, Quantity: %d, Price (with GST): $%s",
		i.ItemID, i.Name, i.Quantity, i.DisplayPrice().StringFixed(2))
}
