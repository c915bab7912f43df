package sales

// OrderStatus is the order lifecycle: Created advances to Fulfilled and never
// regresses. There is no cancelled state.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "Created"
	StatusFulfilled OrderStatus = "Fulfilled"
)

// Order represents one row of the sales_order table. ItemName is a snapshot
// taken at creation so listings keep working after the catalog item is
// deleted; the ledger never owns the item itself.
type Order struct {
	OrderID  string      `gorm:"column:order_id;type:varchar(64);primaryKey" json:"order_id"`
	ItemID   string      `gorm:"column:item_id;type:varchar(64);not null" json:"item_id"`
	ItemName string      `gorm:"column:item_name;type:varchar(255);not null" json:"item_name"`
	Quantity int         `gorm:"column:quantity;not null" json:"quantity"`
	Status   OrderStatus `gorm:"column:status;type:varchar(16);not null;default:'Created'" json:"status"`
}

func (Order) TableName() string {
	return "sales_order"
}
