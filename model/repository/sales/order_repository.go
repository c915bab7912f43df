package sales

import (
	"errors"

	"gorm.io/gorm"

	"github.com/acharyaarish/Inventory-Management/core/cache"
	entity "github.com/acharyaarish/Inventory-Management/model/entity"
	inventoryEntity "github.com/acharyaarish/Inventory-Management/model/entity/inventory"
	salesEntity "github.com/acharyaarish/Inventory-Management/model/entity/sales"
	inventoryRepo "github.com/acharyaarish/Inventory-Management/model/repository/inventory"
)

// OrderRepository is the authoritative ledger of orders. Orders are never
// deleted; their status only advances Created -> Fulfilled.
type OrderRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewOrderRepository shares the catalog cache of the same store handle, so
// order creation can invalidate catalog reads after decrementing stock.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db, cache: cache.ForStore(db)}
}

// Create reserves stock for a new order in one transaction: the referenced
// item's quantity is decremented by the ordered quantity and the order row is
// inserted with status Created, or neither happens. A duplicate order ID is
// rejected; overwriting would strand the stock the superseded order reserved.
func (r *OrderRepository) Create(orderID, itemID string, quantity int) (*salesEntity.Order, error) {
	var order salesEntity.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing salesEntity.Order
		err := tx.First(&existing, "order_id = ?", orderID).Error
		if err == nil {
			return &entity.DuplicateOrderError{OrderID: orderID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var item inventoryEntity.InventoryItem
		err = tx.First(&item, "item_id = ?", itemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.ItemNotFoundError{ItemID: itemID}
		}
		if err != nil {
			return err
		}

		if quantity > item.Quantity {
			return &entity.InsufficientStockError{
				ItemName:  item.Name,
				Available: item.Quantity,
				Requested: quantity,
			}
		}

		err = tx.Model(&inventoryEntity.InventoryItem{}).
			Where("item_id = ?", itemID).
			Update("quantity", item.Quantity-quantity).Error
		if err != nil {
			return err
		}

		order = salesEntity.Order{
			OrderID:  orderID,
			ItemID:   item.ItemID,
			ItemName: item.Name,
			Quantity: quantity,
			Status:   salesEntity.StatusCreated,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	r.cache.DeleteByTag(inventoryRepo.TagCatalog)
	return &order, nil
}

// Fulfill marks the order Fulfilled. Fulfilling an already-fulfilled order is
// a silent no-op; the status never goes back to Created.
func (r *OrderRepository) Fulfill(orderID string) error {
	var order salesEntity.Order
	err := r.db.First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.OrderNotFoundError{OrderID: orderID}
	}
	if err != nil {
		return err
	}
	return r.db.Model(&order).Update("status", salesEntity.StatusFulfilled).Error
}

// List returns all orders ordered by order_id. An empty ledger yields an
// empty slice, not an error.
func (r *OrderRepository) List() ([]salesEntity.Order, error) {
	var orders []salesEntity.Order
	err := r.db.Order("order_id").Find(&orders).Error
	return orders, err
}
