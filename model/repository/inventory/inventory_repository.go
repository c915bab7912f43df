package inventory

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/acharyaarish/Inventory-Management/core/cache"
	entity "github.com/acharyaarish/Inventory-Management/model/entity"
	inventoryEntity "github.com/acharyaarish/Inventory-Management/model/entity/inventory"
)

// TagCatalog marks cached catalog read results; every catalog mutation (and
// the stock decrement done by order creation) invalidates it.
const TagCatalog = "catalog"

// cacheTTL bounds staleness of the Redis tier across processes.
const cacheTTL = 60

// InventoryRepository is the authoritative catalog of inventory items.
type InventoryRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db, cache: cache.ForStore(db)}
}

// Add inserts the item, overwriting any existing item with the same ID.
// Last write wins; a duplicate ID is not an error.
func (r *InventoryRepository) Add(item *inventoryEntity.InventoryItem) error {
	err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(item).Error
	if err != nil {
		return err
	}
	r.cache.DeleteByTag(TagCatalog)
	return nil
}

// Delete removes the item with the given ID.
func (r *InventoryRepository) Delete(itemID string) error {
	res := r.db.Delete(&inventoryEntity.InventoryItem{}, "item_id = ?", itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &entity.ItemNotFoundError{ItemID: itemID}
	}
	r.cache.DeleteByTag(TagCatalog)
	return nil
}

// Update replaces quantity and unit price wholesale on an existing item.
func (r *InventoryRepository) Update(itemID string, quantity int, price decimal.Decimal) error {
	var item inventoryEntity.InventoryItem
	err := r.db.First(&item, "item_id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.ItemNotFoundError{ItemID: itemID}
	}
	if err != nil {
		return err
	}
	err = r.db.Model(&item).
		Updates(map[string]interface{}{"quantity": quantity, "unit_price": price}).Error
	if err != nil {
		return err
	}
	r.cache.DeleteByTag(TagCatalog)
	return nil
}

// Get returns the item with the given ID.
func (r *InventoryRepository) Get(itemID string) (*inventoryEntity.InventoryItem, error) {
	var item inventoryEntity.InventoryItem
	err := r.db.First(&item, "item_id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &entity.ItemNotFoundError{ItemID: itemID}
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchByName returns all items whose name matches case-insensitively
// (exact match, not substring), ordered by item_id. An empty result is not
// an error.
func (r *InventoryRepository) SearchByName(name string) ([]inventoryEntity.InventoryItem, error) {
	key := cache.MakeKey("search", name)
	var cached []inventoryEntity.InventoryItem
	if r.cache.GetJSON(key, &cached) {
		return cached, nil
	}

	var items []inventoryEntity.InventoryItem
	err := r.db.Where("LOWER(name) = LOWER(?)", name).Order("item_id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, items, cacheTTL, []string{TagCatalog})
	return items, nil
}

// LowStock returns all items with quantity strictly below the threshold,
// ordered by item_id.
func (r *InventoryRepository) LowStock(threshold int) ([]inventoryEntity.InventoryItem, error) {
	key := cache.MakeKey("lowstock", threshold)
	var cached []inventoryEntity.InventoryItem
	if r.cache.GetJSON(key, &cached) {
		return cached, nil
	}

	var items []inventoryEntity.InventoryItem
	err := r.db.Where("quantity < ?", threshold).Order("item_id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, items, cacheTTL, []string{TagCatalog})
	return items, nil
}
