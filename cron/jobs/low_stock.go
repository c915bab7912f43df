package jobs

import (
	"log"
	"strconv"

	"github.com/acharyaarish/Inventory-Management/config"
	"github.com/acharyaarish/Inventory-Management/cron"
	inventoryEntity "github.com/acharyaarish/Inventory-Management/model/entity/inventory"
	inventoryRepo "github.com/acharyaarish/Inventory-Management/model/repository/inventory"
)

func init() {
	cron.Register("lowstockalert", "@every 1h", LowStockAlert)
}

// LowStockAlert logs every item below the configured threshold. An optional
// first argument overrides the threshold. Only useful against a shared MySQL
// backend; with the default in-memory store the job sees an empty catalog.
func LowStockAlert(args ...string) {
	config.LoadAppConfig()
	threshold := config.AppConfig.LowStockThreshold
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n >= 0 {
			threshold = n
		}
	}

	db, err := config.NewDB()
	if err != nil {
		log.Printf("lowstockalert: database connection failed: %v", err)
		return
	}
	if err := db.AutoMigrate(&inventoryEntity.InventoryItem{}); err != nil {
		log.Printf("lowstockalert: migrate failed: %v", err)
		return
	}

	items, err := inventoryRepo.NewInventoryRepository(db).LowStock(threshold)
	if err != nil {
		log.Printf("lowstockalert: query failed: %v", err)
		return
	}
	if len(items) == 0 {
		log.Printf("lowstockalert: all items have sufficient stock (threshold %d)", threshold)
		return
	}
	log.Printf("lowstockalert: %d item(s) below threshold %d", len(items), threshold)
	for _, item := range items {
		log.Printf("  %s", item)
	}
}
