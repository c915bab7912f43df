package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/acharyaarish/Inventory-Management/config"
	inventoryEntity "github.com/acharyaarish/Inventory-Management/model/entity/inventory"
	salesEntity "github.com/acharyaarish/Inventory-Management/model/entity/sales"
)

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory and order tracking tool",
}

// Execute runs the CLI after applying registered extension commands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// openDB connects to the configured store and migrates the two domain tables.
func openDB() (*gorm.DB, error) {
	db, err := config.NewDB()
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&inventoryEntity.InventoryItem{}, &salesEntity.Order{}); err != nil {
		return nil, err
	}
	return db, nil
}
