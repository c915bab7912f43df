package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/acharyaarish/Inventory-Management/config"
	inventoryRepo "github.com/acharyaarish/Inventory-Management/model/repository/inventory"
)

var reportThreshold int

var stockReportCmd = &cobra.Command{
	Use:   "stock:report",
	Short: "Print a one-shot low-stock report and exit",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		threshold := reportThreshold
		if threshold < 0 {
			threshold = config.AppConfig.LowStockThreshold
		}

		db, err := openDB()
		if err != nil {
			log.Fatalf("failed to open inventory store: %v", err)
		}

		items, err := inventoryRepo.NewInventoryRepository(db).LowStock(threshold)
		if err != nil {
			log.Fatalf("low-stock query failed: %v", err)
		}
		if len(items) == 0 {
			fmt.Println("All items have sufficient stock.")
			return
		}
		fmt.Println("Low stock alert for the following items:")
		for _, item := range items {
			fmt.Println(item)
		}
	},
}

func init() {
	stockReportCmd.Flags().IntVar(&reportThreshold, "threshold", -1, "Override the low-stock threshold (default from LOW_STOCK_THRESHOLD)")
	rootCmd.AddCommand(stockReportCmd)
}
