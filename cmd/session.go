package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/acharyaarish/Inventory-Management/config"
	inventoryRepo "github.com/acharyaarish/Inventory-Management/model/repository/inventory"
	salesRepo "github.com/acharyaarish/Inventory-Management/model/repository/sales"
	userRepo "github.com/acharyaarish/Inventory-Management/model/repository/user"
	"github.com/acharyaarish/Inventory-Management/service/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session:start",
	Short: "Log in and run the interactive inventory menu",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()

		config.InitRedis()
		if config.RedisClient != nil {
			if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err != nil {
				config.RedisClient = nil // Disable Redis if not reachable
				log.Println("Redis configured but not reachable, cache tier disabled.")
			} else {
				log.Println("Redis connection successful.")
			}
		}

		db, err := openDB()
		if err != nil {
			log.Fatalf("failed to open inventory store: %v", err)
		}

		roster := userRepo.NewRoster(config.DefaultRoster())
		s := session.New(
			roster,
			inventoryRepo.NewInventoryRepository(db),
			salesRepo.NewOrderRepository(db),
			config.AppConfig.LowStockThreshold,
			os.Stdin,
			os.Stdout,
		)
		s.Run()
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
