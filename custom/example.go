package custom

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acharyaarish/Inventory-Management/cmd"
	"github.com/acharyaarish/Inventory-Management/config"
)

func init() {
	// CLI extension: list the configured login roster.
	cmd.Register(&cobra.Command{
		Use:   "roster:list",
		Short: "Show the configured login accounts and their roles",
		Run: func(c *cobra.Command, args []string) {
			for _, u := range config.DefaultRoster() {
				fmt.Printf("%-10s %s\n", u.Username, u.Role)
			}
		},
	})
}
