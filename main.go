package main

import (
	_ "github.com/acharyaarish/Inventory-Management/custom"

	"github.com/acharyaarish/Inventory-Management/cmd"
	"github.com/acharyaarish/Inventory-Management/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
