package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName           string
	Debug             bool
	LowStockThreshold int
	// Add more fields as needed
}

const defaultLowStockThreshold = 5

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:           os.Getenv("APP_NAME"),
			Debug:             os.Getenv("DEBUG") == "true",
			LowStockThreshold: lowStockThreshold(),
		}
	})
}

func lowStockThreshold() int {
	raw := os.Getenv("LOW_STOCK_THRESHOLD")
	if raw == "" {
		return defaultLowStockThreshold
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultLowStockThreshold
	}
	return n
}
