package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the inventory store. Default is an in-memory SQLite database,
// so all stock and order state lives for the duration of the process only.
// Set MYSQL_DSN (or the MYSQL_* vars) to back the tool with MySQL instead.
func NewDB() (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode(),
			Colorful:      true,
		},
	)

	if dsn := mysqlDSN(); dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	}

	dsn := os.Getenv("SQLITE_DSN")
	if dsn == "" {
		dsn = ":memory:"
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger})
}

func mysqlDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASS")
	port := os.Getenv("MYSQL_PORT")
	db := os.Getenv("MYSQL_DB")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
}

// logMode keeps gorm quiet during an interactive session unless Debug is on;
// GORM_LOG overrides either way.
func logMode() logger.LogLevel {
	switch os.Getenv("GORM_LOG") {
	case "on":
		return logger.Info
	case "off":
		return logger.Silent
	}
	if AppConfig != nil && AppConfig.Debug {
		return logger.Info
	}
	return logger.Silent
}
