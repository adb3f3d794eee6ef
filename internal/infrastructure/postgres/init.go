package postgres

import (
	"log"

	"github.com/dukalink/dukalink-escrow-service/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.EscrowConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.EscrowDB.Dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v\n", err.Error())
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping db: %v\n", err.Error())
	}

	return db
}
