package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mindspace-care/mindspace-api/internal/config"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Therapist{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// One confirmed session per user per calendar date. This partial
	// index is the authoritative guard behind the optimistic pre-check;
	// AutoMigrate cannot express the WHERE clause.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_confirmed_user_date
        ON bookings (user_id, session_date)
        WHERE status = 'confirmed'
    `)

	return db
}
