package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sharpfade/barbershop-api/internal/config"
	"github.com/sharpfade/barbershop-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.WorkingHours{},
		&models.Client{},
		&models.Booking{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
		&models.PasswordResetToken{},
	); err != nil {
		zap.L().Fatal("failed to migrate", zap.Error(err))
	}

	db.Exec(`
        UPDATE barbershops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone)

	// Database-level guard against double booking: at most one active
	// booking per barber and start time. The create path still re-checks
	// inside a transaction; this index closes the race between the two.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
        ON bookings (barber_id, start_time)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
