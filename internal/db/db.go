package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/config"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Company{},
		&models.Customer{},
		&models.Employee{},
		&models.Service{},
		&models.Product{},
		&models.PaymentMethod{},
		&models.PaymentTerm{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AppointmentProduct{},
		&models.Voucher{},
		&models.CommissionRule{},
		&models.CommissionRecord{},
		&models.StockLevel{},
		&models.StockMovement{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Empresas antigas podem não ter fuso configurado
	db.Exec(`
        UPDATE companies
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
