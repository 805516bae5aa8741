package database

import (
	"context"
	"fmt"
	"time"

	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect открывает gorm-подключение к Postgres и проверяет его ping'ом.
// TranslateError нужен репозиториям: нарушение уникального индекса
// приходит как gorm.ErrDuplicatedKey.
func Connect(ctx context.Context, dsn string, debug bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	return db, nil
}

// AutoMigrate создает или обновляет таблицы users, messages, support_tickets
func AutoMigrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.SupportTicket{},
	)
	logger.StoreLog("postgres", "auto_migrate", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
