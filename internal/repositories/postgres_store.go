package repositories

import (
	"context"

	"gorm.io/gorm"
)

// NewPostgresStore собирает Store поверх открытого gorm-подключения
func NewPostgresStore(db *gorm.DB) *Store {
	return NewStore(
		"postgres",
		NewUserRepository(db),
		NewMessageRepository(db),
		NewSupportTicketRepository(db),
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	)
}
