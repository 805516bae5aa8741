package repositories

import (
	"context"

	"sponsorly_backend/internal/models"

	"gorm.io/gorm"
)

type SupportTicketRepositoryImpl struct {
	db *gorm.DB
}

func NewSupportTicketRepository(db *gorm.DB) SupportTicketRepository {
	return &SupportTicketRepositoryImpl{db: db}
}

func (r *SupportTicketRepositoryImpl) Create(ctx context.Context, ticket *models.SupportTicket) error {
	ticket.Email = models.NormalizeEmail(ticket.Email)
	if ticket.Status == "" {
		ticket.Status = models.TicketStatusOpen
	}
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *SupportTicketRepositoryImpl) ListByEmail(ctx context.Context, email string) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(email)).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}
