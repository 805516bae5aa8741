package memory

import (
	"context"

	"sponsorly_backend/internal/models"
)

type SupportTicketRepository struct {
	db *db
}

func (r *SupportTicketRepository) Create(_ context.Context, ticket *models.SupportTicket) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.stamp(&ticket.BaseModel)
	ticket.Email = models.NormalizeEmail(ticket.Email)
	if ticket.Status == "" {
		ticket.Status = models.TicketStatusOpen
	}
	stored := *ticket
	r.db.tickets = append(r.db.tickets, &stored)
	return nil
}

func (r *SupportTicketRepository) ListByEmail(_ context.Context, email string) ([]models.SupportTicket, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	email = models.NormalizeEmail(email)
	var out []models.SupportTicket
	for i := len(r.db.tickets) - 1; i >= 0; i-- {
		if t := r.db.tickets[i]; t.Email == email {
			out = append(out, *t)
		}
	}
	return out, nil
}
