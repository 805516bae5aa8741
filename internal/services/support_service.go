package services

import (
	"context"
	"strings"

	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/services/dto"
	"sponsorly_backend/pkg/apperrors"
)

type SupportService interface {
	CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (*models.SupportTicket, error)
	ListTickets(ctx context.Context, email string) ([]models.SupportTicket, error)
}

type SupportServiceImpl struct {
	ticketRepo repositories.SupportTicketRepository
}

func NewSupportService(ticketRepo repositories.SupportTicketRepository) SupportService {
	return &SupportServiceImpl{ticketRepo: ticketRepo}
}

func (s *SupportServiceImpl) CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (*models.SupportTicket, error) {
	ticket := &models.SupportTicket{
		Name:    strings.TrimSpace(req.Name),
		Email:   models.NormalizeEmail(req.Email),
		Message: strings.TrimSpace(req.Message),
		Status:  models.TicketStatusOpen,
	}
	if ticket.Name == "" || ticket.Email == "" || ticket.Message == "" {
		return nil, apperrors.NewBadRequestError("Name, email and message are required")
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "support ticket created", "ticket_id", ticket.ID)
	return ticket, nil
}

func (s *SupportServiceImpl) ListTickets(ctx context.Context, email string) ([]models.SupportTicket, error) {
	tickets, err := s.ticketRepo.ListByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tickets, nil
}
