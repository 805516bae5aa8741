package mongo

import (
	"context"
	"fmt"
	"time"

	"sponsorly_backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongoopts "go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ticketDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Message   string        `bson:"message"`
	Status    string        `bson:"status"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

type SupportTicketRepository struct {
	coll *mongo.Collection
	opts *options
}

func (r *SupportTicketRepository) Create(ctx context.Context, ticket *models.SupportTicket) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	now := time.Now().UTC()
	ticket.Email = models.NormalizeEmail(ticket.Email)
	if ticket.Status == "" {
		ticket.Status = models.TicketStatusOpen
	}
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	doc := &ticketDoc{
		ID:        bson.NewObjectID(),
		Name:      ticket.Name,
		Email:     ticket.Email,
		Message:   ticket.Message,
		Status:    string(ticket.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert support ticket: %w", err)
	}
	ticket.ID = doc.ID.Hex()
	return nil
}

func (r *SupportTicketRepository) ListByEmail(ctx context.Context, email string) ([]models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"email": models.NormalizeEmail(email)}, opts)
	if err != nil {
		return nil, fmt.Errorf("find support tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ticketDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode support tickets: %w", err)
	}

	out := make([]models.SupportTicket, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.SupportTicket{
			BaseModel: models.BaseModel{ID: d.ID.Hex(), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
			Name:      d.Name,
			Email:     d.Email,
			Message:   d.Message,
			Status:    models.TicketStatus(d.Status),
		})
	}
	return out, nil
}
