package memory

import (
	"context"
	"sort"

	"sponsorly_backend/internal/models"
)

type MessageRepository struct {
	db *db
}

func (r *MessageRepository) Create(_ context.Context, msg *models.Message) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.stamp(&msg.BaseModel)
	if msg.Timestamp.IsZero() {
		msg.Timestamp = msg.CreatedAt
	}
	stored := *msg
	r.db.messages = append(r.db.messages, &stored)
	return nil
}

func (r *MessageRepository) FindBetween(_ context.Context, userID, otherID string) ([]models.Message, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []models.Message
	for _, m := range r.db.messages {
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *MessageRepository) FindByParticipant(_ context.Context, userID string) ([]models.Message, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []models.Message
	for i := len(r.db.messages) - 1; i >= 0; i-- {
		if m := r.db.messages[i]; m.Involves(userID) {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *MessageRepository) MarkRead(_ context.Context, receiverID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int64
	now := r.db.now()
	for _, m := range r.db.messages {
		if _, ok := wanted[m.ID]; !ok {
			continue
		}
		if m.ReceiverID == receiverID && !m.Read {
			m.Read = true
			m.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func (r *MessageRepository) CountUnread(_ context.Context, receiverID string) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var n int64
	for _, m := range r.db.messages {
		if m.ReceiverID == receiverID && !m.Read {
			n++
		}
	}
	return n, nil
}

func (r *MessageRepository) DeleteAll(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n := int64(len(r.db.messages))
	r.db.messages = nil
	return n, nil
}
