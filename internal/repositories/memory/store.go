// Package memory - хранилище в памяти процесса для локального запуска и тестов.
// Данные не переживают перезапуск.
package memory

import (
	"context"
	"sync"
	"time"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"

	"github.com/google/uuid"
)

type db struct {
	mu sync.RWMutex

	users      map[string]*models.User // id -> user
	emailIndex map[string]string       // email -> id
	userSeq    map[string]int64        // id -> порядок вставки
	seq        int64                   // счетчик вставок
	messages   []*models.Message       // в порядке вставки
	tickets    []*models.SupportTicket

	now func() time.Time
}

// NewStore возвращает Store, все репозитории которого разделяют одну память
func NewStore() *repositories.Store {
	d := &db{
		users:      make(map[string]*models.User),
		emailIndex: make(map[string]string),
		userSeq:    make(map[string]int64),
		now:        func() time.Time { return time.Now().UTC() },
	}
	return repositories.NewStore(
		"memory",
		&UserRepository{db: d},
		&MessageRepository{db: d},
		&SupportTicketRepository{db: d},
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
	)
}

func (d *db) stamp(base *models.BaseModel) {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	now := d.now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func cloneUser(u *models.User) models.User {
	cp := *u
	if u.Links != nil {
		cp.Links = append(cp.Links[:0:0], u.Links...)
	}
	if u.DOB != nil {
		dob := *u.DOB
		cp.DOB = &dob
	}
	return cp
}
