package repositories

import (
	"context"
	"errors"

	"sponsorly_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserFilter описывает выборку для discover-запросов.
// Пустая роль означает "любая роль".
type UserFilter struct {
	Role         models.UserRole
	ExcludeEmail string
	Offset       int
	Limit        int
}

type UserRepository interface {
	// Create атомарно проверяет уникальность email (ErrUserAlreadyExists)
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByIDs возвращает найденных пользователей; отсутствующие ID пропускаются
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) (*models.User, error)
	// Discover возвращает страницу пользователей (по created_at) и общее число совпадений
	Discover(ctx context.Context, filter UserFilter) ([]models.User, int64, error)

	// Обслуживание (cmd/maintenance)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, email string) (bool, error)
	DeleteWithoutLocation(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	// FindBetween - переписка пары в обе стороны, по возрастанию времени
	FindBetween(ctx context.Context, userID, otherID string) ([]models.Message, error)
	// FindByParticipant - все сообщения пользователя, по убыванию времени
	FindByParticipant(ctx context.Context, userID string) ([]models.Message, error)
	// MarkRead одним обновлением помечает прочитанными непрочитанные сообщения
	// из ids, адресованные receiverID. Возвращает число измененных записей.
	MarkRead(ctx context.Context, receiverID string, ids []string) (int64, error)
	CountUnread(ctx context.Context, receiverID string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	ListByEmail(ctx context.Context, email string) ([]models.SupportTicket, error)
}

// Store объединяет репозитории одного бэкенда (postgres, mongo, memory)
type Store struct {
	Driver   string
	Users    UserRepository
	Messages MessageRepository
	Tickets  SupportTicketRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func NewStore(
	driver string,
	users UserRepository,
	messages MessageRepository,
	tickets SupportTicketRepository,
	ping func(ctx context.Context) error,
	closeFn func(ctx context.Context) error,
) *Store {
	return &Store{
		Driver:   driver,
		Users:    users,
		Messages: messages,
		Tickets:  tickets,
		ping:     ping,
		close:    closeFn,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
