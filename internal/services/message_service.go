package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/services/dto"
	"sponsorly_backend/pkg/apperrors"
)

// deletedUserKey - ключ группы для сообщений, собеседник которых удален.
// Пустой email не может принадлежать существующему пользователю.
const deletedUserKey = ""

var deletedParticipant = dto.Participant{
	FirstName: "Deleted",
	LastName:  "User",
}

type MessageService interface {
	SendMessage(ctx context.Context, senderEmail, receiverEmail, content string) (*dto.MessageResponse, error)
	// GetMessages возвращает переписку пары по возрастанию времени и помечает
	// прочитанными входящие сообщения от собеседника
	GetMessages(ctx context.Context, userEmail, otherUserEmail string) ([]dto.MessageResponse, error)
	GetConversations(ctx context.Context, userEmail string) ([]dto.ConversationResponse, error)
	GetUnreadCount(ctx context.Context, userEmail string) (int64, error)
}

type MessageServiceImpl struct {
	userRepo    repositories.UserRepository
	messageRepo repositories.MessageRepository
	now         func() time.Time
}

type MessageOption func(*MessageServiceImpl)

// WithClock подменяет источник времени для меток сообщений
func WithClock(now func() time.Time) MessageOption {
	return func(s *MessageServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

func NewMessageService(
	userRepo repositories.UserRepository,
	messageRepo repositories.MessageRepository,
	opts ...MessageOption,
) MessageService {
	s := &MessageServiceImpl{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MessageServiceImpl) SendMessage(ctx context.Context, senderEmail, receiverEmail, content string) (*dto.MessageResponse, error) {
	senderEmail = models.NormalizeEmail(senderEmail)
	receiverEmail = models.NormalizeEmail(receiverEmail)
	if senderEmail == "" || receiverEmail == "" || content == "" {
		return nil, apperrors.ErrMissingFields
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyContent
	}
	if senderEmail == receiverEmail {
		return nil, apperrors.ErrSelfMessage
	}

	sender, err := s.resolveUser(ctx, senderEmail, apperrors.ErrSenderNotFound)
	if err != nil {
		return nil, err
	}
	receiver, err := s.resolveUser(ctx, receiverEmail, apperrors.ErrReceiverNotFound)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
		Read:       false,
		Timestamp:  s.now(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "message sent", "message_id", msg.ID, "receiver_id", receiver.ID)

	resp := dto.NewMessageResponse(msg, dto.NewParticipant(sender), dto.NewParticipant(receiver))
	return &resp, nil
}

func (s *MessageServiceImpl) GetMessages(ctx context.Context, userEmail, otherUserEmail string) ([]dto.MessageResponse, error) {
	userEmail = models.NormalizeEmail(userEmail)
	otherUserEmail = models.NormalizeEmail(otherUserEmail)
	if userEmail == "" || otherUserEmail == "" {
		return nil, apperrors.ErrMissingUserEmail
	}

	user, err := s.resolveUser(ctx, userEmail, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	other, err := s.resolveUser(ctx, otherUserEmail, apperrors.ErrOtherUserNotFound)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindBetween(ctx, user.ID, other.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Помечаем только то, что пользователь сейчас видит: сообщение,
	// пришедшее после выборки, останется непрочитанным
	var unreadIDs []string
	for i := range messages {
		m := &messages[i]
		if m.ReceiverID == user.ID && m.SenderID == other.ID && !m.Read {
			unreadIDs = append(unreadIDs, m.ID)
		}
	}

	if len(unreadIDs) > 0 {
		marked, err := s.messageRepo.MarkRead(ctx, user.ID, unreadIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		for i := range messages {
			m := &messages[i]
			if m.ReceiverID == user.ID && m.SenderID == other.ID {
				m.Read = true
			}
		}
		logger.CtxInfo(ctx, "conversation marked as read", "other_user_id", other.ID, "marked", marked)
	}

	participants := map[string]dto.Participant{
		user.ID:  dto.NewParticipant(user),
		other.ID: dto.NewParticipant(other),
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		m := &messages[i]
		out = append(out, dto.NewMessageResponse(m, participants[m.SenderID], participants[m.ReceiverID]))
	}
	return out, nil
}

type conversationAcc struct {
	other  dto.Participant
	last   *models.Message
	unread int
}

func (s *MessageServiceImpl) GetConversations(ctx context.Context, userEmail string) ([]dto.ConversationResponse, error) {
	userEmail = models.NormalizeEmail(userEmail)
	if userEmail == "" {
		return nil, apperrors.ErrMissingUserEmail
	}

	user, err := s.resolveUser(ctx, userEmail, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	// По убыванию времени: первое сообщение группы обычно и есть последнее
	messages, err := s.messageRepo.FindByParticipant(ctx, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	partners, err := s.partnersOf(ctx, user.ID, messages)
	if err != nil {
		return nil, err
	}

	self := dto.NewParticipant(user)
	groups := make(map[string]*conversationAcc)
	var order []*conversationAcc

	for i := range messages {
		m := &messages[i]

		key, other := deletedUserKey, deletedParticipant
		if partner, ok := partners[m.Partner(user.ID)]; ok {
			key, other = partner.Email, dto.NewParticipant(partner)
		}

		acc, seen := groups[key]
		if !seen {
			acc = &conversationAcc{other: other, last: m}
			groups[key] = acc
			order = append(order, acc)
		} else if m.Timestamp.After(acc.last.Timestamp) {
			// хранилище не обязано отдавать строго упорядоченный список
			acc.last = m
		}

		if m.ReceiverID == user.ID && !m.Read {
			acc.unread++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].last.Timestamp.After(order[j].last.Timestamp)
	})

	out := make([]dto.ConversationResponse, 0, len(order))
	for _, acc := range order {
		sender, receiver := self, acc.other
		if acc.last.SenderID != user.ID {
			sender, receiver = acc.other, self
		}
		out = append(out, dto.ConversationResponse{
			OtherUser:   acc.other,
			LastMessage: dto.NewMessageResponse(acc.last, sender, receiver),
			UnreadCount: acc.unread,
		})
	}
	return out, nil
}

func (s *MessageServiceImpl) GetUnreadCount(ctx context.Context, userEmail string) (int64, error) {
	userEmail = models.NormalizeEmail(userEmail)
	if userEmail == "" {
		return 0, apperrors.ErrMissingUserEmail
	}

	user, err := s.resolveUser(ctx, userEmail, apperrors.ErrUserNotFound)
	if err != nil {
		return 0, err
	}

	count, err := s.messageRepo.CountUnread(ctx, user.ID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

// resolveUser находит пользователя по email; отсутствие превращается в notFound
func (s *MessageServiceImpl) resolveUser(ctx context.Context, email string, notFound *apperrors.AppError) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, notFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// partnersOf загружает собеседников одним запросом; удаленные в карту не попадают
func (s *MessageServiceImpl) partnersOf(ctx context.Context, userID string, messages []models.Message) (map[string]*models.User, error) {
	seen := make(map[string]struct{})
	var ids []string
	for i := range messages {
		id := messages[i].Partner(userID)
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	partners := make(map[string]*models.User, len(users))
	for i := range users {
		partners[users[i].ID] = &users[i]
	}
	return partners, nil
}
