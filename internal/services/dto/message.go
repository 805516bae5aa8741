package dto

import (
	"time"

	"sponsorly_backend/internal/models"
)

type SendMessageRequest struct {
	ReceiverEmail string `json:"receiverEmail" validate:"required,email"`
	Content       string `json:"content" validate:"required,max=5000"`
}

type ConversationRequest struct {
	OtherUserEmail string `json:"otherUserEmail" validate:"required,email"`
}

// Participant - развернутая ссылка на отправителя или получателя
type Participant struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func NewParticipant(u *models.User) Participant {
	return Participant{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

type MessageResponse struct {
	ID        string      `json:"id"`
	Sender    Participant `json:"sender"`
	Receiver  Participant `json:"receiver"`
	Content   string      `json:"content"`
	Read      bool        `json:"read"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewMessageResponse(m *models.Message, sender, receiver Participant) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Sender:    sender,
		Receiver:  receiver,
		Content:   m.Content,
		Read:      m.Read,
		Timestamp: m.Timestamp,
	}
}

type ConversationResponse struct {
	OtherUser   Participant     `json:"otherUser"`
	LastMessage MessageResponse `json:"lastMessage"`
	UnreadCount int             `json:"unreadCount"`
}

type MessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type ConversationsResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
