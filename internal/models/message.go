package models

import "time"

// Message - направленное сообщение между двумя пользователями.
// Пользователи связаны по ID без внешних ключей: удаление пользователя
// обслуживающим скриптом не трогает историю переписки.
type Message struct {
	BaseModel
	SenderID   string    `gorm:"type:uuid;not null;index:idx_messages_sender" json:"senderId"`
	ReceiverID string    `gorm:"type:uuid;not null;index:idx_messages_receiver_read,priority:1" json:"receiverId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Read       bool      `gorm:"column:is_read;not null;default:false;index:idx_messages_receiver_read,priority:2" json:"read"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}

// Involves сообщает, участвует ли пользователь в сообщении
func (m *Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}

// Partner возвращает ID второй стороны относительно userID
func (m *Message) Partner(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}
