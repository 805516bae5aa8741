package models

type SupportTicket struct {
	BaseModel
	Name    string       `gorm:"not null" json:"name"`
	Email   string       `gorm:"not null;index" json:"email"`
	Message string       `gorm:"type:text;not null" json:"message"`
	Status  TicketStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
}
