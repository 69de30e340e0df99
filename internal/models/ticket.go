package models

import "time"

const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

type SupportTicket struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Subject   string    `gorm:"column:subject;type:text;not null" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Status    string    `gorm:"column:status;type:text;default:open" json:"status"` // "open" | "closed"
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SupportTicket) TableName() string { return "support_tickets" }
