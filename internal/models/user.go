package models

import "time"

// User is a captured lead: anyone who registered through the chat widget.
type User struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	Email      string    `gorm:"column:email;type:text;uniqueIndex;not null" json:"email"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	LastActive time.Time `gorm:"column:last_active;index" json:"last_active"`
}

func (User) TableName() string { return "users" }

// Lead is a User joined with its message count for the admin dashboard.
type Lead struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MessageCount int64     `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	LastActive   time.Time `json:"last_active"`
}
