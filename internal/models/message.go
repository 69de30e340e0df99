package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SourcePredefined = "predefined"
	SourceRAG        = "rag"
)

// Message is one chat turn. Rows are append-only; nothing updates them after
// insert.
type Message struct {
	ID     uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"column:user_id;index;not null" json:"user_id"`

	Question string `gorm:"column:question;type:text;not null" json:"question"`
	// Lowercased, whitespace-collapsed copy of Question, used for the
	// top-questions grouping in admin stats.
	QuestionNormalized string `gorm:"column:question_normalized;type:text;index" json:"-"`

	Answer string `gorm:"column:answer;type:text;not null" json:"answer"`
	Source string `gorm:"column:source;type:text" json:"source"` // "predefined" | "rag"

	// RAG source attribution (urls/titles of retrieved chunks).
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	Timestamp time.Time `gorm:"column:timestamp;index" json:"timestamp"`
}

func (Message) TableName() string { return "messages" }

// QuestionCount is one row of the admin top-questions ranking.
type QuestionCount struct {
	Question string `json:"question"`
	Count    int64  `json:"count"`
}
