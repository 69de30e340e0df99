package models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingDim is the dimensionality of all stored and query embeddings.
// Changing it requires re-ingesting the whole index.
const EmbeddingDim = 256

// ContentChunk is one embedded slice of a scraped page. The ID is derived
// deterministically from (page URL, position) so re-ingesting a page
// replaces its rows instead of duplicating them.
type ContentChunk struct {
	ID        string          `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PageURL   string          `gorm:"column:page_url;type:text;index" json:"page_url"`
	PageTitle string          `gorm:"column:page_title;type:text" json:"page_title"`
	Position  int             `gorm:"column:position;type:integer" json:"position"`
	Content   string          `gorm:"column:content;type:text" json:"content"`
	Embedding pgvector.Vector `gorm:"column:embedding;type:vector(256)" json:"-"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (ContentChunk) TableName() string { return "content_chunks" }
