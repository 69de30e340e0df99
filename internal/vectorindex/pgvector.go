package vectorindex

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/davrk/leadbot/internal/models"
)

// PgIndex keeps chunks in the content_chunks table and delegates
// nearest-neighbor search to the pgvector extension.
type PgIndex struct {
	db *gorm.DB
}

func NewPgIndex(db *gorm.DB) *PgIndex {
	return &PgIndex{db: db}
}

func (x *PgIndex) ReplacePage(ctx context.Context, pageURL string, chunks []models.ContentChunk) error {
	return x.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("page_url = ?", pageURL).Delete(&models.ContentChunk{}).Error; err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		return tx.Create(&chunks).Error
	})
}

type searchRow struct {
	models.ContentChunk
	Distance float64 `gorm:"column:distance"`
}

func (x *PgIndex) Search(ctx context.Context, embedding []float32, topK int) ([]Hit, error) {
	if topK <= 0 {
		topK = 3
	}

	var rows []searchRow
	err := x.db.WithContext(ctx).
		Raw(`SELECT *, embedding <=> ? AS distance
		     FROM content_chunks
		     ORDER BY distance ASC
		     LIMIT ?`, pgvector.NewVector(embedding), topK).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(rows))
	for _, r := range rows {
		// <=> is cosine distance; flip it into a similarity.
		hits = append(hits, Hit{Chunk: r.ContentChunk, Similarity: 1 - r.Distance})
	}
	return hits, nil
}

func (x *PgIndex) Count(ctx context.Context) (int64, error) {
	var n int64
	err := x.db.WithContext(ctx).Model(&models.ContentChunk{}).Count(&n).Error
	return n, err
}
