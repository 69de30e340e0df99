package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSnapshot is the raw text of a scraped page, archived in MongoDB so
// pages can be re-chunked without re-fetching. Snapshots expire via a TTL
// index on ExpiresAt.
type PageSnapshot struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL         string             `bson:"url" json:"url"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Text        string             `bson:"text" json:"text"`
	ChunkCount  int                `bson:"chunk_count" json:"chunk_count"`
	FetchedAt   time.Time          `bson:"fetched_at" json:"fetched_at"`
	ExpiresAt   time.Time          `bson:"expires_at" json:"expires_at"` // for TTL index
}
