package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/utils"
)

type PageRepository interface {
	SavePage(ctx context.Context, snap *models.PageSnapshot) error
	GetByURL(ctx context.Context, url string) (*models.PageSnapshot, error)
	List(ctx context.Context, limit int) ([]models.PageSnapshot, error)
}

type pageRepo struct {
	col *mongo.Collection
}

func NewPageRepo(db *mongo.Database) PageRepository {
	return &pageRepo{col: db.Collection("page_archive")}
}

// SavePage upserts by URL so a re-scrape overwrites the previous snapshot.
func (r *pageRepo) SavePage(ctx context.Context, snap *models.PageSnapshot) error {
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now().UTC()
	}
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"url": snap.URL},
		snap,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *pageRepo) GetByURL(ctx context.Context, url string) (*models.PageSnapshot, error) {
	var snap models.PageSnapshot
	err := r.col.FindOne(ctx, bson.M{"url": url}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &snap, err
}

func (r *pageRepo) List(ctx context.Context, limit int) ([]models.PageSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "fetched_at", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var snaps []models.PageSnapshot
	if err := cur.All(ctx, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}
