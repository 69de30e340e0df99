package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/davrk/leadbot/internal/models"
)

type PredefinedRepository interface {
	Seed(ctx context.Context, qs []models.PredefinedQuestion) error
	All(ctx context.Context) ([]models.PredefinedQuestion, error)
}

type predefinedRepo struct {
	db *gorm.DB
}

func NewPredefinedRepo(db *gorm.DB) PredefinedRepository {
	return &predefinedRepo{db: db}
}

// Seed inserts the curated set, leaving already-present questions untouched.
func (r *predefinedRepo) Seed(ctx context.Context, qs []models.PredefinedQuestion) error {
	if len(qs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "question"}},
			DoNothing: true,
		}).
		Create(&qs).Error
}

func (r *predefinedRepo) All(ctx context.Context) ([]models.PredefinedQuestion, error) {
	var rows []models.PredefinedQuestion
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}
