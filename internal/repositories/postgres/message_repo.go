package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/davrk/leadbot/internal/models"
)

type MessageRepository interface {
	Insert(ctx context.Context, m *models.Message) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.Message, error)
	Recent(ctx context.Context, limit int) ([]models.Message, error)
	TopQuestions(ctx context.Context, limit int) ([]models.QuestionCount, error)
	Count(ctx context.Context) (int64, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Insert(ctx context.Context, m *models.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []models.Message
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *messageRepo) Recent(ctx context.Context, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []models.Message
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// TopQuestions groups by the normalized question text, most frequent first,
// ties broken by whichever question was seen first.
func (r *messageRepo) TopQuestions(ctx context.Context, limit int) ([]models.QuestionCount, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []models.QuestionCount
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Select("question_normalized AS question, COUNT(*) AS count, MIN(id) AS first_seen").
		Group("question_normalized").
		Order("count DESC, first_seen ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *messageRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).Count(&n).Error
	return n, err
}
