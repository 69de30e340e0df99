package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/utils"
)

// smtpSettingsID pins the singleton row.
const smtpSettingsID = 1

type SettingsRepository interface {
	Get(ctx context.Context) (*models.SMTPSettings, error)
	Upsert(ctx context.Context, s *models.SMTPSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context) (*models.SMTPSettings, error) {
	var s models.SMTPSettings
	err := r.db.WithContext(ctx).Where("id = ?", smtpSettingsID).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *settingsRepo) Upsert(ctx context.Context, s *models.SMTPSettings) error {
	s.ID = smtpSettingsID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"sender_email", "recipient_email", "server", "port", "username", "password", "use_ssl"}),
		}).
		Create(s).Error
}
