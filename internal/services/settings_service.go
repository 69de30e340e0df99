package services

import (
	"context"
	"errors"
	"strings"

	"github.com/davrk/leadbot/internal/models"
	pgrepo "github.com/davrk/leadbot/internal/repositories/postgres"
	"github.com/davrk/leadbot/internal/utils"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.SMTPSettings, error)
	Save(ctx context.Context, s *models.SMTPSettings) error
	SendTest(ctx context.Context, recipient string) error
}

type settingsService struct {
	settings pgrepo.SettingsRepository
	notifier Notifier
}

func NewSettingsService(settings pgrepo.SettingsRepository, notifier Notifier) SettingsService {
	return &settingsService{settings: settings, notifier: notifier}
}

// Get returns the stored settings, or an empty object when none were saved
// yet. The password field is never serialized, so reads are always safe.
func (s *settingsService) Get(ctx context.Context) (*models.SMTPSettings, error) {
	const op = "SettingsService.Get"

	cfg, err := s.settings.Get(ctx)
	if errors.Is(err, utils.ErrNotFound) {
		return &models.SMTPSettings{}, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load settings", err)
	}
	return cfg, nil
}

func (s *settingsService) Save(ctx context.Context, cfg *models.SMTPSettings) error {
	const op = "SettingsService.Save"

	if cfg == nil || strings.TrimSpace(cfg.Server) == "" || cfg.Port <= 0 {
		return utils.E(utils.CodeInvalidArgument, op, "server and port are required", nil)
	}
	if strings.TrimSpace(cfg.SenderEmail) == "" || strings.TrimSpace(cfg.RecipientEmail) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "sender_email and recipient_email are required", nil)
	}

	// An empty password on save keeps the stored one, so the dashboard can
	// edit settings without re-entering it.
	if cfg.Password == "" {
		if existing, err := s.settings.Get(ctx); err == nil {
			cfg.Password = existing.Password
		}
	}

	if err := s.settings.Upsert(ctx, cfg); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save settings", err)
	}
	return nil
}

func (s *settingsService) SendTest(ctx context.Context, recipient string) error {
	const op = "SettingsService.SendTest"

	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return utils.E(utils.CodeInvalidArgument, op, "recipient_email is required", nil)
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil || !cfg.Configured() {
		return utils.E(utils.CodeUnavailable, op, "SMTP settings are not configured", err)
	}

	if err := s.notifier.SendTestEmail(ctx, cfg, recipient); err != nil {
		return utils.E(utils.CodeUnavailable, op, "test email could not be sent", err)
	}
	return nil
}
