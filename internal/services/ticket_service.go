package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/davrk/leadbot/internal/models"
	pgrepo "github.com/davrk/leadbot/internal/repositories/postgres"
	"github.com/davrk/leadbot/internal/utils"
)

// Notifier sends the outbound mails tied to tickets and settings checks.
type Notifier interface {
	SendTicketNotification(ctx context.Context, s *models.SMTPSettings, user *models.User, t *models.SupportTicket) error
	SendTestEmail(ctx context.Context, s *models.SMTPSettings, recipient string) error
}

type TicketService interface {
	Create(ctx context.Context, userID uint, subject, message string) (*models.SupportTicket, error)
	List(ctx context.Context) ([]models.SupportTicket, error)
	SetStatus(ctx context.Context, id uint, status string) error
}

type ticketService struct {
	tickets  pgrepo.TicketRepository
	users    pgrepo.UserRepository
	settings pgrepo.SettingsRepository
	notifier Notifier
	log      *logrus.Logger
}

func NewTicketService(tickets pgrepo.TicketRepository, users pgrepo.UserRepository, settings pgrepo.SettingsRepository, notifier Notifier, log *logrus.Logger) TicketService {
	return &ticketService{tickets: tickets, users: users, settings: settings, notifier: notifier, log: log}
}

func (s *ticketService) Create(ctx context.Context, userID uint, subject, message string) (*models.SupportTicket, error) {
	const op = "TicketService.Create"

	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if userID == 0 || subject == "" || message == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id, subject, and message are required", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	ticket := &models.SupportTicket{
		UserID:    userID,
		Subject:   subject,
		Message:   message,
		Status:    models.TicketOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create ticket", err)
	}

	s.notify(ctx, user, ticket)
	return ticket, nil
}

// notify is best-effort: a mail failure never fails ticket creation.
func (s *ticketService) notify(ctx context.Context, user *models.User, ticket *models.SupportTicket) {
	if s.notifier == nil {
		return
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			s.log.WithError(err).Warn("failed to load smtp settings")
		}
		return
	}
	if !cfg.Configured() {
		return
	}
	if err := s.notifier.SendTicketNotification(ctx, cfg, user, ticket); err != nil {
		s.log.WithError(err).WithField("ticket_id", ticket.ID).Warn("ticket notification failed")
	}
}

func (s *ticketService) List(ctx context.Context) ([]models.SupportTicket, error) {
	const op = "TicketService.List"

	rows, err := s.tickets.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list tickets", err)
	}
	return rows, nil
}

func (s *ticketService) SetStatus(ctx context.Context, id uint, status string) error {
	const op = "TicketService.SetStatus"

	if status != models.TicketOpen && status != models.TicketClosed {
		return utils.E(utils.CodeInvalidArgument, op, "status must be open or closed", nil)
	}
	if err := s.tickets.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "ticket not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update ticket", err)
	}
	return nil
}
