package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/utils"
)

type TicketRepository interface {
	Create(ctx context.Context, t *models.SupportTicket) error
	List(ctx context.Context) ([]models.SupportTicket, error)
	SetStatus(ctx context.Context, id uint, status string) error
}

type ticketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) TicketRepository {
	return &ticketRepo{db: db}
}

func (r *ticketRepo) Create(ctx context.Context, t *models.SupportTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ticketRepo) List(ctx context.Context) ([]models.SupportTicket, error) {
	var rows []models.SupportTicket
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *ticketRepo) SetStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.SupportTicket{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
