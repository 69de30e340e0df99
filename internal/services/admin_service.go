package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/davrk/leadbot/internal/cache"
	"github.com/davrk/leadbot/internal/models"
	pgrepo "github.com/davrk/leadbot/internal/repositories/postgres"
	"github.com/davrk/leadbot/internal/utils"
)

const topQuestionLimit = 10

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalUsers     int64                  `json:"total_users"`
	TotalMessages  int64                  `json:"total_messages"`
	TopQuestions   []models.QuestionCount `json:"top_questions"`
	RecentActivity []models.Message       `json:"recent_activity"`
}

type AdminService interface {
	Leads(ctx context.Context) ([]models.Lead, error)
	Stats(ctx context.Context) (*Stats, error)
}

type adminService struct {
	users    pgrepo.UserRepository
	messages pgrepo.MessageRepository
	cache    cache.Cache
	log      *logrus.Logger
}

func NewAdminService(users pgrepo.UserRepository, messages pgrepo.MessageRepository, c cache.Cache, log *logrus.Logger) AdminService {
	return &adminService{users: users, messages: messages, cache: c, log: log}
}

func (s *adminService) Leads(ctx context.Context) ([]models.Lead, error) {
	const op = "AdminService.Leads"

	leads, err := s.users.ListLeads(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list leads", err)
	}
	return leads, nil
}

func (s *adminService) Stats(ctx context.Context) (*Stats, error) {
	const op = "AdminService.Stats"

	if s.cache != nil {
		var cached Stats
		if hit, err := cache.AdminStats.Get(ctx, s.cache, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count users", err)
	}
	totalMessages, err := s.messages.Count(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count messages", err)
	}
	top, err := s.messages.TopQuestions(ctx, topQuestionLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to rank questions", err)
	}
	recent, err := s.messages.Recent(ctx, 10)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load recent activity", err)
	}

	stats := &Stats{
		TotalUsers:     totalUsers,
		TotalMessages:  totalMessages,
		TopQuestions:   top,
		RecentActivity: recent,
	}

	if s.cache != nil {
		if err := cache.AdminStats.Set(ctx, s.cache, stats); err != nil {
			s.log.WithError(err).Warn("failed to cache admin stats")
		}
	}
	return stats, nil
}
