package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/davrk/leadbot/internal/cache"
	"github.com/davrk/leadbot/internal/models"
	pgrepo "github.com/davrk/leadbot/internal/repositories/postgres"
	"github.com/davrk/leadbot/internal/resolver"
	"github.com/davrk/leadbot/internal/utils"
)

// AnswerMetadata is stored on the message row and echoed to the client.
type AnswerMetadata struct {
	Type       string               `json:"type"` // "static_qa" | "retrieved" | "fallback"
	NumSources int                  `json:"num_sources,omitempty"`
	Sources    []resolver.SourceRef `json:"sources,omitempty"`
}

type ChatService interface {
	// Ask resolves a question and, when userID is non-zero, records the turn
	// against that user.
	Ask(ctx context.Context, userID uint, message string) (resolver.Resolution, AnswerMetadata, error)
	Questions(ctx context.Context) ([]models.PredefinedQuestion, error)
}

type chatService struct {
	resolver   *resolver.Resolver
	users      pgrepo.UserRepository
	messages   pgrepo.MessageRepository
	predefined pgrepo.PredefinedRepository
	cache      cache.Cache
	log        *logrus.Logger
}

func NewChatService(rsv *resolver.Resolver, users pgrepo.UserRepository, messages pgrepo.MessageRepository, predefined pgrepo.PredefinedRepository, c cache.Cache, log *logrus.Logger) ChatService {
	return &chatService{resolver: rsv, users: users, messages: messages, predefined: predefined, cache: c, log: log}
}

func (s *chatService) Ask(ctx context.Context, userID uint, message string) (resolver.Resolution, AnswerMetadata, error) {
	const op = "ChatService.Ask"

	message = strings.TrimSpace(message)
	if message == "" {
		return resolver.Resolution{}, AnswerMetadata{}, utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}

	if userID != 0 {
		if _, err := s.users.GetByID(ctx, userID); err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return resolver.Resolution{}, AnswerMetadata{}, utils.E(utils.CodeNotFound, op, "user not found", err)
			}
			return resolver.Resolution{}, AnswerMetadata{}, utils.E(utils.CodeInternal, op, "failed to look up user", err)
		}
	}

	res := s.resolver.Resolve(ctx, message)
	meta := metadataFor(res)

	if userID != 0 {
		now := time.Now().UTC()
		metaJSON, _ := json.Marshal(meta)
		msg := &models.Message{
			UserID:             userID,
			Question:           message,
			QuestionNormalized: utils.NormalizeQuestion(message),
			Answer:             res.Answer,
			Source:             res.Source,
			Metadata:           datatypes.JSON(metaJSON),
			Timestamp:          now,
		}
		if err := s.messages.Insert(ctx, msg); err != nil {
			return resolver.Resolution{}, AnswerMetadata{}, utils.E(utils.CodeInternal, op, "failed to record message", err)
		}
		if err := s.users.TouchLastActive(ctx, userID, now); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("failed to bump last_active")
		}
	}

	return res, meta, nil
}

func metadataFor(res resolver.Resolution) AnswerMetadata {
	switch {
	case res.Source == models.SourcePredefined:
		return AnswerMetadata{Type: "static_qa"}
	case len(res.Sources) > 0:
		return AnswerMetadata{Type: "retrieved", NumSources: len(res.Sources), Sources: res.Sources}
	default:
		return AnswerMetadata{Type: "fallback"}
	}
}

func (s *chatService) Questions(ctx context.Context) ([]models.PredefinedQuestion, error) {
	const op = "ChatService.Questions"

	if s.cache != nil {
		var cached []models.PredefinedQuestion
		if hit, err := cache.Questions.Get(ctx, s.cache, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := s.predefined.All(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load questions", err)
	}

	if s.cache != nil {
		if err := cache.Questions.Set(ctx, s.cache, rows); err != nil {
			s.log.WithError(err).Warn("failed to cache questions")
		}
	}
	return rows, nil
}
