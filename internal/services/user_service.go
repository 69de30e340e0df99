package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/davrk/leadbot/internal/models"
	pgrepo "github.com/davrk/leadbot/internal/repositories/postgres"
	"github.com/davrk/leadbot/internal/utils"
)

const recentQuestionLimit = 5

type UserService interface {
	// Register creates the lead if the email is unseen, otherwise returns
	// the existing one. Also returns the user's most recent messages.
	Register(ctx context.Context, name, email string) (*models.User, []models.Message, error)
	History(ctx context.Context, userID uint, limit int) ([]models.Message, error)
}

type userService struct {
	users    pgrepo.UserRepository
	messages pgrepo.MessageRepository
}

func NewUserService(users pgrepo.UserRepository, messages pgrepo.MessageRepository) UserService {
	return &userService{users: users, messages: messages}
}

func (s *userService) Register(ctx context.Context, name, email string) (*models.User, []models.Message, error) {
	const op = "UserService.Register"

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "name and email are required", nil)
	}
	if !strings.Contains(email, "@") {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "email is not valid", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		// Returning visitor: merge, not duplicate.
		user.LastActive = time.Now().UTC()
		if terr := s.users.TouchLastActive(ctx, user.ID, user.LastActive); terr != nil {
			return nil, nil, utils.E(utils.CodeInternal, op, "failed to update user", terr)
		}
	case errors.Is(err, utils.ErrNotFound):
		now := time.Now().UTC()
		user = &models.User{Name: name, Email: email, CreatedAt: now, LastActive: now}
		if cerr := s.users.Create(ctx, user); cerr != nil {
			return nil, nil, utils.E(utils.CodeInternal, op, "failed to create user", cerr)
		}
	default:
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	recent, err := s.messages.ListByUser(ctx, user.ID, recentQuestionLimit)
	if err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to load recent questions", err)
	}
	return user, recent, nil
}

func (s *userService) History(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	const op = "UserService.History"

	if userID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	rows, err := s.messages.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load history", err)
	}
	return rows, nil
}
