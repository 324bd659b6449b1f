package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
)

type userService struct {
	users repository.UserRepo
	obs   UseCaseObserver
}

func NewUserService(users repository.UserRepo, observers ...UseCaseObserver) UserService {
	return &userService{users: users, obs: useCaseObserverOrNoop(observers)}
}

func (s *userService) Create(ctx context.Context, u *domain.User) error {
	return observe(ctx, s.obs, "user.create", map[string]any{"email": u.Email}, func() error {
		if err := validateUser(u); err != nil {
			return err
		}
		if u.ID == "" {
			u.ID = uuid.New().String()
		}
		now := time.Now().UTC()
		u.CreatedAt = now
		u.UpdatedAt = now
		return s.users.Create(ctx, u)
	})
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *userService) Update(ctx context.Context, u *domain.User) error {
	return observe(ctx, s.obs, "user.update", map[string]any{"user_id": u.ID}, func() error {
		if err := validateUser(u); err != nil {
			return err
		}
		u.UpdatedAt = time.Now().UTC()
		return s.users.Update(ctx, u)
	})
}

func validateUser(u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("invalid email %q", u.Email)
	}
	if u.InsightStyle != "" && !domain.ValidInsightStyles[string(u.InsightStyle)] {
		return fmt.Errorf("invalid insight style %q", u.InsightStyle)
	}
	return nil
}
