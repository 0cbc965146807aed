package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/preferences/mock.go -package=mocks

// ErrInvalidSettings is returned when merged settings fail validation.
var ErrInvalidSettings = errors.New("invalid reminder settings")

type userRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, settings model.ReminderSettings) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service reads and writes user reminder preferences with a write-through cache.
type Service struct {
	repo      userRepository
	cache     cache
	validator *validator.Validate
}

// NewService creates a preferences Service.
func NewService(repo userRepository, cache cache, v *validator.Validate) *Service {
	return &Service{repo: repo, cache: cache, validator: v}
}

// Get returns the resolved preferences of a user. A user without stored
// settings gets the plan defaults written on first read.
func (s *Service) Get(ctx context.Context, strategy retry.Strategy, userID uuid.UUID) (model.Preferences, error) {
	raw, err := s.cache.GetWithRetry(ctx, strategy, cacheKey(userID))
	if err == nil {
		var prefs model.Preferences
		if err := json.Unmarshal([]byte(raw), &prefs); err == nil {
			return prefs, nil
		}

		zlog.Logger.Printf("failed to decode cached preferences %s", userID)
	} else if !errors.Is(err, redis.Nil) {
		zlog.Logger.Printf("failed to get preferences from cache %s: %v", userID, err)
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("get user: %w", err)
	}

	if user.Settings.IsEmpty() {
		user.Settings = model.DefaultSettings(user.Plan)
		if err := s.repo.UpdateSettings(ctx, userID, user.Settings); err != nil {
			return model.Preferences{}, fmt.Errorf("create default settings: %w", err)
		}
	}

	prefs := user.Preferences()
	s.store(ctx, strategy, userID, prefs)

	return prefs, nil
}

// Update merges upd into the stored settings, validates the result and persists it.
func (s *Service) Update(ctx context.Context, strategy retry.Strategy, userID uuid.UUID, upd model.ReminderSettings) (model.Preferences, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("get user: %w", err)
	}

	merged := user.Settings.Merge(upd)
	prefs := merged.Resolve(user.Plan)

	if err := s.validator.Struct(prefs); err != nil {
		return model.Preferences{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if err := s.repo.UpdateSettings(ctx, userID, merged); err != nil {
		return model.Preferences{}, fmt.Errorf("update settings: %w", err)
	}

	s.store(ctx, strategy, userID, prefs)

	return prefs, nil
}

// Reset clears the stored settings so that plan defaults apply again.
func (s *Service) Reset(ctx context.Context, strategy retry.Strategy, userID uuid.UUID) (model.Preferences, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("get user: %w", err)
	}

	if err := s.repo.UpdateSettings(ctx, userID, model.ReminderSettings{}); err != nil {
		return model.Preferences{}, fmt.Errorf("reset settings: %w", err)
	}

	prefs := model.DefaultPreferences(user.Plan)
	s.store(ctx, strategy, userID, prefs)

	return prefs, nil
}

func (s *Service) store(ctx context.Context, strategy retry.Strategy, userID uuid.UUID, prefs model.Preferences) {
	body, err := json.Marshal(prefs)
	if err != nil {
		zlog.Logger.Printf("failed to encode preferences %s: %v", userID, err)
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, cacheKey(userID), string(body)); err != nil {
		zlog.Logger.Printf("failed to cache preferences %s: %v", userID, err)
	}
}

func cacheKey(userID uuid.UUID) string {
	return "reminder:settings:" + userID.String()
}
