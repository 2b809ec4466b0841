package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sourcing-system/internal/dto"
	"sourcing-system/internal/repositories"
)

const onboardingKeyPrefix = "onboarding:"

type OnboardingServiceInterface interface {
	GetFlags(ctx context.Context, userID int64) (*dto.OnboardingFlagsDTO, error)
	UpdateFlags(ctx context.Context, userID int64, update dto.UpdateOnboardingFlagsDTO) (*dto.OnboardingFlagsDTO, error)
}

// OnboardingService keeps per-buyer onboarding flags in the injected KV
// store. A missing or unreadable record degrades to all-false defaults.
type OnboardingService struct {
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	ttl       time.Duration
}

func NewOnboardingService(cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger, ttl time.Duration) *OnboardingService {
	return &OnboardingService{cacheRepo: cacheRepo, logger: logger, ttl: ttl}
}

func (s *OnboardingService) GetFlags(ctx context.Context, userID int64) (*dto.OnboardingFlagsDTO, error) {
	flags := &dto.OnboardingFlagsDTO{}

	raw, err := s.cacheRepo.Get(ctx, onboardingKey(userID))
	if errors.Is(err, repositories.ErrCacheMiss) {
		return flags, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading onboarding flags: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), flags); err != nil {
		// A corrupt record must not break onboarding; treat it as empty.
		s.logger.Warn("onboarding flags record is malformed, resetting",
			zap.Int64("userID", userID), zap.Error(err))
		return &dto.OnboardingFlagsDTO{}, nil
	}
	return flags, nil
}

func (s *OnboardingService) UpdateFlags(ctx context.Context, userID int64, update dto.UpdateOnboardingFlagsDTO) (*dto.OnboardingFlagsDTO, error) {
	flags, err := s.GetFlags(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.WelcomeTourDone != nil {
		flags.WelcomeTourDone = *update.WelcomeTourDone
	}
	if update.ProfileCompleted != nil {
		flags.ProfileCompleted = *update.ProfileCompleted
	}
	if update.FirstCartSubmitted != nil {
		flags.FirstCartSubmitted = *update.FirstCartSubmitted
	}

	data, err := json.Marshal(flags)
	if err != nil {
		return nil, fmt.Errorf("encoding onboarding flags: %w", err)
	}
	if err := s.cacheRepo.Set(ctx, onboardingKey(userID), string(data), s.ttl); err != nil {
		return nil, fmt.Errorf("storing onboarding flags: %w", err)
	}
	return flags, nil
}

func onboardingKey(userID int64) string {
	return fmt.Sprintf("%s%d", onboardingKeyPrefix, userID)
}
