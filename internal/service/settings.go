package service

import (
	"context"
	"errors"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/patrickmn/go-cache"
)

const (
	settingsCacheTTL     = 5 * time.Minute
	settingsCacheCleanup = 10 * time.Minute
)

// SettingsService manages the user's issuer profile and payment keys
type SettingsService interface {
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)

	// GetDomainSettings returns the raw settings row for collaborators
	// that need the secret keys
	GetDomainSettings(ctx context.Context) (*settings.Settings, error)
}

type settingsService struct {
	ServiceParams
	cache *cache.Cache
}

func NewSettingsService(params ServiceParams) SettingsService {
	return &settingsService{
		ServiceParams: params,
		cache:         cache.New(settingsCacheTTL, settingsCacheCleanup),
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	row, err := s.GetDomainSettings(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSettingsResponse(row), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	row := req.ToSettings(ctx)
	if err := s.SettingsRepo.Upsert(ctx, row); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to save settings").
			Mark(ierr.ErrDatabase)
	}

	s.cache.Delete(row.UserID)

	s.Logger.Infow("updated settings", "user_id", row.UserID)

	return dto.NewSettingsResponse(row), nil
}

func (s *settingsService) GetDomainSettings(ctx context.Context) (*settings.Settings, error) {
	userID := types.GetUserID(ctx)

	if cached, found := s.cache.Get(userID); found {
		if row, ok := cached.(*settings.Settings); ok {
			return row, nil
		}
	}

	row, err := s.SettingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			// A missing row is not an error for reads; callers see an
			// empty profile.
			return &settings.Settings{
				ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTINGS),
				UserID:    userID,
				BaseModel: types.GetDefaultBaseModel(ctx),
			}, nil
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load settings").
			Mark(ierr.ErrDatabase)
	}

	s.cache.Set(userID, row, cache.DefaultExpiration)
	return row, nil
}
