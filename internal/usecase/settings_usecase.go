package usecase

import (
	"context"
	"errors"

	"calorie-planner/internal/converter"
	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/domain/repository"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrAdminRequired = errors.New("admin role required")

type SettingsUsecase interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, ident identity.Identity, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsUsecase struct {
	log          *logrus.Logger
	settingsRepo repository.SettingsRepository
	auditService service.AuditService
}

func NewSettingsUsecase(
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	auditService service.AuditService,
) SettingsUsecase {
	return &settingsUsecase{
		log:          log,
		settingsRepo: settingsRepo,
		auditService: auditService,
	}
}

func (u *settingsUsecase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := u.settingsRepo.Find(ctx)
	if err != nil {
		u.log.Warnf("Failed to find settings: %+v", err)
		return nil, err
	}
	if settings == nil {
		defaults := entity.DefaultSiteSettings()
		settings = &defaults
	}
	return converter.SettingsToResponse(settings), nil
}

// Update replaces the whole settings document.
func (u *settingsUsecase) Update(ctx context.Context, ident identity.Identity, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if !ident.IsSignedIn() || ident.Role != entity.RoleAdmin {
		return nil, ErrAdminRequired
	}

	previous, err := u.settingsRepo.Find(ctx)
	if err != nil {
		u.log.Warnf("Failed to find settings: %+v", err)
		return nil, err
	}

	settings := converter.SettingsRequestToEntity(req)
	if err := u.settingsRepo.Replace(ctx, settings); err != nil {
		u.log.Warnf("Failed to replace settings: %+v", err)
		return nil, err
	}

	var oldValue interface{}
	if previous != nil {
		oldValue = previous
	}
	userID := ident.UserID
	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionSettingsUpdate, entity.CollectionSettings, entity.SettingsDocumentID, oldValue, settings); err != nil {
		u.log.Warnf("Failed to audit settings update: %+v", err)
	}

	return converter.SettingsToResponse(settings), nil
}
