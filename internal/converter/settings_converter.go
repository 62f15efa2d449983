package converter

import (
	"encoding/json"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
)

// DocumentToSettings overlays the stored fields on the defaults.
func DocumentToSettings(doc entity.JSON) *entity.SiteSettings {
	settings := entity.DefaultSiteSettings()
	raw, err := json.Marshal(doc)
	if err == nil {
		// fields with the wrong type keep their defaults
		_ = json.Unmarshal(raw, &settings)
	}
	return &settings
}

func SettingsToDocument(settings *entity.SiteSettings) entity.JSON {
	return entity.JSON{
		"appName":                  settings.AppName,
		"welcomeMessage":           settings.WelcomeMessage,
		"supportEmail":             settings.SupportEmail,
		"theme":                    settings.Theme,
		"enableCaloriesCalculator": settings.EnableCaloriesCalculator,
		"enableMealPlans":          settings.EnableMealPlans,
		"facebook":                 settings.Facebook,
		"instagram":                settings.Instagram,
		"youtube":                  settings.YouTube,
	}
}

func SettingsRequestToEntity(req *dto.UpdateSettingsRequest) *entity.SiteSettings {
	return &entity.SiteSettings{
		AppName:                  req.AppName,
		WelcomeMessage:           req.WelcomeMessage,
		SupportEmail:             req.SupportEmail,
		Theme:                    req.Theme,
		EnableCaloriesCalculator: req.EnableCaloriesCalculator,
		EnableMealPlans:          req.EnableMealPlans,
		Facebook:                 req.Facebook,
		Instagram:                req.Instagram,
		YouTube:                  req.YouTube,
	}
}

func SettingsToResponse(settings *entity.SiteSettings) *dto.SettingsResponse {
	if settings == nil {
		return nil
	}

	return &dto.SettingsResponse{
		AppName:                  settings.AppName,
		WelcomeMessage:           settings.WelcomeMessage,
		SupportEmail:             settings.SupportEmail,
		Theme:                    settings.Theme,
		EnableCaloriesCalculator: settings.EnableCaloriesCalculator,
		EnableMealPlans:          settings.EnableMealPlans,
		Facebook:                 settings.Facebook,
		Instagram:                settings.Instagram,
		YouTube:                  settings.YouTube,
	}
}
