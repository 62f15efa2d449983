package entity

const SettingsDocumentID = "fitnessApp"

// SiteSettings holds the app-wide settings document.
type SiteSettings struct {
	AppName                  string `json:"appName"`
	WelcomeMessage           string `json:"welcomeMessage"`
	SupportEmail             string `json:"supportEmail"`
	Theme                    string `json:"theme"`
	EnableCaloriesCalculator bool   `json:"enableCaloriesCalculator"`
	EnableMealPlans          bool   `json:"enableMealPlans"`
	Facebook                 string `json:"facebook"`
	Instagram                string `json:"instagram"`
	YouTube                  string `json:"youtube"`
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Theme:                    "light",
		EnableCaloriesCalculator: true,
		EnableMealPlans:          true,
	}
}
