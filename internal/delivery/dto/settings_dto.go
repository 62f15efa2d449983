package dto

type UpdateSettingsRequest struct {
	AppName                  string `json:"appName" validate:"max=100"`
	WelcomeMessage           string `json:"welcomeMessage" validate:"max=1000"`
	SupportEmail             string `json:"supportEmail" validate:"omitempty,email"`
	Theme                    string `json:"theme" validate:"required,oneof=light dark"`
	EnableCaloriesCalculator bool   `json:"enableCaloriesCalculator"`
	EnableMealPlans          bool   `json:"enableMealPlans"`
	Facebook                 string `json:"facebook" validate:"omitempty,url"`
	Instagram                string `json:"instagram" validate:"omitempty,url"`
	YouTube                  string `json:"youtube" validate:"omitempty,url"`
}

type SettingsResponse struct {
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
