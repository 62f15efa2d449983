package dto

import "github.com/shopspring/decimal"

// EstimateRequest carries raw user input for the calorie calculator.
// Upper bounds keep the estimate finite.
type EstimateRequest struct {
	Age      int     `json:"age" validate:"gt=0,lte=150"`
	Gender   string  `json:"gender" validate:"omitempty,oneof=male female"`
	Weight   float64 `json:"weight" validate:"gt=0,lte=1000"`
	Height   float64 `json:"height" validate:"gt=0,lte=300"`
	Activity string  `json:"activity"`
}

type EstimateResponse struct {
	Calories    decimal.Decimal `json:"calories"`
	Display     string          `json:"display"`
	Multiplier  float64         `json:"multiplier"`
	Identity    string          `json:"identity"`
	Persistence string          `json:"persistence"`
}

// CalculatorDefaults prefills the calculator form.
type CalculatorDefaults struct {
	Age      *int             `json:"age"`
	Gender   string           `json:"gender"`
	Weight   float64          `json:"weight"`
	Height   float64          `json:"height"`
	Activity string           `json:"activity"`
	Calories *decimal.Decimal `json:"calories,omitempty"`
}
