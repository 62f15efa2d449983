// Package calorie estimates daily energy expenditure from biometric inputs.
package calorie

import "github.com/shopspring/decimal"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// DefaultActivity is used for any activity level missing from the table.
const DefaultActivity = ActivityModerate

var multipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// Levels lists the known activity levels from least to most active.
func Levels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityLight,
		ActivityModerate,
		ActivityActive,
		ActivityVeryActive,
	}
}

// Multiplier returns the activity factor for level and whether the level was recognized.
// Unrecognized levels get the moderate factor.
func Multiplier(level ActivityLevel) (float64, bool) {
	if m, ok := multipliers[level]; ok {
		return m, true
	}
	return multipliers[DefaultActivity], false
}

// BMR returns the base metabolic rate (Harris-Benedict, revised).
// Any gender other than male takes the female branch.
func BMR(age int, gender Gender, weightKg, heightCm float64) float64 {
	a := float64(age)
	if gender == GenderMale {
		return 88.36 + 13.4*weightKg + 4.8*heightCm - 5.7*a
	}
	return 447.6 + 9.2*weightKg + 3.1*heightCm - 4.3*a
}

// Estimate returns the estimated daily caloric requirement in kcal.
// Inputs are not validated; callers reject non-positive values first.
func Estimate(age int, gender Gender, weightKg, heightCm float64, level ActivityLevel) float64 {
	m, _ := Multiplier(level)
	return BMR(age, gender, weightKg, heightCm) * m
}

// Round rounds kcal to two decimal places.
func Round(kcal float64) decimal.Decimal {
	return decimal.NewFromFloat(kcal).Round(2)
}
