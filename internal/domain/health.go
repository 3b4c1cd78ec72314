package domain

import "fmt"

// BMICategory is the standard WHO bucket for a body-mass index value.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// BMI holds the computed index together with its display attributes.
type BMI struct {
	Value    float64
	Category BMICategory
	// BarWidth is the progress-bar width percentage, scaled against a
	// ceiling of 30 and capped at 100.
	BarWidth float64
}

// ComputeBMI calculates the body-mass index from weight in kg and height in
// cm. This is the only health metric the panel computes itself; BMR and the
// daily calorie goal come precomputed from the bot backend.
func ComputeBMI(weightKg, heightCm float64) (BMI, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return BMI{}, fmt.Errorf("invalid body metrics: weight=%.1f height=%.1f", weightKg, heightCm)
	}
	meters := heightCm / 100
	value := weightKg / (meters * meters)

	var cat BMICategory
	switch {
	case value < 18.5:
		cat = BMIUnderweight
	case value < 25:
		cat = BMINormal
	case value < 30:
		cat = BMIOverweight
	default:
		cat = BMIObese
	}

	width := value / 30 * 100
	if width > 100 {
		width = 100
	}

	return BMI{Value: value, Category: cat, BarWidth: width}, nil
}

// CategoryColor maps a BMI bucket to its bootstrap color class.
func (b BMI) CategoryColor() string {
	switch b.Category {
	case BMINormal:
		return "success"
	case BMIUnderweight, BMIOverweight:
		return "warning"
	default:
		return "danger"
	}
}
