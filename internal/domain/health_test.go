package domain_test

import (
	"math"
	"testing"

	"github.com/caloria/webadmin/internal/domain"
)

func TestComputeBMI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		value    float64
		category domain.BMICategory
		barWidth float64
	}{
		{"normal", 70, 175, 22.857, domain.BMINormal, 76.19},
		{"underweight", 50, 180, 15.432, domain.BMIUnderweight, 51.44},
		{"obese caps the bar", 100, 170, 34.602, domain.BMIObese, 100},
		{"lower normal boundary", 74, 200, 18.5, domain.BMINormal, 61.67},
		{"overweight boundary", 100, 200, 25, domain.BMIOverweight, 83.33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bmi, err := domain.ComputeBMI(tc.weightKg, tc.heightCm)
			if err != nil {
				t.Fatalf("compute bmi: %v", err)
			}
			if math.Abs(bmi.Value-tc.value) > 0.01 {
				t.Fatalf("expected value around %.3f, got %.3f", tc.value, bmi.Value)
			}
			if bmi.Category != tc.category {
				t.Fatalf("expected category %s, got %s", tc.category, bmi.Category)
			}
			if math.Abs(bmi.BarWidth-tc.barWidth) > 0.01 {
				t.Fatalf("expected bar width around %.2f, got %.2f", tc.barWidth, bmi.BarWidth)
			}
		})
	}
}

func TestComputeBMIRejectsInvalidMetrics(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ weight, height float64 }{
		{0, 175},
		{70, 0},
		{-70, 175},
		{70, -175},
	} {
		if _, err := domain.ComputeBMI(tc.weight, tc.height); err == nil {
			t.Fatalf("expected weight=%.0f height=%.0f to fail", tc.weight, tc.height)
		}
	}
}

func TestBMICategoryColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category domain.BMICategory
		color    string
	}{
		{domain.BMINormal, "success"},
		{domain.BMIUnderweight, "warning"},
		{domain.BMIOverweight, "warning"},
		{domain.BMIObese, "danger"},
	}
	for _, tc := range tests {
		got := domain.BMI{Category: tc.category}.CategoryColor()
		if got != tc.color {
			t.Fatalf("expected %s to render %s, got %s", tc.category, tc.color, got)
		}
	}
}
