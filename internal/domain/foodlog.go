package domain

import "time"

// AnalysisMethod is the input modality used to log a meal over WhatsApp.
type AnalysisMethod string

const (
	MethodPhoto AnalysisMethod = "photo"
	MethodVoice AnalysisMethod = "voice"
	MethodText  AnalysisMethod = "text"
)

// FoodLog is one analysed meal entry. Analysis happens in the bot backend;
// the admin panel only displays the result.
type FoodLog struct {
	ID       string
	UserID   string
	UserName string // denormalised for list views

	FoodName string
	RawInput string
	Calories float64
	ProteinG float64

	Method       AnalysisMethod
	QualityScore int     // 1-5
	Confidence   float64 // 0-1

	CreatedAt time.Time
}
