package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ActivityType is a user-lifecycle milestone recorded by the bot backend.
type ActivityType string

const (
	ActivityRegistration  ActivityType = "registration"
	ActivityQuizCompleted ActivityType = "quiz_completed"
	ActivitySubCreated    ActivityType = "subscription_created"
	ActivityTrialStarted  ActivityType = "trial_started"
	ActivityTrialEnded    ActivityType = "trial_ended"
	ActivitySubCancelled  ActivityType = "subscription_cancelled"
	ActivityOther         ActivityType = "other"
)

// ActivityData is the typed payload carried by an activity row. All fields
// are optional; which ones are set depends on the activity type.
type ActivityData struct {
	Goal           string   `json:"goal,omitempty"`
	CompletionTime string   `json:"completion_time,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
}

// SystemActivity is an audit-style event record.
type SystemActivity struct {
	ID        string
	UserID    string
	UserName  string // denormalised for list views
	Type      ActivityType
	Data      *ActivityData
	CreatedAt time.Time
}

// ParseActivityData decodes the JSON payload stored alongside an activity.
// Parsing happens at the data-access boundary so templates never touch raw
// JSON. An empty payload yields nil without error.
func ParseActivityData(raw string) (*ActivityData, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var data ActivityData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("invalid activity data %q: %w", raw, err)
	}
	return &data, nil
}

// ActivityCount is one bucket of the dashboard trend series.
type ActivityCount struct {
	Day   time.Time
	Count int
}
