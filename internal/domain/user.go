package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal is the weight objective a user picked during the onboarding quiz.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalMaintain   Goal = "maintain"
	GoalGainWeight Goal = "gain_weight"
)

// Gender as captured by the quiz.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel is the self-reported exercise frequency bucket.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// SubscriptionStatus is the lifecycle state of a user's subscription.
type SubscriptionStatus string

const (
	SubFree         SubscriptionStatus = "free"
	SubTrialPending SubscriptionStatus = "trial_pending"
	SubTrialActive  SubscriptionStatus = "trial_active"
	SubActive       SubscriptionStatus = "active"
	SubCancelled    SubscriptionStatus = "cancelled"
	SubExpired      SubscriptionStatus = "expired"
)

// User is the read model for a Caloria end user. It is owned and mutated by
// the WhatsApp bot backend; the admin panel reads it and flips the two
// administrative fields (IsActive, deletion).
type User struct {
	ID            string
	FirstName     string
	LastName      string
	WhatsAppID    string
	QuizCompleted bool

	// Profile metrics, nil until the quiz is completed.
	WeightKg      *float64
	HeightCm      *float64
	Age           *int
	Gender        *Gender
	ActivityLevel *ActivityLevel
	Goal          *Goal

	// Computed upstream by the bot backend, displayed verbatim.
	BMR              *float64
	DailyCalorieGoal *int

	SubscriptionStatus SubscriptionStatus
	SubscriptionTier   string
	TrialStartedAt     *time.Time
	TrialEndsAt        *time.Time
	LastPaymentAt      *time.Time
	PaymentSubID       string
	CancellationReason string

	IsActive  bool
	CreatedAt time.Time
}

// FullName joins the name parts, tolerating either being empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// OnTrial reports whether the user is inside a trial window.
func (u *User) OnTrial() bool {
	return u.SubscriptionStatus == SubTrialPending || u.SubscriptionStatus == SubTrialActive
}

// NewID generates a row ID.
func NewID() string {
	return uuid.New().String()
}
