package domain

import "fmt"

// Badge is the display metadata for a string enum value: the label shown to
// the admin, a bootstrap color class, and an icon name. Mappings are
// exhaustive and closed; unknown variants are rejected rather than falling
// through to a default badge.
type Badge struct {
	Label string
	Color string
	Icon  string
}

var subscriptionBadges = map[SubscriptionStatus]Badge{
	SubFree:         {Label: "Free", Color: "secondary", Icon: "person"},
	SubTrialPending: {Label: "Trial Pending", Color: "info", Icon: "hourglass-split"},
	SubTrialActive:  {Label: "Trial", Color: "primary", Icon: "stars"},
	SubActive:       {Label: "Premium", Color: "success", Icon: "gem"},
	SubCancelled:    {Label: "Cancelled", Color: "warning", Icon: "x-circle"},
	SubExpired:      {Label: "Expired", Color: "danger", Icon: "clock-history"},
}

var goalBadges = map[Goal]Badge{
	GoalLoseWeight: {Label: "Lose Weight", Color: "danger", Icon: "arrow-down"},
	GoalMaintain:   {Label: "Maintain", Color: "info", Icon: "dash"},
	GoalGainWeight: {Label: "Gain Weight", Color: "success", Icon: "arrow-up"},
}

var activityBadges = map[ActivityType]Badge{
	ActivityRegistration:  {Label: "Registration", Color: "primary", Icon: "person-plus"},
	ActivityQuizCompleted: {Label: "Quiz Completed", Color: "success", Icon: "clipboard-check"},
	ActivitySubCreated:    {Label: "Subscription", Color: "success", Icon: "credit-card"},
	ActivityTrialStarted:  {Label: "Trial Started", Color: "info", Icon: "play-circle"},
	ActivityTrialEnded:    {Label: "Trial Ended", Color: "warning", Icon: "stop-circle"},
	ActivitySubCancelled:  {Label: "Cancelled", Color: "danger", Icon: "x-circle"},
	ActivityOther:         {Label: "Other", Color: "secondary", Icon: "info-circle"},
}

var methodBadges = map[AnalysisMethod]Badge{
	MethodPhoto: {Label: "Photo", Color: "primary", Icon: "camera"},
	MethodVoice: {Label: "Voice", Color: "info", Icon: "mic"},
	MethodText:  {Label: "Text", Color: "secondary", Icon: "chat-text"},
}

var paymentBadges = map[PaymentStatus]Badge{
	PaymentApproved: {Label: "Approved", Color: "success", Icon: "check-circle"},
	PaymentPending:  {Label: "Pending", Color: "warning", Icon: "hourglass"},
	PaymentRejected: {Label: "Rejected", Color: "danger", Icon: "x-circle"},
	PaymentOther:    {Label: "Other", Color: "secondary", Icon: "question-circle"},
}

// SubscriptionBadge returns display metadata for a subscription status.
func SubscriptionBadge(s SubscriptionStatus) (Badge, error) {
	b, ok := subscriptionBadges[s]
	if !ok {
		return Badge{}, fmt.Errorf("unknown subscription status %q", s)
	}
	return b, nil
}

// GoalBadge returns display metadata for a goal.
func GoalBadge(g Goal) (Badge, error) {
	b, ok := goalBadges[g]
	if !ok {
		return Badge{}, fmt.Errorf("unknown goal %q", g)
	}
	return b, nil
}

// ActivityBadge returns display metadata for an activity type.
func ActivityBadge(t ActivityType) (Badge, error) {
	b, ok := activityBadges[t]
	if !ok {
		return Badge{}, fmt.Errorf("unknown activity type %q", t)
	}
	return b, nil
}

// MethodBadge returns display metadata for an analysis method.
func MethodBadge(m AnalysisMethod) (Badge, error) {
	b, ok := methodBadges[m]
	if !ok {
		return Badge{}, fmt.Errorf("unknown analysis method %q", m)
	}
	return b, nil
}

// PaymentBadge returns display metadata for a payment status.
func PaymentBadge(s PaymentStatus) (Badge, error) {
	b, ok := paymentBadges[s]
	if !ok {
		return Badge{}, fmt.Errorf("unknown payment status %q", s)
	}
	return b, nil
}
