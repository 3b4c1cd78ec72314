package domain_test

import (
	"testing"

	"github.com/caloria/webadmin/internal/domain"
)

func TestBadgeMappingsAreExhaustive(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.SubscriptionStatus{
		domain.SubFree, domain.SubTrialPending, domain.SubTrialActive,
		domain.SubActive, domain.SubCancelled, domain.SubExpired,
	} {
		if _, err := domain.SubscriptionBadge(s); err != nil {
			t.Fatalf("subscription status %s has no badge: %v", s, err)
		}
	}
	for _, g := range []domain.Goal{domain.GoalLoseWeight, domain.GoalMaintain, domain.GoalGainWeight} {
		if _, err := domain.GoalBadge(g); err != nil {
			t.Fatalf("goal %s has no badge: %v", g, err)
		}
	}
	for _, a := range []domain.ActivityType{
		domain.ActivityRegistration, domain.ActivityQuizCompleted, domain.ActivitySubCreated,
		domain.ActivityTrialStarted, domain.ActivityTrialEnded, domain.ActivitySubCancelled,
		domain.ActivityOther,
	} {
		if _, err := domain.ActivityBadge(a); err != nil {
			t.Fatalf("activity type %s has no badge: %v", a, err)
		}
	}
	for _, m := range []domain.AnalysisMethod{domain.MethodPhoto, domain.MethodVoice, domain.MethodText} {
		if _, err := domain.MethodBadge(m); err != nil {
			t.Fatalf("analysis method %s has no badge: %v", m, err)
		}
	}
	for _, p := range []domain.PaymentStatus{
		domain.PaymentApproved, domain.PaymentPending, domain.PaymentRejected, domain.PaymentOther,
	} {
		if _, err := domain.PaymentBadge(p); err != nil {
			t.Fatalf("payment status %s has no badge: %v", p, err)
		}
	}
}

func TestBadgeMappingsRejectUnknownVariants(t *testing.T) {
	t.Parallel()

	if _, err := domain.SubscriptionBadge("premium_plus"); err == nil {
		t.Fatalf("expected unknown subscription status to be rejected")
	}
	if _, err := domain.GoalBadge("bulk"); err == nil {
		t.Fatalf("expected unknown goal to be rejected")
	}
	if _, err := domain.ActivityBadge("login"); err == nil {
		t.Fatalf("expected unknown activity type to be rejected")
	}
	if _, err := domain.MethodBadge("video"); err == nil {
		t.Fatalf("expected unknown analysis method to be rejected")
	}
	if _, err := domain.PaymentBadge("refunded"); err == nil {
		t.Fatalf("expected unknown payment status to be rejected")
	}
}
