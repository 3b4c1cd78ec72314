package domain_test

import (
	"testing"

	"github.com/caloria/webadmin/internal/domain"
)

func TestUserFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		first, last, expected string
	}{
		{"Maria", "Silva", "Maria Silva"},
		{"Maria", "", "Maria"},
		{"", "Silva", "Silva"},
		{"", "", ""},
	}
	for _, tc := range tests {
		u := domain.User{FirstName: tc.first, LastName: tc.last}
		if got := u.FullName(); got != tc.expected {
			t.Fatalf("first=%q last=%q: expected %q, got %q", tc.first, tc.last, tc.expected, got)
		}
	}
}

func TestUserOnTrial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  domain.SubscriptionStatus
		onTrial bool
	}{
		{domain.SubFree, false},
		{domain.SubTrialPending, true},
		{domain.SubTrialActive, true},
		{domain.SubActive, false},
		{domain.SubCancelled, false},
		{domain.SubExpired, false},
	}
	for _, tc := range tests {
		u := domain.User{SubscriptionStatus: tc.status}
		if got := u.OnTrial(); got != tc.onTrial {
			t.Fatalf("status %s: expected onTrial=%t, got %t", tc.status, tc.onTrial, got)
		}
	}
}
