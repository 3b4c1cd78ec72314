package domain_test

import (
	"testing"

	"github.com/caloria/webadmin/internal/domain"
)

func TestParseActivityData(t *testing.T) {
	t.Parallel()

	data, err := domain.ParseActivityData(`{"goal":"lose_weight","completion_time":"3m20s"}`)
	if err != nil {
		t.Fatalf("parse activity data: %v", err)
	}
	if data.Goal != "lose_weight" {
		t.Fatalf("expected goal lose_weight, got %q", data.Goal)
	}
	if data.CompletionTime != "3m20s" {
		t.Fatalf("expected completion time 3m20s, got %q", data.CompletionTime)
	}
	if data.Amount != nil {
		t.Fatalf("expected no amount, got %v", *data.Amount)
	}

	data, err = domain.ParseActivityData(`{"amount":9.99}`)
	if err != nil {
		t.Fatalf("parse activity data: %v", err)
	}
	if data.Amount == nil || *data.Amount != 9.99 {
		t.Fatalf("expected amount 9.99, got %v", data.Amount)
	}
}

func TestParseActivityDataEmptyPayloads(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "null"} {
		data, err := domain.ParseActivityData(raw)
		if err != nil {
			t.Fatalf("payload %q: %v", raw, err)
		}
		if data != nil {
			t.Fatalf("payload %q: expected nil data, got %+v", raw, data)
		}
	}
}

func TestParseActivityDataRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := domain.ParseActivityData(`{"goal":`); err == nil {
		t.Fatalf("expected malformed payload to fail")
	}
}
