package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/service"
)

func TestUserActionsRejectMalformedID(t *testing.T) {
	t.Parallel()
	// The ID check happens before any repository call.
	svc := service.NewUserAdminService(nil, nil, nil, nil)
	ctx := context.Background()

	if _, err := svc.Detail(ctx, "not-a-uuid"); !isBadRequest(err) {
		t.Fatalf("expected detail to reject a malformed id, got %v", err)
	}
	if _, err := svc.ToggleActive(ctx, "not-a-uuid"); !isBadRequest(err) {
		t.Fatalf("expected toggle to reject a malformed id, got %v", err)
	}
	if err := svc.Delete(ctx, "not-a-uuid"); !isBadRequest(err) {
		t.Fatalf("expected delete to reject a malformed id, got %v", err)
	}
}

func isBadRequest(err error) bool {
	appErr, ok := domain.AsAppError(err)
	return ok && appErr.Code == http.StatusBadRequest
}
