package service_test

import (
	"testing"

	"github.com/caloria/webadmin/internal/service"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()
	auth := service.NewAuthService("test-secret", "admin@caloria.app", "", nil)

	token, err := auth.IssueSession("admin-1", "admin@caloria.app", "admin")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}

	claims, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Sub != "admin-1" {
		t.Fatalf("expected sub admin-1, got %q", claims.Sub)
	}
	if claims.Email != "admin@caloria.app" {
		t.Fatalf("expected email admin@caloria.app, got %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestVerifyTokenRejectsForeignSignature(t *testing.T) {
	t.Parallel()
	issuer := service.NewAuthService("secret-a", "admin@caloria.app", "", nil)
	verifier := service.NewAuthService("secret-b", "admin@caloria.app", "", nil)

	token, err := issuer.IssueSession("admin-1", "admin@caloria.app", "admin")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	if _, err := verifier.VerifyToken(token); err == nil {
		t.Fatalf("expected token signed with a different secret to be rejected")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()
	auth := service.NewAuthService("test-secret", "admin@caloria.app", "", nil)

	if _, err := auth.VerifyToken("not.a.token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
