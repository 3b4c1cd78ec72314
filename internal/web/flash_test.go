package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caloria/webadmin/internal/web"
	"github.com/caloria/webadmin/pkg/crypto"
)

func TestFlashStyle(t *testing.T) {
	t.Parallel()

	if got := (web.Flash{Category: "error"}).Style(); got != "danger" {
		t.Fatalf("expected error to render as danger, got %q", got)
	}
	if got := (web.Flash{Category: "success"}).Style(); got != "success" {
		t.Fatalf("expected success to pass through, got %q", got)
	}
}

func TestFlashStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := newTestFlashStore(t)

	// Queue a flash; the sealed cookie lands on the response.
	rec := httptest.NewRecorder()
	store.Add(rec, httptest.NewRequest("POST", "/admin/users/u-1/toggle", nil), "error", "Could not update the user.")

	cookie := flashCookieFrom(t, rec)
	if cookie == nil {
		t.Fatalf("expected a flash cookie to be set")
	}

	// Next request carries the cookie; Pop drains it.
	req := httptest.NewRequest("GET", "/admin/users", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()

	flashes := store.Pop(rec, req)
	if len(flashes) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(flashes))
	}
	if flashes[0].Category != "error" || flashes[0].Message != "Could not update the user." {
		t.Fatalf("unexpected flash: %+v", flashes[0])
	}

	cleared := flashCookieFrom(t, rec)
	if cleared == nil || cleared.MaxAge != -1 {
		t.Fatalf("expected the flash cookie to be cleared")
	}
}

func TestFlashStoreDropsTamperedCookie(t *testing.T) {
	t.Parallel()
	store := newTestFlashStore(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "caloria_flash", Value: "bm90IGEgcmVhbCBjb29raWU="})

	if flashes := store.Pop(httptest.NewRecorder(), req); flashes != nil {
		t.Fatalf("expected tampered cookie to yield no flashes, got %+v", flashes)
	}
}

func newTestFlashStore(t *testing.T) *web.FlashStore {
	t.Helper()
	enc, err := crypto.NewEncryptor("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("new encryptor: %v", err)
	}
	return web.NewFlashStore(enc)
}

func flashCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "caloria_flash" {
			return c
		}
	}
	return nil
}
