package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/caloria/webadmin/pkg/crypto"
)

const flashCookie = "caloria_flash"

// Flash is one (category, message) pair queued for the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Style maps the category to its alert style; "error" renders as the
// "danger" visual, every other category passes through unchanged.
func (f Flash) Style() string {
	if f.Category == "error" {
		return "danger"
	}
	return f.Category
}

// FlashStore queues flash messages in an encrypted, tamper-proof cookie.
type FlashStore struct {
	enc *crypto.Encryptor
}

// NewFlashStore creates a FlashStore sealing cookies with the given encryptor.
func NewFlashStore(enc *crypto.Encryptor) *FlashStore {
	return &FlashStore{enc: enc}
}

// Add appends a flash message to the pending queue.
func (s *FlashStore) Add(w http.ResponseWriter, r *http.Request, category, message string) {
	flashes := append(s.peek(r), Flash{Category: category, Message: message})

	raw, err := json.Marshal(flashes)
	if err != nil {
		log.Printf("failed to encode flashes: %v", err)
		return
	}
	sealed, err := s.enc.Encrypt(raw)
	if err != nil {
		log.Printf("failed to seal flash cookie: %v", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    sealed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

// Pop returns the pending flashes and clears the cookie.
func (s *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := s.peek(r)
	if flashes != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
	return flashes
}

func (s *FlashStore) peek(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := s.enc.Decrypt(cookie.Value)
	if err != nil {
		// Tampered or stale cookie; drop it silently.
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
