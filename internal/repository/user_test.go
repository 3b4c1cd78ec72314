package repository

import (
	"testing"

	"github.com/caloria/webadmin/pkg/crypto"
)

func TestDecryptWhatsAppID(t *testing.T) {
	t.Parallel()
	enc, err := crypto.NewEncryptor("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("new encryptor: %v", err)
	}
	repo := NewUserRepository(nil, enc)

	sealed, err := enc.Encrypt([]byte("5511999887766"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if got := repo.decryptWhatsAppID(sealed); got != "5511999887766" {
		t.Fatalf("expected sealed id to unseal, got %q", got)
	}
}

func TestDecryptWhatsAppIDLegacyPlaintext(t *testing.T) {
	t.Parallel()
	enc, err := crypto.NewEncryptor("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("new encryptor: %v", err)
	}
	repo := NewUserRepository(nil, enc)

	// Rows written before sealing was enabled hold the raw identifier.
	if got := repo.decryptWhatsAppID("5511999887766"); got != "5511999887766" {
		t.Fatalf("expected plaintext row to pass through, got %q", got)
	}
	if got := repo.decryptWhatsAppID(""); got != "" {
		t.Fatalf("expected empty value to pass through, got %q", got)
	}
}
