package domain

import (
	"fmt"
	"time"
)

// PaymentStatus is the settlement state reported by the payment provider.
type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "approved"
	PaymentPending  PaymentStatus = "pending"
	PaymentRejected PaymentStatus = "rejected"
	PaymentOther    PaymentStatus = "other"
)

// PaymentTransaction is a read-only record of a provider settlement event.
// The admin panel never creates or mutates these.
type PaymentTransaction struct {
	ID          string
	UserID      string
	AmountCents int64
	Status      PaymentStatus
	Type        string
	PaymentDate time.Time
}

// Amount renders the minor-unit amount as a currency string.
func (t *PaymentTransaction) Amount() string {
	return fmt.Sprintf("$%.2f", float64(t.AmountCents)/100)
}
