package repository

import (
	"context"
	"fmt"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentRepository reads payment transactions recorded by the billing
// backend. The panel never writes to this table.
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListByUser returns a user's transactions, newest first.
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PaymentTransaction, error) {
	query := `
		SELECT id, user_id, amount_cents, status, type, payment_date
		FROM payment_transactions
		WHERE user_id = $1
		ORDER BY payment_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txs []*domain.PaymentTransaction
	for rows.Next() {
		var t domain.PaymentTransaction
		err := rows.Scan(&t.ID, &t.UserID, &t.AmountCents, &t.Status, &t.Type, &t.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		txs = append(txs, &t)
	}
	return txs, rows.Err()
}

// ApprovedRevenueCents sums all approved transactions.
func (r *PaymentRepository) ApprovedRevenueCents(ctx context.Context) (int64, error) {
	var cents int64
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(amount_cents), 0) FROM payment_transactions WHERE status = 'approved'").Scan(&cents)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return cents, nil
}
