package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/pkg/crypto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `
	id, first_name, last_name, whatsapp_id, quiz_completed,
	weight_kg, height_cm, age, gender, activity_level, goal,
	bmr, daily_calorie_goal,
	subscription_status, subscription_tier, trial_started_at, trial_ends_at,
	last_payment_at, payment_sub_id, cancellation_reason,
	is_active, created_at`

// UserFilter narrows a user listing. Zero values mean "no constraint".
type UserFilter struct {
	Status string `validate:"omitempty,oneof=active quiz_completed quiz_pending"`
	Goal   string `validate:"omitempty,oneof=lose_weight maintain gain_weight"`
	Search string
}

// UserSummary holds the aggregate counts shown on the dashboard cards.
type UserSummary struct {
	Total         int
	Active        int
	QuizCompleted int
	OnTrial       int
	Paying        int
}

// UserRepository handles database operations for Caloria end users.
// WhatsApp identifiers are stored sealed and unsealed at scan time, so
// nothing above the repository ever sees ciphertext.
type UserRepository struct {
	db  *pgxpool.Pool
	enc *crypto.Encryptor
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool, enc *crypto.Encryptor) *UserRepository {
	return &UserRepository{db: db, enc: enc}
}

func (f UserFilter) where() (string, []any) {
	var conds []string
	var args []any
	switch f.Status {
	case "active":
		conds = append(conds, "is_active = TRUE")
	case "quiz_completed":
		conds = append(conds, "quiz_completed = TRUE")
	case "quiz_pending":
		conds = append(conds, "quiz_completed = FALSE")
	}
	if f.Goal != "" {
		args = append(args, f.Goal)
		conds = append(conds, fmt.Sprintf("goal = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(first_name || ' ' || last_name) ILIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of users matching the filter, plus the total count
// of matching rows.
func (r *UserRepository) List(ctx context.Context, f UserFilter, page domain.Pagination) ([]*domain.User, int, error) {
	where, args := f.where()

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		userColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, page.PerPage, page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users, err := r.scanUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListAll returns every user matching the filter, newest first. Used by the
// CSV export.
func (r *UserRepository) ListAll(ctx context.Context, f UserFilter) ([]*domain.User, error) {
	where, args := f.where()
	query := fmt.Sprintf("SELECT %s FROM users%s ORDER BY created_at DESC", userColumns, where)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()
	return r.scanUsers(rows)
}

// Recent returns the newest users for the dashboard table.
func (r *UserRepository) Recent(ctx context.Context, limit int) ([]*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC LIMIT $1", userColumns)
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}
	defer rows.Close()
	return r.scanUsers(rows)
}

// FindByID returns a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	u, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}

// SetActive flips the active flag and reports whether the user existed.
func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE users SET is_active = $1 WHERE id = $2", active, id)
	if err != nil {
		return false, fmt.Errorf("failed to update user active flag: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a user by ID. Food logs, payments and activities cascade.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Summary returns the aggregate counts for the dashboard cards.
func (r *UserRepository) Summary(ctx context.Context) (*UserSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE quiz_completed),
			COUNT(*) FILTER (WHERE subscription_status IN ('trial_pending', 'trial_active')),
			COUNT(*) FILTER (WHERE subscription_status = 'active')
		FROM users
	`
	var s UserSummary
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Active, &s.QuizCompleted, &s.OnTrial, &s.Paying)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise users: %w", err)
	}
	return &s, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var gender, level, goal *string
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.WhatsAppID, &u.QuizCompleted,
		&u.WeightKg, &u.HeightCm, &u.Age, &gender, &level, &goal,
		&u.BMR, &u.DailyCalorieGoal,
		&u.SubscriptionStatus, &u.SubscriptionTier, &u.TrialStartedAt, &u.TrialEndsAt,
		&u.LastPaymentAt, &u.PaymentSubID, &u.CancellationReason,
		&u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.WhatsAppID = r.decryptWhatsAppID(u.WhatsAppID)
	if gender != nil {
		g := domain.Gender(*gender)
		u.Gender = &g
	}
	if level != nil {
		l := domain.ActivityLevel(*level)
		u.ActivityLevel = &l
	}
	if goal != nil {
		g := domain.Goal(*goal)
		u.Goal = &g
	}
	return &u, nil
}

// decryptWhatsAppID unseals a stored WhatsApp identifier. Rows written
// before sealing was enabled hold plaintext and pass through unchanged.
func (r *UserRepository) decryptWhatsAppID(stored string) string {
	if r.enc == nil || stored == "" {
		return stored
	}
	plain, err := r.enc.Decrypt(stored)
	if err != nil {
		return stored
	}
	return string(plain)
}

func (r *UserRepository) scanUsers(rows pgx.Rows) ([]*domain.User, error) {
	var users []*domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
