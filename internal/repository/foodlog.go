package repository

import (
	"context"
	"fmt"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FoodLogRepository handles database operations for analysed meal entries.
type FoodLogRepository struct {
	db *pgxpool.Pool
}

// NewFoodLogRepository creates a new FoodLogRepository.
func NewFoodLogRepository(db *pgxpool.Pool) *FoodLogRepository {
	return &FoodLogRepository{db: db}
}

const foodLogColumns = `
	f.id, f.user_id, u.first_name || ' ' || u.last_name,
	f.food_name, f.raw_input, f.calories, f.protein_g,
	f.method, f.quality_score, f.confidence, f.created_at`

// Recent returns the newest food logs across all users for the dashboard.
func (r *FoodLogRepository) Recent(ctx context.Context, limit int) ([]*domain.FoodLog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM food_logs f
		JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC LIMIT $1`, foodLogColumns)
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent food logs: %w", err)
	}
	defer rows.Close()
	return scanFoodLogs(rows)
}

// ListByUser returns a user's newest food logs.
func (r *FoodLogRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.FoodLog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM food_logs f
		JOIN users u ON u.id = f.user_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC LIMIT $2`, foodLogColumns)
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list food logs for user %s: %w", userID, err)
	}
	defer rows.Close()
	return scanFoodLogs(rows)
}

// CountToday returns how many meals were logged since local midnight.
func (r *FoodLogRepository) CountToday(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM food_logs WHERE created_at >= date_trunc('day', NOW())").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count today's food logs: %w", err)
	}
	return n, nil
}

func scanFoodLogs(rows pgx.Rows) ([]*domain.FoodLog, error) {
	var logs []*domain.FoodLog
	for rows.Next() {
		var l domain.FoodLog
		err := rows.Scan(
			&l.ID, &l.UserID, &l.UserName,
			&l.FoodName, &l.RawInput, &l.Calories, &l.ProteinG,
			&l.Method, &l.QualityScore, &l.Confidence, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
