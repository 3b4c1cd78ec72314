package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository handles database operations for system activity events.
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Recent returns the newest activities with their payloads already parsed.
// Rows with malformed payloads are kept (with nil data) so the feed never
// loses events; the parse failure is logged.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*domain.SystemActivity, error) {
	query := `
		SELECT a.id, a.user_id, u.first_name || ' ' || u.last_name,
		       a.activity_type, a.activity_data, a.created_at
		FROM system_activities a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}
	defer rows.Close()

	var acts []*domain.SystemActivity
	for rows.Next() {
		var a domain.SystemActivity
		var raw string
		err := rows.Scan(&a.ID, &a.UserID, &a.UserName, &a.Type, &raw, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Data, err = domain.ParseActivityData(raw)
		if err != nil {
			log.Printf("activity %s: %v", a.ID, err)
		}
		acts = append(acts, &a)
	}
	return acts, rows.Err()
}

// Record inserts an audit event for an administrative action.
func (r *ActivityRepository) Record(ctx context.Context, userID string, typ domain.ActivityType, data *domain.ActivityData) error {
	raw := ""
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode activity data: %w", err)
		}
		raw = string(b)
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO system_activities (id, user_id, activity_type, activity_data, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		domain.NewID(), userID, typ, raw)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// DailyCounts returns one bucket per day for the trend chart, oldest first.
// Days with no activity are filled with zero so the chart has a continuous
// x-axis. Bucketing and zero-filling both happen in UTC; the DB session
// timezone must not decide where a day boundary falls.
func (r *ActivityRepository) DailyCounts(ctx context.Context, days int) ([]domain.ActivityCount, error) {
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
	query := `
		SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, COUNT(*)
		FROM system_activities
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day ASC
	`
	rows, err := r.db.Query(ctx, query, start)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily activities: %w", err)
	}
	defer rows.Close()

	byDay := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("failed to scan activity count: %w", err)
		}
		byDay[day.Format("2006-01-02")] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fillDailyCounts(byDay, start, days), nil
}

// fillDailyCounts expands sparse per-day counts into a continuous series of
// the given length starting at start, with missing days at zero.
func fillDailyCounts(byDay map[string]int, start time.Time, days int) []domain.ActivityCount {
	out := make([]domain.ActivityCount, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		out = append(out, domain.ActivityCount{
			Day:   day,
			Count: byDay[day.Format("2006-01-02")],
		})
	}
	return out
}
