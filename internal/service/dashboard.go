package service

import (
	"context"
	"log"
	"time"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/repository"
)

const (
	statsCacheKey = "dashboard_stats"
	statsCacheTTL = 30 * time.Second
	trendDays     = 7
)

// DashboardStats are the aggregate numbers on the dashboard cards. The
// struct is JSON-tagged because it is both cached in Redis and pushed over
// the live-stats WebSocket.
type DashboardStats struct {
	TotalUsers     int     `json:"totalUsers"`
	ActiveUsers    int     `json:"activeUsers"`
	QuizCompleted  int     `json:"quizCompleted"`
	OnTrial        int     `json:"onTrial"`
	PayingUsers    int     `json:"payingUsers"`
	FoodLogsToday  int     `json:"foodLogsToday"`
	RevenueDollars float64 `json:"revenueDollars"`
}

// TrendPoint is one day of the activity trend chart.
type TrendPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DashboardOverview is everything the dashboard page renders.
type DashboardOverview struct {
	Stats      DashboardStats
	Trend      []TrendPoint
	Recent     []*domain.User
	FoodLogs   []*domain.FoodLog
	Activities []*domain.SystemActivity
}

// DashboardService assembles the admin dashboard from the read repositories,
// caching the aggregate counts.
type DashboardService struct {
	users      *repository.UserRepository
	foodLogs   *repository.FoodLogRepository
	payments   *repository.PaymentRepository
	activities *repository.ActivityRepository
	cache      *repository.StatsCache
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	users *repository.UserRepository,
	foodLogs *repository.FoodLogRepository,
	payments *repository.PaymentRepository,
	activities *repository.ActivityRepository,
	cache *repository.StatsCache,
) *DashboardService {
	return &DashboardService{
		users:      users,
		foodLogs:   foodLogs,
		payments:   payments,
		activities: activities,
		cache:      cache,
	}
}

// Stats returns the aggregate dashboard counts, served from cache when
// fresh. Cache failures degrade to direct queries.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var cached DashboardStats
	hit, err := s.cache.Get(ctx, statsCacheKey, &cached)
	if err != nil {
		log.Printf("stats cache read failed: %v", err)
	}
	if hit {
		return cached, nil
	}

	stats, err := s.collectStats(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	if err := s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		log.Printf("stats cache write failed: %v", err)
	}
	return stats, nil
}

func (s *DashboardService) collectStats(ctx context.Context) (DashboardStats, error) {
	summary, err := s.users.Summary(ctx)
	if err != nil {
		return DashboardStats{}, domain.ErrInternal("failed to summarise users", err)
	}
	logsToday, err := s.foodLogs.CountToday(ctx)
	if err != nil {
		return DashboardStats{}, domain.ErrInternal("failed to count food logs", err)
	}
	revenueCents, err := s.payments.ApprovedRevenueCents(ctx)
	if err != nil {
		return DashboardStats{}, domain.ErrInternal("failed to sum revenue", err)
	}

	return DashboardStats{
		TotalUsers:     summary.Total,
		ActiveUsers:    summary.Active,
		QuizCompleted:  summary.QuizCompleted,
		OnTrial:        summary.OnTrial,
		PayingUsers:    summary.Paying,
		FoodLogsToday:  logsToday,
		RevenueDollars: float64(revenueCents) / 100,
	}, nil
}

// Overview assembles the whole dashboard page.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.activities.DailyCounts(ctx, trendDays)
	if err != nil {
		return nil, domain.ErrInternal("failed to build activity trend", err)
	}
	trend := make([]TrendPoint, len(counts))
	for i, c := range counts {
		trend[i] = TrendPoint{Label: c.Day.Format("Jan 2"), Count: c.Count}
	}

	recent, err := s.users.Recent(ctx, 5)
	if err != nil {
		return nil, domain.ErrInternal("failed to list recent users", err)
	}
	foodLogs, err := s.foodLogs.Recent(ctx, 5)
	if err != nil {
		return nil, domain.ErrInternal("failed to list recent food logs", err)
	}
	activities, err := s.activities.Recent(ctx, 8)
	if err != nil {
		return nil, domain.ErrInternal("failed to list recent activities", err)
	}

	return &DashboardOverview{
		Stats:      stats,
		Trend:      trend,
		Recent:     recent,
		FoodLogs:   foodLogs,
		Activities: activities,
	}, nil
}
