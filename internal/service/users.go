package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const usersPerPage = 20

// UserListPage is one rendered page of the user management table.
type UserListPage struct {
	Users      []*domain.User
	Filter     repository.UserFilter
	Pagination domain.Pagination
}

// UserDetail is everything the user detail page renders.
type UserDetail struct {
	User     *domain.User
	BMI      *domain.BMI
	FoodLogs []*domain.FoodLog
	Payments []*domain.PaymentTransaction
}

// UserAdminService implements the administrative operations on end users.
type UserAdminService struct {
	users      *repository.UserRepository
	foodLogs   *repository.FoodLogRepository
	payments   *repository.PaymentRepository
	activities *repository.ActivityRepository
	validate   *validator.Validate
}

// NewUserAdminService creates a new UserAdminService.
func NewUserAdminService(
	users *repository.UserRepository,
	foodLogs *repository.FoodLogRepository,
	payments *repository.PaymentRepository,
	activities *repository.ActivityRepository,
) *UserAdminService {
	return &UserAdminService{
		users:      users,
		foodLogs:   foodLogs,
		payments:   payments,
		activities: activities,
		validate:   validator.New(),
	}
}

// List returns one page of users for the management table.
func (s *UserAdminService) List(ctx context.Context, f repository.UserFilter, page int) (*UserListPage, error) {
	if err := s.validate.Struct(f); err != nil {
		return nil, domain.ErrValidation("invalid filter parameters")
	}
	if page < 1 {
		page = 1
	}

	p := domain.Pagination{Page: page, PerPage: usersPerPage}
	users, total, err := s.users.List(ctx, f, p)
	if err != nil {
		return nil, domain.ErrInternal("failed to list users", err)
	}
	p.Total = total

	// Past-the-end pages render as an empty table rather than a 404; the
	// pager still points back at the real pages.
	return &UserListPage{Users: users, Filter: f, Pagination: p}, nil
}

// parseUserID rejects malformed row IDs before they reach a query.
func parseUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrBadRequest("invalid user id")
	}
	return nil
}

// Detail assembles the user detail page.
func (s *UserAdminService) Detail(ctx context.Context, id string) (*UserDetail, error) {
	if err := parseUserID(id); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find user", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound("user not found")
	}

	detail := &UserDetail{User: user}

	if user.QuizCompleted && user.WeightKg != nil && user.HeightCm != nil {
		bmi, err := domain.ComputeBMI(*user.WeightKg, *user.HeightCm)
		if err != nil {
			log.Printf("user %s: %v", user.ID, err)
		} else {
			detail.BMI = &bmi
		}
	}

	detail.FoodLogs, err = s.foodLogs.ListByUser(ctx, id, 20)
	if err != nil {
		return nil, domain.ErrInternal("failed to list food logs", err)
	}
	detail.Payments, err = s.payments.ListByUser(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to list payments", err)
	}
	return detail, nil
}

// ToggleActive flips a user's active flag and returns the new state. The
// flip is recorded in the activity feed.
func (s *UserAdminService) ToggleActive(ctx context.Context, id string) (bool, error) {
	if err := parseUserID(id); err != nil {
		return false, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return false, domain.ErrInternal("failed to find user", err)
	}
	if user == nil {
		return false, domain.ErrNotFound("user not found")
	}

	nowActive := !user.IsActive
	ok, err := s.users.SetActive(ctx, id, nowActive)
	if err != nil {
		return false, domain.ErrInternal("failed to update user", err)
	}
	if !ok {
		return false, domain.ErrNotFound("user not found")
	}

	if err := s.activities.Record(ctx, id, domain.ActivityOther, nil); err != nil {
		log.Printf("failed to record toggle for user %s: %v", id, err)
	}
	log.Printf("user %s active=%t", id, nowActive)
	return nowActive, nil
}

// Delete removes a user and all their dependent rows.
func (s *UserAdminService) Delete(ctx context.Context, id string) error {
	if err := parseUserID(id); err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return domain.ErrInternal("failed to find user", err)
	}
	if user == nil {
		return domain.ErrNotFound("user not found")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete user", err)
	}
	log.Printf("user %s (%s) deleted", id, user.FullName())
	return nil
}

// ExportCSV streams all users matching the filter as CSV.
func (s *UserAdminService) ExportCSV(ctx context.Context, w io.Writer, f repository.UserFilter) error {
	if err := s.validate.Struct(f); err != nil {
		return domain.ErrValidation("invalid filter parameters")
	}

	users, err := s.users.ListAll(ctx, f)
	if err != nil {
		return domain.ErrInternal("failed to list users", err)
	}

	cw := csv.NewWriter(w)
	header := []string{
		"id", "first_name", "last_name", "whatsapp_id", "quiz_completed",
		"goal", "subscription_status", "subscription_tier", "is_active", "created_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, u := range users {
		goal := ""
		if u.Goal != nil {
			goal = string(*u.Goal)
		}
		row := []string{
			u.ID, u.FirstName, u.LastName, u.WhatsAppID,
			strconv.FormatBool(u.QuizCompleted), goal,
			string(u.SubscriptionStatus), u.SubscriptionTier,
			strconv.FormatBool(u.IsActive),
			u.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
