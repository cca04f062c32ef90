// Package reporting aggregates appointment data for admin dashboards.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/repo"
	entappt "github.com/bookwise/bookwise_backend/internal/repo/appointment"
	entservice "github.com/bookwise/bookwise_backend/internal/repo/service"
	entuser "github.com/bookwise/bookwise_backend/internal/repo/user"
)

// ServiceCount is appointment volume per catalog service.
type ServiceCount struct {
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Count       int       `json:"count"`
}

// UserCount is appointment volume per booking user.
type UserCount struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Count  int       `json:"count"`
}

type Service interface {
	AppointmentsPerService(ctx context.Context) ([]ServiceCount, error)
	UserActivity(ctx context.Context) ([]UserCount, error)
	MonthlyTrends(ctx context.Context, months int) ([]MonthCount, error)
}

type reportingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &reportingService{db: db}
}

func (s *reportingService) AppointmentsPerService(ctx context.Context) ([]ServiceCount, error) {
	var rows []struct {
		ServiceID uuid.UUID `json:"service_id"`
		Count     int       `json:"count"`
	}
	err := s.db.Appointment.Query().
		GroupBy(entappt.FieldServiceID).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group by service: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ServiceID)
	}
	svcs, err := s.db.Service.Query().
		Where(entservice.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve service names: %w", err)
	}
	names := make(map[uuid.UUID]string, len(svcs))
	for _, svc := range svcs {
		names[svc.ID] = svc.Name
	}

	out := make([]ServiceCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, ServiceCount{
			ServiceID:   r.ServiceID,
			ServiceName: names[r.ServiceID],
			Count:       r.Count,
		})
	}
	return out, nil
}

func (s *reportingService) UserActivity(ctx context.Context) ([]UserCount, error) {
	var rows []struct {
		UserID uuid.UUID `json:"user_id"`
		Count  int       `json:"count"`
	}
	err := s.db.Appointment.Query().
		GroupBy(entappt.FieldUserID).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group by user: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	users, err := s.db.User.Query().
		Where(entuser.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve users: %w", err)
	}
	byID := make(map[uuid.UUID]*repo.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]UserCount, 0, len(rows))
	for _, r := range rows {
		uc := UserCount{UserID: r.UserID, Count: r.Count}
		if u, ok := byID[r.UserID]; ok {
			uc.Name = u.FirstName + " " + u.LastName
			uc.Email = u.Email
		}
		out = append(out, uc)
	}
	return out, nil
}

// MonthlyTrends buckets appointment dates into calendar months ending at
// the current month. Bucketing happens in Go so the query stays portable
// across SQL dialects.
func (s *reportingService) MonthlyTrends(ctx context.Context, months int) ([]MonthCount, error) {
	if months < 1 {
		months = 6
	}

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	var rows []struct {
		Date time.Time `json:"date"`
	}
	err := s.db.Appointment.Query().
		Where(entappt.DateGTE(since)).
		Select(entappt.FieldDate).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query dates: %w", err)
	}

	dates := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, r.Date)
	}
	return bucketByMonth(dates, months, now), nil
}
