// Package availability manages provider working windows and the
// bookable slots derived from them.
package availability

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/bookwise/bookwise_backend/internal/repo"
	entavail "github.com/bookwise/bookwise_backend/internal/repo/availability"
	entservice "github.com/bookwise/bookwise_backend/internal/repo/service"
	entuser "github.com/bookwise/bookwise_backend/internal/repo/user"
	"github.com/bookwise/bookwise_backend/internal/timeslot"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	DayOfWeek  string
	StartTime  string
	EndTime    string
}

type UpdateRequest struct {
	DayOfWeek *string
	StartTime *string
	EndTime   *string
}

type ListRequest struct {
	ProviderID *uuid.UUID
	ServiceID  *uuid.UUID
	DayOfWeek  *string
	SortBy     string
	SortOrder  string
	Page       int
	PerPage    int
}

// ProviderSummary is the slice of a provider shown alongside a window.
type ProviderSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ServiceSummary is the slice of a catalog entry shown alongside a window.
type ServiceSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Detail is an availability row with its provider and service expanded.
type Detail struct {
	*repo.Availability
	Provider *ProviderSummary `json:"provider,omitempty"`
	Service  *ServiceSummary  `json:"service,omitempty"`
}

// ListResult carries one page of windows plus the unpaged total.
type ListResult struct {
	Data  []*Detail `json:"data"`
	Total int       `json:"total"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Availability, error)
	Update(ctx context.Context, availabilityID uuid.UUID, req UpdateRequest) (*repo.Availability, error)
	GetByID(ctx context.Context, availabilityID uuid.UUID) (*Detail, error)
	List(ctx context.Context, req ListRequest) (*ListResult, error)
	Delete(ctx context.Context, availabilityID uuid.UUID) error

	// FreeSlots lists still-open slots across the matching windows.
	FreeSlots(ctx context.Context, req FreeSlotsRequest) ([]timeslot.Slot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	db    *repo.Client
	cache *slotCache
}

func New(db *repo.Client, rdb *goredis.Client, cacheTTLSeconds int) Service {
	return &availabilityService{
		db:    db,
		cache: newSlotCache(rdb, cacheTTLSeconds),
	}
}

func (s *availabilityService) Create(ctx context.Context, req CreateRequest) (*repo.Availability, error) {
	provider, err := s.db.User.Get(ctx, req.ProviderID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	if provider.Role != entuser.RoleProvider {
		return nil, ErrProviderNotFound
	}

	svc, err := s.db.Service.Get(ctx, req.ServiceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	if err := checkWindow(req.StartTime, req.EndTime, svc.DurationMinutes); err != nil {
		return nil, err
	}

	slots, err := timeslot.Generate(req.StartTime, req.EndTime, svc.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	avail, err := s.db.Availability.Create().
		SetProviderID(req.ProviderID).
		SetServiceID(req.ServiceID).
		SetDayOfWeek(entavail.DayOfWeek(req.DayOfWeek)).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		SetSlots(slots).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create availability: %w", err)
	}

	s.cache.invalidateProvider(ctx, req.ProviderID)
	return avail, nil
}

func (s *availabilityService) Update(ctx context.Context, availabilityID uuid.UUID, req UpdateRequest) (*repo.Availability, error) {
	avail, err := s.getRow(ctx, availabilityID)
	if err != nil {
		return nil, err
	}

	svc, err := s.db.Service.Get(ctx, avail.ServiceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	start := avail.StartTime
	end := avail.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}

	if err := checkWindow(start, end, svc.DurationMinutes); err != nil {
		return nil, err
	}

	// Window changed or not, slots are rederived so a changed service
	// duration is picked up as well.
	slots, err := timeslot.Generate(start, end, svc.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	upd := s.db.Availability.UpdateOne(avail).
		SetStartTime(start).
		SetEndTime(end).
		SetSlots(slots)

	if req.DayOfWeek != nil {
		upd = upd.SetDayOfWeek(entavail.DayOfWeek(*req.DayOfWeek))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update availability: %w", err)
	}

	s.cache.invalidateProvider(ctx, avail.ProviderID)
	return updated, nil
}

// checkWindow rejects windows that cannot fit a single slot of the
// service's duration.
func checkWindow(start, end string, durationMinutes int) error {
	minutes, err := timeslot.WindowMinutes(start, end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if minutes < durationMinutes {
		return ErrWindowTooShort
	}
	return nil
}

func (s *availabilityService) GetByID(ctx context.Context, availabilityID uuid.UUID) (*Detail, error) {
	avail, err := s.getRow(ctx, availabilityID)
	if err != nil {
		return nil, err
	}

	details, err := s.expand(ctx, []*repo.Availability{avail})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *availabilityService) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Availability.Query()
	if req.ProviderID != nil {
		q = q.Where(entavail.ProviderID(*req.ProviderID))
	}
	if req.ServiceID != nil {
		q = q.Where(entavail.ServiceID(*req.ServiceID))
	}
	if req.DayOfWeek != nil {
		q = q.Where(entavail.DayOfWeekEQ(entavail.DayOfWeek(*req.DayOfWeek)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count availabilities: %w", err)
	}

	avails, err := q.
		Order(listOrder(req.SortBy, req.SortOrder)).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availabilities: %w", err)
	}

	details, err := s.expand(ctx, avails)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: details, Total: total}, nil
}

// listOrder maps the requested sort onto a whitelisted column. Unknown
// fields fall back to creation order.
func listOrder(sortBy, sortOrder string) entavail.OrderOption {
	dir := sql.OrderAsc()
	if sortOrder == "desc" {
		dir = sql.OrderDesc()
	}
	switch sortBy {
	case "day_of_week":
		return entavail.ByDayOfWeek(dir)
	case "start_time":
		return entavail.ByStartTime(dir)
	default:
		return entavail.ByCreatedAt(dir)
	}
}

func (s *availabilityService) Delete(ctx context.Context, availabilityID uuid.UUID) error {
	avail, err := s.getRow(ctx, availabilityID)
	if err != nil {
		return err
	}

	if err := s.db.Availability.DeleteOne(avail).Exec(ctx); err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}

	s.cache.invalidateProvider(ctx, avail.ProviderID)
	return nil
}

func (s *availabilityService) getRow(ctx context.Context, availabilityID uuid.UUID) (*repo.Availability, error) {
	avail, err := s.db.Availability.Get(ctx, availabilityID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get availability: %w", err)
	}
	return avail, nil
}

// expand attaches provider and service summaries to each row. Providers
// and services are fetched in one batch per kind regardless of page
// size.
func (s *availabilityService) expand(ctx context.Context, avails []*repo.Availability) ([]*Detail, error) {
	providerIDs := make([]uuid.UUID, 0, len(avails))
	serviceIDs := make([]uuid.UUID, 0, len(avails))
	seenProviders := make(map[uuid.UUID]bool, len(avails))
	seenServices := make(map[uuid.UUID]bool, len(avails))
	for _, avail := range avails {
		if !seenProviders[avail.ProviderID] {
			seenProviders[avail.ProviderID] = true
			providerIDs = append(providerIDs, avail.ProviderID)
		}
		if !seenServices[avail.ServiceID] {
			seenServices[avail.ServiceID] = true
			serviceIDs = append(serviceIDs, avail.ServiceID)
		}
	}

	providers := make(map[uuid.UUID]*ProviderSummary, len(providerIDs))
	if len(providerIDs) > 0 {
		users, err := s.db.User.Query().
			Where(entuser.IDIn(providerIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load providers: %w", err)
		}
		for _, u := range users {
			providers[u.ID] = &ProviderSummary{
				ID:        u.ID,
				FirstName: u.FirstName,
				LastName:  u.LastName,
			}
		}
	}

	services := make(map[uuid.UUID]*ServiceSummary, len(serviceIDs))
	if len(serviceIDs) > 0 {
		svcs, err := s.db.Service.Query().
			Where(entservice.IDIn(serviceIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load services: %w", err)
		}
		for _, svc := range svcs {
			services[svc.ID] = &ServiceSummary{
				ID:              svc.ID,
				Name:            svc.Name,
				Description:     svc.Description,
				DurationMinutes: svc.DurationMinutes,
			}
		}
	}

	details := make([]*Detail, 0, len(avails))
	for _, avail := range avails {
		details = append(details, &Detail{
			Availability: avail,
			Provider:     providers[avail.ProviderID],
			Service:      services[avail.ServiceID],
		})
	}
	return details, nil
}
