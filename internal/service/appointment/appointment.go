// Package appointment implements booking and the appointment lifecycle.
package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/repo"
	entappt "github.com/bookwise/bookwise_backend/internal/repo/appointment"
	entavail "github.com/bookwise/bookwise_backend/internal/repo/availability"
	entservice "github.com/bookwise/bookwise_backend/internal/repo/service"
	entuser "github.com/bookwise/bookwise_backend/internal/repo/user"
	"github.com/bookwise/bookwise_backend/internal/service/notification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID         uuid.UUID
	ProviderID     uuid.UUID
	ServiceID      uuid.UUID
	AvailabilityID *uuid.UUID
	Date           time.Time
	StartTime      string
	EndTime        string
	Notes          *string
}

type UpdateRequest struct {
	ProviderID *uuid.UUID
	ServiceID  *uuid.UUID
	Date       *time.Time
	StartTime  *string
	EndTime    *string
	Notes      *string
}

type ListRequest struct {
	UserID     *uuid.UUID
	ProviderID *uuid.UUID
	ServiceID  *uuid.UUID
	Status     *string
	From       *time.Time
	To         *time.Time
	SortBy     string
	SortOrder  string
	Page       int
	PerPage    int
}

// PartySummary is the slice of a user shown alongside an appointment.
type PartySummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// ServiceSummary is the slice of a catalog entry shown alongside an
// appointment.
type ServiceSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Detail is an appointment with its parties and service expanded.
type Detail struct {
	*repo.Appointment
	User     *PartySummary   `json:"user,omitempty"`
	Provider *PartySummary   `json:"provider,omitempty"`
	Service  *ServiceSummary `json:"service,omitempty"`
}

// ListResult carries one page of appointments plus the unpaged total.
type ListResult struct {
	Data  []*Detail `json:"data"`
	Total int       `json:"total"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Detail, error)
	List(ctx context.Context, req ListRequest) (*ListResult, error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*Detail, error)

	// Update mutates in place and reports only success or failure, it
	// does not echo the changed row back.
	Update(ctx context.Context, apptID uuid.UUID, req UpdateRequest) error
	UpdateStatus(ctx context.Context, apptID uuid.UUID, status string) (*repo.Appointment, error)
	Delete(ctx context.Context, apptID uuid.UUID) error

	// Scheduled jobs
	SendReminders(ctx context.Context) (int, error)
	SendFollowUps(ctx context.Context) (int, error)
	SendWeeklySummaries(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db       *repo.Client
	notifier notification.Dispatcher
}

func New(db *repo.Client, notifier notification.Dispatcher) Service {
	return &appointmentService{db: db, notifier: notifier}
}

func dayRange(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func (s *appointmentService) Create(ctx context.Context, req CreateRequest) (*Detail, error) {
	user, err := s.db.User.Get(ctx, req.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	provider, err := s.db.User.Get(ctx, req.ProviderID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}

	svc, err := s.db.Service.Get(ctx, req.ServiceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	if err := s.requireAvailability(ctx, req.ProviderID, req.ServiceID); err != nil {
		return nil, err
	}

	// Conflict check and insert run in one transaction. The conflicting
	// rows are locked FOR UPDATE so two concurrent bookings of the same
	// slot serialize instead of both passing the check.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	dayStart, dayEnd := dayRange(req.Date)
	taken, err := tx.Appointment.Query().
		Where(
			entappt.ProviderID(req.ProviderID),
			entappt.DateGTE(dayStart),
			entappt.DateLT(dayEnd),
			entappt.StartTime(req.StartTime),
			entappt.StatusEQ(entappt.StatusBooked),
		).
		ForUpdate().
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("check slot: %w", err))
	}
	if taken {
		return nil, rollback(tx, ErrSlotTaken)
	}

	c := tx.Appointment.Create().
		SetUserID(req.UserID).
		SetProviderID(req.ProviderID).
		SetServiceID(req.ServiceID).
		SetDate(req.Date).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)

	if req.AvailabilityID != nil {
		c = c.SetNillableAvailabilityID(req.AvailabilityID)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create appointment: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	s.notifier.BookingConfirmed(ctx, bookingEvent(appt, user, provider, svc))
	return &Detail{
		Appointment: appt,
		User:        partySummary(user),
		Provider:    partySummary(provider),
		Service:     serviceSummary(svc),
	}, nil
}

// List filters appointments. The user and provider filters are swapped
// against the columns they read: the user filter matches the provider
// column and vice versa. Existing clients depend on this, so it stays
// until the API is versioned.
func (s *appointmentService) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.UserID != nil {
		q = q.Where(entappt.ProviderID(*req.UserID))
	}
	if req.ProviderID != nil {
		q = q.Where(entappt.UserID(*req.ProviderID))
	}
	if req.ServiceID != nil {
		q = q.Where(entappt.ServiceID(*req.ServiceID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.DateGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.DateLT(*req.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.
		Order(listOrder(req.SortBy, req.SortOrder)...).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	details, err := s.expand(ctx, appts)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: details, Total: total}, nil
}

// listOrder maps the requested sort onto whitelisted columns. Unknown
// fields fall back to newest-first by date then start time.
func listOrder(sortBy, sortOrder string) []entappt.OrderOption {
	dir := sql.OrderDesc()
	if sortOrder == "asc" {
		dir = sql.OrderAsc()
	}
	switch sortBy {
	case "created_at":
		return []entappt.OrderOption{entappt.ByCreatedAt(dir)}
	case "start_time":
		return []entappt.OrderOption{entappt.ByStartTime(dir)}
	default:
		return []entappt.OrderOption{entappt.ByDate(dir), entappt.ByStartTime(dir)}
	}
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*Detail, error) {
	appt, err := s.getRow(ctx, apptID)
	if err != nil {
		return nil, err
	}

	details, err := s.expand(ctx, []*repo.Appointment{appt})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *appointmentService) getRow(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Update(ctx context.Context, apptID uuid.UUID, req UpdateRequest) error {
	appt, err := s.getRow(ctx, apptID)
	if err != nil {
		return err
	}

	providerID := appt.ProviderID
	serviceID := appt.ServiceID
	if req.ProviderID != nil {
		providerID = *req.ProviderID
		if _, err := s.db.User.Get(ctx, providerID); err != nil {
			if repo.IsNotFound(err) {
				return ErrProviderNotFound
			}
			return fmt.Errorf("get provider: %w", err)
		}
	}
	if req.ServiceID != nil {
		serviceID = *req.ServiceID
		if _, err := s.db.Service.Get(ctx, serviceID); err != nil {
			if repo.IsNotFound(err) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("get service: %w", err)
		}
	}
	if err := s.requireAvailability(ctx, providerID, serviceID); err != nil {
		return err
	}

	upd := s.db.Appointment.UpdateOneID(apptID)

	if req.ProviderID != nil {
		upd = upd.SetProviderID(*req.ProviderID)
	}
	if req.ServiceID != nil {
		upd = upd.SetServiceID(*req.ServiceID)
	}
	if req.Date != nil {
		upd = upd.SetDate(*req.Date)
	}
	if req.StartTime != nil {
		upd = upd.SetStartTime(*req.StartTime)
	}
	if req.EndTime != nil {
		upd = upd.SetEndTime(*req.EndTime)
	}
	if req.Notes != nil {
		upd = upd.SetNillableNotes(req.Notes)
	}

	if _, err := upd.Save(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// requireAvailability checks that the provider has declared at least one
// availability window for the service being booked.
func (s *appointmentService) requireAvailability(ctx context.Context, providerID, serviceID uuid.UUID) error {
	paired, err := s.db.Availability.Query().
		Where(
			entavail.ProviderID(providerID),
			entavail.ServiceID(serviceID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check availability: %w", err)
	}
	if !paired {
		return ErrNoAvailability
	}
	return nil
}

// UpdateStatus transitions an appointment and notifies both parties.
// Modification is blocked once the appointment is more than a day in the
// past. Every transition sends the cancellation pair of emails, whatever
// the target status; clients filter on their side.
func (s *appointmentService) UpdateStatus(ctx context.Context, apptID uuid.UUID, status string) (*repo.Appointment, error) {
	switch entappt.Status(status) {
	case entappt.StatusBooked, entappt.StatusCanceled, entappt.StatusCompleted:
	default:
		return nil, ErrInvalidStatus
	}

	appt, err := s.getRow(ctx, apptID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	start := combine(appt.Date, appt.StartTime)
	end := combine(appt.Date, appt.EndTime)
	if pastCutoff(now, start, end) {
		return nil, ErrModifyWindowClosed
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if ev, err := s.loadEvent(ctx, updated); err == nil {
		s.notifier.BookingCanceled(ctx, ev)
	}

	return updated, nil
}

func (s *appointmentService) Delete(ctx context.Context, apptID uuid.UUID) error {
	if err := s.db.Appointment.DeleteOneID(apptID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// loadEvent resolves the parties of an appointment into a notification
// payload.
func (s *appointmentService) loadEvent(ctx context.Context, appt *repo.Appointment) (notification.BookingEvent, error) {
	user, err := s.db.User.Get(ctx, appt.UserID)
	if err != nil {
		return notification.BookingEvent{}, fmt.Errorf("get user: %w", err)
	}
	provider, err := s.db.User.Get(ctx, appt.ProviderID)
	if err != nil {
		return notification.BookingEvent{}, fmt.Errorf("get provider: %w", err)
	}
	svc, err := s.db.Service.Get(ctx, appt.ServiceID)
	if err != nil {
		return notification.BookingEvent{}, fmt.Errorf("get service: %w", err)
	}
	return bookingEvent(appt, user, provider, svc), nil
}

func bookingEvent(appt *repo.Appointment, user, provider *repo.User, svc *repo.Service) notification.BookingEvent {
	return notification.BookingEvent{
		UserName:      user.FirstName + " " + user.LastName,
		UserEmail:     user.Email,
		ProviderName:  provider.FirstName + " " + provider.LastName,
		ProviderEmail: provider.Email,
		ServiceName:   svc.Name,
		Date:          appt.Date.Format("2006-01-02"),
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
	}
}

func partySummary(u *repo.User) *PartySummary {
	return &PartySummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func serviceSummary(svc *repo.Service) *ServiceSummary {
	return &ServiceSummary{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
	}
}

// expand attaches party and service summaries to each row. Users and
// services are fetched in one batch per kind regardless of page size.
func (s *appointmentService) expand(ctx context.Context, appts []*repo.Appointment) ([]*Detail, error) {
	userIDs := make([]uuid.UUID, 0, 2*len(appts))
	serviceIDs := make([]uuid.UUID, 0, len(appts))
	seenUsers := make(map[uuid.UUID]bool, 2*len(appts))
	seenServices := make(map[uuid.UUID]bool, len(appts))
	for _, appt := range appts {
		for _, id := range []uuid.UUID{appt.UserID, appt.ProviderID} {
			if !seenUsers[id] {
				seenUsers[id] = true
				userIDs = append(userIDs, id)
			}
		}
		if !seenServices[appt.ServiceID] {
			seenServices[appt.ServiceID] = true
			serviceIDs = append(serviceIDs, appt.ServiceID)
		}
	}

	parties := make(map[uuid.UUID]*PartySummary, len(userIDs))
	if len(userIDs) > 0 {
		users, err := s.db.User.Query().
			Where(entuser.IDIn(userIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load users: %w", err)
		}
		for _, u := range users {
			parties[u.ID] = partySummary(u)
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
			services[svc.ID] = serviceSummary(svc)
		}
	}

	details := make([]*Detail, 0, len(appts))
	for _, appt := range appts {
		details = append(details, &Detail{
			Appointment: appt,
			User:        parties[appt.UserID],
			Provider:    parties[appt.ProviderID],
			Service:     services[appt.ServiceID],
		})
	}
	return details, nil
}

func rollback(tx *repo.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
