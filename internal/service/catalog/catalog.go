// Package catalog manages the bookable service offerings.
package catalog

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/repo"
	entservice "github.com/bookwise/bookwise_backend/internal/repo/service"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name            string
	Description     *string
	DurationMinutes int
	Price           *int64
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *int64
	IsActive        *bool
}

type ListRequest struct {
	ActiveOnly bool
	SortBy     string
	SortOrder  string
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Service, error)
	Update(ctx context.Context, serviceID uuid.UUID, req UpdateRequest) (*repo.Service, error)
	GetByID(ctx context.Context, serviceID uuid.UUID) (*repo.Service, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Service, error)
	Delete(ctx context.Context, serviceID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &catalogService{db: db}
}

func (s *catalogService) Create(ctx context.Context, req CreateRequest) (*repo.Service, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	c := s.db.Service.Create().
		SetName(req.Name).
		SetDurationMinutes(req.DurationMinutes)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.Price != nil {
		c = c.SetNillablePrice(req.Price)
	}

	svc, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, serviceID uuid.UUID, req UpdateRequest) (*repo.Service, error) {
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	upd := s.db.Service.UpdateOneID(serviceID)

	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}
	if req.DurationMinutes != nil {
		upd = upd.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.Price != nil {
		upd = upd.SetNillablePrice(req.Price)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	svc, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) GetByID(ctx context.Context, serviceID uuid.UUID) (*repo.Service, error) {
	svc, err := s.db.Service.Get(ctx, serviceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) List(ctx context.Context, req ListRequest) ([]*repo.Service, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Service.Query()
	if req.ActiveOnly {
		q = q.Where(entservice.IsActive(true))
	}

	svcs, err := q.
		Order(listOrder(req.SortBy, req.SortOrder)).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return svcs, nil
}

// listOrder maps the requested sort onto a whitelisted column. Unknown
// fields fall back to name order.
func listOrder(sortBy, sortOrder string) entservice.OrderOption {
	dir := sql.OrderAsc()
	if sortOrder == "desc" {
		dir = sql.OrderDesc()
	}
	switch sortBy {
	case "duration_minutes":
		return entservice.ByDurationMinutes(dir)
	case "created_at":
		return entservice.ByCreatedAt(dir)
	default:
		return entservice.ByName(dir)
	}
}

func (s *catalogService) Delete(ctx context.Context, serviceID uuid.UUID) error {
	if err := s.db.Service.DeleteOneID(serviceID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
