package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/api/http/middleware"
	"github.com/bookwise/bookwise_backend/internal/service/availability"
	"github.com/bookwise/bookwise_backend/pkg/authorize"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrProviderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrInvalidWindow),
		errors.Is(err, availability.ErrWindowTooShort):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// canManage reports whether the caller may modify a provider's schedule:
// the provider themselves, or an admin.
func canManage(c fiber.Ctx, providerID uuid.UUID) bool {
	claims, ok := middleware.ClaimsFromFiber(c)
	if !ok {
		return false
	}
	return claims.UserID == providerID || claims.Role == string(authorize.RoleAdmin)
}

// POST /availabilities
func (h *AvailabilityHandler) Create(c fiber.Ctx) error {
	var body struct {
		ProviderID string `json:"provider_id"`
		ServiceID  string `json:"service_id"`
		DayOfWeek  string `json:"day_of_week"`
		StartTime  string `json:"start_time"`
		EndTime    string `json:"end_time"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	providerID, err := uuid.Parse(body.ProviderID)
	if err != nil {
		return badRequest(c, "invalid provider_id")
	}
	serviceID, err := uuid.Parse(body.ServiceID)
	if err != nil {
		return badRequest(c, "invalid service_id")
	}
	if !canManage(c, providerID) {
		return forbidden(c)
	}

	avail, err := h.svc.Create(c.Context(), availability.CreateRequest{
		ProviderID: providerID,
		ServiceID:  serviceID,
		DayOfWeek:  body.DayOfWeek,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return created(c, avail)
}

// PATCH /availabilities/:id
func (h *AvailabilityHandler) Update(c fiber.Ctx) error {
	availID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid availability id")
	}

	existing, err := h.svc.GetByID(c.Context(), availID)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	if !canManage(c, existing.ProviderID) {
		return forbidden(c)
	}

	var body struct {
		DayOfWeek *string `json:"day_of_week"`
		StartTime *string `json:"start_time"`
		EndTime   *string `json:"end_time"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	avail, err := h.svc.Update(c.Context(), availID, availability.UpdateRequest{
		DayOfWeek: body.DayOfWeek,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, avail)
}

// GET /availabilities/:id
func (h *AvailabilityHandler) GetByID(c fiber.Ctx) error {
	availID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid availability id")
	}

	avail, err := h.svc.GetByID(c.Context(), availID)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, avail)
}

// GET /availabilities
func (h *AvailabilityHandler) List(c fiber.Ctx) error {
	var q struct {
		ProviderID string `query:"provider_id"`
		ServiceID  string `query:"service_id"`
		DayOfWeek  string `query:"day_of_week"`
		SortBy     string `query:"sort_by"`
		SortOrder  string `query:"sort_order"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := availability.ListRequest{
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      q.Page,
		PerPage:   q.PerPage,
	}
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		req.ProviderID = &id
	}
	if q.ServiceID != "" {
		id, err := uuid.Parse(q.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}
	if q.DayOfWeek != "" {
		req.DayOfWeek = &q.DayOfWeek
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, result)
}

// DELETE /availabilities/:id
func (h *AvailabilityHandler) Delete(c fiber.Ctx) error {
	availID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid availability id")
	}

	existing, err := h.svc.GetByID(c.Context(), availID)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	if !canManage(c, existing.ProviderID) {
		return forbidden(c)
	}

	if err := h.svc.Delete(c.Context(), availID); err != nil {
		return mapAvailabilityError(c, err)
	}
	return noContent(c)
}

// GET /availabilities/free-slots
func (h *AvailabilityHandler) FreeSlots(c fiber.Ctx) error {
	var q struct {
		ProviderID string `query:"provider_id"`
		ServiceID  string `query:"service_id"`
		Date       string `query:"date"`
	}
	_ = c.Bind().Query(&q)

	var req availability.FreeSlotsRequest
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		req.ProviderID = &id
	}
	if q.ServiceID != "" {
		id, err := uuid.Parse(q.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}
	if q.Date != "" {
		date, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
		req.Date = &date
	}

	slots, err := h.svc.FreeSlots(c.Context(), req)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, slots)
}
