package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/api/http/middleware"
	"github.com/bookwise/bookwise_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrUserNotFound),
		errors.Is(err, appointment.ErrProviderNotFound),
		errors.Is(err, appointment.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrNoAvailability),
		errors.Is(err, appointment.ErrInvalidStatus),
		errors.Is(err, appointment.ErrModifyWindowClosed):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	claims, okc := middleware.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	var body struct {
		ProviderID     string  `json:"provider_id"`
		ServiceID      string  `json:"service_id"`
		AvailabilityID *string `json:"availability_id"`
		Date           string  `json:"date"`
		StartTime      string  `json:"start_time"`
		EndTime        string  `json:"end_time"`
		Notes          *string `json:"notes"`
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
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	req := appointment.CreateRequest{
		UserID:     claims.UserID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       date,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		Notes:      body.Notes,
	}
	if body.AvailabilityID != nil {
		id, err := uuid.Parse(*body.AvailabilityID)
		if err != nil {
			return badRequest(c, "invalid availability_id")
		}
		req.AvailabilityID = &id
	}

	appt, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		UserID     string `query:"user_id"`
		ProviderID string `query:"provider_id"`
		ServiceID  string `query:"service_id"`
		Status     string `query:"status"`
		From       string `query:"from"`
		To         string `query:"to"`
		SortBy     string `query:"sort_by"`
		SortOrder  string `query:"sort_order"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      q.Page,
		PerPage:   q.PerPage,
	}
	if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		req.UserID = &id
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
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse("2006-01-02", q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse("2006-01-02", q.To); err == nil {
			req.To = &t
		}
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, result)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		ProviderID *string `json:"provider_id"`
		ServiceID  *string `json:"service_id"`
		Date       *string `json:"date"`
		StartTime  *string `json:"start_time"`
		EndTime    *string `json:"end_time"`
		Notes      *string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := appointment.UpdateRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Notes:     body.Notes,
	}
	if body.ProviderID != nil {
		id, err := uuid.Parse(*body.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		req.ProviderID = &id
	}
	if body.ServiceID != nil {
		id, err := uuid.Parse(*body.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}
	if body.Date != nil {
		date, err := time.Parse("2006-01-02", *body.Date)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
		req.Date = &date
	}

	if err := h.svc.Update(c.Context(), apptID, req); err != nil {
		return mapAppointmentError(c, err)
	}
	// Deliberately bodyless success; the caller refetches if it needs
	// the updated row.
	return ok(c, fiber.Map{})
}

// PATCH /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.UpdateStatus(c.Context(), apptID, body.Status)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
