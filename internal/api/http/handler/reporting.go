package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookwise/bookwise_backend/internal/service/reporting"
)

type ReportingHandler struct {
	svc reporting.Service
}

func NewReportingHandler(svc reporting.Service) *ReportingHandler {
	return &ReportingHandler{svc: svc}
}

// GET /reports/appointments-per-service
func (h *ReportingHandler) AppointmentsPerService(c fiber.Ctx) error {
	rows, err := h.svc.AppointmentsPerService(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}

// GET /reports/user-activity
func (h *ReportingHandler) UserActivity(c fiber.Ctx) error {
	rows, err := h.svc.UserActivity(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}

// GET /reports/monthly-trends
func (h *ReportingHandler) MonthlyTrends(c fiber.Ctx) error {
	var q struct {
		Months int `query:"months"`
	}
	_ = c.Bind().Query(&q)

	rows, err := h.svc.MonthlyTrends(c.Context(), q.Months)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}
