package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookwise/bookwise_backend/internal/api/http/handler"
	"github.com/bookwise/bookwise_backend/pkg/authorize"
)

func (r *Router) registerReportingRoutes(
	api fiber.Router,
	h *handler.ReportingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	reports := api.Group("/reports", authRequired)

	reports.Get("/appointments-per-service", requirePerm(authorize.ResourceReport, authorize.ActionRead), h.AppointmentsPerService)
	reports.Get("/user-activity", requirePerm(authorize.ResourceReport, authorize.ActionRead), h.UserActivity)
	reports.Get("/monthly-trends", requirePerm(authorize.ResourceReport, authorize.ActionRead), h.MonthlyTrends)
}
