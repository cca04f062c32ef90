package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookwise/bookwise_backend/internal/api/http/handler"
	"github.com/bookwise/bookwise_backend/pkg/authorize"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	h *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	avails := api.Group("/availabilities", authRequired)

	avails.Get("/", requirePerm(authorize.ResourceAvailability, authorize.ActionList), h.List)
	avails.Get("/free-slots", requirePerm(authorize.ResourceAvailability, authorize.ActionRead), h.FreeSlots)
	avails.Post("/", requirePerm(authorize.ResourceAvailability, authorize.ActionCreate), h.Create)

	a := avails.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAvailability, authorize.ActionRead), h.GetByID)
	a.Patch("/", requirePerm(authorize.ResourceAvailability, authorize.ActionUpdate), h.Update)
	a.Delete("/", requirePerm(authorize.ResourceAvailability, authorize.ActionDelete), h.Delete)
}
