package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookwise/bookwise_backend/internal/api/http/handler"
	"github.com/bookwise/bookwise_backend/pkg/authorize"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	h *handler.CatalogHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	svcs := api.Group("/services", authRequired)

	svcs.Get("/", requirePerm(authorize.ResourceService, authorize.ActionList), h.List)
	svcs.Post("/", requirePerm(authorize.ResourceService, authorize.ActionCreate), h.Create)

	s := svcs.Group("/:id")
	s.Get("/", requirePerm(authorize.ResourceService, authorize.ActionRead), h.GetByID)
	s.Patch("/", requirePerm(authorize.ResourceService, authorize.ActionUpdate), h.Update)
	s.Delete("/", requirePerm(authorize.ResourceService, authorize.ActionDelete), h.Delete)
}
