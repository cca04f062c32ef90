package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookwise/bookwise_backend/internal/api/http/handler"
	"github.com/bookwise/bookwise_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	users := api.Group("/users", authRequired)
	users.Get("/me", h.GetMe)
	users.Patch("/me", h.UpdateMe)
	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)

	u := users.Group("/:id")
	u.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.GetByID)
	u.Patch("/active", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.SetActive)
}
