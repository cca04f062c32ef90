package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/api/http/middleware"
	"github.com/bookwise/bookwise_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		return unauthorized(c)
	case errors.Is(err, user.ErrInactive):
		return forbidden(c)
	case errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /auth/register
func (h *UserHandler) Register(c fiber.Ctx) error {
	var body struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     string  `json:"email"`
		Password  string  `json:"password"`
		Role      string  `json:"role"`
		Phone     *string `json:"phone"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	u, err := h.svc.Register(c.Context(), user.RegisterRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Role:      body.Role,
		Phone:     body.Phone,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, u)
}

// POST /auth/login
func (h *UserHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, fiber.Map{
		"user":         res.User,
		"access_token": res.AccessToken,
	})
}

// GET /users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, okc := middleware.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// PATCH /users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, okc := middleware.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), claims.UserID, user.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Role    string `query:"role"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Role != "" {
		req.Role = &q.Role
	}

	users, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, users)
}

// GET /users/:id
func (h *UserHandler) GetByID(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// PATCH /users/:id/active
func (h *UserHandler) SetActive(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetActive(c.Context(), userID, body.Active); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}
