// Package user handles registration, login and account management.
package user

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/repo"
	entuser "github.com/bookwise/bookwise_backend/internal/repo/user"
	"github.com/bookwise/bookwise_backend/pkg/authorize"
	"github.com/bookwise/bookwise_backend/pkg/token"
	"github.com/bookwise/bookwise_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Phone     *string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

type ListRequest struct {
	Role    *string
	Page    int
	PerPage int
}

type LoginResult struct {
	User        *repo.User
	AccessToken string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*repo.User, error)
	Login(ctx context.Context, email, plaintext string) (*LoginResult, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db     *repo.Client
	tokens *token.Manager
	authz  authorize.IAuthorization
}

func New(db *repo.Client, tokens *token.Manager, authz authorize.IAuthorization) Service {
	return &userService{db: db, tokens: tokens, authz: authz}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*repo.User, error) {
	role := req.Role
	if role == "" {
		role = string(authorize.RoleUser)
	}
	if !authorize.IsValidRole(authorize.Role(role)) {
		return nil, ErrInvalidRole
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetEmail(req.Email).
		SetPasswordHash(hash).
		SetRole(entuser.Role(role))

	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}

	u, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if _, err := s.authz.AddRoleForUser(ctx, authorize.SubjectForUser(u.ID), authorize.Role(role)); err != nil {
		return nil, fmt.Errorf("grant role: %w", err)
	}

	return u, nil
}

func (s *userService) Login(ctx context.Context, email, plaintext string) (*LoginResult, error) {
	u, err := s.db.User.Query().Where(entuser.Email(email)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, plaintext); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactive
	}

	access, err := s.tokens.Generate(u.ID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	now := time.Now()
	if err := s.db.User.UpdateOne(u).SetLastLoginAt(now).Exec(ctx); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}

	return &LoginResult{User: u, AccessToken: access}, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query()
	if req.Role != nil {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error) {
	upd := s.db.User.UpdateOneID(userID)

	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}

	u, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (s *userService) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	err := s.db.User.UpdateOneID(userID).SetIsActive(active).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("set active: %w", err)
	}
	return nil
}
