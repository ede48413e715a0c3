// Package users exposes the user directory as resource classes served by the
// rest runtime.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kkutopiaa/tdd-restful-service/internal/users/models"
	dErrors "github.com/kkutopiaa/tdd-restful-service/pkg/domain-errors"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/audit"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/audit/publisher"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/audit/store/memory"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/httputil"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/sentinel"
	"github.com/kkutopiaa/tdd-restful-service/pkg/requestcontext"
	"github.com/kkutopiaa/tdd-restful-service/pkg/rest"
)

// Store persists users.
type Store interface {
	List(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	AddBalance(ctx context.Context, id string, amount decimal.Decimal) (*models.User, error)
}

// Auditor records and lists the audit trail of users.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event) error
	List(ctx context.Context, userID string) ([]audit.Event, error)
}

var (
	// UserClass serves one user, reached through the /users/{id} locator.
	UserClass = rest.MustSubClass[*UserAPI](
		rest.GET("", (*UserAPI).Get).Produces(rest.ApplicationJSON),
		rest.GET("/name", (*UserAPI).Name).Produces(rest.TextPlain),
		rest.GET("/balance", (*UserAPI).Balance, rest.QueryParam("scale").Default("2")).Produces(rest.TextPlain),
		rest.POST("/balance", (*UserAPI).Deposit, rest.Context(), rest.QueryParam("amount")).Produces(rest.ApplicationJSON),
		rest.GET("/events", (*UserAPI).Events).Produces(rest.ApplicationJSON),
	)

	// UsersClass is the /users root.
	UsersClass = rest.MustClass[*Users]("/users",
		rest.GET("", (*Users).List).Produces(rest.ApplicationJSON),
		rest.POST("", (*Users).Create, rest.Context(), rest.Context(), rest.Entity()).
			Consumes(rest.ApplicationJSON).Produces(rest.ApplicationJSON),
		rest.Locator("/{id}", (*Users).Find, UserClass, rest.Context(), rest.PathParam("id")),
	)
)

// Users is the root resource for the directory.
type Users struct {
	store  Store
	events Auditor
	logger *slog.Logger
}

// List returns every user ordered by id.
func (u *Users) List(ctx context.Context) ([]*models.User, error) {
	return u.store.List(ctx)
}

// Create stores a new user and answers 201 with its location.
func (u *Users) Create(ctx context.Context, info *rest.URIInfo, req models.CreateUserRequest) (*rest.Response, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	user := &models.User{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Balance:   req.Balance,
		CreatedAt: requestcontext.Now(ctx),
	}
	if user.ID == "" {
		user.ID = models.Slug(req.Name)
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := u.store.Create(ctx, user); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "user created", "user_id", user.ID)
	u.audit(ctx, audit.Event{UserID: user.ID, Action: audit.ActionUserCreated})

	return rest.Created(path.Join("/", info.Path, user.ID)).
		WithEntity(user).
		WithType(rest.ApplicationJSON), nil
}

// Find locates the user named by id. An unknown id matches nothing.
func (u *Users) Find(ctx context.Context, id string) (*UserAPI, error) {
	user, err := u.store.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &UserAPI{user: user, users: u}, nil
}

// audit emits event. A lost audit event does not undo the change it records.
func (u *Users) audit(ctx context.Context, event audit.Event) {
	if err := u.events.Emit(ctx, event); err != nil {
		u.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "user_id", event.UserID, "error", err)
	}
}

const maxScale = 32

// UserAPI is the sub-resource for a single user.
type UserAPI struct {
	user  *models.User
	users *Users
}

func (a *UserAPI) Get() *models.User {
	return a.user
}

func (a *UserAPI) Name() string {
	return a.user.Name
}

// Balance renders the balance with scale decimal places, at most maxScale.
func (a *UserAPI) Balance(scale int) (string, error) {
	if scale < 0 || scale > maxScale {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("scale must be between 0 and %d", maxScale))
	}
	return a.user.Balance.StringFixed(int32(scale)), nil
}

// Deposit adds amount to the balance. A negative amount withdraws.
func (a *UserAPI) Deposit(ctx context.Context, amount decimal.Decimal) (*models.User, error) {
	if amount.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "amount must not be zero")
	}
	user, err := a.users.store.AddBalance(ctx, a.user.ID, amount)
	if err != nil {
		return nil, err
	}
	a.users.audit(ctx, audit.Event{UserID: user.ID, Action: audit.ActionBalanceChanged, Detail: amount.String()})
	return user, nil
}

// Events lists the audit trail of the user, oldest first.
func (a *UserAPI) Events(ctx context.Context) ([]audit.Event, error) {
	return a.users.events.List(ctx, a.user.ID)
}

// NewApplication wires the user classes, one Users instance per request and
// the exception mappers translating store and domain errors. A nil auditor
// keeps the trail in memory.
func NewApplication(store Store, events Auditor, logger *slog.Logger) *rest.Application {
	if logger == nil {
		logger = slog.Default()
	}
	if events == nil {
		events = publisher.NewPublisher(memory.NewInMemoryStore(), publisher.WithLogger(logger))
	}
	app := rest.NewApplication(UsersClass)
	rest.PerRequest(app, func(r *http.Request) (*Users, error) {
		return &Users{
			store:  store,
			events: events,
			logger: logger.With("request_id", requestcontext.RequestID(r.Context())),
		}, nil
	})

	var errs errorMapper
	return app.WithProviders(
		rest.MapError[*dErrors.Error](errs),
		rest.MapErrorIs(sentinel.ErrNotFound, errs.as(dErrors.CodeNotFound, "resource not found")),
		rest.MapErrorIs(sentinel.ErrConflict, errs.as(dErrors.CodeConflict, "resource already exists")),
		rest.MapErrorIs(sentinel.ErrUnavailable, errs.as(dErrors.CodeUnavailable, "service unavailable")),
		rest.WithDefaultExceptionMapper(errs),
	)
}

// errorMapper answers errors with the JSON error envelope.
type errorMapper struct{}

func (errorMapper) ToResponse(err error) (*rest.Response, error) {
	status, body := httputil.ErrorBody(err)
	return rest.NewResponse(status).WithEntity(body).WithType(rest.ApplicationJSON), nil
}

// as wraps the error in a domain error with code before mapping it.
func (m errorMapper) as(code dErrors.Code, msg string) rest.ExceptionMapper {
	return rest.ExceptionMapperFunc(func(err error) (*rest.Response, error) {
		return m.ToResponse(dErrors.Wrap(err, code, msg))
	})
}
