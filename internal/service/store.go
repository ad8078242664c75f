package service

import (
	"context"
	"time"

	"exploreWithMe/internal/models"
)

// Transactor runs fn inside a single database transaction. Store methods
// called with the ctx passed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserStore interface {
	SaveUser(ctx context.Context, u models.User) (int64, error)
	User(ctx context.Context, id int64) (*models.User, error)
	UserByName(ctx context.Context, name string) (*models.User, error)
	UsersByIDs(ctx context.Context, ids []int64) ([]models.User, error)
	Users(ctx context.Context, ids []int64, limit, offset int) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type CategoryStore interface {
	SaveCategory(ctx context.Context, name string) (int64, error)
	Category(ctx context.Context, id int64) (*models.Category, error)
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	CategoriesByIDs(ctx context.Context, ids []int64) ([]models.Category, error)
	Categories(ctx context.Context, limit, offset int) ([]models.Category, error)
	UpdateCategory(ctx context.Context, c models.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	CategoryInUse(ctx context.Context, id int64) (bool, error)
}

type EventStore interface {
	SaveEvent(ctx context.Context, e models.Event) (int64, error)
	UpdateEvent(ctx context.Context, e models.Event) error
	Event(ctx context.Context, id int64) (*models.Event, error)
	// EventForUpdate locks the event row until the surrounding transaction ends.
	EventForUpdate(ctx context.Context, id int64) (*models.Event, error)
	EventsByIDs(ctx context.Context, ids []int64) ([]models.Event, error)
	Events(ctx context.Context, q models.EventQuery) ([]models.Event, error)
	AddConfirmed(ctx context.Context, eventID int64, delta int) error
}

type RequestStore interface {
	SaveRequest(ctx context.Context, r models.Request) (int64, error)
	Request(ctx context.Context, id int64) (*models.Request, error)
	RequestByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (*models.Request, error)
	RequestsByRequester(ctx context.Context, requesterID int64) ([]models.Request, error)
	RequestsByEvent(ctx context.Context, eventID int64) ([]models.Request, error)
	RequestsByIDs(ctx context.Context, ids []int64) ([]models.Request, error)
	UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus) error
	CountConfirmed(ctx context.Context, eventIDs []int64) (map[int64]int, error)
}

type CompilationStore interface {
	SaveCompilation(ctx context.Context, c models.Compilation) (int64, error)
	UpdateCompilation(ctx context.Context, c models.Compilation) error
	Compilation(ctx context.Context, id int64) (*models.Compilation, error)
	Compilations(ctx context.Context, pinned *bool, limit, offset int) ([]models.Compilation, error)
	DeleteCompilation(ctx context.Context, id int64) error
}

type RatingStore interface {
	SaveRating(ctx context.Context, r models.Rating) (int64, error)
	Rating(ctx context.Context, id int64) (*models.Rating, error)
	UpdateRating(ctx context.Context, r models.Rating) error
	DeleteRating(ctx context.Context, id int64) error
	AverageRate(ctx context.Context, eventID int64) (avg float64, count int, err error)
}

// Store is everything the services need from persistence.
type Store interface {
	Transactor
	UserStore
	CategoryStore
	EventStore
	RequestStore
	CompilationStore
	RatingStore
}

// StatsClient talks to the stats server.
type StatsClient interface {
	SaveHit(ctx context.Context, hit models.EndpointHit) error
	Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]models.ViewStats, error)
}

type Clock func() time.Time
