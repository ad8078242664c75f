package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
)

var testNow = time.Date(2026, time.January, 10, 12, 0, 0, 0, time.Local)

type fixture struct {
	store *memStore
	stats *fakeStats

	users        *UserService
	categories   *CategoryService
	events       *EventService
	requests     *RequestService
	ratings      *RatingService
	compilations *CompilationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	store := newMemStore()
	stats := &fakeStats{}
	clock := func() time.Time { return testNow }

	events := NewEventService(log, store, stats, clock)

	return &fixture{
		store:        store,
		stats:        stats,
		users:        NewUserService(log, store),
		categories:   NewCategoryService(log, store),
		events:       events,
		requests:     NewRequestService(log, store, clock),
		ratings:      NewRatingService(log, store),
		compilations: NewCompilationService(log, store, events),
	}
}

func (f *fixture) user(t *testing.T, name string) int64 {
	t.Helper()

	id, err := f.store.SaveUser(context.Background(), models.User{Name: name, Email: name + "@example.com"})
	require.NoError(t, err)
	return id
}

func (f *fixture) category(t *testing.T, name string) int64 {
	t.Helper()

	id, err := f.store.SaveCategory(context.Background(), name)
	require.NoError(t, err)
	return id
}

// event stores an event directly, bypassing the service checks.
func (f *fixture) event(t *testing.T, initiatorID, categoryID int64, mutate func(e *models.Event)) int64 {
	t.Helper()

	e := models.Event{
		Annotation:        "A long enough annotation for tests",
		Description:       "A long enough description for tests",
		Title:             "Test event",
		CategoryID:        categoryID,
		InitiatorID:       initiatorID,
		Location:          models.Location{Lat: 55.75, Lon: 37.62},
		ParticipantLimit:  10,
		RequestModeration: true,
		CreatedOn:         testNow.Add(-24 * time.Hour),
		EventDate:         testNow.Add(72 * time.Hour),
		State:             models.EventStatePublished,
	}
	if mutate != nil {
		mutate(&e)
	}

	id, err := f.store.SaveEvent(context.Background(), e)
	require.NoError(t, err)
	return id
}

func (f *fixture) request(t *testing.T, requesterID, eventID int64, status models.RequestStatus) int64 {
	t.Helper()

	ctx := context.Background()

	id, err := f.store.SaveRequest(ctx, models.Request{
		RequesterID: requesterID,
		EventID:     eventID,
		Created:     testNow,
		Status:      status,
	})
	require.NoError(t, err)

	if status == models.RequestStatusConfirmed {
		require.NoError(t, f.store.AddConfirmed(ctx, eventID, 1))
	}
	return id
}

func (f *fixture) storedEvent(t *testing.T, id int64) models.Event {
	t.Helper()

	e, err := f.store.Event(context.Background(), id)
	require.NoError(t, err)
	return *e
}

func ptr[T any](v T) *T {
	return &v
}
