package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"exploreWithMe/internal/models"
	"exploreWithMe/internal/storage"
)

// memStore is an in-memory Store. Transactions are serialized by txMu and
// rolled back from a snapshot when fn fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	seq          int64
	users        map[int64]models.User
	categories   map[int64]models.Category
	events       map[int64]models.Event
	requests     map[int64]models.Request
	compilations map[int64]models.Compilation
	ratings      map[int64]models.Rating
}

type memSnapshot struct {
	seq          int64
	users        map[int64]models.User
	categories   map[int64]models.Category
	events       map[int64]models.Event
	requests     map[int64]models.Request
	compilations map[int64]models.Compilation
	ratings      map[int64]models.Rating
}

type txKey struct{}

func newMemStore() *memStore {
	return &memStore{
		users:        map[int64]models.User{},
		categories:   map[int64]models.Category{},
		events:       map[int64]models.Event{},
		requests:     map[int64]models.Request{},
		compilations: map[int64]models.Compilation{},
		ratings:      map[int64]models.Rating{},
	}
}

func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := memSnapshot{
		seq:          s.seq,
		users:        cloneMap(s.users),
		categories:   cloneMap(s.categories),
		events:       cloneMap(s.events),
		requests:     cloneMap(s.requests),
		compilations: cloneMap(s.compilations),
		ratings:      cloneMap(s.ratings),
	}
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.seq = snap.seq
		s.users, s.categories, s.events = snap.users, snap.categories, snap.events
		s.requests, s.compilations, s.ratings = snap.requests, snap.compilations, snap.ratings
		s.mu.Unlock()
		return err
	}

	return nil
}

func (s *memStore) nextID() int64 {
	s.seq++
	return s.seq
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func sortedValues[V any](m map[int64]V) []V {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func (s *memStore) SaveUser(_ context.Context, u models.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Name == u.Name || existing.Email == u.Email {
			return 0, storage.ErrExists
		}
	}
	u.ID = s.nextID()
	s.users[u.ID] = u
	return u.ID, nil
}

func (s *memStore) User(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *memStore) UserByName(_ context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) UsersByIDs(_ context.Context, ids []int64) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.User
	for _, u := range sortedValues(s.users) {
		if contains(ids, u.ID) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memStore) Users(_ context.Context, ids []int64, limit, offset int) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.User
	for _, u := range sortedValues(s.users) {
		if len(ids) == 0 || contains(ids, u.ID) {
			out = append(out, u)
		}
	}
	return page(out, limit, offset), nil
}

func (s *memStore) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	for _, e := range s.events {
		if e.InitiatorID == id {
			return storage.ErrReferenced
		}
	}
	delete(s.users, id)
	return nil
}

func (s *memStore) SaveCategory(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return 0, storage.ErrExists
		}
	}
	id := s.nextID()
	s.categories[id] = models.Category{ID: id, Name: name}
	return id, nil
}

func (s *memStore) Category(_ context.Context, id int64) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *memStore) CategoryByName(_ context.Context, name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) CategoriesByIDs(_ context.Context, ids []int64) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Category
	for _, c := range sortedValues(s.categories) {
		if contains(ids, c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) Categories(_ context.Context, limit, offset int) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(sortedValues(s.categories), limit, offset), nil
}

func (s *memStore) UpdateCategory(_ context.Context, c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[c.ID]; !ok {
		return storage.ErrNotFound
	}
	s.categories[c.ID] = c
	return nil
}

func (s *memStore) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return storage.ErrNotFound
	}
	for _, e := range s.events {
		if e.CategoryID == id {
			return storage.ErrReferenced
		}
	}
	delete(s.categories, id)
	return nil
}

func (s *memStore) CategoryInUse(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.CategoryID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) SaveEvent(_ context.Context, e models.Event) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID()
	s.events[e.ID] = e
	return e.ID, nil
}

func (s *memStore) UpdateEvent(_ context.Context, e models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[e.ID]; !ok {
		return storage.ErrNotFound
	}
	e.Views = 0
	s.events[e.ID] = e
	return nil
}

func (s *memStore) Event(_ context.Context, id int64) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

// EventForUpdate needs no row lock here; txMu already serializes transactions.
func (s *memStore) EventForUpdate(ctx context.Context, id int64) (*models.Event, error) {
	return s.Event(ctx, id)
}

func (s *memStore) EventsByIDs(_ context.Context, ids []int64) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Event
	for _, e := range sortedValues(s.events) {
		if contains(ids, e.ID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memStore) Events(_ context.Context, q models.EventQuery) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Event
	for _, e := range sortedValues(s.events) {
		switch {
		case len(q.InitiatorIDs) > 0 && !contains(q.InitiatorIDs, e.InitiatorID),
			len(q.States) > 0 && !contains(q.States, e.State),
			len(q.CategoryIDs) > 0 && !contains(q.CategoryIDs, e.CategoryID),
			q.Paid != nil && e.Paid != *q.Paid,
			q.RangeStart != nil && e.EventDate.Before(*q.RangeStart),
			q.RangeEnd != nil && e.EventDate.After(*q.RangeEnd):
			continue
		}
		if q.Text != "" &&
			!strings.Contains(strings.ToLower(e.Annotation), q.Text) &&
			!strings.Contains(strings.ToLower(e.Description), q.Text) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })

	return page(out, q.Limit, q.Offset), nil
}

func (s *memStore) AddConfirmed(_ context.Context, eventID int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return storage.ErrNotFound
	}
	e.ConfirmedRequests += delta
	s.events[eventID] = e
	return nil
}

func (s *memStore) SaveRequest(_ context.Context, r models.Request) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.requests {
		if existing.RequesterID == r.RequesterID && existing.EventID == r.EventID {
			return 0, storage.ErrExists
		}
	}
	r.ID = s.nextID()
	s.requests[r.ID] = r
	return r.ID, nil
}

func (s *memStore) Request(_ context.Context, id int64) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) RequestByRequesterAndEvent(_ context.Context, requesterID, eventID int64) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.RequesterID == requesterID && r.EventID == eventID {
			return &r, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) filterRequests(keep func(models.Request) bool) []models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Request{}
	for _, r := range sortedValues(s.requests) {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *memStore) RequestsByRequester(_ context.Context, requesterID int64) ([]models.Request, error) {
	return s.filterRequests(func(r models.Request) bool { return r.RequesterID == requesterID }), nil
}

func (s *memStore) RequestsByEvent(_ context.Context, eventID int64) ([]models.Request, error) {
	return s.filterRequests(func(r models.Request) bool { return r.EventID == eventID }), nil
}

func (s *memStore) RequestsByIDs(_ context.Context, ids []int64) ([]models.Request, error) {
	return s.filterRequests(func(r models.Request) bool { return contains(ids, r.ID) }), nil
}

func (s *memStore) UpdateRequestStatus(_ context.Context, id int64, status models.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return storage.ErrNotFound
	}
	r.Status = status
	s.requests[id] = r
	return nil
}

func (s *memStore) CountConfirmed(_ context.Context, eventIDs []int64) (map[int64]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64]int, len(eventIDs))
	for _, r := range s.requests {
		if r.Status == models.RequestStatusConfirmed && contains(eventIDs, r.EventID) {
			out[r.EventID]++
		}
	}
	return out, nil
}

func (s *memStore) SaveCompilation(_ context.Context, c models.Compilation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID()
	s.compilations[c.ID] = c
	return c.ID, nil
}

func (s *memStore) UpdateCompilation(_ context.Context, c models.Compilation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.compilations[c.ID]; !ok {
		return storage.ErrNotFound
	}
	s.compilations[c.ID] = c
	return nil
}

func (s *memStore) Compilation(_ context.Context, id int64) (*models.Compilation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.compilations[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *memStore) Compilations(_ context.Context, pinned *bool, limit, offset int) ([]models.Compilation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Compilation
	for _, c := range sortedValues(s.compilations) {
		if pinned == nil || c.Pinned == *pinned {
			out = append(out, c)
		}
	}
	return page(out, limit, offset), nil
}

func (s *memStore) DeleteCompilation(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.compilations[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.compilations, id)
	return nil
}

func (s *memStore) SaveRating(_ context.Context, r models.Rating) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.ratings {
		if existing.UserID == r.UserID && existing.EventID == r.EventID {
			return 0, storage.ErrExists
		}
	}
	r.ID = s.nextID()
	s.ratings[r.ID] = r
	return r.ID, nil
}

func (s *memStore) Rating(_ context.Context, id int64) (*models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ratings[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) UpdateRating(_ context.Context, r models.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ratings[r.ID]; !ok {
		return storage.ErrNotFound
	}
	s.ratings[r.ID] = r
	return nil
}

func (s *memStore) DeleteRating(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ratings[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.ratings, id)
	return nil
}

func (s *memStore) AverageRate(_ context.Context, eventID int64) (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum, count := 0, 0
	for _, r := range s.ratings {
		if r.EventID == eventID {
			sum += r.Rate
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

// fakeStats records hits and answers Stats from them.
type fakeStats struct {
	mu      sync.Mutex
	hits    []models.EndpointHit
	queries []statsQuery
	saveErr error
	statErr error
}

type statsQuery struct {
	uris   []string
	unique bool
}

func (f *fakeStats) SaveHit(_ context.Context, hit models.EndpointHit) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.hits = append(f.hits, hit)
	return nil
}

func (f *fakeStats) Stats(_ context.Context, start, end time.Time, uris []string, unique bool) ([]models.ViewStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, statsQuery{uris: append([]string(nil), uris...), unique: unique})

	if f.statErr != nil {
		return nil, f.statErr
	}

	type key struct{ app, uri string }
	counts := map[key]map[string]int64{}
	for _, h := range f.hits {
		if h.Timestamp.Before(start) || h.Timestamp.After(end) {
			continue
		}
		if len(uris) > 0 && !contains(uris, h.URI) {
			continue
		}
		k := key{h.App, h.URI}
		if counts[k] == nil {
			counts[k] = map[string]int64{}
		}
		counts[k][h.IP]++
	}

	out := []models.ViewStats{}
	for k, ips := range counts {
		var hits int64
		if unique {
			hits = int64(len(ips))
		} else {
			for _, n := range ips {
				hits += n
			}
		}
		out = append(out, models.ViewStats{App: k.app, URI: k.uri, Hits: hits})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hits > out[j].Hits })

	return out, nil
}

func (f *fakeStats) statsQueries() []statsQuery {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]statsQuery(nil), f.queries...)
}

func (f *fakeStats) hitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.hits)
}
