package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"exploreWithMe/internal/lib/datetime"
	"exploreWithMe/internal/lib/logger/sl"
	"exploreWithMe/internal/mapper"
	"exploreWithMe/internal/metrics"
	"exploreWithMe/internal/models"
)

// AppName is the app recorded with every hit the main service sends.
const AppName = "ewm-main-service"

const (
	minLeadTime = 2 * time.Hour

	annotationMin  = 20
	annotationMax  = 2000
	descriptionMin = 20
	descriptionMax = 7000
	titleMin       = 3
	titleMax       = 120

	publicSearchYears = 15
	adminSearchYears  = 5
	statsWindowYears  = 5

	eventURIPrefix = "/events/"
)

type EventService struct {
	log   *slog.Logger
	store Store
	stats StatsClient
	now   Clock
}

func NewEventService(log *slog.Logger, store Store, stats StatsClient, now Clock) *EventService {
	if now == nil {
		now = time.Now
	}

	return &EventService{log: log, store: store, stats: stats, now: now}
}

func (s *EventService) FindEventsByAdmin(ctx context.Context, f models.AdminEventFilter) ([]models.EventFullDto, error) {
	const op = "service.EventService.FindEventsByAdmin"

	off, err := offset(f.From, f.Size)
	if err != nil {
		return nil, err
	}

	q := models.EventQuery{
		InitiatorIDs: f.Users,
		States:       f.States,
		CategoryIDs:  f.Categories,
		Limit:        f.Size,
		Offset:       off,
	}

	if f.States != nil || f.RangeStart != nil || f.RangeEnd != nil {
		now := s.now()
		start := now.AddDate(-adminSearchYears, 0, 0)
		end := now.AddDate(adminSearchYears, 0, 0)
		if f.RangeStart != nil {
			start = *f.RangeStart
		}
		if f.RangeEnd != nil {
			end = *f.RangeEnd
		}
		if start.After(end) {
			return nil, invalid("rangeStart can't be after rangeEnd")
		}
		q.RangeStart, q.RangeEnd = &start, &end
	}

	events, err := s.store.Events(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.fillConfirmed(ctx, events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.fillViews(ctx, events)

	return s.fullDtos(ctx, events)
}

// UpdateEventByAdmin patches an event and applies PUBLISH_EVENT or
// REJECT_EVENT. Both actions are only allowed from PENDING.
func (s *EventService) UpdateEventByAdmin(ctx context.Context, eventID int64, req models.UpdateEventAdminRequest) (models.EventFullDto, error) {
	const op = "service.EventService.UpdateEventByAdmin"

	var updated models.Event

	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		e, err := lockEvent(ctx, s.store, eventID)
		if err != nil {
			return err
		}

		now := s.now()

		if req.EventDate != nil && !req.EventDate.After(now) {
			return invalid("event date must be in the future")
		}
		if err = s.checkFields(ctx, *e, req.UpdateEventFields); err != nil {
			return err
		}

		if req.StateAction != nil {
			switch *req.StateAction {
			case models.StateActionPublish:
				if e.State != models.EventStatePending {
					return conflict("cannot publish the event because it's not in the right state: %s", e.State)
				}
				e.State = models.EventStatePublished
				e.PublishedOn = &now
			case models.StateActionReject:
				if e.State != models.EventStatePending {
					return conflict("cannot reject the event because it's not in the right state: %s", e.State)
				}
				e.State = models.EventStateCanceled
			default:
				return invalid("unsupported state action %s", *req.StateAction)
			}
		}

		mapper.ApplyEventFields(e, req.UpdateEventFields)

		if err = s.store.UpdateEvent(ctx, *e); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		updated = *e

		return nil
	})
	if err != nil {
		return models.EventFullDto{}, err
	}

	if req.StateAction != nil {
		metrics.EventTransitions.WithLabelValues(string(updated.State)).Inc()
		s.log.Info("event state changed by admin",
			slog.String("op", op),
			slog.Int64("event_id", eventID),
			slog.String("state", string(updated.State)),
		)
	}

	return s.fullDto(ctx, updated)
}

// FindEventsByPublic searches published events, records the search as a hit
// and fills in views and confirmed counts.
func (s *EventService) FindEventsByPublic(ctx context.Context, f models.PublicEventFilter, hit models.HitInfo) ([]models.EventShortDto, error) {
	const op = "service.EventService.FindEventsByPublic"

	off, err := offset(f.From, f.Size)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := now
	end := now.AddDate(publicSearchYears, 0, 0)
	if f.RangeStart != nil {
		start = *f.RangeStart
	}
	if f.RangeEnd != nil {
		end = *f.RangeEnd
	}
	if start.After(end) {
		return nil, invalid("rangeStart can't be after rangeEnd")
	}

	switch f.Sort {
	case "", models.SortByEventDate, models.SortByViews:
	default:
		return nil, invalid("unknown sort %s", f.Sort)
	}

	events, err := s.store.Events(ctx, models.EventQuery{
		States:      []models.EventState{models.EventStatePublished},
		CategoryIDs: f.Categories,
		Text:        strings.ToLower(strings.TrimSpace(f.Text)),
		Paid:        f.Paid,
		RangeStart:  &start,
		RangeEnd:    &end,
		Limit:       f.Size,
		Offset:      off,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recordHit(ctx, hit)

	if err = s.fillConfirmed(ctx, events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.fillViews(ctx, events)

	// Both run over the fetched page only, so a filtered page may be short.
	if f.OnlyAvailable {
		available := events[:0]
		for _, e := range events {
			if !e.LimitReached() {
				available = append(available, e)
			}
		}
		events = available
	}

	if f.Sort == models.SortByViews {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Views > events[j].Views
		})
	}

	return s.shortDtos(ctx, events)
}

// GetPublishedEvent returns a published event. Its view count is the number
// of distinct visitors recorded before this request plus one for this request.
func (s *EventService) GetPublishedEvent(ctx context.Context, eventID int64, hit models.HitInfo) (models.EventFullDto, error) {
	const op = "service.EventService.GetPublishedEvent"

	e, err := getEvent(ctx, s.store, eventID)
	if err != nil {
		return models.EventFullDto{}, err
	}
	if e.State != models.EventStatePublished {
		return models.EventFullDto{}, notFound("event with id=%d is not published", eventID)
	}

	uri := hit.URI
	if uri == "" {
		uri = eventURI(eventID)
	}

	var prior int64
	stats, err := s.statsFor(ctx, []string{uri}, true)
	if err == nil {
		for _, v := range stats {
			if v.URI == uri {
				prior += v.Hits
			}
		}
	}
	e.Views = prior + 1

	s.recordHit(ctx, models.HitInfo{URI: uri, IP: hit.IP})

	events := []models.Event{*e}
	if err = s.fillConfirmed(ctx, events); err != nil {
		return models.EventFullDto{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.fullDto(ctx, events[0])
}

func (s *EventService) GetUserEvents(ctx context.Context, userID int64, from, size int) ([]models.EventFullDto, error) {
	const op = "service.EventService.GetUserEvents"

	off, err := offset(from, size)
	if err != nil {
		return nil, err
	}

	if _, err = getUser(ctx, s.store, userID); err != nil {
		return nil, err
	}

	events, err := s.store.Events(ctx, models.EventQuery{
		InitiatorIDs: []int64{userID},
		Limit:        size,
		Offset:       off,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.fillConfirmed(ctx, events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.fillViews(ctx, events)

	return s.fullDtos(ctx, events)
}

// AddEvent creates a PENDING event. The event date must be at least two
// hours ahead.
func (s *EventService) AddEvent(ctx context.Context, userID int64, req models.NewEventRequest) (models.EventFullDto, error) {
	const op = "service.EventService.AddEvent"

	if _, err := getUser(ctx, s.store, userID); err != nil {
		return models.EventFullDto{}, err
	}

	if req.EventDate == nil {
		return models.EventFullDto{}, invalid("event date is required")
	}

	now := s.now()
	if req.EventDate.Before(now.Add(minLeadTime)) {
		return models.EventFullDto{}, invalid("event date must be at least two hours from now: %s", req.EventDate.Format(time.DateTime))
	}
	if req.ParticipantLimit < 0 {
		return models.EventFullDto{}, invalid("participant limit cannot be negative")
	}

	fields := models.UpdateEventFields{
		Annotation:  &req.Annotation,
		Category:    &req.Category,
		Description: &req.Description,
		Title:       &req.Title,
	}
	if err := s.checkFields(ctx, models.Event{}, fields); err != nil {
		return models.EventFullDto{}, err
	}

	e := mapper.ToEvent(req, userID)
	e.State = models.EventStatePending
	e.CreatedOn = now
	e.ConfirmedRequests = 0

	id, err := s.store.SaveEvent(ctx, e)
	if err != nil {
		return models.EventFullDto{}, fmt.Errorf("%s: %w", op, err)
	}
	e.ID = id

	s.log.Info("event created", slog.String("op", op), slog.Int64("event_id", id), slog.Int64("user_id", userID))

	return s.fullDto(ctx, e)
}

func (s *EventService) GetUserEvent(ctx context.Context, userID, eventID int64) (models.EventFullDto, error) {
	const op = "service.EventService.GetUserEvent"

	e, err := s.ownedEvent(ctx, userID, eventID, getEvent)
	if err != nil {
		return models.EventFullDto{}, err
	}

	events := []models.Event{*e}
	if err = s.fillConfirmed(ctx, events); err != nil {
		return models.EventFullDto{}, fmt.Errorf("%s: %w", op, err)
	}
	s.fillViews(ctx, events)

	return s.fullDto(ctx, events[0])
}

// UpdateEventByUser lets the initiator edit an event that is not published
// yet and move it between PENDING and CANCELED.
func (s *EventService) UpdateEventByUser(ctx context.Context, userID, eventID int64, req models.UpdateEventUserRequest) (models.EventFullDto, error) {
	const op = "service.EventService.UpdateEventByUser"

	var updated models.Event

	err := s.store.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.ownedEvent(ctx, userID, eventID, lockEvent)
		if err != nil {
			return err
		}

		if e.State != models.EventStatePending && e.State != models.EventStateCanceled {
			return conflict("only pending or canceled events can be changed, event is %s", e.State)
		}

		if req.EventDate != nil && !req.EventDate.After(s.now().Add(minLeadTime)) {
			return invalid("event date must be at least two hours from now: %s", req.EventDate.Format(time.DateTime))
		}
		if err = s.checkFields(ctx, *e, req.UpdateEventFields); err != nil {
			return err
		}

		if req.StateAction != nil {
			switch *req.StateAction {
			case models.StateActionSendToReview:
				e.State = models.EventStatePending
			case models.StateActionCancelReview:
				e.State = models.EventStateCanceled
			default:
				return invalid("unsupported state action %s", *req.StateAction)
			}
		}

		mapper.ApplyEventFields(e, req.UpdateEventFields)

		if err = s.store.UpdateEvent(ctx, *e); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		updated = *e

		return nil
	})
	if err != nil {
		return models.EventFullDto{}, err
	}

	if req.StateAction != nil {
		metrics.EventTransitions.WithLabelValues(string(updated.State)).Inc()
	}

	return s.fullDto(ctx, updated)
}

func (s *EventService) ownedEvent(
	ctx context.Context,
	userID, eventID int64,
	load func(context.Context, EventStore, int64) (*models.Event, error),
) (*models.Event, error) {
	if _, err := getUser(ctx, s.store, userID); err != nil {
		return nil, err
	}

	e, err := load(ctx, s.store, eventID)
	if err != nil {
		return nil, err
	}
	if e.InitiatorID != userID {
		return nil, notFound("event with id=%d was not found for user %d", eventID, userID)
	}

	return e, nil
}

// checkFields validates the non-nil patch fields against the current event.
func (s *EventService) checkFields(ctx context.Context, current models.Event, f models.UpdateEventFields) error {
	if f.Annotation != nil {
		if err := checkLength("annotation", *f.Annotation, annotationMin, annotationMax); err != nil {
			return err
		}
	}
	if f.Description != nil {
		if err := checkLength("description", *f.Description, descriptionMin, descriptionMax); err != nil {
			return err
		}
	}
	if f.Title != nil {
		if err := checkLength("title", *f.Title, titleMin, titleMax); err != nil {
			return err
		}
	}
	if f.ParticipantLimit != nil {
		limit := *f.ParticipantLimit
		if limit < 0 {
			return invalid("participant limit cannot be negative")
		}
		if limit > 0 && limit < current.ConfirmedRequests {
			return conflict("participant limit %d is below the %d already confirmed requests", limit, current.ConfirmedRequests)
		}
	}
	if f.Category != nil {
		if _, err := getCategory(ctx, s.store, *f.Category); err != nil {
			return err
		}
	}

	return nil
}

func checkLength(field, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return invalid("%s can't be shorter than %d and longer than %d", field, minLen, maxLen)
	}

	return nil
}

// recordHit never fails the caller; a lost hit only skews view counts.
func (s *EventService) recordHit(ctx context.Context, hit models.HitInfo) {
	err := s.stats.SaveHit(ctx, models.EndpointHit{
		App:       AppName,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: datetime.New(s.now()),
	})
	if err != nil {
		metrics.StatsClientErrors.WithLabelValues("hit").Inc()
		s.log.Warn("failed to record hit", slog.String("uri", hit.URI), sl.Err(err))
	}
}

func (s *EventService) statsFor(ctx context.Context, uris []string, unique bool) ([]models.ViewStats, error) {
	now := s.now()

	stats, err := s.stats.Stats(ctx, now.AddDate(-statsWindowYears, 0, 0), now.AddDate(statsWindowYears, 0, 0), uris, unique)
	if err != nil {
		metrics.StatsClientErrors.WithLabelValues("stats").Inc()
		s.log.Warn("failed to fetch view stats", slog.Int("uris", len(uris)), sl.Err(err))
		return nil, err
	}

	return stats, nil
}

// fillViews sets Views from raw hit counts of /events/{id}.
func (s *EventService) fillViews(ctx context.Context, events []models.Event) {
	if len(events) == 0 {
		return
	}

	uris := make([]string, 0, len(events))
	for _, e := range events {
		uris = append(uris, eventURI(e.ID))
	}

	stats, err := s.statsFor(ctx, uris, false)
	if err != nil {
		return
	}

	views := make(map[int64]int64, len(stats))
	for _, v := range stats {
		id, ok := eventIDFromURI(v.URI)
		if !ok {
			continue
		}
		views[id] += v.Hits
	}

	for i := range events {
		events[i].Views = views[events[i].ID]
	}
}

func (s *EventService) fillConfirmed(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	counts, err := s.store.CountConfirmed(ctx, ids)
	if err != nil {
		return fmt.Errorf("count confirmed requests: %w", err)
	}

	for i := range events {
		events[i].ConfirmedRequests = counts[events[i].ID]
	}

	return nil
}

func (s *EventService) refs(ctx context.Context, events []models.Event) (map[int64]models.Category, map[int64]models.User, error) {
	catIDs := make([]int64, 0, len(events))
	userIDs := make([]int64, 0, len(events))
	for _, e := range events {
		catIDs = append(catIDs, e.CategoryID)
		userIDs = append(userIDs, e.InitiatorID)
	}

	cats, err := s.store.CategoriesByIDs(ctx, uniqueIDs(catIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("load categories: %w", err)
	}
	users, err := s.store.UsersByIDs(ctx, uniqueIDs(userIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("load initiators: %w", err)
	}

	catByID := make(map[int64]models.Category, len(cats))
	for _, c := range cats {
		catByID[c.ID] = c
	}
	userByID := make(map[int64]models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	return catByID, userByID, nil
}

func (s *EventService) fullDto(ctx context.Context, e models.Event) (models.EventFullDto, error) {
	dtos, err := s.fullDtos(ctx, []models.Event{e})
	if err != nil {
		return models.EventFullDto{}, err
	}

	return dtos[0], nil
}

func (s *EventService) fullDtos(ctx context.Context, events []models.Event) ([]models.EventFullDto, error) {
	cats, users, err := s.refs(ctx, events)
	if err != nil {
		return nil, err
	}

	out := make([]models.EventFullDto, 0, len(events))
	for _, e := range events {
		out = append(out, mapper.ToEventFullDto(e, cats[e.CategoryID], users[e.InitiatorID]))
	}

	return out, nil
}

func (s *EventService) shortDtos(ctx context.Context, events []models.Event) ([]models.EventShortDto, error) {
	cats, users, err := s.refs(ctx, events)
	if err != nil {
		return nil, err
	}

	out := make([]models.EventShortDto, 0, len(events))
	for _, e := range events {
		out = append(out, mapper.ToEventShortDto(e, cats[e.CategoryID], users[e.InitiatorID]))
	}

	return out, nil
}

// shortDtosFor loads events by id and returns them in the order of ids,
// with views and confirmed counts filled in.
func (s *EventService) shortDtosFor(ctx context.Context, ids []int64) ([]models.EventShortDto, error) {
	if len(ids) == 0 {
		return []models.EventShortDto{}, nil
	}

	events, err := s.store.EventsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	byID := make(map[int64]models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	ordered := make([]models.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}

	if err = s.fillConfirmed(ctx, ordered); err != nil {
		return nil, err
	}
	s.fillViews(ctx, ordered)

	return s.shortDtos(ctx, ordered)
}

func eventURI(id int64) string {
	return eventURIPrefix + strconv.FormatInt(id, 10)
}

func eventIDFromURI(uri string) (int64, bool) {
	if !strings.HasPrefix(uri, eventURIPrefix) {
		return 0, false
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(uri, eventURIPrefix), 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
