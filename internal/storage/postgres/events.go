package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"exploreWithMe/internal/models"
)

const eventColumns = `id, annotation, description, title, category_id, initiator_id, lat, lon, paid,
	participant_limit, request_moderation, created_on, published_on, event_date, state, confirmed_requests`

func scanEvent(row scanner) (models.Event, error) {
	var (
		e     models.Event
		state string
	)

	err := row.Scan(
		&e.ID,
		&e.Annotation,
		&e.Description,
		&e.Title,
		&e.CategoryID,
		&e.InitiatorID,
		&e.Location.Lat,
		&e.Location.Lon,
		&e.Paid,
		&e.ParticipantLimit,
		&e.RequestModeration,
		&e.CreatedOn,
		&e.PublishedOn,
		&e.EventDate,
		&state,
		&e.ConfirmedRequests,
	)
	e.State = models.EventState(state)

	return e, err
}

func (s *Storage) SaveEvent(ctx context.Context, e models.Event) (int64, error) {
	const op = "storage.postgres.SaveEvent"

	query := `
		INSERT INTO events (annotation, description, title, category_id, initiator_id, lat, lon, paid,
			participant_limit, request_moderation, created_on, published_on, event_date, state, confirmed_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	var id int64
	err := s.q(ctx).QueryRowContext(ctx, query,
		e.Annotation,
		e.Description,
		e.Title,
		e.CategoryID,
		e.InitiatorID,
		e.Location.Lat,
		e.Location.Lon,
		e.Paid,
		e.ParticipantLimit,
		e.RequestModeration,
		e.CreatedOn,
		e.PublishedOn,
		e.EventDate,
		string(e.State),
		e.ConfirmedRequests,
	).Scan(&id)
	if err != nil {
		return 0, mapErr(op, err)
	}

	return id, nil
}

// UpdateEvent writes every mutable column except confirmed_requests, which
// only AddConfirmed changes.
func (s *Storage) UpdateEvent(ctx context.Context, e models.Event) error {
	const op = "storage.postgres.UpdateEvent"

	query := `
		UPDATE events
		SET annotation = $2, description = $3, title = $4, category_id = $5, lat = $6, lon = $7,
			paid = $8, participant_limit = $9, request_moderation = $10, published_on = $11,
			event_date = $12, state = $13
		WHERE id = $1`

	res, err := s.q(ctx).ExecContext(ctx, query,
		e.ID,
		e.Annotation,
		e.Description,
		e.Title,
		e.CategoryID,
		e.Location.Lat,
		e.Location.Lon,
		e.Paid,
		e.ParticipantLimit,
		e.RequestModeration,
		e.PublishedOn,
		e.EventDate,
		string(e.State),
	)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) Event(ctx context.Context, id int64) (*models.Event, error) {
	const op = "storage.postgres.Event"

	e, err := scanEvent(s.q(ctx).QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &e, nil
}

// EventForUpdate must run inside WithinTx; the row lock is held until commit.
func (s *Storage) EventForUpdate(ctx context.Context, id int64) (*models.Event, error) {
	const op = "storage.postgres.EventForUpdate"

	e, err := scanEvent(s.q(ctx).QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &e, nil
}

func (s *Storage) EventsByIDs(ctx context.Context, ids []int64) ([]models.Event, error) {
	const op = "storage.postgres.EventsByIDs"

	if len(ids) == 0 {
		return []models.Event{}, nil
	}

	rows, err := s.q(ctx).QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, mapErr(op, err)
	}

	events, err := collect(rows, scanEvent)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return events, nil
}

// Events runs the admin, public and per-initiator searches. Results are
// ordered by event date, then id.
func (s *Storage) Events(ctx context.Context, q models.EventQuery) ([]models.Event, error) {
	const op = "storage.postgres.Events"

	query, args := buildEventsQuery(q)

	rows, err := s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(op, err)
	}

	events, err := collect(rows, scanEvent)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return events, nil
}

func buildEventsQuery(q models.EventQuery) (string, []any) {
	var (
		where []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(q.InitiatorIDs) > 0 {
		where = append(where, "initiator_id = ANY("+arg(pq.Array(q.InitiatorIDs))+")")
	}
	if len(q.States) > 0 {
		states := make([]string, 0, len(q.States))
		for _, st := range q.States {
			states = append(states, string(st))
		}
		where = append(where, "state = ANY("+arg(pq.Array(states))+")")
	}
	if len(q.CategoryIDs) > 0 {
		where = append(where, "category_id = ANY("+arg(pq.Array(q.CategoryIDs))+")")
	}
	if q.Text != "" {
		p := arg("%" + escapeLike(q.Text) + "%")
		where = append(where, "(LOWER(annotation) LIKE "+p+" OR LOWER(description) LIKE "+p+")")
	}
	if q.Paid != nil {
		where = append(where, "paid = "+arg(*q.Paid))
	}
	if q.RangeStart != nil {
		where = append(where, "event_date >= "+arg(*q.RangeStart))
	}
	if q.RangeEnd != nil {
		where = append(where, "event_date <= "+arg(*q.RangeEnd))
	}

	var b strings.Builder
	b.WriteString("SELECT " + eventColumns + " FROM events")
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY event_date, id")
	if q.Limit > 0 {
		b.WriteString(" LIMIT " + arg(q.Limit))
	}
	if q.Offset > 0 {
		b.WriteString(" OFFSET " + arg(q.Offset))
	}

	return b.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// AddConfirmed shifts the confirmed counter; the table CHECK rejects a
// counter above the participant limit.
func (s *Storage) AddConfirmed(ctx context.Context, eventID int64, delta int) error {
	const op = "storage.postgres.AddConfirmed"

	res, err := s.q(ctx).ExecContext(ctx,
		`UPDATE events SET confirmed_requests = confirmed_requests + $2 WHERE id = $1`, eventID, delta)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}
