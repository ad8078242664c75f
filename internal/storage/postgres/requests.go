package postgres

import (
	"context"

	"github.com/lib/pq"

	"exploreWithMe/internal/models"
)

func scanRequest(row scanner) (models.Request, error) {
	var (
		r      models.Request
		status string
	)

	err := row.Scan(&r.ID, &r.RequesterID, &r.EventID, &r.Created, &status)
	r.Status = models.RequestStatus(status)

	return r, err
}

func (s *Storage) SaveRequest(ctx context.Context, r models.Request) (int64, error) {
	const op = "storage.postgres.SaveRequest"

	var id int64
	err := s.q(ctx).QueryRowContext(ctx,
		`INSERT INTO requests (requester_id, event_id, created, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		r.RequesterID, r.EventID, r.Created, string(r.Status),
	).Scan(&id)
	if err != nil {
		return 0, mapErr(op, err)
	}

	return id, nil
}

func (s *Storage) Request(ctx context.Context, id int64) (*models.Request, error) {
	const op = "storage.postgres.Request"

	r, err := scanRequest(s.q(ctx).QueryRowContext(ctx,
		`SELECT id, requester_id, event_id, created, status FROM requests WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &r, nil
}

func (s *Storage) RequestByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (*models.Request, error) {
	const op = "storage.postgres.RequestByRequesterAndEvent"

	r, err := scanRequest(s.q(ctx).QueryRowContext(ctx,
		`SELECT id, requester_id, event_id, created, status FROM requests WHERE requester_id = $1 AND event_id = $2`,
		requesterID, eventID))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &r, nil
}

func (s *Storage) listRequests(ctx context.Context, op, where string, arg any) ([]models.Request, error) {
	rows, err := s.q(ctx).QueryContext(ctx,
		`SELECT id, requester_id, event_id, created, status FROM requests WHERE `+where+` ORDER BY id`, arg)
	if err != nil {
		return nil, mapErr(op, err)
	}

	reqs, err := collect(rows, scanRequest)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return reqs, nil
}

func (s *Storage) RequestsByRequester(ctx context.Context, requesterID int64) ([]models.Request, error) {
	return s.listRequests(ctx, "storage.postgres.RequestsByRequester", "requester_id = $1", requesterID)
}

func (s *Storage) RequestsByEvent(ctx context.Context, eventID int64) ([]models.Request, error) {
	return s.listRequests(ctx, "storage.postgres.RequestsByEvent", "event_id = $1", eventID)
}

func (s *Storage) RequestsByIDs(ctx context.Context, ids []int64) ([]models.Request, error) {
	if len(ids) == 0 {
		return []models.Request{}, nil
	}

	return s.listRequests(ctx, "storage.postgres.RequestsByIDs", "id = ANY($1)", pq.Array(ids))
}

func (s *Storage) UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	const op = "storage.postgres.UpdateRequestStatus"

	res, err := s.q(ctx).ExecContext(ctx,
		`UPDATE requests SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}

// CountConfirmed returns confirmed request counts per event. Events without
// confirmed requests are absent from the map.
func (s *Storage) CountConfirmed(ctx context.Context, eventIDs []int64) (map[int64]int, error) {
	const op = "storage.postgres.CountConfirmed"

	counts := make(map[int64]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT event_id, COUNT(*)
		FROM requests
		WHERE event_id = ANY($1) AND status = $2
		GROUP BY event_id`,
		pq.Array(eventIDs), string(models.RequestStatusConfirmed))
	if err != nil {
		return nil, mapErr(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eventID int64
			n       int
		)
		if err = rows.Scan(&eventID, &n); err != nil {
			return nil, mapErr(op, err)
		}
		counts[eventID] = n
	}

	if err = rows.Err(); err != nil {
		return nil, mapErr(op, err)
	}

	return counts, nil
}
