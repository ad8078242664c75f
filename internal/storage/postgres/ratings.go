package postgres

import (
	"context"

	"exploreWithMe/internal/models"
)

func (s *Storage) SaveRating(ctx context.Context, r models.Rating) (int64, error) {
	const op = "storage.postgres.SaveRating"

	var id int64
	err := s.q(ctx).QueryRowContext(ctx,
		`INSERT INTO ratings (user_id, event_id, rate) VALUES ($1, $2, $3) RETURNING id`,
		r.UserID, r.EventID, r.Rate,
	).Scan(&id)
	if err != nil {
		return 0, mapErr(op, err)
	}

	return id, nil
}

func (s *Storage) Rating(ctx context.Context, id int64) (*models.Rating, error) {
	const op = "storage.postgres.Rating"

	var r models.Rating
	err := s.q(ctx).QueryRowContext(ctx,
		`SELECT id, user_id, event_id, rate FROM ratings WHERE id = $1`, id,
	).Scan(&r.ID, &r.UserID, &r.EventID, &r.Rate)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &r, nil
}

func (s *Storage) UpdateRating(ctx context.Context, r models.Rating) error {
	const op = "storage.postgres.UpdateRating"

	res, err := s.q(ctx).ExecContext(ctx, `UPDATE ratings SET rate = $2 WHERE id = $1`, r.ID, r.Rate)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) DeleteRating(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteRating"

	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) AverageRate(ctx context.Context, eventID int64) (float64, int, error) {
	const op = "storage.postgres.AverageRate"

	var (
		avg   float64
		count int
	)
	err := s.q(ctx).QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rate), 0)::float8, COUNT(*) FROM ratings WHERE event_id = $1`, eventID,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, mapErr(op, err)
	}

	return avg, count, nil
}
