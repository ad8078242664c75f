package postgres

import (
	"context"

	"github.com/lib/pq"

	"exploreWithMe/internal/models"
)

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email)
	return u, err
}

func (s *Storage) SaveUser(ctx context.Context, u models.User) (int64, error) {
	const op = "storage.postgres.SaveUser"

	var id int64
	err := s.q(ctx).QueryRowContext(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
		u.Name, u.Email,
	).Scan(&id)
	if err != nil {
		return 0, mapErr(op, err)
	}

	return id, nil
}

func (s *Storage) User(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.User"

	u, err := scanUser(s.q(ctx).QueryRowContext(ctx,
		`SELECT id, name, email FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &u, nil
}

func (s *Storage) UserByName(ctx context.Context, name string) (*models.User, error) {
	const op = "storage.postgres.UserByName"

	u, err := scanUser(s.q(ctx).QueryRowContext(ctx,
		`SELECT id, name, email FROM users WHERE name = $1`, name))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &u, nil
}

func (s *Storage) UsersByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	const op = "storage.postgres.UsersByIDs"

	if len(ids) == 0 {
		return []models.User{}, nil
	}

	rows, err := s.q(ctx).QueryContext(ctx,
		`SELECT id, name, email FROM users WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, mapErr(op, err)
	}

	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return users, nil
}

// Users lists users ordered by id; an empty ids slice means all users.
func (s *Storage) Users(ctx context.Context, ids []int64, limit, offset int) ([]models.User, error) {
	const op = "storage.postgres.Users"

	query := `
		SELECT id, name, email
		FROM users
		WHERE cardinality($1::bigint[]) = 0 OR id = ANY($1)
		ORDER BY id
		LIMIT $2 OFFSET $3`

	if ids == nil {
		ids = []int64{}
	}

	rows, err := s.q(ctx).QueryContext(ctx, query, pq.Array(ids), limit, offset)
	if err != nil {
		return nil, mapErr(op, err)
	}

	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteUser"

	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}
