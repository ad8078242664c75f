package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"exploreWithMe/internal/models"
)

// compilationColumns aggregates the ordered event ids into one array column.
const compilationColumns = `c.id, c.title, c.pinned,
	COALESCE(ARRAY(SELECT ce.event_id FROM compilation_events ce WHERE ce.compilation_id = c.id ORDER BY ce.position), '{}')`

func scanCompilation(row scanner) (models.Compilation, error) {
	var c models.Compilation
	err := row.Scan(&c.ID, &c.Title, &c.Pinned, pq.Array(&c.EventIDs))
	return c, err
}

func (s *Storage) SaveCompilation(ctx context.Context, c models.Compilation) (int64, error) {
	const op = "storage.postgres.SaveCompilation"

	var id int64

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		err := s.q(ctx).QueryRowContext(ctx,
			`INSERT INTO compilations (title, pinned) VALUES ($1, $2) RETURNING id`, c.Title, c.Pinned,
		).Scan(&id)
		if err != nil {
			return mapErr(op, err)
		}

		return s.replaceCompilationEvents(ctx, op, id, c.EventIDs)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Storage) UpdateCompilation(ctx context.Context, c models.Compilation) error {
	const op = "storage.postgres.UpdateCompilation"

	return s.WithinTx(ctx, func(ctx context.Context) error {
		res, err := s.q(ctx).ExecContext(ctx,
			`UPDATE compilations SET title = $2, pinned = $3 WHERE id = $1`, c.ID, c.Title, c.Pinned)
		if err != nil {
			return mapErr(op, err)
		}
		if err = affected(op, res); err != nil {
			return err
		}

		if _, err = s.q(ctx).ExecContext(ctx,
			`DELETE FROM compilation_events WHERE compilation_id = $1`, c.ID); err != nil {
			return mapErr(op, err)
		}

		return s.replaceCompilationEvents(ctx, op, c.ID, c.EventIDs)
	})
}

func (s *Storage) replaceCompilationEvents(ctx context.Context, op string, compilationID int64, eventIDs []int64) error {
	if len(eventIDs) == 0 {
		return nil
	}

	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO compilation_events (compilation_id, event_id, position)
		SELECT $1, ids.event_id, ids.position
		FROM unnest($2::bigint[]) WITH ORDINALITY AS ids(event_id, position)`,
		compilationID, pq.Array(eventIDs))
	if err != nil {
		return mapErr(fmt.Sprintf("%s: compilation %d events", op, compilationID), err)
	}

	return nil
}

func (s *Storage) Compilation(ctx context.Context, id int64) (*models.Compilation, error) {
	const op = "storage.postgres.Compilation"

	c, err := scanCompilation(s.q(ctx).QueryRowContext(ctx,
		`SELECT `+compilationColumns+` FROM compilations c WHERE c.id = $1`, id))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &c, nil
}

// Compilations lists compilations ordered by id; nil pinned means both kinds.
func (s *Storage) Compilations(ctx context.Context, pinned *bool, limit, offset int) ([]models.Compilation, error) {
	const op = "storage.postgres.Compilations"

	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT `+compilationColumns+`
		FROM compilations c
		WHERE $1::boolean IS NULL OR c.pinned = $1
		ORDER BY c.id
		LIMIT $2 OFFSET $3`,
		pinned, limit, offset)
	if err != nil {
		return nil, mapErr(op, err)
	}

	comps, err := collect(rows, scanCompilation)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return comps, nil
}

func (s *Storage) DeleteCompilation(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteCompilation"

	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}
