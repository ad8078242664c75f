package postgres

import (
	"context"

	"github.com/lib/pq"

	"exploreWithMe/internal/models"
)

func scanCategory(row scanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name)
	return c, err
}

func (s *Storage) SaveCategory(ctx context.Context, name string) (int64, error) {
	const op = "storage.postgres.SaveCategory"

	var id int64
	err := s.q(ctx).QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, mapErr(op, err)
	}

	return id, nil
}

func (s *Storage) Category(ctx context.Context, id int64) (*models.Category, error) {
	const op = "storage.postgres.Category"

	c, err := scanCategory(s.q(ctx).QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &c, nil
}

func (s *Storage) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	const op = "storage.postgres.CategoryByName"

	c, err := scanCategory(s.q(ctx).QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE name = $1`, name))
	if err != nil {
		return nil, mapErr(op, err)
	}

	return &c, nil
}

func (s *Storage) CategoriesByIDs(ctx context.Context, ids []int64) ([]models.Category, error) {
	const op = "storage.postgres.CategoriesByIDs"

	if len(ids) == 0 {
		return []models.Category{}, nil
	}

	rows, err := s.q(ctx).QueryContext(ctx,
		`SELECT id, name FROM categories WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, mapErr(op, err)
	}

	cats, err := collect(rows, scanCategory)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return cats, nil
}

func (s *Storage) Categories(ctx context.Context, limit, offset int) ([]models.Category, error) {
	const op = "storage.postgres.Categories"

	rows, err := s.q(ctx).QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapErr(op, err)
	}

	cats, err := collect(rows, scanCategory)
	if err != nil {
		return nil, mapErr(op, err)
	}

	return cats, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, c models.Category) error {
	const op = "storage.postgres.UpdateCategory"

	res, err := s.q(ctx).ExecContext(ctx,
		`UPDATE categories SET name = $2 WHERE id = $1`, c.ID, c.Name)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) DeleteCategory(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteCategory"

	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) CategoryInUse(ctx context.Context, id int64) (bool, error) {
	const op = "storage.postgres.CategoryInUse"

	var inUse bool
	err := s.q(ctx).QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM events WHERE category_id = $1)`, id,
	).Scan(&inUse)
	if err != nil {
		return false, mapErr(op, err)
	}

	return inUse, nil
}
