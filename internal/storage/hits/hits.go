// Package hits stores endpoint hits for the stats server.
package hits

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"exploreWithMe/internal/models"
)

type Storage struct {
	pool *pgxpool.Pool
}

// New connects a pgx pool to dbURL and pings it.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.hits.New"

	poolCfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse db config: %w", op, err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

func (s *Storage) SaveHit(ctx context.Context, hit models.EndpointHit) (int64, error) {
	const op = "storage.hits.SaveHit"

	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO hits (app, uri, ip, timestamp) VALUES ($1, $2, $3, $4) RETURNING id`,
		hit.App, hit.URI, hit.IP, hit.Timestamp.Time,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// Stats counts hits per (app, uri) inside [start, end], most hit first.
// With unique set, repeated hits from one IP count once. An empty uris
// slice means every uri.
func (s *Storage) Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]models.ViewStats, error) {
	const op = "storage.hits.Stats"

	counter := "COUNT(ip)"
	if unique {
		counter = "COUNT(DISTINCT ip)"
	}

	query := `
		SELECT app, uri, ` + counter + ` AS hits
		FROM hits
		WHERE timestamp BETWEEN $1 AND $2
			AND (cardinality($3::text[]) = 0 OR uri = ANY($3))
		GROUP BY app, uri
		ORDER BY hits DESC, app, uri`

	if uris == nil {
		uris = []string{}
	}

	rows, err := s.pool.Query(ctx, query, start, end, uris)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.ViewStats])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if stats == nil {
		stats = []models.ViewStats{}
	}

	return stats, nil
}
