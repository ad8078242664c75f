// Package stats is the HTTP client of the stats server.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"exploreWithMe/internal/lib/datetime"
	"exploreWithMe/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) SaveHit(ctx context.Context, hit models.EndpointHit) error {
	const op = "clients.stats.SaveHit"

	body, err := json.Marshal(hit)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %w", op, statusError(resp))
	}

	c.log.Debug("hit saved", slog.String("uri", hit.URI), slog.String("ip", hit.IP))

	return nil
}

func (c *Client) Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]models.ViewStats, error) {
	const op = "clients.stats.Stats"

	q := url.Values{}
	q.Set("start", datetime.Format(start))
	q.Set("end", datetime.Format(end))
	for _, uri := range uris {
		q.Add("uris", uri)
	}
	q.Set("unique", strconv.FormatBool(unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w", op, statusError(resp))
	}

	var stats []models.ViewStats
	if err = json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	return stats, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
