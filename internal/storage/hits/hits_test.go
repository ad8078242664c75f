package hits_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/lib/datetime"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/storage/hits"
	"exploreWithMe/internal/storage/migrator"
)

const dbURLEnv = "EWM_TEST_STATS_DATABASE_URL"

func newStorage(t *testing.T) *hits.Storage {
	t.Helper()

	dbURL := os.Getenv(dbURLEnv)
	if dbURL == "" {
		t.Skipf("%s is not set", dbURLEnv)
	}

	require.NoError(t, migrator.Up(slogdiscard.NewDiscardLogger(), dbURL, "../../../migrations/stats"))

	s, err := hits.New(context.Background(), dbURL)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

func TestStats_UniqueCountsDistinctIPs(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()

	base := time.Now().Truncate(time.Second)
	app := "stats-test-" + base.Format("150405.000000000")

	for _, h := range []struct {
		uri string
		ip  string
		at  time.Time
	}{
		{"/events/1", "10.0.0.1", base},
		{"/events/1", "10.0.0.1", base.Add(time.Second)},
		{"/events/1", "10.0.0.2", base.Add(2 * time.Second)},
		{"/events/2", "10.0.0.1", base.Add(3 * time.Second)},
		{"/events/1", "10.0.0.3", base.Add(time.Hour)},
	} {
		_, err := s.SaveHit(ctx, models.EndpointHit{App: app, URI: h.uri, IP: h.ip, Timestamp: datetime.New(h.at)})
		require.NoError(t, err)
	}

	window := func(unique bool, uris ...string) []models.ViewStats {
		stats, err := s.Stats(ctx, base, base.Add(time.Minute), uris, unique)
		require.NoError(t, err)

		out := []models.ViewStats{}
		for _, v := range stats {
			if v.App == app {
				out = append(out, v)
			}
		}
		return out
	}

	assert.Equal(t, []models.ViewStats{
		{App: app, URI: "/events/1", Hits: 3},
		{App: app, URI: "/events/2", Hits: 1},
	}, window(false, "/events/1", "/events/2"))

	assert.Equal(t, []models.ViewStats{
		{App: app, URI: "/events/1", Hits: 2},
	}, window(true, "/events/1"))

	assert.Empty(t, window(false, "/events/404"))
}
