// Package params parses path and query parameters shared by the handlers.
package params

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"exploreWithMe/internal/lib/datetime"
	"exploreWithMe/internal/models"

	"github.com/go-chi/chi/v5"
)

const (
	DefaultFrom = 0
	DefaultSize = 10
)

var ErrMissing = errors.New("parameter is required")

// ID reads a positive integer path parameter.
func ID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", name, ErrMissing)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s format", name)
	}

	return id, nil
}

// QueryID reads a required positive integer query parameter.
func QueryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", name, ErrMissing)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s format", name)
	}

	return id, nil
}

// Page reads from/size. from must be >= 0 and size > 0.
func Page(r *http.Request) (from, size int, err error) {
	q := r.URL.Query()

	from, err = intOr(q.Get("from"), DefaultFrom)
	if err != nil || from < 0 {
		return 0, 0, fmt.Errorf("from must be a non-negative integer")
	}

	size, err = intOr(q.Get("size"), DefaultSize)
	if err != nil || size <= 0 {
		return 0, 0, fmt.Errorf("size must be a positive integer")
	}

	return from, size, nil
}

// Strings accepts both repeated (?a=x&a=y) and comma separated (?a=x,y) forms.
func Strings(r *http.Request, name string) []string {
	var out []string

	for _, v := range r.URL.Query()[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

func Int64s(r *http.Request, name string) ([]int64, error) {
	raw := Strings(r, name)
	if len(raw) == 0 {
		return nil, nil
	}

	out := make([]int64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", name, s)
		}
		out = append(out, v)
	}

	return out, nil
}

// Time returns nil when the parameter is absent.
func Time(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := datetime.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return &t, nil
}

// Bool returns nil when the parameter is absent.
func Bool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q", name, raw)
	}

	return &v, nil
}

// Hit describes the request for the stats server: its path and the client
// IP without the port. RemoteAddr is expected to be rewritten by RealIP.
func Hit(r *http.Request) models.HitInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	return models.HitInfo{URI: r.URL.Path, IP: ip}
}

func intOr(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	return strconv.Atoi(raw)
}
