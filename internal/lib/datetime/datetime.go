// Package datetime handles the "yyyy-MM-dd HH:mm:ss" timestamps used on the
// wire by both services.
package datetime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const Layout = "2006-01-02 15:04:05"

// Time is a time.Time that marshals to and from Layout in local time.
type Time struct {
	time.Time
}

func New(t time.Time) Time {
	return Time{Time: t}
}

// Ptr returns nil for a nil input, which keeps optional timestamps optional.
func Ptr(t *time.Time) *Time {
	if t == nil {
		return nil
	}

	return &Time{Time: *t}
}

func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q must match %q", s, "yyyy-MM-dd HH:mm:ss")
	}

	return t, nil
}

func Format(t time.Time) string {
	return t.In(time.Local).Format(Layout)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(Format(t.Time))
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}
