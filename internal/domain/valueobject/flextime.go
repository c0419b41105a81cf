// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"encoding/json"
	"time"
)

// FlexTime decodes the heterogeneous timestamp shapes found in the legacy
// document export: ISO-8601 strings, plain YYYY-MM-DD strings, epoch
// milliseconds, and Firestore-style {seconds,nanoseconds} wrappers. A missing
// or unrecognized value decodes to the zero FlexTime.
//
// Ambiguous-typed date values must never flow into date arithmetic directly;
// FlexTime is the single conversion point at the ingress boundary.
type FlexTime struct {
	t     time.Time
	valid bool
}

// NewFlexTime wraps a concrete time.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{t: t, valid: true}
}

// Time returns the decoded time, or nil when the value was absent or
// unrecognized.
func (f FlexTime) Time() *time.Time {
	if !f.valid {
		return nil
	}
	t := f.t
	return &t
}

// IsZero reports whether the value was absent or unrecognized.
func (f FlexTime) IsZero() bool {
	return !f.valid
}

// firestoreTimestamp matches the {seconds,nanoseconds} wrapper emitted by the
// legacy export, in both its public and underscore-prefixed spellings.
type firestoreTimestamp struct {
	Seconds      *int64 `json:"seconds"`
	Nanoseconds  *int64 `json:"nanoseconds"`
	USeconds     *int64 `json:"_seconds"`
	UNanoseconds *int64 `json:"_nanoseconds"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	*f = FlexTime{}

	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.t, f.valid = parseTimeString(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		// Epoch milliseconds, matching JavaScript's new Date(number).
		f.t = time.UnixMilli(int64(n)).UTC()
		f.valid = true
		return nil
	}

	var ts firestoreTimestamp
	if err := json.Unmarshal(data, &ts); err == nil {
		seconds, nanos := ts.Seconds, ts.Nanoseconds
		if seconds == nil {
			seconds, nanos = ts.USeconds, ts.UNanoseconds
		}
		if seconds != nil {
			var ns int64
			if nanos != nil {
				ns = *nanos
			}
			f.t = time.Unix(*seconds, ns).UTC()
			f.valid = true
		}
		return nil
	}

	// Unrecognized shapes are a data-quality problem, not a failure; the
	// caller decides whether a missing date matters.
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.t.Format(time.RFC3339))
}

// parseTimeString tries the date-only form first so calendar dates never pass
// through a timezone-sensitive parse (a YYYY-MM-DD string read as RFC 3339
// UTC can land on the previous local day).
func parseTimeString(s string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// ParseCalendarDate parses a timezone-naive YYYY-MM-DD calendar date. All
// calendar dates in FinApp are anchored at midnight UTC.
func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// CalendarDate truncates a time to its calendar date at midnight UTC.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
