package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LocalDateTimeLayout is the wire format of date-time inputs ("2024-04-15T09:30").
	LocalDateTimeLayout = "2006-01-02T15:04"
	// DateLayout is the wire format of date-only values ("2024-04-15").
	DateLayout = "2006-01-02"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	LocalDateTimeLayout,
}

// Timestamp is a point in time that remembers whether it was given as a bare date.
// A date-only timestamp covers the whole day: Until reports its last instant.
type Timestamp struct {
	time.Time
	dateOnly bool
}

// NewTimestamp wraps t as a full date-time value.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// NewDate returns a date-only timestamp for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Timestamp {
	return Timestamp{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), dateOnly: true}
}

// ParseTimestamp accepts RFC 3339, local date-time ("2006-01-02T15:04[:05]")
// and date-only ("2006-01-02") strings. Values without a zone are read as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Timestamp{Time: t, dateOnly: true}, nil
	}
	return Timestamp{}, fmt.Errorf("invalid date %q: %w", s, ErrInvalidInput)
}

// DateOnly reports whether the value was given without a time of day.
func (t Timestamp) DateOnly() bool {
	return t.dateOnly
}

// Until returns the last instant covered by t: the end of the day for date-only
// values, t itself otherwise.
func (t Timestamp) Until() time.Time {
	if t.dateOnly {
		return t.Time.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t.Time
}

// String renders date-only values as "2006-01-02" and whole-minute UTC values
// in LocalDateTimeLayout. Anything else is RFC 3339 so the offset and
// sub-minute precision survive a round trip.
func (t Timestamp) String() string {
	switch {
	case t.IsZero():
		return ""
	case t.dateOnly:
		return t.Time.Format(DateLayout)
	case t.Location() == time.UTC && t.Second() == 0 && t.Nanosecond() == 0:
		return t.Time.Format(LocalDateTimeLayout)
	}
	return t.Time.Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// EntityID is an identifier that the API may send either as a string or a number.
type EntityID string

func (id *EntityID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = EntityID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = EntityID(n.String())
	return nil
}

func (id EntityID) String() string {
	return string(id)
}
