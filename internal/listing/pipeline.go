// Package listing filters and orders hackathon summaries for the browse view.
package listing

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"hackverse/internal/domain"
)

// SortKey selects the value hackathons are ordered by.
type SortKey string

const (
	SortDate         SortKey = "date"
	SortPrize        SortKey = "prize"
	SortParticipants SortKey = "participants"
	SortDeadline     SortKey = "deadline"
)

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Venue filters by attendance mode.
type Venue string

const (
	VenueAll      Venue = "all"
	VenueVirtual  Venue = "virtual"
	VenueInPerson Venue = "in-person"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// Criteria configures one run of the pipeline.
type Criteria struct {
	Query     string
	Status    string
	Venue     Venue
	SortKey   SortKey
	Direction Direction
}

// DefaultCriteria shows everything, earliest start first.
func DefaultCriteria() Criteria {
	return Criteria{Status: StatusAll, Venue: VenueAll, SortKey: SortDate, Direction: Ascending}
}

// ParseCriteria validates user supplied criteria. Empty values take the defaults.
func ParseCriteria(query, status, venue, sortKey, direction string) (Criteria, error) {
	c := DefaultCriteria()
	c.Query = query

	if status != "" && status != StatusAll {
		st, err := domain.ParseStatus(status)
		if err != nil {
			return Criteria{}, fmt.Errorf("status filter: %w", err)
		}
		c.Status = string(st)
	}

	switch v := Venue(venue); v {
	case "":
	case VenueAll, VenueVirtual, VenueInPerson:
		c.Venue = v
	default:
		return Criteria{}, fmt.Errorf("venue filter %q: %w", venue, domain.ErrInvalidInput)
	}

	switch k := SortKey(sortKey); k {
	case "":
	case SortDate, SortPrize, SortParticipants, SortDeadline:
		c.SortKey = k
	default:
		return Criteria{}, fmt.Errorf("sort key %q: %w", sortKey, domain.ErrInvalidInput)
	}

	switch d := Direction(direction); d {
	case "":
	case Ascending, Descending:
		c.Direction = d
	default:
		return Criteria{}, fmt.Errorf("sort direction %q: %w", direction, domain.ErrInvalidInput)
	}
	return c, nil
}

// Apply returns the hackathons matching c, ordered by c's sort key. Status is
// derived from the dates at now. The input slice is not modified.
func Apply(items []domain.HackathonSummary, c Criteria, now time.Time) []domain.HackathonSummary {
	fold := cases.Fold()
	query := fold.String(c.Query)

	out := make([]domain.HackathonSummary, 0, len(items))
	for _, h := range items {
		if matchesQuery(fold, h, query) && matchesStatus(h, c.Status, now) && matchesVenue(h, c.Venue) {
			out = append(out, h)
		}
	}

	cmp := comparator(c.SortKey)
	if c.Direction == Descending {
		asc := cmp
		cmp = func(a, b domain.HackathonSummary) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func matchesQuery(fold cases.Caser, h domain.HackathonSummary, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(fold.String(h.Title), query) ||
		strings.Contains(fold.String(h.Description), query) ||
		strings.Contains(fold.String(h.Theme), query)
}

func matchesStatus(h domain.HackathonSummary, status string, now time.Time) bool {
	return status == "" || status == StatusAll || string(h.Status(now)) == status
}

func matchesVenue(h domain.HackathonSummary, v Venue) bool {
	switch v {
	case VenueVirtual:
		return h.IsVirtual()
	case VenueInPerson:
		return !h.IsVirtual()
	}
	return true
}

func comparator(key SortKey) func(a, b domain.HackathonSummary) int {
	switch key {
	case SortPrize:
		return func(a, b domain.HackathonSummary) int {
			return compareInt64(PrizeAmount(a.PrizePool), PrizeAmount(b.PrizePool))
		}
	case SortParticipants:
		return func(a, b domain.HackathonSummary) int {
			return compareInt64(int64(a.CurrentParticipants), int64(b.CurrentParticipants))
		}
	case SortDeadline:
		return func(a, b domain.HackathonSummary) int {
			return a.RegistrationDeadline.Compare(b.RegistrationDeadline.Time)
		}
	}
	return func(a, b domain.HackathonSummary) int {
		return a.StartDate.Compare(b.StartDate.Time)
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// PrizeAmount reads the digits of a prize label as an integer ("₹5,00,000" is
// 500000). A label without digits is 0; values too large saturate at MaxInt64.
func PrizeAmount(label string) int64 {
	var n int64
	for _, r := range label {
		if r < '0' || r > '9' {
			continue
		}
		d := int64(r - '0')
		if n > (math.MaxInt64-d)/10 {
			return math.MaxInt64
		}
		n = n*10 + d
	}
	return n
}
