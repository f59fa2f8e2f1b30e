package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle phase of a hackathon, derived from its dates.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// VirtualVenue is the venue value of events that take place online.
const VirtualVenue = "Virtual"

// HackathonSummary is the list-view representation of a hackathon.
type HackathonSummary struct {
	ID                   EntityID  `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Theme                string    `json:"theme"`
	StartDate            Timestamp `json:"startDate"`
	EndDate              Timestamp `json:"endDate"`
	Venue                string    `json:"location"`
	MaxParticipants      int       `json:"maxParticipants"`
	CurrentParticipants  int       `json:"currentParticipants"`
	PrizePool            string    `json:"prizePool"`
	RegistrationDeadline Timestamp `json:"registrationDeadline"`
	Image                string    `json:"image,omitempty"`
}

// Status derives the phase of the hackathon at now.
func (h HackathonSummary) Status(now time.Time) Status {
	return DeriveStatus(h.StartDate, h.EndDate, now)
}

// IsVirtual reports whether the hackathon happens online.
func (h HackathonSummary) IsVirtual() bool {
	return h.Venue == VirtualVenue
}

// DeriveStatus returns upcoming when now is before start, completed when now is
// after the end, and ongoing otherwise (both bounds inclusive).
func DeriveStatus(start, end Timestamp, now time.Time) Status {
	if now.Before(start.Time) {
		return StatusUpcoming
	}
	if now.After(end.Until()) {
		return StatusCompleted
	}
	return StatusOngoing
}

// ParseStatus validates s as a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusUpcoming, StatusOngoing, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q: %w", s, ErrInvalidInput)
}
