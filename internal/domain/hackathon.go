package domain

import (
	"fmt"
	"strings"
)

// EventType is how a hackathon is attended.
type EventType string

const (
	EventTypeVirtual  EventType = "virtual"
	EventTypeInPerson EventType = "in-person"
)

// ParseEventType validates s as an EventType.
func ParseEventType(s string) (EventType, error) {
	switch t := EventType(strings.ToLower(strings.TrimSpace(s))); t {
	case EventTypeVirtual, EventTypeInPerson:
		return t, nil
	}
	return "", fmt.Errorf("event type must be %q or %q: %w", EventTypeVirtual, EventTypeInPerson, ErrInvalidInput)
}

// SkillLevel is the required experience of participants.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelAll          SkillLevel = "all"
)

// ParseSkillLevel validates s as a SkillLevel. The empty string is allowed (not chosen yet).
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch l := SkillLevel(strings.ToLower(strings.TrimSpace(s))); l {
	case "", SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelAll:
		return l, nil
	}
	return "", fmt.Errorf("skill level %q is not one of beginner, intermediate, advanced, all: %w", s, ErrInvalidInput)
}

// Eligibility describes who may take part.
type Eligibility struct {
	AgeMin       int        `json:"ageMin"`
	AgeMax       int        `json:"ageMax"`
	SkillLevel   SkillLevel `json:"skillLevel"`
	Location     string     `json:"location"`
	Requirements string     `json:"requirements"`
}

// ScheduleEntry is one item of the event agenda.
type ScheduleEntry struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Title       string `json:"event"`
	Description string `json:"description"`
}

// Mentor supports teams during the event.
type Mentor struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Bio       string `json:"bio"`
}

// Judge scores submitted projects. Invited is set once an invitation email went out.
type Judge struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Invited   bool   `json:"invited"`
}

// Resource is a perk or tool offered to participants.
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Contact holds the organizer's contact channels.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Discord string `json:"discord"`
	Website string `json:"website"`
}

// HackathonDraft is the in-memory definition of a hackathon being created.
// List fields are never nil.
type HackathonDraft struct {
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	StartDate            Timestamp       `json:"startDate"`
	EndDate              Timestamp       `json:"endDate"`
	MaxParticipants      int             `json:"maxParticipants"`
	PrizePool            string          `json:"prizePool"`
	RegistrationDeadline Timestamp       `json:"registrationDeadline"`
	EventType            EventType       `json:"eventType"`
	Venue                string          `json:"venue"`
	Platform             string          `json:"platform"`
	PlatformLink         string          `json:"platformLink"`
	Eligibility          Eligibility     `json:"eligibility"`
	Theme                string          `json:"theme"`
	Tracks               []string        `json:"tracks"`
	Rules                []string        `json:"rules"`
	Schedule             []ScheduleEntry `json:"schedule"`
	Sponsors             []string        `json:"sponsors"`
	Mentors              []Mentor        `json:"mentors"`
	Judges               []Judge         `json:"judges"`
	Resources            []Resource      `json:"resources"`
	Contact              Contact         `json:"contact"`
}

// NewHackathonDraft returns a virtual-event draft with one blank row in every list,
// ready to be filled in.
func NewHackathonDraft() *HackathonDraft {
	return &HackathonDraft{
		EventType: EventTypeVirtual,
		Tracks:    []string{""},
		Rules:     []string{""},
		Schedule:  []ScheduleEntry{{}},
		Sponsors:  []string{""},
		Mentors:   []Mentor{{}},
		Judges:    []Judge{{}},
		Resources: []Resource{{}},
	}
}

// Normalize replaces nil list fields with empty ones and defaults the event type.
func (d *HackathonDraft) Normalize() {
	if d.EventType == "" {
		d.EventType = EventTypeVirtual
	}
	if d.Tracks == nil {
		d.Tracks = []string{}
	}
	if d.Rules == nil {
		d.Rules = []string{}
	}
	if d.Schedule == nil {
		d.Schedule = []ScheduleEntry{}
	}
	if d.Sponsors == nil {
		d.Sponsors = []string{}
	}
	if d.Mentors == nil {
		d.Mentors = []Mentor{}
	}
	if d.Judges == nil {
		d.Judges = []Judge{}
	}
	if d.Resources == nil {
		d.Resources = []Resource{}
	}
}

// CreateHackathonRequest is the body of POST /hackathons.
type CreateHackathonRequest struct {
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	StartDate            Timestamp       `json:"startDate"`
	EndDate              Timestamp       `json:"endDate"`
	MaxParticipants      int             `json:"maxParticipants"`
	PrizePool            string          `json:"prizePool"`
	RegistrationDeadline Timestamp       `json:"registrationDeadline"`
	EventType            EventType       `json:"eventType"`
	Venue                string          `json:"venue"`
	Platform             string          `json:"platform"`
	PlatformLink         string          `json:"platformLink"`
	Eligibility          Eligibility     `json:"eligibility"`
	Theme                string          `json:"theme"`
	Tracks               []string        `json:"tracks"`
	Rules                []string        `json:"rules"`
	Schedule             []ScheduleEntry `json:"schedule"`
	Sponsors             []string        `json:"sponsors"`
	Mentors              []Mentor        `json:"mentors"`
	Judges               []Judge         `json:"judges"`
	Resources            []Resource      `json:"resources"`
	Contact              Contact         `json:"contact"`
}

// HackathonDetail is the full representation returned by GET /api/hackathons/:id.
type HackathonDetail struct {
	HackathonSummary
	EventType    EventType       `json:"eventType"`
	Platform     string          `json:"platform"`
	PlatformLink string          `json:"platformLink"`
	Eligibility  Eligibility     `json:"eligibility"`
	Tracks       []string        `json:"tracks"`
	Rules        []string        `json:"rules"`
	Schedule     []ScheduleEntry `json:"schedule"`
	Sponsors     []string        `json:"sponsors"`
	Mentors      []Mentor        `json:"mentors"`
	Resources    []Resource      `json:"resources"`
	Contact      Contact         `json:"contact"`
}
