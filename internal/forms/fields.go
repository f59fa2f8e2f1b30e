package forms

import (
	"fmt"
	"strconv"
	"strings"

	"hackverse/internal/domain"
)

// HackathonField is a scalar field of the hackathon draft. Dotted paths such as
// "eligibility.ageMin" are resolved to a HackathonField once, at the input boundary.
type HackathonField int

const (
	FieldTitle HackathonField = iota + 1
	FieldDescription
	FieldStartDate
	FieldEndDate
	FieldMaxParticipants
	FieldPrizePool
	FieldRegistrationDeadline
	FieldEventType
	FieldVenue
	FieldPlatform
	FieldPlatformLink
	FieldAgeMin
	FieldAgeMax
	FieldSkillLevel
	FieldEligibilityLocation
	FieldRequirements
	FieldTheme
	FieldContactEmail
	FieldContactPhone
	FieldContactDiscord
	FieldContactWebsite
)

var hackathonFieldPaths = map[HackathonField]string{
	FieldTitle:                "title",
	FieldDescription:          "description",
	FieldStartDate:            "startDate",
	FieldEndDate:              "endDate",
	FieldMaxParticipants:      "maxParticipants",
	FieldPrizePool:            "prizePool",
	FieldRegistrationDeadline: "registrationDeadline",
	FieldEventType:            "eventType",
	FieldVenue:                "venue",
	FieldPlatform:             "platform",
	FieldPlatformLink:         "platformLink",
	FieldAgeMin:               "eligibility.ageMin",
	FieldAgeMax:               "eligibility.ageMax",
	FieldSkillLevel:           "eligibility.skillLevel",
	FieldEligibilityLocation:  "eligibility.location",
	FieldRequirements:         "eligibility.requirements",
	FieldTheme:                "theme",
	FieldContactEmail:         "contact.email",
	FieldContactPhone:         "contact.phone",
	FieldContactDiscord:       "contact.discord",
	FieldContactWebsite:       "contact.website",
}

var hackathonFieldsByPath = invert(hackathonFieldPaths)

// ParseHackathonField resolves a field path. Unknown paths return ErrUnknownField.
func ParseHackathonField(path string) (HackathonField, error) {
	if f, ok := hackathonFieldsByPath[path]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("hackathon field %q: %w", path, domain.ErrUnknownField)
}

func (f HackathonField) String() string {
	if p, ok := hackathonFieldPaths[f]; ok {
		return p
	}
	return "HackathonField(" + strconv.Itoa(int(f)) + ")"
}

// RegistrationField is a scalar field of the registration draft.
type RegistrationField int

const (
	FieldFullName RegistrationField = iota + 1
	FieldEmail
	FieldPhone
	FieldEducation
	FieldHeardFrom
	FieldSkills
	FieldHasTeam
	FieldTeamName
	FieldLookingForTeam
	FieldTeamPreference
)

var registrationFieldPaths = map[RegistrationField]string{
	FieldFullName:       "fullName",
	FieldEmail:          "email",
	FieldPhone:          "phone",
	FieldEducation:      "education",
	FieldHeardFrom:      "heardFrom",
	FieldSkills:         "skills",
	FieldHasTeam:        "hasTeam",
	FieldTeamName:       "teamName",
	FieldLookingForTeam: "lookingForTeam",
	FieldTeamPreference: "teamPreference",
}

var registrationFieldsByPath = invert(registrationFieldPaths)

// ParseRegistrationField resolves a field path. Unknown paths return ErrUnknownField.
func ParseRegistrationField(path string) (RegistrationField, error) {
	if f, ok := registrationFieldsByPath[path]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("registration field %q: %w", path, domain.ErrUnknownField)
}

func (f RegistrationField) String() string {
	if p, ok := registrationFieldPaths[f]; ok {
		return p
	}
	return "RegistrationField(" + strconv.Itoa(int(f)) + ")"
}

// ListField is a repeatable field edited with AppendItem, RemoveItem and ReplaceItem.
type ListField int

const (
	ListTracks ListField = iota + 1
	ListRules
	ListSchedule
	ListSponsors
	ListMentors
	ListJudges
	ListResources
	ListTeamMembers
)

var listFieldNames = map[ListField]string{
	ListTracks:      "tracks",
	ListRules:       "rules",
	ListSchedule:    "schedule",
	ListSponsors:    "sponsors",
	ListMentors:     "mentors",
	ListJudges:      "judges",
	ListResources:   "resources",
	ListTeamMembers: "teamMembers",
}

var listFieldsByName = invert(listFieldNames)

// ParseListField resolves a list field name. Unknown names return ErrUnknownField.
func ParseListField(name string) (ListField, error) {
	if f, ok := listFieldsByName[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("list field %q: %w", name, domain.ErrUnknownField)
}

func (f ListField) String() string {
	if n, ok := listFieldNames[f]; ok {
		return n
	}
	return "ListField(" + strconv.Itoa(int(f)) + ")"
}

// FieldError reports a value that could not be stored in a field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// parseCount reads a non-negative integer; blank input means zero.
func parseCount(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %w", domain.ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative: %w", domain.ErrInvalidInput)
	}
	return n, nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "no", "off", "0":
		return false, nil
	case "true", "yes", "on", "1":
		return true, nil
	}
	return false, fmt.Errorf("not a boolean: %w", domain.ErrInvalidInput)
}
