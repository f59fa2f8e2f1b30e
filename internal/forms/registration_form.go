package forms

import (
	"fmt"
	"strconv"
	"strings"

	"hackverse/internal/domain"
)

// RegistrationForm holds a participant's registration for one hackathon.
type RegistrationForm struct {
	hackathonID domain.EntityID
	draft       *domain.RegistrationDraft
}

// NewRegistrationForm returns an empty registration for the given hackathon.
func NewRegistrationForm(hackathonID domain.EntityID) *RegistrationForm {
	return &RegistrationForm{hackathonID: hackathonID, draft: domain.NewRegistrationDraft()}
}

// LoadRegistrationForm wraps an existing draft.
func LoadRegistrationForm(hackathonID domain.EntityID, d *domain.RegistrationDraft) *RegistrationForm {
	if d == nil {
		return NewRegistrationForm(hackathonID)
	}
	d.Normalize()
	return &RegistrationForm{hackathonID: hackathonID, draft: d}
}

// HackathonID returns the hackathon this registration is for.
func (f *RegistrationForm) HackathonID() domain.EntityID {
	return f.hackathonID
}

// Draft returns a snapshot of the current draft.
func (f *RegistrationForm) Draft() domain.RegistrationDraft {
	return *f.draft
}

// SetField parses path and stores value in the addressed field.
func (f *RegistrationForm) SetField(path, value string) error {
	field, err := ParseRegistrationField(path)
	if err != nil {
		return err
	}
	return f.Set(field, value)
}

// Set stores value in field; parse failures leave the draft untouched.
func (f *RegistrationForm) Set(field RegistrationField, value string) error {
	d := f.draft
	switch field {
	case FieldFullName:
		d.FullName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldEducation:
		d.Education = value
	case FieldSkills:
		d.Skills = value
	case FieldTeamName:
		d.TeamName = value
	case FieldHeardFrom:
		c := domain.DiscoveryChannel(strings.ToLower(strings.TrimSpace(value)))
		if c != "" && !c.Valid() {
			return &FieldError{Field: field.String(), Value: value, Err: domain.ErrInvalidInput}
		}
		d.HeardFrom = c
	case FieldTeamPreference:
		r, err := domain.ParseMemberRole(value)
		if err != nil {
			return &FieldError{Field: field.String(), Value: value, Err: err}
		}
		d.TeamPreference = r
	case FieldHasTeam, FieldLookingForTeam:
		b, err := parseBool(value)
		if err != nil {
			return &FieldError{Field: field.String(), Value: value, Err: err}
		}
		if field == FieldHasTeam {
			d.HasTeam = b
		} else {
			d.LookingForTeam = b
		}
	default:
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	return nil
}

// AppendItem adds a team member with the default role. Only ListTeamMembers is accepted.
func (f *RegistrationForm) AppendItem(field ListField) error {
	if field != ListTeamMembers {
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	f.draft.TeamMembers = Append(f.draft.TeamMembers, domain.TeamMember{Role: domain.RoleFrontend})
	return nil
}

// RemoveItem deletes team member i; an out-of-range index is a no-op.
func (f *RegistrationForm) RemoveItem(field ListField, i int) error {
	if field != ListTeamMembers {
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	f.draft.TeamMembers = RemoveAt(f.draft.TeamMembers, i)
	return nil
}

// ReplaceItem sets team member i to v, which must be a domain.TeamMember.
func (f *RegistrationForm) ReplaceItem(field ListField, i int, v any) error {
	if field != ListTeamMembers {
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	members, err := replaceTyped(f.draft.TeamMembers, i, v, field)
	if err != nil {
		return err
	}
	f.draft.TeamMembers = members
	return nil
}

// Validate checks the whole registration.
func (f *RegistrationForm) Validate() domain.ValidationErrors {
	d := f.draft
	errs := domain.ValidationErrors{}

	if blank(d.FullName) {
		errs.Add("fullName", "Full name is required")
	}
	switch {
	case blank(d.Email):
		errs.Add("email", "Email is required")
	case !ValidEmail(strings.TrimSpace(d.Email)):
		errs.Add("email", "Please enter a valid email address")
	}
	if blank(d.Phone) {
		errs.Add("phone", "Phone is required")
	}
	if blank(d.Education) {
		errs.Add("education", "Education is required")
	}
	if !d.HeardFrom.Valid() {
		errs.Add("heardFrom", "This field is required")
	}
	if blank(d.Skills) {
		errs.Add("skills", "Skills are required")
	}

	if d.HasTeam {
		if blank(d.TeamName) {
			errs.Add("teamName", "Team name is required")
		}
		if len(d.TeamMembers) == 0 {
			errs.Add("teamMembers", "At least one team member is required")
		}
		for i, m := range d.TeamMembers {
			n := strconv.Itoa(i)
			if blank(m.Name) {
				errs.Add("memberName-"+n, "Member name is required")
			}
			switch {
			case blank(m.Email):
				errs.Add("memberEmail-"+n, "Member email is required")
			case !ValidEmail(strings.TrimSpace(m.Email)):
				errs.Add("memberEmail-"+n, "Please enter a valid email address")
			}
			if m.Role == "" {
				errs.Add("memberRole-"+n, "Member role is required")
			}
		}
	}

	if d.LookingForTeam && d.TeamPreference == "" {
		errs.Add("teamPreference", "Team preference is required")
	}
	return errs
}

// Payload builds the registration request. Skills are split on commas and team
// members are only sent for team registrations.
func (f *RegistrationForm) Payload() *domain.RegistrationRequest {
	d := f.draft
	req := &domain.RegistrationRequest{
		HackathonID:    f.hackathonID,
		FullName:       strings.TrimSpace(d.FullName),
		Email:          strings.TrimSpace(d.Email),
		Phone:          strings.TrimSpace(d.Phone),
		Education:      strings.TrimSpace(d.Education),
		HeardFrom:      d.HeardFrom,
		Skills:         d.SkillList(),
		HasTeam:        d.HasTeam,
		TeamName:       strings.TrimSpace(d.TeamName),
		LookingForTeam: d.LookingForTeam,
		TeamPreference: d.TeamPreference,
	}
	if d.HasTeam {
		req.TeamMembers = make([]domain.TeamMember, len(d.TeamMembers))
		for i, m := range d.TeamMembers {
			req.TeamMembers[i] = domain.TeamMember{
				Name:  strings.TrimSpace(m.Name),
				Email: strings.TrimSpace(m.Email),
				Role:  m.Role,
			}
		}
	}
	return req
}
