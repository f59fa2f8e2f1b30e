package forms

import (
	"fmt"
	"strings"

	"hackverse/internal/domain"
)

// HackathonForm holds the state of a hackathon being defined.
type HackathonForm struct {
	draft *domain.HackathonDraft
}

// NewHackathonForm returns a form over a fresh draft.
func NewHackathonForm() *HackathonForm {
	return &HackathonForm{draft: domain.NewHackathonDraft()}
}

// LoadHackathonForm wraps an existing draft, e.g. one decoded from a file.
func LoadHackathonForm(d *domain.HackathonDraft) *HackathonForm {
	if d == nil {
		return NewHackathonForm()
	}
	d.Normalize()
	return &HackathonForm{draft: d}
}

// Draft returns a snapshot of the current draft.
func (f *HackathonForm) Draft() domain.HackathonDraft {
	return *f.draft
}

// SetField parses path and stores value in the addressed field.
func (f *HackathonForm) SetField(path, value string) error {
	field, err := ParseHackathonField(path)
	if err != nil {
		return err
	}
	return f.Set(field, value)
}

// Set stores value in field. Values are parsed into the field's type; on a parse
// failure a *FieldError is returned and the draft is left untouched.
func (f *HackathonForm) Set(field HackathonField, value string) error {
	d := f.draft
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldPrizePool:
		d.PrizePool = value
	case FieldVenue:
		d.Venue = value
	case FieldPlatform:
		d.Platform = value
	case FieldPlatformLink:
		d.PlatformLink = value
	case FieldEligibilityLocation:
		d.Eligibility.Location = value
	case FieldRequirements:
		d.Eligibility.Requirements = value
	case FieldTheme:
		d.Theme = value
	case FieldContactEmail:
		d.Contact.Email = value
	case FieldContactPhone:
		d.Contact.Phone = value
	case FieldContactDiscord:
		d.Contact.Discord = value
	case FieldContactWebsite:
		d.Contact.Website = value
	case FieldStartDate, FieldEndDate, FieldRegistrationDeadline:
		ts, err := domain.ParseTimestamp(value)
		if err != nil {
			return &FieldError{Field: field.String(), Value: value, Err: err}
		}
		switch field {
		case FieldStartDate:
			d.StartDate = ts
		case FieldEndDate:
			d.EndDate = ts
		default:
			d.RegistrationDeadline = ts
		}
	case FieldMaxParticipants, FieldAgeMin, FieldAgeMax:
		n, err := parseCount(value)
		if err != nil {
			return &FieldError{Field: field.String(), Value: value, Err: err}
		}
		switch field {
		case FieldMaxParticipants:
			d.MaxParticipants = n
		case FieldAgeMin:
			d.Eligibility.AgeMin = n
		default:
			d.Eligibility.AgeMax = n
		}
	case FieldEventType:
		t, err := domain.ParseEventType(value)
		if err != nil {
			return &FieldError{Field: field.String(), Value: value, Err: err}
		}
		d.EventType = t
	case FieldSkillLevel:
		l, err := domain.ParseSkillLevel(value)
		if err != nil {
			return &FieldError{Field: field.String(), Value: value, Err: err}
		}
		d.Eligibility.SkillLevel = l
	default:
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	return nil
}

// Len returns the number of entries in a list field.
func (f *HackathonForm) Len(field ListField) (int, error) {
	d := f.draft
	switch field {
	case ListTracks:
		return len(d.Tracks), nil
	case ListRules:
		return len(d.Rules), nil
	case ListSchedule:
		return len(d.Schedule), nil
	case ListSponsors:
		return len(d.Sponsors), nil
	case ListMentors:
		return len(d.Mentors), nil
	case ListJudges:
		return len(d.Judges), nil
	case ListResources:
		return len(d.Resources), nil
	}
	return 0, fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
}

// AppendItem adds a blank entry at the end of a list field.
func (f *HackathonForm) AppendItem(field ListField) error {
	d := f.draft
	switch field {
	case ListTracks:
		d.Tracks = Append(d.Tracks, "")
	case ListRules:
		d.Rules = Append(d.Rules, "")
	case ListSchedule:
		d.Schedule = Append(d.Schedule, domain.ScheduleEntry{})
	case ListSponsors:
		d.Sponsors = Append(d.Sponsors, "")
	case ListMentors:
		d.Mentors = Append(d.Mentors, domain.Mentor{})
	case ListJudges:
		d.Judges = Append(d.Judges, domain.Judge{})
	case ListResources:
		d.Resources = Append(d.Resources, domain.Resource{})
	default:
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	return nil
}

// RemoveItem deletes entry i of a list field; an out-of-range index is a no-op.
func (f *HackathonForm) RemoveItem(field ListField, i int) error {
	d := f.draft
	switch field {
	case ListTracks:
		d.Tracks = RemoveAt(d.Tracks, i)
	case ListRules:
		d.Rules = RemoveAt(d.Rules, i)
	case ListSchedule:
		d.Schedule = RemoveAt(d.Schedule, i)
	case ListSponsors:
		d.Sponsors = RemoveAt(d.Sponsors, i)
	case ListMentors:
		d.Mentors = RemoveAt(d.Mentors, i)
	case ListJudges:
		d.Judges = RemoveAt(d.Judges, i)
	case ListResources:
		d.Resources = RemoveAt(d.Resources, i)
	default:
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	return nil
}

// ReplaceItem sets entry i of a list field to v. v must be a string for tracks,
// rules and sponsors and the matching record type for the other lists; otherwise
// ErrItemType is returned. An out-of-range index is a no-op.
func (f *HackathonForm) ReplaceItem(field ListField, i int, v any) error {
	d := f.draft
	var err error
	switch field {
	case ListTracks:
		d.Tracks, err = replaceTyped(d.Tracks, i, v, field)
	case ListRules:
		d.Rules, err = replaceTyped(d.Rules, i, v, field)
	case ListSchedule:
		d.Schedule, err = replaceTyped(d.Schedule, i, v, field)
	case ListSponsors:
		d.Sponsors, err = replaceTyped(d.Sponsors, i, v, field)
	case ListMentors:
		d.Mentors, err = replaceTyped(d.Mentors, i, v, field)
	case ListJudges:
		d.Judges, err = replaceTyped(d.Judges, i, v, field)
	case ListResources:
		d.Resources, err = replaceTyped(d.Resources, i, v, field)
	default:
		return fmt.Errorf("%v: %w", field, domain.ErrUnknownField)
	}
	return err
}

func replaceTyped[T any](items []T, i int, v any, field ListField) ([]T, error) {
	item, ok := v.(T)
	if !ok {
		return items, fmt.Errorf("%v: got %T: %w", field, v, domain.ErrItemType)
	}
	return ReplaceAt(items, i, item), nil
}

// itemKey names the attribute that AddItem fills on record lists.
var itemKey = map[ListField]string{
	ListSchedule:  "event",
	ListMentors:   "name",
	ListJudges:    "name",
	ListResources: "name",
}

// AddItem appends an entry holding value and returns its index. For record
// lists value fills the entry's title or name.
func (f *HackathonForm) AddItem(field ListField, value string) (int, error) {
	if err := f.AppendItem(field); err != nil {
		return 0, err
	}
	i, _ := f.Len(field)
	i--
	if err := f.SetItemField(field, i, itemKey[field], value); err != nil {
		_ = f.RemoveItem(field, i)
		return 0, err
	}
	return i, nil
}

// SetItemField stores value in attribute name of entry i. name is the JSON key
// of the attribute ("expertise", "link") and is empty for the string lists.
func (f *HackathonForm) SetItemField(field ListField, i int, name, value string) error {
	n, err := f.Len(field)
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return fmt.Errorf("%v.%d: no such entry: %w", field, i, domain.ErrInvalidInput)
	}
	d := f.draft
	var (
		item any
		ok   bool
	)
	switch field {
	case ListTracks, ListRules, ListSponsors:
		item, ok = value, name == ""
	case ListSchedule:
		item, ok = scheduleWith(d.Schedule[i], name, value)
	case ListMentors:
		item, ok = mentorWith(d.Mentors[i], name, value)
	case ListJudges:
		item, ok = judgeWith(d.Judges[i], name, value)
	case ListResources:
		item, ok = resourceWith(d.Resources[i], name, value)
	}
	if !ok {
		return fmt.Errorf("%v.%d.%s: %w", field, i, name, domain.ErrUnknownField)
	}
	return f.ReplaceItem(field, i, item)
}

func scheduleWith(e domain.ScheduleEntry, name, value string) (domain.ScheduleEntry, bool) {
	switch name {
	case "date":
		e.Date = value
	case "time":
		e.Time = value
	case "event":
		e.Title = value
	case "description":
		e.Description = value
	default:
		return e, false
	}
	return e, true
}

func mentorWith(m domain.Mentor, name, value string) (domain.Mentor, bool) {
	switch name {
	case "name":
		m.Name = value
	case "expertise":
		m.Expertise = value
	case "bio":
		m.Bio = value
	default:
		return m, false
	}
	return m, true
}

func judgeWith(j domain.Judge, name, value string) (domain.Judge, bool) {
	switch name {
	case "name":
		j.Name = value
	case "expertise":
		j.Expertise = value
	case "bio":
		j.Bio = value
	case "email":
		if j.Email != value {
			j.Invited = false
		}
		j.Email = value
	default:
		return j, false
	}
	return j, true
}

func resourceWith(r domain.Resource, name, value string) (domain.Resource, bool) {
	switch name {
	case "name":
		r.Name = value
	case "description":
		r.Description = value
	case "link":
		r.Link = value
	default:
		return r, false
	}
	return r, true
}

// Validate checks every step and returns all problems found.
func (f *HackathonForm) Validate() domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	for _, s := range hackathonSteps {
		s.check(f.draft, errs)
	}
	return errs
}

// ValidateStep checks the required fields of one wizard step (1-based).
func (f *HackathonForm) ValidateStep(step int) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	if step >= 1 && step <= len(hackathonSteps) {
		hackathonSteps[step-1].check(f.draft, errs)
	}
	return errs
}

// Payload assembles the create request: surrounding whitespace is trimmed, blank
// list entries are dropped, and the location fields that do not apply to the
// event type are cleared.
func (f *HackathonForm) Payload() *domain.CreateHackathonRequest {
	d := f.draft
	req := &domain.CreateHackathonRequest{
		Title:                strings.TrimSpace(d.Title),
		Description:          strings.TrimSpace(d.Description),
		StartDate:            d.StartDate,
		EndDate:              d.EndDate,
		MaxParticipants:      d.MaxParticipants,
		PrizePool:            strings.TrimSpace(d.PrizePool),
		RegistrationDeadline: d.RegistrationDeadline,
		EventType:            d.EventType,
		Venue:                strings.TrimSpace(d.Venue),
		Platform:             strings.TrimSpace(d.Platform),
		PlatformLink:         strings.TrimSpace(d.PlatformLink),
		Eligibility: domain.Eligibility{
			AgeMin:       d.Eligibility.AgeMin,
			AgeMax:       d.Eligibility.AgeMax,
			SkillLevel:   d.Eligibility.SkillLevel,
			Location:     strings.TrimSpace(d.Eligibility.Location),
			Requirements: strings.TrimSpace(d.Eligibility.Requirements),
		},
		Theme:     strings.TrimSpace(d.Theme),
		Tracks:    compact(d.Tracks, strings.TrimSpace, isEmpty),
		Rules:     compact(d.Rules, strings.TrimSpace, isEmpty),
		Schedule:  compact(d.Schedule, trimSchedule, func(e domain.ScheduleEntry) bool { return e == domain.ScheduleEntry{} }),
		Sponsors:  compact(d.Sponsors, strings.TrimSpace, isEmpty),
		Mentors:   compact(d.Mentors, trimMentor, func(m domain.Mentor) bool { return m == domain.Mentor{} }),
		Judges:    compact(d.Judges, trimJudge, func(j domain.Judge) bool { return j == domain.Judge{} }),
		Resources: compact(d.Resources, trimResource, func(r domain.Resource) bool { return r == domain.Resource{} }),
		Contact: domain.Contact{
			Email:   strings.TrimSpace(d.Contact.Email),
			Phone:   strings.TrimSpace(d.Contact.Phone),
			Discord: strings.TrimSpace(d.Contact.Discord),
			Website: strings.TrimSpace(d.Contact.Website),
		},
	}
	if req.EventType == domain.EventTypeVirtual {
		req.Venue = ""
	} else {
		req.Platform, req.PlatformLink = "", ""
	}
	return req
}

func isEmpty(s string) bool { return s == "" }

func trimSchedule(e domain.ScheduleEntry) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		Date:        strings.TrimSpace(e.Date),
		Time:        strings.TrimSpace(e.Time),
		Title:       strings.TrimSpace(e.Title),
		Description: strings.TrimSpace(e.Description),
	}
}

func trimMentor(m domain.Mentor) domain.Mentor {
	return domain.Mentor{
		Name:      strings.TrimSpace(m.Name),
		Expertise: strings.TrimSpace(m.Expertise),
		Bio:       strings.TrimSpace(m.Bio),
	}
}

func trimJudge(j domain.Judge) domain.Judge {
	return domain.Judge{
		Name:      strings.TrimSpace(j.Name),
		Expertise: strings.TrimSpace(j.Expertise),
		Bio:       strings.TrimSpace(j.Bio),
		Email:     strings.TrimSpace(j.Email),
		Invited:   j.Invited,
	}
}

func trimResource(r domain.Resource) domain.Resource {
	return domain.Resource{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Link:        strings.TrimSpace(r.Link),
	}
}
