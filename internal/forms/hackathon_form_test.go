package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

// completeForm returns a form that passes every step.
func completeForm(t *testing.T) *HackathonForm {
	t.Helper()
	f := NewHackathonForm()
	set := map[string]string{
		"title":                  "  Build for Bharat ",
		"description":            "48 hours of building",
		"startDate":              "2024-04-15T09:00",
		"endDate":                "2024-04-17T18:00",
		"maxParticipants":        "200",
		"prizePool":              "₹5,00,000",
		"registrationDeadline":   "2024-04-10T23:59",
		"eventType":              "virtual",
		"platform":               "Discord",
		"platformLink":           "https://discord.gg/hack",
		"eligibility.ageMin":     "18",
		"eligibility.ageMax":     "35",
		"eligibility.skillLevel": "all",
		"theme":                  "Open Innovation",
		"contact.email":          "team@hackverse.dev",
	}
	for path, v := range set {
		require.NoError(t, f.SetField(path, v), path)
	}
	return f
}

func TestNewHackathonForm_StartsWithOneBlankRowPerList(t *testing.T) {
	d := NewHackathonForm().Draft()
	assert.Equal(t, []string{""}, d.Tracks)
	assert.Equal(t, []string{""}, d.Rules)
	assert.Len(t, d.Schedule, 1)
	assert.Equal(t, []string{""}, d.Sponsors)
	assert.Len(t, d.Mentors, 1)
	assert.Len(t, d.Judges, 1)
	assert.Len(t, d.Resources, 1)
	assert.Equal(t, domain.EventTypeVirtual, d.EventType)
}

func TestHackathonForm_SetField(t *testing.T) {
	f := NewHackathonForm()

	require.NoError(t, f.SetField("eligibility.ageMin", "18"))
	require.NoError(t, f.SetField("eligibility.location", "India"))
	require.NoError(t, f.SetField("eligibility.ageMax", "30"))

	d := f.Draft()
	assert.Equal(t, 18, d.Eligibility.AgeMin)
	assert.Equal(t, 30, d.Eligibility.AgeMax)
	assert.Equal(t, "India", d.Eligibility.Location, "sibling nested field preserved")

	require.NoError(t, f.SetField("startDate", "2024-04-15T09:30"))
	assert.Equal(t, time.Date(2024, 4, 15, 9, 30, 0, 0, time.UTC), f.Draft().StartDate.Time)
}

func TestHackathonForm_SetField_FailsClosed(t *testing.T) {
	f := NewHackathonForm()
	before := f.Draft()

	err := f.SetField("eligibility.shoeSize", "42")
	assert.ErrorIs(t, err, domain.ErrUnknownField)

	err = f.SetField("maxParticipants", "lots")
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "maxParticipants", fe.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Error(t, f.SetField("eventType", "hybrid"))
	assert.Error(t, f.SetField("eligibility.skillLevel", "guru"))
	assert.Error(t, f.SetField("endDate", "tomorrow"))

	assert.Equal(t, before, f.Draft())
}

func TestHackathonForm_ListItems(t *testing.T) {
	f := NewHackathonForm()

	require.NoError(t, f.AppendItem(ListTracks))
	require.NoError(t, f.ReplaceItem(ListTracks, 0, "AI"))
	require.NoError(t, f.ReplaceItem(ListTracks, 1, "Web3"))
	assert.Equal(t, []string{"AI", "Web3"}, f.Draft().Tracks)

	require.NoError(t, f.RemoveItem(ListTracks, 0))
	require.NoError(t, f.RemoveItem(ListTracks, 7))
	assert.Equal(t, []string{"Web3"}, f.Draft().Tracks)

	judge := domain.Judge{Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, f.ReplaceItem(ListJudges, 0, judge))
	assert.Equal(t, judge, f.Draft().Judges[0])

	err := f.ReplaceItem(ListJudges, 0, "Asha")
	assert.ErrorIs(t, err, domain.ErrItemType)
	err = f.ReplaceItem(ListTracks, 0, domain.Mentor{})
	assert.ErrorIs(t, err, domain.ErrItemType)

	assert.ErrorIs(t, f.AppendItem(ListTeamMembers), domain.ErrUnknownField)

	n, err := f.Len(ListSchedule)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHackathonForm_AddItem(t *testing.T) {
	f := NewHackathonForm()

	i, err := f.AddItem(ListTracks, "AI")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, []string{"", "AI"}, f.Draft().Tracks)

	i, err = f.AddItem(ListSchedule, "Kickoff")
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduleEntry{Title: "Kickoff"}, f.Draft().Schedule[i])

	i, err = f.AddItem(ListMentors, "Ravi")
	require.NoError(t, err)
	assert.Equal(t, domain.Mentor{Name: "Ravi"}, f.Draft().Mentors[i])

	_, err = f.AddItem(ListTeamMembers, "Priya")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestHackathonForm_SetItemField(t *testing.T) {
	tests := []struct {
		name    string
		field   ListField
		index   int
		attr    string
		value   string
		check   func(t *testing.T, d domain.HackathonDraft)
		wantErr error
	}{
		{
			name: "string list", field: ListRules, attr: "", value: "Be kind",
			check: func(t *testing.T, d domain.HackathonDraft) { assert.Equal(t, []string{"Be kind"}, d.Rules) },
		},
		{
			name: "schedule event", field: ListSchedule, attr: "event", value: "Kickoff",
			check: func(t *testing.T, d domain.HackathonDraft) { assert.Equal(t, "Kickoff", d.Schedule[0].Title) },
		},
		{
			name: "mentor expertise", field: ListMentors, attr: "expertise", value: "ML",
			check: func(t *testing.T, d domain.HackathonDraft) { assert.Equal(t, "ML", d.Mentors[0].Expertise) },
		},
		{
			name: "judge email", field: ListJudges, attr: "email", value: "asha@example.com",
			check: func(t *testing.T, d domain.HackathonDraft) { assert.Equal(t, "asha@example.com", d.Judges[0].Email) },
		},
		{
			name: "resource link", field: ListResources, attr: "link", value: "https://aws.amazon.com",
			check: func(t *testing.T, d domain.HackathonDraft) { assert.Equal(t, "https://aws.amazon.com", d.Resources[0].Link) },
		},
		{name: "unknown attribute", field: ListMentors, attr: "salary", value: "1", wantErr: domain.ErrUnknownField},
		{name: "attribute on string list", field: ListTracks, attr: "name", value: "AI", wantErr: domain.ErrUnknownField},
		{name: "index out of range", field: ListJudges, index: 3, attr: "name", value: "Asha", wantErr: domain.ErrInvalidInput},
		{name: "team members", field: ListTeamMembers, attr: "name", value: "Priya", wantErr: domain.ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewHackathonForm()
			before := f.Draft()
			err := f.SetItemField(tt.field, tt.index, tt.attr, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, f.Draft())
				return
			}
			require.NoError(t, err)
			tt.check(t, f.Draft())
		})
	}
}

func TestHackathonForm_SetItemField_ChangedEmailNeedsNewInvite(t *testing.T) {
	f := NewHackathonForm()
	require.NoError(t, f.ReplaceItem(ListJudges, 0, domain.Judge{Name: "Asha", Email: "asha@example.com", Invited: true}))

	require.NoError(t, f.SetItemField(ListJudges, 0, "bio", "Staff engineer"))
	assert.True(t, f.Draft().Judges[0].Invited)

	require.NoError(t, f.SetItemField(ListJudges, 0, "email", "asha@hackverse.dev"))
	assert.False(t, f.Draft().Judges[0].Invited)
}

func TestHackathonForm_ValidateStep(t *testing.T) {
	f := NewHackathonForm()

	errs := f.ValidateStep(1)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "startDate")
	assert.Contains(t, errs, "maxParticipants")

	errs = f.ValidateStep(2)
	assert.Equal(t, []string{"platform", "platformLink"}, errs.Keys())

	require.NoError(t, f.SetField("eventType", "in-person"))
	assert.Equal(t, []string{"venue"}, f.ValidateStep(2).Keys())

	assert.Empty(t, f.ValidateStep(4))
	assert.Empty(t, f.ValidateStep(99))
}

func TestHackathonForm_ValidateDates(t *testing.T) {
	f := completeForm(t)
	require.NoError(t, f.SetField("endDate", "2024-04-14T09:00"))
	require.NoError(t, f.SetField("registrationDeadline", "2024-04-20"))

	errs := f.ValidateStep(1)
	assert.Equal(t, "End date must not be before the start date", errs["endDate"])
	assert.Equal(t, "Registration deadline must not be after the end date", errs["registrationDeadline"])
}

func TestHackathonForm_Validate_Complete(t *testing.T) {
	assert.Empty(t, completeForm(t).Validate())
}

func TestHackathonForm_Payload(t *testing.T) {
	f := completeForm(t)
	require.NoError(t, f.SetField("venue", "Bangalore"))
	require.NoError(t, f.AppendItem(ListTracks))
	require.NoError(t, f.AppendItem(ListTracks))
	require.NoError(t, f.ReplaceItem(ListTracks, 0, "  AI "))
	require.NoError(t, f.ReplaceItem(ListTracks, 1, "   "))
	require.NoError(t, f.ReplaceItem(ListTracks, 2, "Web3"))
	require.NoError(t, f.ReplaceItem(ListMentors, 0, domain.Mentor{Name: " ", Bio: "  "}))
	require.NoError(t, f.AppendItem(ListSchedule))
	require.NoError(t, f.ReplaceItem(ListSchedule, 1, domain.ScheduleEntry{Date: "2024-04-15", Title: "Kickoff "}))

	req := f.Payload()
	assert.Equal(t, "Build for Bharat", req.Title)
	assert.Equal(t, []string{"AI", "Web3"}, req.Tracks)
	assert.Equal(t, []string{}, req.Rules)
	assert.Equal(t, []string{}, req.Sponsors)
	assert.Empty(t, req.Mentors)
	assert.NotNil(t, req.Mentors)
	assert.Equal(t, []domain.ScheduleEntry{{Date: "2024-04-15", Title: "Kickoff"}}, req.Schedule)
	assert.Empty(t, req.Venue, "venue does not apply to virtual events")
	assert.Equal(t, "Discord", req.Platform)
}
