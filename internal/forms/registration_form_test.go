package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

func validRegistration(t *testing.T) *RegistrationForm {
	t.Helper()
	f := NewRegistrationForm("7")
	for path, v := range map[string]string{
		"fullName":  "Priya Sharma",
		"email":     "priya@example.com",
		"phone":     "+91 98765 43210",
		"education": "B.Tech, IIT Delhi",
		"heardFrom": "friend",
		"skills":    "Go, React,  Figma",
	} {
		require.NoError(t, f.SetField(path, v), path)
	}
	return f
}

func TestRegistrationForm_Validate_Required(t *testing.T) {
	errs := NewRegistrationForm("7").Validate()
	assert.Equal(t, []string{"education", "email", "fullName", "heardFrom", "phone", "skills"}, errs.Keys())
	assert.Equal(t, "This field is required", errs["heardFrom"])
}

func TestRegistrationForm_Validate_Email(t *testing.T) {
	f := validRegistration(t)
	require.NoError(t, f.SetField("email", "priya@example"))
	assert.Equal(t, "Please enter a valid email address", f.Validate()["email"])
}

func TestRegistrationForm_Validate_Team(t *testing.T) {
	f := validRegistration(t)
	require.NoError(t, f.SetField("hasTeam", "true"))

	errs := f.Validate()
	assert.Equal(t, "At least one team member is required", errs["teamMembers"])
	assert.Equal(t, "Team name is required", errs["teamName"])

	require.NoError(t, f.SetField("teamName", "Null Pointers"))
	require.NoError(t, f.AppendItem(ListTeamMembers))
	require.NoError(t, f.ReplaceItem(ListTeamMembers, 0, domain.TeamMember{Name: "Ravi", Email: "ravi@", Role: ""}))

	errs = f.Validate()
	assert.Equal(t, []string{"memberEmail-0", "memberRole-0"}, errs.Keys())

	require.NoError(t, f.ReplaceItem(ListTeamMembers, 0, domain.TeamMember{Name: "Ravi", Email: "ravi@example.com", Role: domain.RoleBackend}))
	assert.Empty(t, f.Validate())
}

func TestRegistrationForm_Validate_LookingForTeam(t *testing.T) {
	f := validRegistration(t)
	require.NoError(t, f.SetField("lookingForTeam", "yes"))
	assert.Equal(t, []string{"teamPreference"}, f.Validate().Keys())

	require.NoError(t, f.SetField("teamPreference", "ml"))
	assert.Empty(t, f.Validate())
}

func TestRegistrationForm_SetField_Invalid(t *testing.T) {
	f := NewRegistrationForm("7")
	assert.ErrorIs(t, f.SetField("experience", "5 years"), domain.ErrUnknownField)
	assert.ErrorIs(t, f.SetField("heardFrom", "billboard"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.SetField("teamPreference", "manager"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.SetField("hasTeam", "perhaps"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.AppendItem(ListJudges), domain.ErrUnknownField)
}

func TestRegistrationForm_AppendItem_DefaultsRole(t *testing.T) {
	f := NewRegistrationForm("7")
	require.NoError(t, f.AppendItem(ListTeamMembers))
	assert.Equal(t, []domain.TeamMember{{Role: domain.RoleFrontend}}, f.Draft().TeamMembers)
}

func TestRegistrationForm_Payload(t *testing.T) {
	f := validRegistration(t)
	require.NoError(t, f.AppendItem(ListTeamMembers))

	req := f.Payload()
	assert.Equal(t, domain.EntityID("7"), req.HackathonID)
	assert.Equal(t, []string{"Go", "React", "Figma"}, req.Skills)
	assert.Nil(t, req.TeamMembers, "members are only sent for teams")

	require.NoError(t, f.SetField("hasTeam", "true"))
	assert.Len(t, f.Payload().TeamMembers, 1)
}
