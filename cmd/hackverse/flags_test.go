package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

func TestAssignments(t *testing.T) {
	var a assignments
	require.NoError(t, a.Set("title=Build for Bharat"))
	require.NoError(t, a.Set(" contact.website = https://x.dev/?a=b"))
	assert.Equal(t, assignments{
		{Path: "title", Value: "Build for Bharat"},
		{Path: "contact.website", Value: " https://x.dev/?a=b"},
	}, a)

	assert.Error(t, a.Set("title"))
	assert.Error(t, a.Set("=value"))
}

func TestIndexes(t *testing.T) {
	var x indexes
	require.NoError(t, x.Set("0"))
	require.NoError(t, x.Set(" 2 "))
	assert.Equal(t, indexes{0, 2}, x)
	assert.Equal(t, "0,2", x.String())
	assert.Error(t, x.Set("-1"))
	assert.Error(t, x.Set("one"))
}

func TestItemFlags_KeepCommandLineOrder(t *testing.T) {
	var edits itemEdits
	fs := newFlagSet("host", nil)
	fs.Var(itemFlag{edits: &edits, op: opAdd}, "add", "")
	fs.Var(itemFlag{edits: &edits, op: opRemove}, "remove", "")
	fs.Var(itemFlag{edits: &edits, op: opSetItem}, "set-item", "")

	_, err := parseArgs(fs, []string{
		"-remove", "tracks=0",
		"-add", "tracks=AI",
		"-set-item", "mentors.0.name=Ravi",
		"-set-item", "rules.1=Be kind",
	})
	require.NoError(t, err)
	assert.Equal(t, itemEdits{
		{Op: opRemove, List: "tracks", Index: 0, Value: "0", source: "tracks=0"},
		{Op: opAdd, List: "tracks", Value: "AI", source: "tracks=AI"},
		{Op: opSetItem, List: "mentors", Index: 0, Attr: "name", Value: "Ravi", source: "mentors.0.name=Ravi"},
		{Op: opSetItem, List: "rules", Index: 1, Value: "Be kind", source: "rules.1=Be kind"},
	}, edits)
	assert.Equal(t, "tracks=AI", itemFlag{edits: &edits, op: opAdd}.String())

	bad := itemFlag{edits: &edits, op: opSetItem}
	assert.Error(t, bad.Set("mentors=Ravi"))
	assert.Error(t, bad.Set("mentors.first.name=Ravi"))
	assert.Error(t, itemFlag{edits: &edits, op: opRemove}.Set("rules=last"))
	assert.Len(t, edits, 4)
}

func TestMembers(t *testing.T) {
	var m members
	require.NoError(t, m.Set("Ravi, ravi@example.com, Backend"))
	require.NoError(t, m.Set("Asha,asha@example.com"))
	assert.Equal(t, members{
		{Name: "Ravi", Email: "ravi@example.com", Role: domain.RoleBackend},
		{Name: "Asha", Email: "asha@example.com", Role: domain.RoleFrontend},
	}, m)

	assert.ErrorIs(t, m.Set("Ravi,ravi@example.com,chef"), domain.ErrInvalidInput)
	assert.Error(t, m.Set("Ravi"))
}

func TestScores(t *testing.T) {
	s := scores{}
	require.NoError(t, s.Set("innovation=20"))
	require.NoError(t, s.Set("impact = 18"))
	assert.Equal(t, scores{"innovation": 20, "impact": 18}, s)
	assert.Error(t, s.Set("impact"))
	assert.Error(t, s.Set("impact=high"))
}

func TestParseArgs_Interspersed(t *testing.T) {
	fs := newFlagSet("register", nil)
	var sets assignments
	fs.Var(&sets, "set", "")
	save := fs.Bool("save", false, "")

	positional, err := parseArgs(fs, []string{"-set", "fullName=Priya", "7", "--save", "-set", "phone=1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, positional)
	assert.True(t, *save)
	assert.Len(t, sets, 2)
}

func TestOneID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    domain.EntityID
		wantErr bool
	}{
		{"single", []string{"42"}, "42", false},
		{"none", nil, "", true},
		{"two", []string{"1", "2"}, "", true},
		{"blank", []string{" "}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oneID(newFlagSet("show", nil), tt.args, "hackathon id")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
