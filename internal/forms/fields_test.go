package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

func TestParseHackathonField_RoundTrip(t *testing.T) {
	for field, path := range hackathonFieldPaths {
		got, err := ParseHackathonField(path)
		require.NoError(t, err)
		assert.Equal(t, field, got)
		assert.Equal(t, path, got.String())
	}
	_, err := ParseHackathonField("contact")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestParseListField(t *testing.T) {
	f, err := ParseListField("judges")
	require.NoError(t, err)
	assert.Equal(t, ListJudges, f)

	_, err = ParseListField("speakers")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Equal(t, "ListField(42)", ListField(42).String())
}

func TestValidURL(t *testing.T) {
	assert.True(t, ValidURL("https://github.com/team/repo"))
	assert.True(t, ValidURL("http://localhost:3000/demo"))
	assert.False(t, ValidURL("github.com/team/repo"))
	assert.False(t, ValidURL("ftp://files.example.com"))
	assert.False(t, ValidURL(""))
}
