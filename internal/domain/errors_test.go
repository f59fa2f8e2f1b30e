package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	v := ValidationErrors{}
	require.NoError(t, v.OrNil())

	v.Add("email", "Email is required")
	v.Add("email", "Invalid email format")
	v.Add("fullName", "Full name is required")

	assert.Equal(t, "Email is required", v["email"])
	assert.Equal(t, []string{"email", "fullName"}, v.Keys())

	err := fmt.Errorf("register: %w", v.OrNil())
	assert.ErrorIs(t, err, ErrValidation)
	var got ValidationErrors
	require.True(t, errors.As(err, &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "validation failed: email: Email is required; fullName: Full name is required", v.Error())
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("call: %w", &APIError{Status: tt.status})
			assert.ErrorIs(t, err, tt.want)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
	assert.NotErrorIs(t, &APIError{Status: http.StatusConflict}, ErrValidation)
}

func TestRegistrationDraft_SkillList(t *testing.T) {
	d := &RegistrationDraft{Skills: " Go, React ,, Figma "}
	assert.Equal(t, []string{"Go", "React", "Figma"}, d.SkillList())
}
