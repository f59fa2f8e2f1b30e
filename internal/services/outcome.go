package services

import (
	"errors"
	"slices"
	"strings"

	"hackverse/internal/domain"
)

// Outcome is what an operation reports back to the user.
type Outcome struct {
	Message string
	Fields  domain.ValidationErrors
	// Next names a follow-up action such as "login".
	Next string
}

const (
	msgSessionExpired    = "Session expired. Please login again"
	msgFixFields         = "Please fix the highlighted fields"
	msgDuplicateTitle    = "A hackathon with this title already exists"
	msgTeamNameTaken     = "Team name already exists"
	msgCreateFailed      = "Failed to create hackathon. Please try again."
	msgRegisterFailed    = "Registration failed"
	msgSubmissionFailed  = "Project submission failed. Please try again."
	msgScoreFailed       = "Failed to submit scores. Please try again."
	msgServerUnreachable = "Could not reach the server. Please try again."
	msgHackathonNotFound = "Hackathon not found"
	msgLoadFailed        = "Failed to load hackathons. Please try again."
)

// failure classifies the errors every operation shares: local validation,
// authentication and transport problems. ok is false for anything else.
func failure(err error) (Outcome, bool) {
	var local domain.ValidationErrors
	switch {
	case errors.As(err, &local):
		return Outcome{Message: msgFixFields, Fields: local}, true
	case errors.Is(err, domain.ErrUnauthorized):
		return Outcome{Message: msgSessionExpired, Next: "login"}, true
	case errors.Is(err, domain.ErrTransport):
		return Outcome{Message: msgServerUnreachable}, true
	}
	return Outcome{}, false
}

func hostFailure(err error) Outcome {
	if out, ok := failure(err); ok {
		return out
	}
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		return Outcome{Message: msgCreateFailed}
	}
	if apiErr.Message == msgDuplicateTitle || apiErr.Detail == msgDuplicateTitle {
		return Outcome{Message: msgDuplicateTitle + ". Please choose a different title.", Fields: domain.ValidationErrors{"title": msgDuplicateTitle}}
	}
	if len(apiErr.Messages) > 0 || len(apiErr.Fields) > 0 {
		lines := slices.Clone(apiErr.Messages)
		fields := domain.ValidationErrors{}
		for path, msg := range apiErr.Fields {
			fields.Add(path, msg)
		}
		for _, k := range fields.Keys() {
			lines = append(lines, fields[k])
		}
		return Outcome{Message: "Validation errors:\n" + strings.Join(lines, "\n"), Fields: fields}
	}
	if apiErr.Message != "" {
		return Outcome{Message: apiErr.Message}
	}
	return Outcome{Message: msgCreateFailed}
}

func registrationFailure(err error, hasTeam bool) Outcome {
	if out, ok := failure(err); ok {
		return out
	}
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		return Outcome{Message: msgRegisterFailed}
	}
	switch {
	case apiErr.Status == 400 && (apiErr.Detail == msgTeamNameTaken || apiErr.Message == msgTeamNameTaken):
		return Outcome{Message: msgTeamNameTaken, Fields: domain.ValidationErrors{"teamName": "This team name is already taken"}}
	case errors.Is(apiErr, domain.ErrServer):
		if hasTeam {
			return Outcome{Message: "Server error occurred. Please check your team details and try again."}
		}
		return Outcome{Message: "Server error occurred. Please check your registration details and try again."}
	}
	out := Outcome{Message: apiErr.Message}
	if out.Message == "" {
		out.Message = msgRegisterFailed
	}
	if apiErr.Status == 400 && len(apiErr.Fields) > 0 {
		out.Fields = domain.ValidationErrors{}
		for path, msg := range apiErr.Fields {
			out.Fields.Add(path, msg)
		}
	}
	return out
}

func genericFailure(err error, fallback string) Outcome {
	if out, ok := failure(err); ok {
		return out
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return Outcome{Message: apiErr.Message}
	}
	return Outcome{Message: fallback}
}
