package domain

import (
	"context"
	"fmt"
	"net/http"
)

// HackathonAPI is the remote platform as seen by the services.
type HackathonAPI interface {
	Home(ctx context.Context, s *Session) (Home, error)
	ListHackathons(ctx context.Context, s *Session) ([]HackathonSummary, error)
	GetHackathon(ctx context.Context, s *Session, id EntityID) (*HackathonDetail, error)
	CreateHackathon(ctx context.Context, s *Session, req *CreateHackathonRequest) (*HackathonDetail, error)
	Register(ctx context.Context, s *Session, hackathonID EntityID, req *RegistrationRequest) error
	ListProjects(ctx context.Context, s *Session, hackathonID EntityID) ([]Project, error)
	SubmitScore(ctx context.Context, s *Session, projectID EntityID, sub *ScoreSubmission) error
	SubmitProject(ctx context.Context, s *Session, hackathonID EntityID, sub *ProjectSubmission) error
}

// APIError is a non-2xx answer of the remote API. Message is the payload's
// "message" or, failing that, its "error"; Detail is always the raw "error".
type APIError struct {
	Status   int
	Message  string
	Detail   string
	Messages []string
	Fields   map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// Is maps the HTTP status onto the domain sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case ErrServer:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}
