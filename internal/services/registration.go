package services

import (
	"context"
	"log/slog"

	"hackverse/internal/domain"
	"hackverse/internal/forms"
)

// RegistrationService registers participants and teams for a hackathon.
type RegistrationService struct {
	api    domain.HackathonAPI
	auth   *AuthService
	logger *slog.Logger
}

// NewRegistrationService returns a RegistrationService.
func NewRegistrationService(api domain.HackathonAPI, auth *AuthService, logger *slog.Logger) *RegistrationService {
	return &RegistrationService{api: api, auth: auth, logger: logger}
}

// Register validates the form locally and sends it. Invalid forms never reach the API.
func (s *RegistrationService) Register(ctx context.Context, form *forms.RegistrationForm) (Outcome, error) {
	attempted := "register " + form.HackathonID().String()
	draft := form.Draft()

	if errs := form.Validate(); len(errs) > 0 {
		return registrationFailure(errs, draft.HasTeam), errs
	}
	sess, err := s.auth.Require(ctx, attempted)
	if err != nil {
		return Outcome{Message: "Please login to register", Next: "login"}, err
	}

	err = s.api.Register(ctx, sess, form.HackathonID(), form.Payload())
	if err != nil {
		s.auth.ExpireOnRejection(ctx, err, attempted)
		s.logger.Warn("registration failed",
			"hackathon_id", form.HackathonID(),
			"has_team", draft.HasTeam,
			"team_size", len(draft.TeamMembers),
			"error", err,
		)
		return registrationFailure(err, draft.HasTeam), err
	}

	s.logger.Info("registered", "hackathon_id", form.HackathonID(), "has_team", draft.HasTeam)
	if draft.HasTeam {
		return Outcome{Message: "Team registered successfully!", Next: "participant-dashboard"}, nil
	}
	return Outcome{Message: "Registration successful!", Next: "participant-dashboard"}, nil
}
