package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hackverse/internal/domain"
	"hackverse/internal/forms"
)

const opHost = "host"

// HostService creates hackathons and invites their judges.
type HostService struct {
	api    domain.HackathonAPI
	auth   *AuthService
	emails domain.EmailService
	logger *slog.Logger
}

// NewHostService returns a HostService.
func NewHostService(api domain.HackathonAPI, auth *AuthService, emails domain.EmailService, logger *slog.Logger) *HostService {
	return &HostService{api: api, auth: auth, emails: emails, logger: logger}
}

// Create submits the wizard's hackathon. The wizard must be on its final step and
// every step must validate; nothing is sent otherwise.
func (s *HostService) Create(ctx context.Context, w *forms.Wizard) (*domain.HackathonDetail, Outcome, error) {
	sess, err := s.auth.Require(ctx, opHost)
	if err != nil {
		return nil, Outcome{Message: "Please login to host a hackathon", Next: "login"}, err
	}

	var created *domain.HackathonDetail
	req, err := w.Submit(ctx, func(ctx context.Context, req *domain.CreateHackathonRequest) error {
		var err error
		created, err = s.api.CreateHackathon(ctx, sess, req)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFinalStep) {
			return nil, Outcome{Message: fmt.Sprintf("Complete all %d steps before submitting", w.Total())}, err
		}
		s.auth.ExpireOnRejection(ctx, err, opHost)
		s.logger.Warn("create hackathon failed", "error", err)
		return nil, hostFailure(err), err
	}

	s.logger.Info("hackathon created", "id", created.ID, "title", req.Title)
	return created, Outcome{Message: "Hackathon created successfully!"}, nil
}

// InviteJudge emails judge i of the form and marks them invited. The judge
// needs a valid email and must not have been invited already.
func (s *HostService) InviteJudge(ctx context.Context, form *forms.HackathonForm, i int) (Outcome, error) {
	draft := form.Draft()
	if i < 0 || i >= len(draft.Judges) {
		return Outcome{Message: "No such judge"}, fmt.Errorf("judge %d: %w", i, domain.ErrNotFound)
	}
	judge := draft.Judges[i]
	email := strings.TrimSpace(judge.Email)
	key := fmt.Sprintf("judgeEmail-%d", i)
	switch {
	case email == "":
		errs := domain.ValidationErrors{key: "Please enter judge's email"}
		return Outcome{Message: errs[key], Fields: errs}, errs
	case !forms.ValidEmail(email):
		errs := domain.ValidationErrors{key: "Please enter a valid email address"}
		return Outcome{Message: errs[key], Fields: errs}, errs
	case judge.Invited:
		return Outcome{Message: "Invitation already sent to " + email}, fmt.Errorf("%s: %w", email, domain.ErrAlreadyInvited)
	}

	data := &domain.JudgeInviteEmailData{
		Email:          email,
		JudgeName:      strings.TrimSpace(judge.Name),
		HackathonTitle: strings.TrimSpace(draft.Title),
		Expertise:      strings.TrimSpace(judge.Expertise),
		Organizer:      strings.TrimSpace(draft.Contact.Email),
	}
	if !draft.StartDate.IsZero() {
		data.StartDate = draft.StartDate.String()
	}
	if !draft.EndDate.IsZero() {
		data.EndDate = draft.EndDate.String()
	}
	if err := s.emails.SendJudgeInvite(ctx, data); err != nil {
		s.logger.Warn("judge invite failed", "to", email, "error", err)
		return Outcome{Message: "Failed to send invitation. Please try again."}, err
	}

	judge.Invited = true
	if err := form.ReplaceItem(forms.ListJudges, i, judge); err != nil {
		return Outcome{}, err
	}
	return Outcome{Message: "Invitation sent to " + email}, nil
}
