package services

import (
	"context"
	"log/slog"
	"strings"

	"hackverse/internal/domain"
	"hackverse/internal/forms"
)

// SubmissionService hands in a participant's project.
type SubmissionService struct {
	api    domain.HackathonAPI
	auth   *AuthService
	logger *slog.Logger
}

// NewSubmissionService returns a SubmissionService.
func NewSubmissionService(api domain.HackathonAPI, auth *AuthService, logger *slog.Logger) *SubmissionService {
	return &SubmissionService{api: api, auth: auth, logger: logger}
}

// ValidateSubmission checks a project hand-in: a description and a repository
// link are required and every link must be an http(s) URL.
func ValidateSubmission(sub *domain.ProjectSubmission) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	if strings.TrimSpace(sub.Description) == "" {
		errs.Add("description", "Project description is required")
	}
	repo := strings.TrimSpace(sub.GithubRepo)
	switch {
	case repo == "":
		errs.Add("githubRepo", "GitHub repository is required")
	case !forms.ValidURL(repo):
		errs.Add("githubRepo", "GitHub repository must be a valid URL")
	}
	if demo := strings.TrimSpace(sub.DemoLink); demo != "" && !forms.ValidURL(demo) {
		errs.Add("demoLink", "Demo link must be a valid URL")
	}
	if p := strings.TrimSpace(sub.Presentation); p != "" && !forms.ValidURL(p) {
		errs.Add("presentation", "Presentation must be a valid URL")
	}
	return errs
}

// Submit validates and sends the project for a hackathon.
func (s *SubmissionService) Submit(ctx context.Context, hackathonID domain.EntityID, sub *domain.ProjectSubmission) (Outcome, error) {
	if errs := ValidateSubmission(sub); len(errs) > 0 {
		return Outcome{Message: msgFixFields, Fields: errs}, errs
	}
	attempted := "submit " + hackathonID.String()
	sess, err := s.auth.Require(ctx, attempted)
	if err != nil {
		return Outcome{Message: "Please login to submit your project", Next: "login"}, err
	}

	clean := &domain.ProjectSubmission{
		Description:  strings.TrimSpace(sub.Description),
		GithubRepo:   strings.TrimSpace(sub.GithubRepo),
		DemoLink:     strings.TrimSpace(sub.DemoLink),
		Presentation: strings.TrimSpace(sub.Presentation),
	}
	if err := s.api.SubmitProject(ctx, sess, hackathonID, clean); err != nil {
		s.auth.ExpireOnRejection(ctx, err, attempted)
		s.logger.Warn("project submission failed", "hackathon_id", hackathonID, "error", err)
		return genericFailure(err, msgSubmissionFailed), err
	}
	s.logger.Info("project submitted", "hackathon_id", hackathonID)
	return Outcome{Message: "Project submitted successfully!"}, nil
}
