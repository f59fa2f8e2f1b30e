package services

import (
	"context"
	"log/slog"

	"hackverse/internal/domain"
	"hackverse/internal/judging"
)

// JudgeService backs the judge dashboard.
type JudgeService struct {
	api    domain.HackathonAPI
	auth   *AuthService
	logger *slog.Logger
}

// NewJudgeService returns a JudgeService.
func NewJudgeService(api domain.HackathonAPI, auth *AuthService, logger *slog.Logger) *JudgeService {
	return &JudgeService{api: api, auth: auth, logger: logger}
}

// Scorecard loads the projects of a hackathon into a new scorecard.
func (s *JudgeService) Scorecard(ctx context.Context, hackathonID domain.EntityID) (*judging.Scorecard, error) {
	attempted := "judge " + hackathonID.String()
	sess, err := s.auth.Require(ctx, attempted)
	if err != nil {
		return nil, err
	}
	projects, err := s.api.ListProjects(ctx, sess, hackathonID)
	if err != nil {
		s.auth.ExpireOnRejection(ctx, err, attempted)
		return nil, err
	}
	return judging.NewScorecard(projects), nil
}

// Submit sends the scores and feedback recorded for one project.
func (s *JudgeService) Submit(ctx context.Context, card *judging.Scorecard, projectID domain.EntityID) (Outcome, error) {
	sub, err := card.Submission(projectID)
	if err != nil {
		return Outcome{Message: "No such project"}, err
	}
	attempted := "score " + projectID.String()
	sess, err := s.auth.Require(ctx, attempted)
	if err != nil {
		return Outcome{Message: "Please login to submit scores", Next: "login"}, err
	}
	if err := s.api.SubmitScore(ctx, sess, projectID, sub); err != nil {
		s.auth.ExpireOnRejection(ctx, err, attempted)
		s.logger.Warn("score submission failed", "project_id", projectID, "error", err)
		return genericFailure(err, msgScoreFailed), err
	}
	s.logger.Info("scores submitted", "project_id", projectID, "total", sub.Total)
	return Outcome{Message: "Scores submitted"}, nil
}
