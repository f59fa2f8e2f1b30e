package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hackverse/internal/domain"
	"hackverse/internal/listing"
)

// BrowseService lists and shows hackathons. It works with or without a session.
type BrowseService struct {
	api    domain.HackathonAPI
	auth   *AuthService
	logger *slog.Logger
	now    func() time.Time
}

// NewBrowseService returns a BrowseService.
func NewBrowseService(api domain.HackathonAPI, auth *AuthService, logger *slog.Logger) *BrowseService {
	return &BrowseService{api: api, auth: auth, logger: logger, now: time.Now}
}

// List fetches all hackathons and runs them through the filter-sort pipeline.
func (s *BrowseService) List(ctx context.Context, c listing.Criteria) ([]domain.HackathonSummary, Outcome, error) {
	all, err := s.api.ListHackathons(ctx, s.session(ctx))
	if err != nil {
		return nil, s.rejected(ctx, err, "list"), err
	}
	out := listing.Apply(all, c, s.now())
	s.logger.Debug("hackathons listed", "total", len(all), "shown", len(out))
	return out, Outcome{}, nil
}

// Show fetches one hackathon.
func (s *BrowseService) Show(ctx context.Context, id domain.EntityID) (*domain.HackathonDetail, Outcome, error) {
	h, err := s.api.GetHackathon(ctx, s.session(ctx), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, Outcome{Message: msgHackathonNotFound}, err
		}
		return nil, s.rejected(ctx, err, "show "+id.String()), err
	}
	return h, Outcome{}, nil
}

// Home fetches the landing view for the current user.
func (s *BrowseService) Home(ctx context.Context) (domain.Home, Outcome, error) {
	h, err := s.api.Home(ctx, s.session(ctx))
	if err != nil {
		return domain.Home{}, s.rejected(ctx, err, "home"), err
	}
	return h, Outcome{}, nil
}

func (s *BrowseService) rejected(ctx context.Context, err error, attempted string) Outcome {
	s.auth.ExpireOnRejection(ctx, err, attempted)
	s.logger.Warn("browse request failed", "attempted", attempted, "error", err)
	return genericFailure(err, msgLoadFailed)
}

// Now is the instant statuses are derived at.
func (s *BrowseService) Now() time.Time {
	return s.now()
}

func (s *BrowseService) session(ctx context.Context) *domain.Session {
	sess, err := s.auth.Session(ctx)
	if err != nil {
		s.logger.Warn("ignoring unreadable session", "error", err)
		return nil
	}
	return sess
}
