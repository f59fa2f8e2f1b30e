package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hackverse/internal/domain"
)

// memStore is an in-memory SessionStore.
type memStore struct {
	mu   sync.Mutex
	sess domain.Session
}

func (m *memStore) Load(context.Context) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sess
	return &s, nil
}

func (m *memStore) Save(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = *s
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = domain.Session{}
	return nil
}

// fakeInspector returns fixed claims for any non-empty token.
type fakeInspector struct {
	claims domain.Claims
}

func (f fakeInspector) Inspect(string) (domain.Claims, error) {
	return f.claims, nil
}

// fakeAPI records calls and returns the configured errors.
type fakeAPI struct {
	hackathons []domain.HackathonSummary
	projects   []domain.Project
	err        error

	calls        []string
	created      *domain.CreateHackathonRequest
	registration *domain.RegistrationRequest
	score        *domain.ScoreSubmission
	submission   *domain.ProjectSubmission
	tokens       []string
}

func (f *fakeAPI) record(name string, s *domain.Session) {
	f.calls = append(f.calls, name)
	if s != nil {
		f.tokens = append(f.tokens, s.Token)
	} else {
		f.tokens = append(f.tokens, "")
	}
}

func (f *fakeAPI) Home(_ context.Context, s *domain.Session) (domain.Home, error) {
	f.record("Home", s)
	return domain.Home{Kind: domain.HomePublic}, f.err
}

func (f *fakeAPI) ListHackathons(_ context.Context, s *domain.Session) ([]domain.HackathonSummary, error) {
	f.record("ListHackathons", s)
	return f.hackathons, f.err
}

func (f *fakeAPI) GetHackathon(_ context.Context, s *domain.Session, id domain.EntityID) (*domain.HackathonDetail, error) {
	f.record("GetHackathon", s)
	if f.err != nil {
		return nil, f.err
	}
	for _, h := range f.hackathons {
		if h.ID == id {
			return &domain.HackathonDetail{HackathonSummary: h}, nil
		}
	}
	return nil, &domain.APIError{Status: 404, Message: "Hackathon not found"}
}

func (f *fakeAPI) CreateHackathon(_ context.Context, s *domain.Session, req *domain.CreateHackathonRequest) (*domain.HackathonDetail, error) {
	f.record("CreateHackathon", s)
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.HackathonDetail{HackathonSummary: domain.HackathonSummary{ID: "new-1", Title: req.Title}}, nil
}

func (f *fakeAPI) Register(_ context.Context, s *domain.Session, _ domain.EntityID, req *domain.RegistrationRequest) error {
	f.record("Register", s)
	f.registration = req
	return f.err
}

func (f *fakeAPI) ListProjects(_ context.Context, s *domain.Session, _ domain.EntityID) ([]domain.Project, error) {
	f.record("ListProjects", s)
	return f.projects, f.err
}

func (f *fakeAPI) SubmitScore(_ context.Context, s *domain.Session, _ domain.EntityID, sub *domain.ScoreSubmission) error {
	f.record("SubmitScore", s)
	f.score = sub
	return f.err
}

func (f *fakeAPI) SubmitProject(_ context.Context, s *domain.Session, _ domain.EntityID, sub *domain.ProjectSubmission) error {
	f.record("SubmitProject", s)
	f.submission = sub
	return f.err
}

// fakeEmails records judge invitations.
type fakeEmails struct {
	sent []*domain.JudgeInviteEmailData
	err  error
}

func (f *fakeEmails) SendJudgeInvite(_ context.Context, data *domain.JudgeInviteEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

var discard = slog.New(slog.DiscardHandler)

// newAuth returns an AuthService over a store that already holds token (if any).
func newAuth(token string) (*AuthService, *memStore) {
	store := &memStore{sess: domain.Session{Token: token}}
	auth := NewAuthService(store, fakeInspector{claims: domain.Claims{Subject: "u1", Role: "organizer"}}, "http://localhost:8080/auth/google", discard)
	auth.now = func() time.Time { return time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC) }
	return auth, store
}
