// Package api talks to the hackathon platform's HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"hackverse/internal/domain"
)

const (
	headerRequestID      = "X-Request-ID"
	headerIdempotencyKey = "Idempotency-Key"

	defaultTimeout = 15 * time.Second
	maxErrorBody   = 1 << 20
)

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements domain.HackathonAPI over HTTP.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *slog.Logger
}

var _ domain.HackathonAPI = (*Client)(nil)

// NewClient returns a client for the API at cfg.BaseURL. A nil httpClient uses
// http.DefaultClient and a nil logger discards logs.
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    httpClient,
		logger:  logger,
	}
}

// LoginURL is where the browser starts the Google sign-in.
func (c *Client) LoginURL() string {
	return c.baseURL + "/auth/google"
}

func (c *Client) ListHackathons(ctx context.Context, s *domain.Session) ([]domain.HackathonSummary, error) {
	var out []domain.HackathonSummary
	if err := c.do(ctx, s, http.MethodGet, "/api/hackathons", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.HackathonSummary{}
	}
	return out, nil
}

func (c *Client) GetHackathon(ctx context.Context, s *domain.Session, id domain.EntityID) (*domain.HackathonDetail, error) {
	var out domain.HackathonDetail
	if err := c.do(ctx, s, http.MethodGet, "/api/hackathons/"+url.PathEscape(id.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateHackathon(ctx context.Context, s *domain.Session, req *domain.CreateHackathonRequest) (*domain.HackathonDetail, error) {
	var out domain.HackathonDetail
	if err := c.do(ctx, s, http.MethodPost, "/hackathons", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, s *domain.Session, hackathonID domain.EntityID, req *domain.RegistrationRequest) error {
	return c.do(ctx, s, http.MethodPost, "/register/"+url.PathEscape(hackathonID.String()), req, nil)
}

func (c *Client) ListProjects(ctx context.Context, s *domain.Session, hackathonID domain.EntityID) ([]domain.Project, error) {
	var out []domain.Project
	path := "/api/hackathons/" + url.PathEscape(hackathonID.String()) + "/projects"
	if err := c.do(ctx, s, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Project{}
	}
	return out, nil
}

func (c *Client) SubmitScore(ctx context.Context, s *domain.Session, projectID domain.EntityID, sub *domain.ScoreSubmission) error {
	return c.do(ctx, s, http.MethodPost, "/api/projects/"+url.PathEscape(projectID.String())+"/scores", sub, nil)
}

func (c *Client) SubmitProject(ctx context.Context, s *domain.Session, hackathonID domain.EntityID, sub *domain.ProjectSubmission) error {
	return c.do(ctx, s, http.MethodPost, "/api/hackathons/"+url.PathEscape(hackathonID.String())+"/submissions", sub, nil)
}

// do sends one request under the client timeout and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, s *domain.Session, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set(headerIdempotencyKey, uuid.NewString())
	}
	if s.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
