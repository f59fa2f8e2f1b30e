package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"hackverse/config"
	"hackverse/internal/adapters/api"
	"hackverse/internal/adapters/auth"
	"hackverse/internal/adapters/drafts"
	"hackverse/internal/adapters/email"
	"hackverse/internal/listing"
	"hackverse/internal/services"
)

type command func(ctx context.Context, args []string) error

// app holds the wired services shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	auth       *services.AuthService
	browse     *services.BrowseService
	host       *services.HostService
	register   *services.RegistrationService
	judge      *services.JudgeService
	submission *services.SubmissionService
	drafts     *drafts.FileStore
	format     *listing.Formatter
}

func newApp(cfg *config.Config, logger *slog.Logger, out io.Writer) (*app, error) {
	inspector := auth.NewJWTInspector()
	store := auth.NewFileSessionStore(cfg.SessionFile, inspector)

	client := api.NewClient(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout}, &http.Client{}, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		ReplyTo:     cfg.Email.ReplyTo,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			ConfigurationSet:   cfg.Email.SESConfigurationSet,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	emails := services.NewEmailService(mailer, renderer, logger)

	authSvc := services.NewAuthService(store, inspector, client.LoginURL(), logger)
	return &app{
		cfg:        cfg,
		logger:     logger,
		out:        out,
		auth:       authSvc,
		browse:     services.NewBrowseService(client, authSvc, logger),
		host:       services.NewHostService(client, authSvc, emails, logger),
		register:   services.NewRegistrationService(client, authSvc, logger),
		judge:      services.NewJudgeService(client, authSvc, logger),
		submission: services.NewSubmissionService(client, authSvc, logger),
		drafts:     drafts.NewFileStore(cfg.DraftDir),
		format:     listing.NewFormatter(cfg.Locale),
	}, nil
}

func (a *app) commands() map[string]command {
	return map[string]command{
		"login":    a.login,
		"logout":   a.logout,
		"home":     a.home,
		"list":     a.list,
		"show":     a.show,
		"host":     a.hostHackathon,
		"register": a.registerForHackathon,
		"judge":    a.judgeProjects,
		"submit":   a.submitProject,
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// report prints an outcome: its message, then any field errors in key order.
func (a *app) report(out services.Outcome) {
	if out.Message != "" {
		a.printf("%s\n", out.Message)
	}
	for _, k := range out.Fields.Keys() {
		a.printf("  %s: %s\n", k, out.Fields[k])
	}
	if out.Next == "login" {
		a.printf("Run `hackverse login` and try again.\n")
	}
}
