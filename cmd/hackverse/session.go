package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	delivery "hackverse/internal/delivery/http"
	"hackverse/internal/domain"
	"hackverse/internal/services"
)

const loginWait = 5 * time.Minute

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login", a.out)
	wait := fs.Duration("wait", loginWait, "how long to wait for the browser sign-in")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	ctrl := delivery.NewLoginController(a.auth)
	serveCtx, cancel := context.WithTimeout(ctx, *wait)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- delivery.Serve(serveCtx, a.cfg.CallbackAddr, delivery.NewRouter(ctrl, a.logger), a.logger)
	}()

	a.printf("Open this URL in your browser to sign in:\n  %s\n", a.auth.LoginURL())
	a.printf("Waiting for the sign-in to finish on http://%s/login-success ...\n", a.cfg.CallbackAddr)

	select {
	case redirect := <-ctrl.Done():
		cancel()
		if err := <-errCh; err != nil {
			a.logger.Warn("callback server did not stop cleanly", "error", err)
		}
		a.printf("Login successful.\n")
		if redirect != services.DefaultRedirect {
			a.printf("Continue with: hackverse %s\n", redirect)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return err
		}
		if errors.Is(serveCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("login timed out after %s: %w", *wait, domain.ErrUnauthorized)
		}
		return serveCtx.Err()
	}
}

func (a *app) logout(ctx context.Context, args []string) error {
	fs := newFlagSet("logout", a.out)
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

func (a *app) home(ctx context.Context, args []string) error {
	fs := newFlagSet("home", a.out)
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	h, out, err := a.browse.Home(ctx)
	if err != nil {
		a.report(out)
		return err
	}
	items, err := h.Hackathons()
	if err != nil {
		return fmt.Errorf("failed to decode home records: %w", err)
	}

	switch h.Kind {
	case domain.HomeOrganizer:
		a.printf("Hackathons you organise:\n")
	case domain.HomeParticipant:
		a.printf("Hackathons you joined:\n")
	case domain.HomeJudge:
		a.printf("Hackathons you judge:\n")
	default:
		a.printf("Hackathons:\n")
	}
	if len(items) == 0 {
		a.printf("  (none)\n")
		return nil
	}
	now := a.browse.Now()
	for _, item := range items {
		a.printf("  %-8s %-40s %-10s %s\n", item.ID, item.Title, item.Status(now), a.format.DateRange(item))
	}
	return nil
}
