package services

import (
	"context"
	"fmt"
	"log/slog"

	"hackverse/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendJudgeInvite sends the judge invitation using the "judge_invite" template.
func (s *emailService) SendJudgeInvite(ctx context.Context, data *domain.JudgeInviteEmailData) error {
	if data == nil {
		return fmt.Errorf("judge invite data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("judge_invite", data)
	if err != nil {
		return fmt.Errorf("failed to render judge_invite template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send judge invite email: %w", err)
	}
	s.logger.Info("judge invite sent", "to", data.Email, "hackathon", data.HackathonTitle)
	return nil
}
