package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// JudgeInviteEmailData holds data for the judge invitation email.
type JudgeInviteEmailData struct {
	Email          string
	JudgeName      string
	HackathonTitle string
	Expertise      string
	StartDate      string
	EndDate        string
	Organizer      string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendJudgeInvite(ctx context.Context, data *JudgeInviteEmailData) error
}
