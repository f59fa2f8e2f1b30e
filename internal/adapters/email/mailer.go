package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"hackverse/internal/domain"
)

const (
	ProviderSES  = "ses"
	ProviderNoop = "noop"

	charset = "UTF-8"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	ConfigurationSet   string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	ReplyTo     string
	SES         SESConfig
}

// sesAPI is the part of the SES client the mailer uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer creates a mailer from config. Provider "ses" sends through AWS SES;
// "noop" and unknown providers only log.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case ProviderSES:
		if config.FromAddress == "" {
			return nil, fmt.Errorf("ses mailer: EMAIL_FROM_ADDRESS is required: %w", domain.ErrInvalidInput)
		}
		if _, err := mail.ParseAddress(config.FromAddress); err != nil {
			return nil, fmt.Errorf("ses mailer: invalid EMAIL_FROM_ADDRESS %q: %w", config.FromAddress, domain.ErrInvalidInput)
		}
		if config.SES.InsecureSkipVerify {
			logger.Warn("TLS certificate verification is disabled for SES. Use only in development.")
		}
		return newSESMailer(ses.NewFromConfig(awsConfig(config.SES)), config, logger), nil
	case ProviderNoop:
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

func awsConfig(c SESConfig) aws.Config {
	return aws.Config{
		Region: c.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		),
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: c.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		},
	}
}

type sesMailer struct {
	client           sesAPI
	source           string
	replyTo          []string
	configurationSet *string
	logger           *slog.Logger
}

func newSESMailer(client sesAPI, config MailerConfig, logger *slog.Logger) *sesMailer {
	from := mail.Address{Name: config.FromName, Address: config.FromAddress}
	m := &sesMailer{
		client: client,
		source: from.String(),
		logger: logger,
	}
	if config.ReplyTo != "" {
		m.replyTo = []string{config.ReplyTo}
	}
	if config.SES.ConfigurationSet != "" {
		m.configurationSet = aws.String(config.SES.ConfigurationSet)
	}
	return m
}

// Send delivers one message. At least one of html and text must be set.
func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if _, err := mail.ParseAddress(to); err != nil {
		return fmt.Errorf("recipient %q: %w", to, domain.ErrInvalidInput)
	}
	if html == "" && text == "" {
		return fmt.Errorf("email to %s has no body: %w", to, domain.ErrInvalidInput)
	}

	body := &types.Body{}
	if html != "" {
		body.Html = content(html)
	}
	if text != "" {
		body.Text = content(text)
	}
	input := &ses.SendEmailInput{
		Source:               aws.String(s.source),
		Destination:          &types.Destination{ToAddresses: []string{to}},
		Message:              &types.Message{Subject: content(subject), Body: body},
		ReplyToAddresses:     s.replyTo,
		ConfigurationSetName: s.configurationSet,
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w: %w", domain.ErrTransport, err)
	}
	s.logger.Info("email sent via SES", "to", to, "message_id", aws.ToString(result.MessageId))
	return nil
}

func content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String(charset)}
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(_ context.Context, to, subject, _, _ string) error {
	n.logger.Info("email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
