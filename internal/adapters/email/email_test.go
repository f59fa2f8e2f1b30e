package email

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

func newRenderer(t *testing.T) domain.EmailTemplateRenderer {
	t.Helper()
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	return r
}

func TestTemplateRenderer_JudgeInvite(t *testing.T) {
	data := &domain.JudgeInviteEmailData{
		Email:          "asha@example.com",
		JudgeName:      "Asha <Rao>",
		HackathonTitle: "Build for Bharat",
		Expertise:      "ML",
		StartDate:      "2024-04-15",
		EndDate:        "2024-04-17",
	}
	subject, html, text, err := newRenderer(t).Render("judge_invite", data)
	require.NoError(t, err)
	assert.Equal(t, "You're invited to judge Build for Bharat", subject)
	assert.Contains(t, html, "Asha &lt;Rao&gt;")
	assert.Contains(t, text, "Hi Asha <Rao>,")
	assert.Contains(t, text, "The event runs from 2024-04-15 to 2024-04-17.")
	assert.Contains(t, text, "We would like you")
}

func TestTemplateRenderer_Errors(t *testing.T) {
	r := newRenderer(t)

	_, _, _, err := r.Render("welcome", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, _, err = r.Render("judge_invite", map[string]string{"Email": "a@b.co"})
	assert.Error(t, err, "missing keys must fail")
}

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, MailerConfig{
		FromAddress: "noreply@hackverse.dev",
		FromName:    "HackVerse",
		ReplyTo:     "team@hackverse.dev",
		SES:         SESConfig{ConfigurationSet: "invites"},
	}, slog.New(slog.DiscardHandler))

	require.NoError(t, m.Send(context.Background(), "asha@example.com", "Hello", "<p>hi</p>", ""))
	assert.Equal(t, `"HackVerse" <noreply@hackverse.dev>`, aws.ToString(client.input.Source))
	assert.Equal(t, []string{"asha@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, []string{"team@hackverse.dev"}, client.input.ReplyToAddresses)
	assert.Equal(t, "invites", aws.ToString(client.input.ConfigurationSetName))
	assert.Equal(t, "Hello", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "UTF-8", aws.ToString(client.input.Message.Subject.Charset))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)
}

func TestSESMailer_SendErrors(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, MailerConfig{FromAddress: "noreply@hackverse.dev"}, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	assert.Equal(t, "<noreply@hackverse.dev>", m.source)

	assert.ErrorIs(t, m.Send(ctx, "not-an-address", "s", "", "t"), domain.ErrInvalidInput)
	assert.ErrorIs(t, m.Send(ctx, "a@b.co", "s", "", ""), domain.ErrInvalidInput)
	assert.Nil(t, client.input, "invalid messages never reach SES")

	sesErr := errors.New("throttled")
	client.err = sesErr
	err := m.Send(ctx, "a@b.co", "s", "", "t")
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, sesErr)
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	m, err := NewMailer(MailerConfig{Provider: ProviderNoop}, logger)
	require.NoError(t, err)
	assert.NoError(t, m.Send(context.Background(), "a@b.co", "s", "h", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: ProviderSES}, logger)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewMailer(MailerConfig{Provider: ProviderSES, FromAddress: "noreply"}, logger)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	m, err = NewMailer(MailerConfig{Provider: ProviderSES, FromAddress: "noreply@hackverse.dev", SES: SESConfig{Region: "ap-south-1"}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}
