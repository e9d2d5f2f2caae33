package newsletter

import (
	"context"
	"net/http"
	"os"
)

// Mailer sends transactional email (the welcome message).
type Mailer interface {
	SendWelcome(ctx context.Context, email string) error
}

// ResendMailer sends the welcome email through the Resend API. It is
// independent of the subscription provider: any provider may handle the
// subscribe while Resend handles the welcome send.
type ResendMailer struct {
	apiKey string
	from   string
	http   *http.Client
}

// NewResendMailerFromEnv returns a mailer when RESEND_API_KEY is set, else nil.
func NewResendMailerFromEnv() *ResendMailer {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil
	}
	from := os.Getenv("NEWSLETTER_FROM")
	if from == "" {
		from = "newsletter@newsdesk.local"
	}
	return &ResendMailer{apiKey: key, from: from, http: providerClient()}
}

// SendWelcome delivers the welcome message to a new subscriber.
func (m *ResendMailer) SendWelcome(ctx context.Context, email string) error {
	return postJSON(ctx, m.http, "https://api.resend.com/emails", map[string]string{
		"Authorization": "Bearer " + m.apiKey,
	}, map[string]interface{}{
		"from":    m.from,
		"to":      []string{email},
		"subject": "Welcome to the newsletter",
		"html": "<p>Thanks for subscribing! You'll get a weekly digest of " +
			"tech and finance stories. Unsubscribe any time from the footer link.</p>",
	})
}
