package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Provider is an external email-marketing integration. Exactly one provider
// is selected at startup; subscribe failures are logged by the caller and
// never fail the primary flow.
type Provider interface {
	Name() string
	Subscribe(ctx context.Context, email string) error
}

const providerTimeout = 10 * time.Second

// SelectProvider picks the first configured provider in fixed priority order:
// ConvertKit, Mailchimp, Resend, Brevo. Returns nil when none is configured.
func SelectProvider() Provider {
	if key := os.Getenv("CONVERTKIT_API_KEY"); key != "" {
		return &ConvertKit{apiKey: key, formID: os.Getenv("CONVERTKIT_FORM_ID"), http: providerClient()}
	}
	if key := os.Getenv("MAILCHIMP_API_KEY"); key != "" {
		return &Mailchimp{apiKey: key, listID: os.Getenv("MAILCHIMP_LIST_ID"), http: providerClient()}
	}
	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		if audience := os.Getenv("RESEND_AUDIENCE_ID"); audience != "" {
			return &Resend{apiKey: key, audienceID: audience, http: providerClient()}
		}
	}
	if key := os.Getenv("BREVO_API_KEY"); key != "" {
		return &Brevo{apiKey: key, http: providerClient()}
	}
	return nil
}

func providerClient() *http.Client {
	return &http.Client{Timeout: providerTimeout}
}

// postJSON sends a JSON body and fails on non-2xx responses.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// ConvertKit subscribes emails to a ConvertKit form.
type ConvertKit struct {
	apiKey string
	formID string
	http   *http.Client
}

func (c *ConvertKit) Name() string { return "convertkit" }

func (c *ConvertKit) Subscribe(ctx context.Context, email string) error {
	url := fmt.Sprintf("https://api.convertkit.com/v3/forms/%s/subscribe", c.formID)
	return postJSON(ctx, c.http, url, nil, map[string]string{
		"api_key": c.apiKey,
		"email":   email,
	})
}

// Mailchimp adds members to a Mailchimp audience list. The datacenter is
// encoded in the API key suffix (e.g. "...-us21").
type Mailchimp struct {
	apiKey string
	listID string
	http   *http.Client
}

func (m *Mailchimp) Name() string { return "mailchimp" }

func (m *Mailchimp) Subscribe(ctx context.Context, email string) error {
	dc := "us1"
	if i := strings.LastIndex(m.apiKey, "-"); i >= 0 && i < len(m.apiKey)-1 {
		dc = m.apiKey[i+1:]
	}
	url := fmt.Sprintf("https://%s.api.mailchimp.com/3.0/lists/%s/members", dc, m.listID)
	return postJSON(ctx, m.http, url, map[string]string{
		"Authorization": "Bearer " + m.apiKey,
	}, map[string]string{
		"email_address": email,
		"status":        "subscribed",
	})
}

// Resend adds contacts to a Resend audience.
type Resend struct {
	apiKey     string
	audienceID string
	http       *http.Client
}

func (r *Resend) Name() string { return "resend" }

func (r *Resend) Subscribe(ctx context.Context, email string) error {
	url := fmt.Sprintf("https://api.resend.com/audiences/%s/contacts", r.audienceID)
	return postJSON(ctx, r.http, url, map[string]string{
		"Authorization": "Bearer " + r.apiKey,
	}, map[string]interface{}{
		"email":        email,
		"unsubscribed": false,
	})
}

// Brevo creates contacts via the Brevo (ex Sendinblue) API.
type Brevo struct {
	apiKey string
	http   *http.Client
}

func (b *Brevo) Name() string { return "brevo" }

func (b *Brevo) Subscribe(ctx context.Context, email string) error {
	return postJSON(ctx, b.http, "https://api.brevo.com/v3/contacts", map[string]string{
		"api-key": b.apiKey,
	}, map[string]interface{}{
		"email":         email,
		"updateEnabled": true,
	})
}
