package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
)

// Machine-readable error codes returned to API clients.
const (
	CodeMissingEmail      = "MISSING_EMAIL"
	CodeInvalidEmail      = "INVALID_EMAIL"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeAlreadySubscribed = "ALREADY_SUBSCRIBED"
	CodeInternalError     = "INTERNAL_ERROR"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SubscribeError carries the HTTP status and error code for a failed
// subscription attempt.
type SubscribeError struct {
	Status  int
	Code    string
	Message string
}

func (e *SubscribeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// SubscribeResult is the outcome of a successful subscription.
type SubscribeResult struct {
	SubscriberID int64
	Message      string
}

// EventPublisher emits an event for each new subscriber (e.g. to Kafka).
type EventPublisher interface {
	PublishSubscribed(ctx context.Context, email string, subscriberID int64) error
}

// Service implements the newsletter subscription flow. provider, mailer, and
// events are optional; their failures are logged, never surfaced.
type Service struct {
	store    *Store
	limiter  Limiter
	provider Provider
	mailer   Mailer
	events   EventPublisher
}

// NewService wires the subscription flow.
func NewService(store *Store, limiter Limiter, provider Provider, mailer Mailer, events EventPublisher) *Service {
	return &Service{store: store, limiter: limiter, provider: provider, mailer: mailer, events: events}
}

// Subscribe validates and rate-limits the request, rejects duplicates,
// forwards the email to the configured provider, persists the subscriber,
// and sends the welcome email. Secondary side effects (provider call,
// welcome email, event publish) are best-effort.
func (s *Service) Subscribe(ctx context.Context, email, ip string) (*SubscribeResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, &SubscribeError{Status: http.StatusBadRequest, Code: CodeMissingEmail, Message: "email is required"}
	}
	if !emailRe.MatchString(email) {
		return nil, &SubscribeError{Status: http.StatusBadRequest, Code: CodeInvalidEmail, Message: "email address is not valid"}
	}

	ok, err := s.limiter.Allow(ctx, ip)
	if err != nil {
		log.Printf("rate limiter error for %s: %v (allowing request)", ip, err)
	} else if !ok {
		return nil, &SubscribeError{Status: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: "too many requests, try again later"}
	}

	existing, err := s.store.FindSubscriber(ctx, email)
	if err != nil {
		log.Printf("subscriber lookup failed: %v", err)
		return nil, &SubscribeError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: "subscription failed"}
	}
	if existing != nil {
		return nil, &SubscribeError{Status: http.StatusConflict, Code: CodeAlreadySubscribed, Message: "this email is already subscribed"}
	}

	if s.provider != nil {
		if err := s.provider.Subscribe(ctx, email); err != nil {
			log.Printf("provider %s subscribe failed for %s: %v", s.provider.Name(), email, err)
		}
	}

	id, err := s.store.AddSubscriber(ctx, email)
	if errors.Is(err, ErrDuplicateEmail) {
		// A concurrent subscribe won the race between the existence check
		// and the insert.
		return nil, &SubscribeError{Status: http.StatusConflict, Code: CodeAlreadySubscribed, Message: "this email is already subscribed"}
	}
	if err != nil {
		log.Printf("subscriber insert failed: %v", err)
		return nil, &SubscribeError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: "subscription failed"}
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, email); err != nil {
			log.Printf("welcome email failed for %s: %v", email, err)
			_ = s.store.RecordMetric(ctx, 0, id, "welcome_failed")
		} else {
			_ = s.store.RecordMetric(ctx, 0, id, "welcome_sent")
		}
	}

	if s.events != nil {
		if err := s.events.PublishSubscribed(ctx, email, id); err != nil {
			log.Printf("subscriber event publish failed: %v", err)
		}
	}

	return &SubscribeResult{SubscriberID: id, Message: "subscribed successfully"}, nil
}

// TestProvider exercises the configured provider with a throwaway address.
// Used by the diagnostic endpoint.
func (s *Service) TestProvider(ctx context.Context) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("no email provider configured")
	}
	if err := s.provider.Subscribe(ctx, "delivery-test@newsdesk.local"); err != nil {
		return s.provider.Name(), err
	}
	return s.provider.Name(), nil
}

// Debug reports which integrations are configured, without exposing secrets.
func (s *Service) Debug() map[string]interface{} {
	provider := "none"
	if s.provider != nil {
		provider = s.provider.Name()
	}
	return map[string]interface{}{
		"provider":      provider,
		"welcomeEmail":  s.mailer != nil,
		"events":        s.events != nil,
		"convertkitEnv": os.Getenv("CONVERTKIT_API_KEY") != "",
		"mailchimpEnv":  os.Getenv("MAILCHIMP_API_KEY") != "",
		"resendEnv":     os.Getenv("RESEND_API_KEY") != "",
		"brevoEnv":      os.Getenv("BREVO_API_KEY") != "",
	}
}

// Stats returns subscriber counts for the diagnostic endpoint.
func (s *Service) Stats(ctx context.Context) (SubscriberStats, error) {
	return s.store.Stats(ctx)
}

// AddCampaign stores a campaign draft for later sending.
func (s *Service) AddCampaign(ctx context.Context, subject, body string) (int64, error) {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)
	if subject == "" || body == "" {
		return 0, fmt.Errorf("campaign subject and body are required")
	}
	return s.store.AddCampaign(ctx, subject, body)
}

// Campaigns lists stored campaigns, newest first.
func (s *Service) Campaigns(ctx context.Context) ([]Campaign, error) {
	return s.store.ListCampaigns(ctx)
}
