package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsdesk/newsletter"

	"github.com/gin-gonic/gin"
)

type allowAll struct{}

func (allowAll) Allow(context.Context, string) (bool, error) { return true, nil }

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

func newsletterRouter(t *testing.T, limiter newsletter.Limiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := newsletter.OpenStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := newsletter.NewService(store, limiter, nil, nil, nil)

	r := gin.New()
	RegisterNewsletterRoutes(r, svc)
	return r
}

func postNewsletter(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeEndpointSuccessThenConflict(t *testing.T) {
	r := newsletterRouter(t, allowAll{})

	w := postNewsletter(r, `{"email":"reader@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("first subscribe status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var ok struct {
		Message      string `json:"message"`
		Success      bool   `json:"success"`
		SubscriberID int64  `json:"subscriberId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ok); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !ok.Success || ok.SubscriberID == 0 {
		t.Fatalf("unexpected success body: %+v", ok)
	}

	w = postNewsletter(r, `{"email":"reader@example.com"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate subscribe status = %d; want 409", w.Code)
	}
	var conflict struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &conflict); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if conflict.Code != newsletter.CodeAlreadySubscribed {
		t.Fatalf("code = %s; want %s", conflict.Code, newsletter.CodeAlreadySubscribed)
	}
}

func TestSubscribeEndpointBadRequests(t *testing.T) {
	r := newsletterRouter(t, allowAll{})

	cases := []struct {
		name string
		body string
		code string
	}{
		{"invalid json", `{`, newsletter.CodeMissingEmail},
		{"empty email", `{"email":""}`, newsletter.CodeMissingEmail},
		{"malformed email", `{"email":"nope"}`, newsletter.CodeInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := postNewsletter(r, c.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400", w.Code)
			}
			var resp struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad response body: %v", err)
			}
			if resp.Code != c.code {
				t.Fatalf("code = %s; want %s", resp.Code, c.code)
			}
		})
	}
}

func TestSubscribeEndpointRateLimited(t *testing.T) {
	r := newsletterRouter(t, denyAll{})

	w := postNewsletter(r, `{"email":"reader@example.com"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d; want 429", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Code != newsletter.CodeRateLimitExceeded {
		t.Fatalf("code = %s; want %s", resp.Code, newsletter.CodeRateLimitExceeded)
	}
}

func TestNewsletterActions(t *testing.T) {
	r := newsletterRouter(t, allowAll{})

	// Default action: static health message.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/newsletter", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("default action status = %d; want 200", w.Code)
	}

	// Stats on an empty store.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/newsletter?action=stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d; want 200", w.Code)
	}
	var stats struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("bad stats body: %v", err)
	}
	if stats.Total != 0 {
		t.Fatalf("empty store total = %d; want 0", stats.Total)
	}

	// Debug reports no provider configured.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/newsletter?action=debug", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("debug status = %d; want 200", w.Code)
	}

	// Provider test fails without a provider.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/newsletter?action=test-convertkit", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("provider test status = %d; want 500", w.Code)
	}
}

func TestCampaignEndpoints(t *testing.T) {
	r := newsletterRouter(t, allowAll{})

	// An empty store lists zero campaigns, as an array.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/newsletter?action=campaigns", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d; want 200", w.Code)
	}
	var list struct {
		Campaigns []newsletter.Campaign `json:"campaigns"`
		Count     int                   `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	if list.Campaigns == nil || list.Count != 0 {
		t.Fatalf("empty store list = %+v", list)
	}

	// Draft a campaign.
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/campaigns",
		strings.NewReader(`{"subject":"Weekly digest","body":"Top stories"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d; want 201 (%s)", w.Code, w.Body.String())
	}

	// A blank subject is rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/newsletter/campaigns",
		strings.NewReader(`{"subject":"","body":"Top stories"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank subject status = %d; want 400", w.Code)
	}

	// The draft shows up in the listing.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/newsletter?action=campaigns", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	if list.Count != 1 || len(list.Campaigns) != 1 {
		t.Fatalf("list count = %d; want 1", list.Count)
	}
	if list.Campaigns[0].Subject != "Weekly digest" {
		t.Fatalf("subject = %q", list.Campaigns[0].Subject)
	}
}
