package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdesk/news"
	"newsdesk/newsletter"
	"newsdesk/search"
	"newsdesk/types"

	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := newsletter.OpenStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// No API key configured, so the feed serves bundled fixture articles.
	newsSvc := news.NewService(nil, nil, false)

	return NewRouter(Deps{
		News:       newsSvc,
		Search:     search.NewService(newsSvc),
		Newsletter: newsletter.NewService(store, allowAll{}, nil, nil, nil),
	})
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

type postList struct {
	Posts []types.BlogPost `json:"posts"`
	Count int              `json:"count"`
}

func TestListArticles(t *testing.T) {
	r := testRouter(t)

	w := doGet(r, "/api/articles?limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var list postList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if list.Count == 0 || list.Count > 5 {
		t.Fatalf("count = %d; want 1..5", list.Count)
	}
	if len(list.Posts) != list.Count {
		t.Fatalf("count %d does not match %d posts", list.Count, len(list.Posts))
	}
	for _, p := range list.Posts {
		if p.ID == "" || p.Title == "" {
			t.Fatalf("incomplete post in feed: %+v", p)
		}
	}
}

func TestGetArticleByIDRoundTrip(t *testing.T) {
	r := testRouter(t)

	w := doGet(r, "/api/articles?limit=5")
	var list postList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list.Posts) == 0 {
		t.Fatalf("could not seed feed: %v", err)
	}
	want := list.Posts[0]

	w = doGet(r, "/api/articles/"+want.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("lookup status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var got types.BlogPost
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("returned ID %s; want %s", got.ID, want.ID)
	}
	if got.Content == "" {
		t.Fatal("detail view should carry full content")
	}
}

func TestGetArticleNotFound(t *testing.T) {
	r := testRouter(t)

	w := doGet(r, "/api/articles/news_zzzzzz")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Code != "NOT_FOUND" {
		t.Fatalf("code = %s; want NOT_FOUND", resp.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doGet(r, "/api/search")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing q status = %d; want 400", w.Code)
	}

	w = doGet(r, "/api/search?q=the")
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d; want 200", w.Code)
	}
	var list postList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(list.Posts) == 0 {
		t.Fatal("expected matches from fixture content")
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doGet(r, "/api/suggestions?q=zzzzzz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Suggestions == nil {
		t.Fatal("suggestions must serialize as an empty array, not null")
	}
}

func TestRefreshAndHealth(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/refresh", nil))
	if w.Code != http.StatusAccepted {
		t.Fatalf("refresh status = %d; want 202", w.Code)
	}

	w = doGet(r, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d; want 200", w.Code)
	}
}
