package news

import (
	"strings"
	"testing"

	"newsdesk/types"
)

func TestDeriveCategory(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		fallback string
		want     string
	}{
		{"finance heavy", "Fed rate cut lifts stock market and bank earnings", types.CategoryGeneral, types.CategoryFinance},
		{"tech heavy", "AI startup ships new cloud software platform", types.CategoryGeneral, types.CategoryTechnology},
		{"neutral falls back", "Local festival draws record crowds", types.CategoryGeneral, types.CategoryGeneral},
		{"neutral finance fallback", "Weekly roundup", types.CategoryFinance, types.CategoryFinance},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := deriveCategory(c.text, c.fallback); got != c.want {
				t.Fatalf("deriveCategory(%q) = %q; want %q", c.text, got, c.want)
			}
		})
	}
}

func TestDefaultCategory(t *testing.T) {
	cases := map[string]string{
		SourceTechnology: types.CategoryTechnology,
		SourceFinance:    types.CategoryFinance,
		SourceBusiness:   types.CategoryFinance,
		SourceGeneral:    types.CategoryGeneral,
		SourceTrending:   types.CategoryGeneral,
	}
	for source, want := range cases {
		if got := defaultCategory(source); got != want {
			t.Errorf("defaultCategory(%q) = %q; want %q", source, got, want)
		}
	}
}

func TestExtractTagsFromVocabulary(t *testing.T) {
	tags := extractTags("Bitcoin ETF inflows surge", "Crypto markets rally on institutional investing")

	if len(tags) == 0 {
		t.Fatal("expected tags")
	}

	vocab := make(map[string]bool, len(tagVocabulary))
	for _, v := range tagVocabulary {
		vocab[v] = true
	}
	for _, tag := range tags {
		if !vocab[tag] {
			t.Errorf("tag %q not in vocabulary", tag)
		}
	}

	want := map[string]bool{"bitcoin": true, "crypto": true, "etf": true}
	for w := range want {
		found := false
		for _, tag := range tags {
			if tag == w {
				found = true
			}
		}
		if !found {
			t.Errorf("expected tag %q in %v", w, tags)
		}
	}
}

func TestCalculateReadTime(t *testing.T) {
	if got := calculateReadTime("just a few words"); got != 1 {
		t.Fatalf("short content read time = %d; want 1", got)
	}
	long := strings.Repeat("word ", 650)
	if got := calculateReadTime(long); got != 3 {
		t.Fatalf("650-word read time = %d; want 3", got)
	}
}

func TestNormalizeArticle(t *testing.T) {
	raw := types.NewsArticle{
		Source:      types.NewsSource{Name: "TechWire"},
		Author:      "Dana Okafor",
		Title:       "AI Software Startup Raises Funding",
		Description: "A cloud software company announced new funding.",
		URL:         "https://example.com/ai-funding",
		URLToImage:  "https://example.com/img.jpg",
		PublishedAt: "2025-08-20T12:00:00Z",
	}

	post := normalizeArticle(raw, SourceTechnology)

	if post.ID != types.GenerateID(raw.URL) {
		t.Errorf("ID not derived from URL")
	}
	if post.Category != types.CategoryTechnology {
		t.Errorf("category = %q; want technology", post.Category)
	}
	if post.Content != raw.Description {
		t.Errorf("empty content should fall back to description")
	}
	if post.Source != "TechWire" || post.SourceURL != raw.URL {
		t.Errorf("provenance not preserved")
	}
}
