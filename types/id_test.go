package types

import (
	"strings"
	"testing"
)

func TestGenerateIDDeterministic(t *testing.T) {
	urls := []string{
		"https://example.com/articles/fed-rate-decision",
		"https://example.com/articles/fed-rate-decision?ref=home",
		"https://news.example.org/2025/01/ai-chips",
		"",
	}

	for _, u := range urls {
		first := GenerateID(u)
		for i := 0; i < 3; i++ {
			if got := GenerateID(u); got != first {
				t.Fatalf("GenerateID(%q) not deterministic: %q vs %q", u, got, first)
			}
		}
		if !strings.HasPrefix(first, IDPrefix) {
			t.Fatalf("GenerateID(%q) = %q; missing %q prefix", u, first, IDPrefix)
		}
	}
}

func TestGenerateIDBase36Suffix(t *testing.T) {
	id := GenerateID("https://example.com/some/long/path/to/an/article")
	suffix := strings.TrimPrefix(id, IDPrefix)
	if suffix == "" {
		t.Fatal("empty hash suffix")
	}
	for _, c := range suffix {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z') {
			t.Fatalf("suffix %q contains non-base36 character %q", suffix, c)
		}
	}
}

func TestGenerateIDDistinguishesURLs(t *testing.T) {
	a := GenerateID("https://example.com/a")
	b := GenerateID("https://example.com/b")
	if a == b {
		t.Fatalf("distinct URLs produced the same ID %q", a)
	}
}
