package dictionary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/dictionary/en-cn/abate" {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"definition": [
				{
					"pos": "verb",
					"text": "to become less strong",
					"example": [{"text": "The storm abated."}]
				},
				{
					"pos": "noun",
					"text": "a lessening",
					"example": []
				}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL + "/api/dictionary/en-cn/")
	result, err := client.Lookup(context.Background(), "abate")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if len(result.Definition) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(result.Definition))
	}

	first := result.Definition[0]
	if first.POS != "verb" {
		t.Errorf("Expected pos 'verb', got %q", first.POS)
	}
	if first.Text != "to become less strong" {
		t.Errorf("Unexpected definition text: %q", first.Text)
	}
	if len(first.Examples) != 1 || first.Examples[0].Text != "The storm abated." {
		t.Errorf("Unexpected examples: %v", first.Examples)
	}
}

func TestLookupNormalizesBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dict/word" {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"definition": []}`))
	}))
	t.Cleanup(server.Close)

	// Missing trailing slash must not glue the word onto the last path
	// segment.
	client := NewClient(server.URL + "/dict")
	if _, err := client.Lookup(context.Background(), "word"); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
}

func TestLookupStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL + "/")
	_, err := client.Lookup(context.Background(), "qwzx")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", statusErr.StatusCode)
	}
	if statusErr.Word != "qwzx" {
		t.Errorf("Expected word 'qwzx' in error, got %q", statusErr.Word)
	}
}

func TestLookupNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url + "/")
	if _, err := client.Lookup(context.Background(), "abate"); err == nil {
		t.Error("Expected error for unreachable dictionary service")
	}
}

func TestLookupBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL + "/")

	// The first five lookups hit the server and fail; the fifth trips
	// the breaker.
	for i := 0; i < 5; i++ {
		_, err := client.Lookup(context.Background(), "abate")
		if err == nil {
			t.Fatalf("Expected error on lookup %d", i+1)
		}
		if errors.Is(err, gobreaker.ErrOpenState) {
			t.Fatalf("Breaker opened too early on lookup %d", i+1)
		}
	}

	_, err := client.Lookup(context.Background(), "abate")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected gobreaker.ErrOpenState after five failures, got %v", err)
	}
}

func TestLookupBreakerIgnoresUnknownWords(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path == "/known" {
			w.Write([]byte(`{"definition": [{"pos": "noun", "text": "a lessening", "example": []}]}`))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL + "/")

	// A run of words the dictionary does not know must not shut out the
	// words it does.
	for i := 0; i < 5; i++ {
		var statusErr *StatusError
		if _, err := client.Lookup(context.Background(), "unknown"); !errors.As(err, &statusErr) {
			t.Fatalf("Expected *StatusError on lookup %d, got %v", i+1, err)
		}
	}

	result, err := client.Lookup(context.Background(), "known")
	if err != nil {
		t.Fatalf("Lookup() for known word error = %v", err)
	}
	if len(result.Definition) != 1 || result.Definition[0].Text != "a lessening" {
		t.Errorf("Unexpected result for known word: %+v", result)
	}
	if hits != 6 {
		t.Errorf("Expected all 6 lookups to reach the server, got %d", hits)
	}
}
