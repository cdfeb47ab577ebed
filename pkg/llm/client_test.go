package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nikogura/search-tailor/pkg/search"
)

func completionBody(t *testing.T, content string) (body []byte) {
	t.Helper()

	resp := ChatResponse{
		ID:     "chatcmpl-test",
		Object: "chat.completion",
		Model:  DefaultModel,
		Choices: []Choice{
			{
				Index:        0,
				Message:      Message{Role: "assistant", Content: content},
				FinishReason: "stop",
			},
		},
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal completion: %v", err)
	}

	return body
}

func testRequest() (req SearchRequest) {
	req = SearchRequest{
		JobText: "We need a Senior Go Engineer.",
		Config: search.GenerationConfig{
			Platform: search.PlatformBoth,
			Domain:   search.DomainAutoDetect,
		},
	}
	return req
}

func TestGenerateSearches(t *testing.T) {
	var gotAuth string
	var gotReq ChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write(completionBody(t, sampleAnalysisJSON))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	analysis, err := client.GenerateSearches(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GenerateSearches failed: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization header: got %q", gotAuth)
	}

	if gotReq.Model != DefaultModel {
		t.Errorf("model: got %q, want %q", gotReq.Model, DefaultModel)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("messages: got %d, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("message roles: got %q, %q", gotReq.Messages[0].Role, gotReq.Messages[1].Role)
	}

	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("response format not requested as json_object")
	}

	if gotReq.Temperature != Temperature {
		t.Errorf("temperature: got %v, want %v", gotReq.Temperature, Temperature)
	}

	for _, tier := range search.Tiers {
		if _, ok := analysis.LinkedInSearches[tier]; !ok {
			t.Errorf("linkedin searches missing tier %q", tier)
		}
		if _, ok := analysis.DevelopmentAidSearches[tier]; !ok {
			t.Errorf("developmentaid searches missing tier %q", tier)
		}
	}
}

func TestGenerateSearchesMissingCredential(t *testing.T) {
	client := NewClient("", "")

	_, err := client.GenerateSearches(context.Background(), testRequest())
	if err == nil {
		t.Fatalf("expected an error with no API key")
	}

	var credErr *MissingCredentialError
	if !errors.As(err, &credErr) {
		t.Fatalf("expected MissingCredentialError, got %T", err)
	}
}

func TestGenerateSearchesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", "")
	client.endpoint = server.URL

	_, err := client.GenerateSearches(context.Background(), testRequest())
	if err == nil {
		t.Fatalf("expected an error on 401")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}

	if provErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status code: got %d, want %d", provErr.StatusCode, http.StatusUnauthorized)
	}
}

func TestGenerateSearchesClientErrorNotRetried(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "bad request"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	_, err := client.GenerateSearches(context.Background(), testRequest())
	if err == nil {
		t.Fatalf("expected an error on 400")
	}

	if calls != 1 {
		t.Errorf("client errors should not be retried: got %d calls", calls)
	}
}

func TestGenerateSearchesRetriesServerError(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": {"message": "server overloaded"}}`))
			return
		}
		_, _ = w.Write(completionBody(t, sampleAnalysisJSON))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	analysis, err := client.GenerateSearches(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}

	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}

	if analysis.DomainDetected != "Software Engineering" {
		t.Errorf("domain: got %q", analysis.DomainDetected)
	}
}

func TestGenerateSearchesRetriesExhausted(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	_, err := client.GenerateSearches(context.Background(), testRequest())
	if err == nil {
		t.Fatalf("expected an error after exhausting retries")
	}

	if calls != maxAttempts {
		t.Errorf("expected %d calls, got %d", maxAttempts, calls)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
}

func TestGenerateSearchesContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(completionBody(t, sampleAnalysisJSON))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateSearches(ctx, testRequest())
	if err == nil {
		t.Fatalf("expected an error with a cancelled context")
	}
}

func TestGenerateSearchesFormatError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(completionBody(t, "Sorry, I cannot help with that."))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	_, err := client.GenerateSearches(context.Background(), testRequest())
	if err == nil {
		t.Fatalf("expected an error on non-JSON content")
	}

	var formatErr *ResponseFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected ResponseFormatError, got %T", err)
	}

	if formatErr.Raw != "Sorry, I cannot help with that." {
		t.Errorf("Raw should carry the response text")
	}
}

func TestModelAllowed(t *testing.T) {
	cases := []struct {
		model   string
		allowed bool
	}{
		{model: "gpt-4o", allowed: true},
		{model: "gpt-4-turbo", allowed: true},
		{model: "gpt-4", allowed: true},
		{model: "gpt-3.5-turbo", allowed: true},
		{model: "gpt-5", allowed: false},
		{model: "", allowed: false},
	}

	for _, tc := range cases {
		if got := ModelAllowed(tc.model); got != tc.allowed {
			t.Errorf("ModelAllowed(%q): got %t, want %t", tc.model, got, tc.allowed)
		}
	}
}

func TestNewClientDefaultModel(t *testing.T) {
	client := NewClient("key", "")
	if client.model != DefaultModel {
		t.Errorf("default model: got %q, want %q", client.model, DefaultModel)
	}

	client = NewClient("key", "gpt-4")
	if client.model != "gpt-4" {
		t.Errorf("explicit model: got %q", client.model)
	}
}
