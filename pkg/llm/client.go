package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/nikogura/search-tailor/pkg/search"
	"github.com/pkg/errors"
)

const (
	// OpenAIEndpoint is the chat completions endpoint.
	OpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gpt-4o"
	// Temperature favors determinism over creativity for search generation.
	Temperature = 0.2
	// MaxTokens is the completion token budget.
	MaxTokens = 4000

	// maxAttempts bounds retries for transient provider failures.
	maxAttempts = 2
	retryDelay  = 2 * time.Second
)

// AllowedModels is the fixed model allow-list.
//
//nolint:gochecknoglobals // Fixed enumeration
var AllowedModels = []string{"gpt-4o", "gpt-4-turbo", "gpt-4", "gpt-3.5-turbo"}

// ModelAllowed reports whether a model identifier is on the allow-list.
func ModelAllowed(model string) (allowed bool) {
	for _, m := range AllowedModels {
		if m == model {
			allowed = true
			return allowed
		}
	}
	return allowed
}

// Client represents an OpenAI chat completions client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a new OpenAI API client.
func NewClient(apiKey, model string) (client *Client) {
	if model == "" {
		model = DefaultModel
	}
	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: OpenAIEndpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	return client
}

// GenerateSearches issues one model call for the job description and parses
// the JSON response into a GeneratedAnalysis. Every invocation is a fresh
// call; nothing is cached. Model/transport failures abort the whole attempt
// with no partial results.
func (c *Client) GenerateSearches(ctx context.Context, req SearchRequest) (analysis search.GeneratedAnalysis, err error) {
	if c.apiKey == "" {
		err = &MissingCredentialError{}
		return analysis, err
	}

	prompt := buildSearchPrompt(req.JobText, req.Config)

	var responseText string
	responseText, err = c.sendRequest(ctx, prompt)
	if err != nil {
		return analysis, err
	}

	analysis, err = parseAnalysis(responseText)
	return analysis, err
}

// sendRequest sends one chat completion request and returns the message text.
// Transient failures (network, 429, 5xx) get one bounded retry; anything else
// is surfaced immediately as a ProviderError.
func (c *Client) sendRequest(ctx context.Context, prompt string) (responseText string, err error) {
	chatReq := ChatRequest{
		Model: c.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: systemPrompt,
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature:    Temperature,
		MaxTokens:      MaxTokens,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(chatReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	var respBody []byte
	for attempt := 1; ; attempt++ {
		var retryable bool
		respBody, retryable, err = c.doRequest(ctx, reqBody)
		if err == nil {
			break
		}
		if !retryable || attempt >= maxAttempts || ctx.Err() != nil {
			return responseText, err
		}
		time.Sleep(retryDelay)
	}

	var chatResp ChatResponse
	err = json.Unmarshal(respBody, &chatResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse completion response: %s", string(respBody))
		return responseText, err
	}

	if len(chatResp.Choices) == 0 {
		err = errors.New("no choices in completion response")
		return responseText, err
	}

	responseText = chatResp.Choices[0].Message.Content

	return responseText, err
}

// doRequest performs a single HTTP round trip. The second return value
// reports whether a failure is worth retrying.
func (c *Client) doRequest(ctx context.Context, reqBody []byte) (respBody []byte, retryable bool, err error) {
	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return respBody, retryable, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		retryable = true
		err = &ProviderError{Err: err}
		return respBody, retryable, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		retryable = true
		err = &ProviderError{Err: err}
		return respBody, retryable, err
	}

	if resp.StatusCode != http.StatusOK {
		retryable = resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
		err = &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
		return respBody, retryable, err
	}

	return respBody, retryable, err
}
