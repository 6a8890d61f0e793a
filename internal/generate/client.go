package generate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// noResponsePlaceholder is returned when the upstream answers 2xx but
// with a body matching neither the generation nor the error shape.
const noResponsePlaceholder = "No response from AI"

// requestTimeout bounds the single upstream call. There is no retry;
// a timeout surfaces as ErrGeneration.
const requestTimeout = 30 * time.Second

// ErrGeneration wraps any upstream transport failure, timeout, or
// non-2xx status. Handlers map it to a generic client-facing message.
var ErrGeneration = errors.New("text generation failed")

// Client calls a Hugging Face inference endpoint. It holds no state
// between calls beyond the shared HTTP client.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

// Generate forwards the prompt and normalizes the response shape:
// first generated_text entry, else the upstream error field, else a
// fixed placeholder.
func (c *Client) Generate(prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: upstream status %d", ErrGeneration, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return normalize(raw), nil
}

// normalize extracts text from the two known upstream shapes:
// [{"generated_text": "..."}] on success, {"error": "..."} when the
// API reports a problem with a 2xx status.
func normalize(raw []byte) string {
	var generations []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &generations); err == nil &&
		len(generations) > 0 && generations[0].GeneratedText != "" {
		return generations[0].GeneratedText
	}

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}

	return noResponsePlaceholder
}
