// File: turnera/services/inference/client.go
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"turnera/utils"
)

// Client talks to a Hugging Face TGI-style text-generation endpoint.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type generateParams struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters generateParams `json:"parameters"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Generate requests a completion for the given prompt and returns the
// generated text. Non-2xx responses surface as *utils.UpstreamError with
// the upstream body intact.
func (c *Client) Generate(ctx context.Context, prompt string, maxNewTokens int, temperature float64) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParams{
			MaxNewTokens: maxNewTokens,
			Temperature:  temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read inference response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", &utils.UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	// TGI answers with either a single object or a one-element array.
	var single generateResponse
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText, nil
	}
	var many []generateResponse
	if err := json.Unmarshal(body, &many); err == nil && len(many) > 0 {
		return many[0].GeneratedText, nil
	}
	return "", fmt.Errorf("unexpected inference response shape: %s", string(body))
}
