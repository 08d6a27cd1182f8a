// File: turnera/services/payments/client.go
package payments

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

// DefaultBaseURL is the Mercado Pago API root.
const DefaultBaseURL = "https://api.mercadopago.com"

// Client creates Checkout Pro preferences on Mercado Pago.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(accessToken string) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, accessToken)
}

func NewClientWithBaseURL(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Item is one purchasable line in a preference.
type Item struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
	UnitPrice  float64 `json:"unit_price"`
}

// BackURLs are the payer-facing redirect targets per outcome.
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// Preference is the Checkout Pro preference creation body.
type Preference struct {
	Items           []Item            `json:"items"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	BackURLs        BackURLs          `json:"back_urls"`
	AutoReturn      string            `json:"auto_return"`
	NotificationURL string            `json:"notification_url"`
}

// PreferenceResult is the subset of the creation response this service
// needs: the preference id and the payer-facing checkout URL.
type PreferenceResult struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// CreatePreference registers the preference upstream and returns its id
// and checkout URL.
func (c *Client) CreatePreference(ctx context.Context, pref Preference) (*PreferenceResult, error) {
	body, err := json.Marshal(pref)
	if err != nil {
		return nil, fmt.Errorf("marshal preference: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build preference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call payment service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read payment response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, &utils.UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}

	var result PreferenceResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode preference response: %w", err)
	}
	return &result, nil
}
