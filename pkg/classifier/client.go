package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP wrapper for the intent-classifier service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new classifier client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Predict classifies a single utterance via POST /classify.
func (c *Client) Predict(ctx context.Context, text string) (Prediction, error) {
	url := fmt.Sprintf("%s/classify", c.baseURL)

	body, err := json.Marshal(PredictRequest{Text: text})
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to build classify request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to call classifier API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Prediction{}, fmt.Errorf("classifier API error %d: %s", resp.StatusCode, string(raw))
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return Prediction{}, fmt.Errorf("failed to decode classifier response: %w", err)
	}
	return pred, nil
}
