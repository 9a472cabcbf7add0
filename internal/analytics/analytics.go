package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Client is a fire-and-forget capture sink. Events are posted to an HTTP
// endpoint from a goroutine: emission never blocks the caller and its own
// failures are logged at debug level and otherwise ignored. A client with no
// endpoint configured is a no-op.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(endpoint, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.endpoint != ""
}

// Capture queues one event for delivery and returns immediately.
func (c *Client) Capture(event string, properties map[string]interface{}) {
	if !c.Enabled() {
		return
	}

	go c.send(event, properties)
}

func (c *Client) send(event string, properties map[string]interface{}) {
	payload := map[string]interface{}{
		"event":      event,
		"properties": properties,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Debug("analytics payload marshal failed", "event", event, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Debug("analytics request build failed", "event", event, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("analytics capture failed", "event", event, "error", err)
		return
	}
	resp.Body.Close()
}
