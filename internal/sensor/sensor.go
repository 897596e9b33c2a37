package sensor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
)

// ErrUnreachable covers timeouts and connection failures when triggering the
// field sensor. Never retried.
var ErrUnreachable = errors.New("cannot reach field sensor")

// StatusError is a non-200 reply from the sensor, with its status code.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sensor returned error: %d", e.StatusCode)
}

// Client triggers the ESP32 camera's capture endpoint. The trigger and the
// eventual inbound upload are not correlated at the protocol level; the sensor
// pushes its capture to /upload on its own schedule.
type Client struct {
	addr   string
	client *http.Client
	logger *logger.Logger
}

func NewClient(addr string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		addr:   addr,
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

// Trigger asks the sensor to capture an image. On success it returns the
// sensor's JSON reply. One attempt, fixed timeout, no retry.
func (c *Client) Trigger(ctx context.Context) (json.RawMessage, error) {
	url := fmt.Sprintf("http://%s/capture", c.addr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.logger.Info("Triggering field sensor at %s", url)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Field sensor trigger failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Field sensor returned status %d", resp.StatusCode)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read sensor response: %w", err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("sensor response is not valid JSON")
	}

	return json.RawMessage(body), nil
}
