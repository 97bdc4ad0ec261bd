// Package dispatch posts a campaign to the external endpoint that sends the
// actual emails.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/harshmriduhash/Cold-Emailer/pkg/model"
)

var ErrEmptyURL = errors.New("dispatch: endpoint url is empty")

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the endpoint answers outside 2xx.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dispatch: server returned %d", e.Code)
}

type Client struct {
	URL    string
	client HTTPClient
}

func New(url string, client HTTPClient) (*Client, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{URL: url, client: client}, nil
}

// Dispatch makes exactly one POST attempt. The response body is not inspected.
func (c *Client) Dispatch(ctx context.Context, p model.Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
