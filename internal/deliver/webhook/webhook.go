package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/willow-ren/larkcard/internal/model"
)

const defaultTimeout = 10 * time.Second

// Option configures a webhook Deliverer.
type Option func(*Deliverer)

// WithTimeout sets the HTTP client timeout. Default: 10s.
func WithTimeout(d time.Duration) Option {
	return func(w *Deliverer) { w.client.Timeout = d }
}

// WithHeaders sets custom HTTP headers sent with the POST.
func WithHeaders(h map[string]string) Option {
	return func(w *Deliverer) { w.headers = h }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(c *http.Client) Option {
	return func(w *Deliverer) { w.client = c }
}

// Deliverer POSTs one interactive-card message to a bot webhook URL. The
// endpoint's own response body is checked too: Lark bots report failures
// with HTTP 200 and a non-zero code.
type Deliverer struct {
	client  *http.Client
	url     string
	headers map[string]string
}

// New creates a webhook deliverer targeting the given URL.
func New(url string, opts ...Option) *Deliverer {
	w := &Deliverer{
		client: &http.Client{Timeout: defaultTimeout},
		url:    url,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// botResponse is the endpoint's JSON response body.
type botResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Deliver sends the message once. There is no retry: a transport error,
// timeout, non-2xx status, or non-zero endpoint code is a final failure.
func (w *Deliverer) Deliver(ctx context.Context, msg model.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("webhook: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("webhook: HTTP %d", resp.StatusCode)
	}

	var br botResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return fmt.Errorf("webhook: decode response: %w", err)
	}
	if br.Code != 0 {
		return fmt.Errorf("webhook: endpoint rejected message: code=%d msg=%q", br.Code, br.Msg)
	}
	return nil
}
