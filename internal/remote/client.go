package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
)

// CallOptions is the options bag of a remote call. Method defaults to GET.
type CallOptions struct {
	Method  string
	Headers map[string]string
	Body    []byte
}

// Result is the tagged outcome of a successful call: structured JSON when the
// body parsed, raw text otherwise.
type Result struct {
	Text   string
	Value  any
	isJSON bool
}

// IsJSON reports whether the body parsed as JSON.
func (r Result) IsJSON() bool {
	return r.isJSON
}

// Decode unmarshals the JSON body into v. It fails for text results.
func (r Result) Decode(v any) error {
	if !r.isJSON {
		return fmt.Errorf("remote: response is not JSON: %q", r.Text)
	}
	return json.Unmarshal([]byte(r.Text), v)
}

// CallError carries the last failure after the retry budget was spent.
// Status is zero for transport-level failures.
type CallError struct {
	URL      string
	Status   int
	Body     string
	Attempts int
	Err      error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote call %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
	}
	return fmt.Sprintf("remote call %s failed after %d attempts: HTTP %d - %s", e.URL, e.Attempts, e.Status, e.Body)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Client issues HTTP requests to collaborator services, retrying transient
// failures a bounded number of times. Retries repeat the exact request with
// no backoff, so a retried non-idempotent write can create duplicates; write
// callers accept that risk.
type Client struct {
	http    *http.Client
	retries int
	logger  *zap.Logger
}

// NewClient builds a client with a fixed per-attempt timeout and a default
// retry budget taken from configuration.
func NewClient(cfg config.RemoteConfig, logger *zap.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout()},
		retries: cfg.Retries,
		logger:  logger,
	}
}

// Call issues the request with the client's default retry budget.
func (c *Client) Call(ctx context.Context, url string, opts CallOptions) (Result, error) {
	return c.CallRetry(ctx, url, opts, c.retries)
}

// CallRetry issues the request with an explicit retry budget. A budget of n
// allows n+1 total attempts.
func (c *Client) CallRetry(ctx context.Context, url string, opts CallOptions, retries int) (Result, error) {
	if retries < 0 {
		retries = 0
	}

	attempts := 0
	for {
		attempts++
		result, status, body, err := c.attempt(ctx, url, opts)
		if err == nil && successStatus(status) {
			return result, nil
		}

		if retries > 0 {
			retries--
			c.logger.Warn("remote call failed; retrying",
				zap.String("url", url),
				zap.Int("status", status),
				zap.Int("attempt", attempts),
				zap.Error(err))
			continue
		}

		return Result{}, &CallError{URL: url, Status: status, Body: body, Attempts: attempts, Err: err}
	}
}

func (c *Client) attempt(ctx context.Context, url string, opts CallOptions) (Result, int, string, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var reqBody io.Reader
	if len(opts.Body) > 0 {
		reqBody = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return Result{}, 0, "", err
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return Result{}, 0, "", err
	}
	defer res.Body.Close()

	text, err := io.ReadAll(res.Body)
	if err != nil {
		return Result{}, res.StatusCode, "", err
	}
	if !successStatus(res.StatusCode) {
		return Result{}, res.StatusCode, string(text), nil
	}

	return parseBody(text), res.StatusCode, "", nil
}

func successStatus(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func parseBody(text []byte) Result {
	var value any
	if err := json.Unmarshal(text, &value); err != nil {
		return Result{Text: string(text)}
	}
	return Result{Text: string(text), Value: value, isJSON: true}
}
