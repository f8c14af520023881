package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func NewHttpClient(endpoint string, opts ...RequestOption) *HttpClient {
	return &HttpClient{
		endpoint: endpoint,
		hc:       &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		authOpts: opts,
		logger:   slog.Default().With(slog.String("endpoint", endpoint)),
		retry:    1,
		delay:    200 * time.Millisecond,
	}
}

type HttpClient struct {
	endpoint string
	hc       *http.Client
	authOpts []RequestOption
	logger   *slog.Logger
	// total attempts, 1 means no retry
	retry uint
	delay time.Duration
}

// StatusError is returned when the remote answers with an unexpected status code.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to get response, path:%s, status:%d, body:%s", e.Path, e.StatusCode, e.Body)
}

func (c *HttpClient) WithRetry(attempts uint) *HttpClient {
	if attempts < 1 {
		attempts = 1
	}
	c.retry = attempts
	return c
}

func (c *HttpClient) WithDelay(delay time.Duration) *HttpClient {
	c.delay = delay
	return c
}

// WithTimeout limits every single attempt, 0 disables the limit.
func (c *HttpClient) WithTimeout(timeout time.Duration) *HttpClient {
	c.hc.Timeout = timeout
	return c
}

func (c *HttpClient) Get(ctx context.Context, path string, outObj interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(path, resp, outObj)
}

func (c *HttpClient) Post(ctx context.Context, path string, data interface{}, outObj interface{}) error {
	resp, err := c.PostResponse(ctx, path, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(path, resp, outObj)
}

// PostResponse returns the raw response of any 2xx answer, the caller must close its body.
func (c *HttpClient) PostResponse(ctx context.Context, path string, data interface{}) (*http.Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *HttpClient) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	fullPath := fmt.Sprintf("%s%s", c.endpoint, path)
	var resp *http.Response
	err := retry.Do(
		func() error {
			var reader io.Reader
			if body != nil {
				reader = bytes.NewReader(body)
			}
			req, err := http.NewRequestWithContext(ctx, method, fullPath, reader)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
			}
			if body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			for _, opt := range c.authOpts {
				opt.Set(req)
			}

			r, err := c.hc.Do(req)
			if err != nil {
				return fmt.Errorf("failed to do http request, path:%s, err:%w", fullPath, err)
			}
			if r.StatusCode < 200 || r.StatusCode >= 300 {
				msg, _ := io.ReadAll(io.LimitReader(r.Body, 1024))
				r.Body.Close()
				statusErr := &StatusError{Path: fullPath, StatusCode: r.StatusCode, Body: string(msg)}
				if r.StatusCode < http.StatusInternalServerError {
					return retry.Unrecoverable(statusErr)
				}
				return statusErr
			}
			resp = r
			return nil
		},
		retry.Attempts(c.retry),
		retry.Delay(c.delay),
		retry.MaxDelay(2*time.Second),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.WarnContext(ctx, "http request failed, retrying",
				slog.Uint64("attempt", uint64(n+1)),
				slog.Uint64("max_attempts", uint64(c.retry)),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HttpClient) decode(path string, resp *http.Response, outObj interface{}) error {
	if outObj == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(outObj); err != nil {
		return fmt.Errorf("failed to decode response, path:%s, err:%w", path, err)
	}
	return nil
}
