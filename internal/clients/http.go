package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vaidashi/fastfood-api/pkg/circuitbreaker"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
	"github.com/vaidashi/fastfood-api/pkg/retry"
)

// Options tunes a downstream client
type Options struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     retry.BackoffStrategy
	Breaker     *circuitbreaker.Breaker
	Headers     map[string]string
}

func (o Options) withDefaults(name string) Options {
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.Backoff == nil {
		o.Backoff = retry.DefaultExponentialBackoff()
	}
	if o.Breaker == nil {
		o.Breaker = circuitbreaker.New(circuitbreaker.Config{Name: name})
	}
	return o
}

// jsonClient posts JSON to one downstream service. Every call goes
// through the service's breaker and is retried on temporary failures.
type jsonClient struct {
	name       string
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.Breaker
	policy     *retry.Policy
	headers    map[string]string
	logger     logger.Logger
}

func newJSONClient(name, baseURL string, opts Options, logger logger.Logger) *jsonClient {
	opts = opts.withDefaults(name)

	return &jsonClient{
		name:       name,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		breaker:    opts.Breaker,
		policy: &retry.Policy{
			MaxAttempts: opts.MaxAttempts,
			Backoff:     opts.Backoff,
			Logger:      logger,
		},
		headers: opts.Headers,
		logger:  logger,
	}
}

// post sends body to path and, when out is non-nil, decodes the response
// into it. Any status other than 200 is a failure.
func (c *jsonClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)

	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to marshal request: %v", err))
	}

	url := c.baseURL + path

	return retry.Do(ctx, c.policy, func(ctx context.Context) error {
		return c.breaker.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, url, payload, out)
		})
	})
}

func (c *jsonClient) do(ctx context.Context, url string, payload []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))

	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return apperrors.NewTimeoutError(c.name + " request timed out")
		}
		return apperrors.NewTemporaryError(fmt.Sprintf("failed to send request to %s: %v", c.name, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return apperrors.NewTemporaryError(fmt.Sprintf("failed to read response body: %v", err))
	}

	if err := classifyStatus(c.name, resp.StatusCode); err != nil {
		c.logger.Debug("Downstream call failed", "service", c.name, "status", resp.StatusCode, "body", string(body))
		return err
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to parse response: %v", err))
		}
	}

	return nil
}

// classifyStatus maps a response status onto the retry classification
func classifyStatus(service string, status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return apperrors.NewTimeoutError(service + " request timed out")
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return apperrors.NewTemporaryError(fmt.Sprintf("%s service error: %d", service, status))
	}

	return apperrors.NewDownstreamError(service, status)
}
