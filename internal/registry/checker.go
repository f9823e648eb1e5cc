package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nao1215/verifymodels/internal/model"
)

const (
	// DefaultTimeout bounds a single lookup, including reading the body.
	DefaultTimeout = 10 * time.Second

	// DefaultDelay is the pause after every request.
	DefaultDelay = 300 * time.Millisecond

	// DefaultUserAgent identifies the verifier to registry operators.
	DefaultUserAgent = "llmfit-verify/1.0"
)

// Checker looks identifiers up on a registry over HTTP.
type Checker struct {
	client    *resty.Client
	timeout   time.Duration
	delay     time.Duration
	userAgent string
	observer  Observer
	logger    *slog.Logger

	// wait pauses between requests. Replaced in tests.
	wait func(ctx context.Context, d time.Duration) error
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDelay sets the pause after every request. Negative values are ignored.
func WithDelay(d time.Duration) Option {
	return func(c *Checker) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Checker) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithObserver sets the observer notified of batch progress.
func WithObserver(o Observer) Option {
	return func(c *Checker) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChecker creates a Checker. Without options it uses DefaultTimeout,
// DefaultDelay and DefaultUserAgent.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		timeout:   DefaultTimeout,
		delay:     DefaultDelay,
		userAgent: DefaultUserAgent,
		observer:  nopObserver{},
		logger:    slog.Default(),
		wait:      sleep,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.client = resty.New().
		SetTimeout(c.timeout).
		SetHeader("User-Agent", c.userAgent).
		SetRetryCount(0).
		SetLogger(newRestyLogger(c.logger))

	return c
}

// CheckExistence performs one GET for identifier and returns the HTTP status
// code, or model.StatusTransportError if no response was received.
// It never retries and never returns an error.
func (c *Checker) CheckExistence(ctx context.Context, identifier, urlTemplate string) int {
	return c.lookup(ctx, identifier, urlTemplate).Status
}

// lookup performs the request and records its duration.
func (c *Checker) lookup(ctx context.Context, identifier, urlTemplate string) model.CheckResult {
	url := model.ExpandURL(urlTemplate, identifier)
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		Get(url)

	result := model.CheckResult{
		Identifier: identifier,
		Status:     model.StatusTransportError,
		Elapsed:    time.Since(start),
	}

	if err != nil || resp == nil || resp.RawResponse == nil {
		c.logger.Debug("lookup failed",
			"url", url,
			"error", err,
		)
		return result
	}

	result.Status = resp.StatusCode()
	c.logger.Debug("lookup completed",
		"url", url,
		"status", result.Status,
		"elapsed", result.Elapsed,
	)
	return result
}

// RunBatch checks identifiers in order, one request at a time, waiting the
// configured delay after every request regardless of its outcome.
// It returns the summary of every identifier checked. If ctx is cancelled
// the batch stops early and the partial summary is returned; a lookup
// aborted by the cancellation is not recorded.
func (c *Checker) RunBatch(ctx context.Context, registry model.Registry, identifiers []string, urlTemplate string) *model.RunSummary {
	summary := model.NewRunSummary(registry)
	total := len(identifiers)

	c.observer.BatchStarted(registry, total)

	for i, id := range identifiers {
		if ctx.Err() != nil {
			c.logger.Warn("batch interrupted",
				"registry", registry,
				"checked", i,
				"total", total,
			)
			break
		}

		result := c.lookup(ctx, id, urlTemplate)
		if result.TransportFailed() && ctx.Err() != nil {
			// The request was cut short by the cancellation; it says
			// nothing about the identifier.
			c.logger.Warn("batch interrupted",
				"registry", registry,
				"checked", i,
				"total", total,
			)
			break
		}
		summary.Add(result)
		c.observer.ResultReady(registry, i+1, total, result)

		// Cancellation during the wait is picked up at the top of the loop.
		_ = c.wait(ctx, c.delay) //nolint:errcheck
	}

	c.observer.BatchFinished(summary)
	return summary
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
