package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Checker-Finance/bin-lookup/internal/metrics"
)

// Executor performs rate-limited single-attempt GET requests against one
// upstream provider and hands back the raw status and body for the caller to
// classify. Lookup providers get exactly one attempt per BIN per request, so
// there is no retry loop here.
type Executor struct {
	logger      *zap.Logger
	limiter     *rate.Limiter
	http        *http.Client
	providerTag string
}

// New creates an Executor. limiter may be nil to disable outbound throttling.
func New(logger *zap.Logger, limiter *rate.Limiter, httpClient *http.Client, providerTag string) *Executor {
	return &Executor{
		logger:      logger,
		limiter:     limiter,
		http:        httpClient,
		providerTag: providerTag,
	}
}

// Get executes a GET against url with the given headers and returns the HTTP
// status code and response body. A non-2xx status is not an error; transport
// failures (timeouts, connection errors) are.
func (e *Executor) Get(ctx context.Context, url string, headers map[string]string) (int, []byte, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return 0, nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := e.http.Do(req)
	if err != nil {
		metrics.IncProviderRequest(e.providerTag, "transport_error")
		e.logger.Warn(e.providerTag+".http_failed",
			zap.String("url", url),
			zap.Error(err))
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncProviderRequest(e.providerTag, "read_error")
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}

	elapsed := time.Since(start)
	metrics.IncProviderRequest(e.providerTag, strconv.Itoa(resp.StatusCode))
	metrics.ObserveProviderDuration(e.providerTag, start)

	e.logger.Debug(e.providerTag+".http_done",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))

	return resp.StatusCode, body, nil
}
