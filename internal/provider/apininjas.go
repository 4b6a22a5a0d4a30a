package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Checker-Finance/bin-lookup/internal/httpclient"
)

const ninjasName = "api_ninjas"

//
// ────────────────────────────────────────────────
//   API Ninjas response shape
// ────────────────────────────────────────────────
//

// NinjasRecord is the raw JSON shape returned by api-ninjas.com/v1/bin.
// Depending on the plan the endpoint returns a single object or an array of
// objects; the client unwraps arrays before handing a record to the mapper.
type NinjasRecord struct {
	Scheme      string `json:"scheme"`
	Brand       string `json:"brand"`
	Type        string `json:"type"`
	Bank        string `json:"bank"`
	Issuer      string `json:"issuer"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

//
// ────────────────────────────────────────────────
//   Client
// ────────────────────────────────────────────────
//

// NinjasClient is the fallback lookup provider (api-ninjas.com). It is only
// constructed when an API key is configured; without one the fallback path is
// skipped entirely rather than attempted and failed.
type NinjasClient struct {
	logger  *zap.Logger
	exec    *httpclient.Executor
	baseURL string
	apiKey  string
}

// NewNinjasClient constructs the API Ninjas client.
func NewNinjasClient(logger *zap.Logger, limiter *rate.Limiter, baseURL, apiKey string, timeout time.Duration) *NinjasClient {
	httpClient := &http.Client{Timeout: timeout}
	return &NinjasClient{
		logger:  logger,
		exec:    httpclient.New(logger, limiter, httpClient, ninjasName),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Name identifies this provider in outcomes and metrics.
func (c *NinjasClient) Name() string { return ninjasName }

// Lookup issues one GET for the BIN and classifies the response. An empty
// array body counts as not found.
func (c *NinjasClient) Lookup(ctx context.Context, bin string) Result {
	status, body, err := c.exec.Get(ctx, c.baseURL+"/v1/bin?bin="+bin, map[string]string{
		"X-Api-Key": c.apiKey,
	})
	if err != nil {
		return upstreamError(err.Error())
	}

	switch status {
	case http.StatusOK:
		rec, err := decodeNinjasBody(body)
		if err != nil {
			c.logger.Warn("api_ninjas.decode_failed",
				zap.String("bin", bin),
				zap.Error(err))
			return upstreamError(fmt.Sprintf("api_ninjas: decode failed: %v", err))
		}
		if rec == nil {
			return notFound()
		}
		return found(FromNinjas(rec))
	case http.StatusNotFound:
		return notFound()
	case http.StatusTooManyRequests:
		return rateLimited("api_ninjas rate limited")
	default:
		return upstreamError(fmt.Sprintf("api_ninjas returned %d", status))
	}
}

// decodeNinjasBody handles both payload variants. Arrays yield their first
// element; an empty array yields nil.
func decodeNinjasBody(body []byte) (*NinjasRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []NinjasRecord
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}

	var one NinjasRecord
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, err
	}
	return &one, nil
}
