package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Checker-Finance/bin-lookup/internal/httpclient"
)

const binlistName = "binlist"

//
// ────────────────────────────────────────────────
//   binlist.net response shape
// ────────────────────────────────────────────────
//

// BinlistResponse is the raw JSON shape returned by lookup.binlist.net.
type BinlistResponse struct {
	Scheme  string         `json:"scheme"`
	Brand   string         `json:"brand"`
	Type    string         `json:"type"`
	Prepaid *bool          `json:"prepaid"`
	Bank    BinlistBank    `json:"bank"`
	Country BinlistCountry `json:"country"`
	Number  BinlistNumber  `json:"number"`
}

// BinlistBank is the issuing bank block. Some responses carry the bank as a
// bare string instead of an object; that string is taken as the bank name.
type BinlistBank struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// UnmarshalJSON accepts either {"name":...,"url":...} or a plain string.
func (b *BinlistBank) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		b.Name = name
		b.URL = ""
		return nil
	}
	type bank BinlistBank
	var obj bank
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*b = BinlistBank(obj)
	return nil
}

// BinlistCountry is the issuing country block. The ISO code shows up under
// "alpha2" on binlist and "alpha" on some mirrors.
type BinlistCountry struct {
	Name   string `json:"name"`
	Alpha2 string `json:"alpha2"`
	Alpha  string `json:"alpha"`
}

// BinlistNumber carries card-number hints.
type BinlistNumber struct {
	Length *int  `json:"length"`
	Luhn   *bool `json:"luhn"`
}

//
// ────────────────────────────────────────────────
//   Client
// ────────────────────────────────────────────────
//

// BinlistClient is the primary lookup provider (lookup.binlist.net).
type BinlistClient struct {
	logger  *zap.Logger
	exec    *httpclient.Executor
	baseURL string
}

// NewBinlistClient constructs the binlist.net client. binlist recommends
// pinning the response format with the Accept-Version header.
func NewBinlistClient(logger *zap.Logger, limiter *rate.Limiter, baseURL string, timeout time.Duration) *BinlistClient {
	httpClient := &http.Client{Timeout: timeout}
	return &BinlistClient{
		logger:  logger,
		exec:    httpclient.New(logger, limiter, httpClient, binlistName),
		baseURL: baseURL,
	}
}

// Name identifies this provider in outcomes and metrics.
func (c *BinlistClient) Name() string { return binlistName }

// Lookup issues one GET for the BIN and classifies the response.
func (c *BinlistClient) Lookup(ctx context.Context, bin string) Result {
	status, body, err := c.exec.Get(ctx, c.baseURL+"/"+bin, map[string]string{
		"Accept-Version": "3",
	})
	if err != nil {
		return upstreamError(err.Error())
	}

	switch status {
	case http.StatusOK:
		var raw BinlistResponse
		if err := json.Unmarshal(body, &raw); err != nil {
			c.logger.Warn("binlist.decode_failed",
				zap.String("bin", bin),
				zap.Error(err))
			return upstreamError(fmt.Sprintf("binlist: decode failed: %v", err))
		}
		return found(FromBinlist(&raw))
	case http.StatusNotFound:
		return notFound()
	case http.StatusTooManyRequests:
		return rateLimited("binlist rate limited")
	default:
		return upstreamError(fmt.Sprintf("binlist returned %d", status))
	}
}
