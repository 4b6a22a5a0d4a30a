package api

import (
	"github.com/Checker-Finance/bin-lookup/internal/lookup"
	"github.com/Checker-Finance/bin-lookup/pkg/model"
)

// LookupResult is the per-token entry in the results map: either data+source
// or error+message, never both.
type LookupResult struct {
	Data    *model.IssuerRecord `json:"data,omitempty"`
	Source  string              `json:"source,omitempty"`
	Error   string              `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
}

// LookupResponse is the batch response, keyed by original input token.
type LookupResponse struct {
	Results map[string]LookupResult `json:"results"`
}

// ErrorResponse is the whole-request rejection body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// toLookupResult converts an orchestrator outcome into its wire shape.
func toLookupResult(out lookup.Outcome) LookupResult {
	switch out.Kind {
	case lookup.OutcomeCached, lookup.OutcomeResolved:
		return LookupResult{Data: out.Record, Source: out.Source}
	case lookup.OutcomeInvalid:
		return LookupResult{Error: "invalid_bin", Message: "BIN must be 6 to 8 digits"}
	case lookup.OutcomeNotFound:
		return LookupResult{Error: "not_found", Message: "BIN not found in upstream APIs"}
	case lookup.OutcomeNotFoundOrUpstreamError:
		return LookupResult{
			Error:   "not_found_or_upstream_error",
			Message: "Not found or upstream error. Set API_NINJAS_KEY to enable fallback.",
		}
	case lookup.OutcomeRateLimited:
		msg := out.Detail
		if msg == "" {
			msg = out.Source + " rate limited"
		}
		return LookupResult{Error: "upstream_rate_limited", Message: msg}
	default:
		return LookupResult{Error: "upstream_error", Message: out.Detail}
	}
}
