package lookup

import "github.com/Checker-Finance/bin-lookup/pkg/model"

// CacheSource is the source label reported for cache hits.
const CacheSource = "cache"

// OutcomeKind tags the per-token result of one orchestration pass.
type OutcomeKind int

const (
	// OutcomeInvalid: the token is not a 6-8 digit BIN; nothing was looked up.
	OutcomeInvalid OutcomeKind = iota
	// OutcomeCached: served from the shared cache, no upstream call made.
	OutcomeCached
	// OutcomeResolved: freshly resolved by the provider named in Source.
	OutcomeResolved
	// OutcomeNotFound: a clean negative from an authoritative provider.
	OutcomeNotFound
	// OutcomeNotFoundOrUpstreamError: the primary did not return a record and
	// no fallback is configured, so not-found cannot be distinguished from an
	// upstream failure.
	OutcomeNotFoundOrUpstreamError
	// OutcomeRateLimited: the provider named in Source returned 429.
	OutcomeRateLimited
	// OutcomeUpstreamError: the provider named in Source failed.
	OutcomeUpstreamError
)

// String returns the metrics/API label for the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalid:
		return "invalid_bin"
	case OutcomeCached:
		return "cached"
	case OutcomeResolved:
		return "resolved"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeNotFoundOrUpstreamError:
		return "not_found_or_upstream_error"
	case OutcomeRateLimited:
		return "upstream_rate_limited"
	case OutcomeUpstreamError:
		return "upstream_error"
	default:
		return "unknown"
	}
}

// Outcome is the per-token lookup result. Record is set for OutcomeCached and
// OutcomeResolved; Source names the cache or provider that produced it.
// Outcomes are ephemeral: built and consumed within one orchestration pass.
type Outcome struct {
	Kind   OutcomeKind
	Record *model.IssuerRecord
	Source string
	Detail string
}
