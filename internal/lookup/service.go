package lookup

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/Checker-Finance/bin-lookup/internal/cache"
	"github.com/Checker-Finance/bin-lookup/internal/metrics"
	"github.com/Checker-Finance/bin-lookup/internal/provider"
	"github.com/Checker-Finance/bin-lookup/pkg/model"
)

// MaxBatchSize caps the number of BIN tokens per request. Exceeding it
// rejects the whole batch before any token is processed.
const MaxBatchSize = 100

// ErrTooManyBINs rejects a whole batch that exceeds MaxBatchSize.
var ErrTooManyBINs = errors.New("too many bins: max 100 per request")

var binPattern = regexp.MustCompile(`^[0-9]{6,8}$`)

// ValidBIN reports whether token is exactly 6 to 8 ASCII digits.
func ValidBIN(token string) bool {
	return binPattern.MatchString(token)
}

// Service orchestrates BIN resolution: validation, cache, then the provider
// chain in priority order. The cache is shared across concurrent requests;
// everything else here is immutable after construction.
type Service struct {
	logger      *zap.Logger
	cache       *cache.Cache[model.IssuerRecord]
	primary     provider.Client
	fallback    provider.Client
	maxParallel int
}

// New constructs the orchestrator. fallback may be nil, which disables the
// fallback path (tokens the primary cannot resolve become ambiguous).
func New(logger *zap.Logger, c *cache.Cache[model.IssuerRecord], primary, fallback provider.Client, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		logger:      logger,
		cache:       c,
		primary:     primary,
		fallback:    fallback,
		maxParallel: maxParallel,
	}
}

// FallbackConfigured reports whether a fallback provider is wired in.
func (s *Service) FallbackConfigured() bool {
	return s.fallback != nil
}

// Lookup resolves a deduplicated list of BIN tokens and returns a map keyed
// by the original token. Tokens are independent: they run in parallel up to
// maxParallel, and one token's failure never aborts its siblings.
func (s *Service) Lookup(ctx context.Context, bins []string) (map[string]Outcome, error) {
	if len(bins) > MaxBatchSize {
		return nil, ErrTooManyBINs
	}

	outcomes := make([]Outcome, len(bins))
	sem := make(chan struct{}, s.maxParallel)
	var wg sync.WaitGroup

	for i, bin := range bins {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, bin string) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = s.lookupOne(ctx, bin)
		}(i, bin)
	}
	wg.Wait()

	results := make(map[string]Outcome, len(bins))
	for i, bin := range bins {
		results[bin] = outcomes[i]
		metrics.IncLookup(outcomes[i].Kind.String())
	}
	return results, nil
}

// lookupOne runs one token through validate → cache → primary → fallback.
func (s *Service) lookupOne(ctx context.Context, bin string) Outcome {
	if !ValidBIN(bin) {
		return Outcome{Kind: OutcomeInvalid}
	}

	if rec, ok := s.cache.Get(bin); ok {
		return Outcome{Kind: OutcomeCached, Record: &rec, Source: CacheSource}
	}

	res := s.primary.Lookup(ctx, bin)
	if res.Status == provider.StatusFound {
		s.cache.Put(bin, *res.Record)
		return Outcome{Kind: OutcomeResolved, Record: res.Record, Source: s.primary.Name()}
	}

	// The fallback is attempted after any primary non-success, including a
	// clean 404: providers disagree on BIN coverage.
	if res.Status != provider.StatusNotFound {
		s.logger.Warn("lookup.primary_failed",
			zap.String("bin", bin),
			zap.String("provider", s.primary.Name()),
			zap.String("detail", res.Detail))
	}

	if s.fallback == nil {
		return Outcome{Kind: OutcomeNotFoundOrUpstreamError, Detail: res.Detail}
	}

	fres := s.fallback.Lookup(ctx, bin)
	switch fres.Status {
	case provider.StatusFound:
		s.cache.Put(bin, *fres.Record)
		return Outcome{Kind: OutcomeResolved, Record: fres.Record, Source: s.fallback.Name()}
	case provider.StatusNotFound:
		return Outcome{Kind: OutcomeNotFound}
	case provider.StatusRateLimited:
		return Outcome{Kind: OutcomeRateLimited, Source: s.fallback.Name(), Detail: fres.Detail}
	default:
		s.logger.Warn("lookup.fallback_failed",
			zap.String("bin", bin),
			zap.String("provider", s.fallback.Name()),
			zap.String("detail", fres.Detail))
		return Outcome{Kind: OutcomeUpstreamError, Source: s.fallback.Name(), Detail: fres.Detail}
	}
}
