package provider

import (
	"context"

	"github.com/Checker-Finance/bin-lookup/pkg/model"
)

// Status classifies a single provider lookup attempt.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusRateLimited
	StatusError
)

// Result is the tagged outcome of one provider call. Record is set only for
// StatusFound; Detail carries the failure description for StatusError and
// StatusRateLimited. Transport failures and malformed bodies are converted
// into Results at this boundary and never escalate as raw errors.
type Result struct {
	Status Status
	Record *model.IssuerRecord
	Detail string
}

// Client is a single upstream BIN lookup provider. Implementations make
// exactly one attempt per call: no retries, no cross-request circuit breaker.
type Client interface {
	Name() string
	Lookup(ctx context.Context, bin string) Result
}

func found(rec *model.IssuerRecord) Result { return Result{Status: StatusFound, Record: rec} }

func notFound() Result { return Result{Status: StatusNotFound} }

func rateLimited(detail string) Result { return Result{Status: StatusRateLimited, Detail: detail} }

func upstreamError(detail string) Result { return Result{Status: StatusError, Detail: detail} }
