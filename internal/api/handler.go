package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Checker-Finance/bin-lookup/internal/lookup"
)

// LookupService defines the orchestrator operations used by the handler.
type LookupService interface {
	Lookup(ctx context.Context, bins []string) (map[string]lookup.Outcome, error)
}

// BinHandler handles HTTP API requests for BIN lookups.
type BinHandler struct {
	logger  *zap.Logger
	service LookupService
}

// NewBinHandler creates a new BinHandler.
func NewBinHandler(logger *zap.Logger, service LookupService) *BinHandler {
	return &BinHandler{
		logger:  logger,
		service: service,
	}
}

// LookupHandler resolves one or more BINs supplied via repeated and/or
// comma-separated `bin` query parameters. Per-token failures stay inside the
// results map; only whole-request rejections get a non-2xx status.
func (h *BinHandler) LookupHandler(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	c.Set("X-Request-Id", requestID)

	rawValues := c.Request().URI().QueryArgs().PeekMulti("bin")
	values := make([]string, 0, len(rawValues))
	for _, v := range rawValues {
		values = append(values, string(v))
	}

	bins := ParseBINs(values)
	if len(bins) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "missing_parameter",
			Message: "Provide 'bin' parameter. Example: /?bin=457173 or /?bin=457173,524353 or /?bin=457173&bin=524353",
		})
	}

	outcomes, err := h.service.Lookup(c.Context(), bins)
	if err != nil {
		if errors.Is(err, lookup.ErrTooManyBINs) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "too_many_bins",
				Message: "Max 100 BINs per request",
			})
		}
		h.logger.Error("bin.lookup_failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}

	resp := LookupResponse{Results: make(map[string]LookupResult, len(outcomes))}
	for bin, out := range outcomes {
		resp.Results[bin] = toLookupResult(out)
	}

	h.logger.Info("bin.lookup",
		zap.String("request_id", requestID),
		zap.Int("tokens", len(bins)))

	return c.Status(fiber.StatusOK).JSON(resp)
}
