// Package engine assembles finished letters: it validates a request, resolves
// the reason text, dispatches the letter type's renderer, and wraps the
// result. It keeps no state between calls; identical input at the same
// instant yields byte-identical output.
package engine

import (
	"time"

	"letter-engine/internal/common/errors"
	"letter-engine/internal/common/logger"
	"letter-engine/internal/common/metrics"
	"letter-engine/internal/letter/render"
	"letter-engine/internal/letter/validation"
	"letter-engine/internal/models"
	"letter-engine/pkg/catalog"
	"letter-engine/pkg/lettertypes"
)

type Engine struct {
	logger logger.Logger
	clock  func() time.Time
}

type Option func(*Engine)

// WithClock overrides the wall clock used for the letter header date.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func New(log logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		logger: log.WithFields(map[string]interface{}{"component": "letter-engine"}),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate validates req and renders the letter. On a validation failure the
// error is returned unmodified and no partial letter exists. The renderers
// themselves cannot fail: anything still missing past validation renders as a
// placeholder.
func (e *Engine) Generate(req *models.LetterRequest) (*models.GeneratedLetter, error) {
	if stdErr := validation.Validate(req); stdErr != nil {
		metrics.ValidationFailures.WithLabelValues(string(stdErr.Code)).Inc()
		e.logger.Warn("generation request rejected", map[string]interface{}{
			"errorCode": stdErr.Code,
			"field":     stdErr.Field,
		})
		return nil, stdErr
	}

	letterType := lettertypes.LetterType(req.LetterType)
	reason, err := catalog.Get(lettertypes.ReasonCatalog(letterType), req.Reason)
	if err != nil {
		// Validation already resolved the key; this only fires on a registry
		// and catalog table disagreement.
		metrics.ValidationFailures.WithLabelValues(string(errors.ErrCodeReasonNotFound)).Inc()
		return nil, err
	}

	now := e.clock()
	start := time.Now()

	var text string
	switch letterType {
	case lettertypes.BankDispute:
		text = render.BankDispute(now, req.Identity, req.Transaction, req.Additional, reason.DisplayText())
	case lettertypes.MerchantRefund:
		text = render.MerchantRefund(now, req.Identity, req.Transaction, req.Additional, reason.DisplayText())
	}

	metrics.RenderDuration.WithLabelValues(req.LetterType).Observe(time.Since(start).Seconds())
	metrics.LettersGenerated.WithLabelValues(req.LetterType).Inc()

	e.logger.Info("letter generated", map[string]interface{}{
		"letterType": req.LetterType,
		"reason":     req.Reason,
		"merchant":   req.Transaction.MerchantName,
	})

	return &models.GeneratedLetter{
		LetterType:        req.LetterType,
		Text:              text,
		SuggestedFilename: lettertypes.SuggestedFilename(letterType, req.Transaction.MerchantName),
	}, nil
}
