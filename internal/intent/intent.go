// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package intent provides the hybrid intent classification entry point. A
// deterministic rule layer runs first; queries it cannot settle go to the
// fast lexical ensemble, and only low-confidence fast results escalate to
// the lazily-loaded semantic tier.
package intent

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/traylinx/intentGate/internal/intent/lexical"
	"github.com/traylinx/intentGate/internal/intent/routes"
	"github.com/traylinx/intentGate/internal/intent/semantic"
)

// Classification methods reported in results.
const (
	// MethodRule marks a deterministic guard override.
	MethodRule = "hybrid_rule"

	// MethodFast marks a fast-tier result accepted on confidence.
	MethodFast = "tfidf_fast"

	// MethodAccurate marks a slow-tier result after escalation.
	MethodAccurate = "bert_accurate"

	// MethodFallback marks a fast-tier result kept because the slow tier
	// is unavailable.
	MethodFallback = "tfidf_fallback"
)

// DefaultEscalationThreshold is the fast-tier confidence below which the
// coordinator consults the slow tier.
const DefaultEscalationThreshold = 0.70

// Result is the classifier's answer for one query.
type Result struct {
	// Route is one of the routes package's route names.
	Route string `json:"route"`

	// Confidence is the winning score: an ensemble score in [0,1] on the
	// fast path, a cosine similarity on the slow path, or a fixed value
	// for rule overrides. It is not a calibrated probability.
	Confidence float64 `json:"confidence"`

	// Method identifies which path produced the result.
	Method string `json:"method"`

	// Reason names the guard that fired, when Method is MethodRule.
	Reason string `json:"reason,omitempty"`

	// Detail carries per-route component scores and, on escalation, both
	// tiers' outputs. Populated only when scores were requested.
	Detail map[string]any `json:"detail,omitempty"`
}

// SlowClassifier is the escalation target. Satisfied by
// *semantic.Classifier; tests substitute stubs with call counters.
type SlowClassifier interface {
	Classify(query string) (*semantic.Result, error)
}

// SlowFactory constructs the slow classifier on first use. It runs at most
// once per Hybrid instance; its cost (model load, example encoding) is why
// the coordinator defers it.
type SlowFactory func() (SlowClassifier, error)

// slowState tracks the one-way lazy-init state machine. There is no
// transition out of slowDisabled: a failed load is not retried per request.
type slowState int

const (
	slowNotLoaded slowState = iota
	slowLoaded
	slowDisabled
)

// Options configures a Hybrid classifier.
type Options struct {
	// EscalationThreshold is the fast-tier confidence at or above which
	// the slow tier is skipped. Zero means DefaultEscalationThreshold.
	EscalationThreshold float64

	// SlowFactory builds the slow tier. Nil disables escalation.
	SlowFactory SlowFactory
}

// Hybrid is the two-tier coordinator. Construct one per process and share
// it; everything except the one-time slow-tier load is read-only.
type Hybrid struct {
	fast      *lexical.Classifier
	guards    []guard
	threshold float64

	factory SlowFactory

	mu    sync.Mutex
	state slowState
	slow  SlowClassifier
}

// NewHybrid builds the coordinator over the given fast catalog.
func NewHybrid(catalog *routes.Catalog, opts Options) *Hybrid {
	threshold := opts.EscalationThreshold
	if threshold <= 0 {
		threshold = DefaultEscalationThreshold
	}

	h := &Hybrid{
		fast:      lexical.NewClassifier(catalog),
		guards:    coordinatorGuards(),
		threshold: threshold,
		factory:   opts.SlowFactory,
	}
	if h.factory == nil {
		h.state = slowDisabled
	}
	return h
}

// New returns a Hybrid over the built-in fast catalog with default options
// and the given slow factory.
func New(factory SlowFactory) *Hybrid {
	return NewHybrid(routes.FastCatalog(), Options{SlowFactory: factory})
}

// Classify routes a query. When returnScores is false the Detail map is
// omitted; Route, Confidence, and Method are always populated.
func (h *Hybrid) Classify(query string, returnScores bool) Result {
	for _, g := range h.guards {
		if res := g.apply(query); res != nil {
			log.WithFields(log.Fields{"guard": g.name, "route": res.Route}).
				Debug("Guard override")
			if !returnScores {
				res.Detail = nil
			}
			return *res
		}
	}

	fastRoute, fastConfidence, fastDetail := h.fast.Classify(query)

	if fastConfidence >= h.threshold || !h.slowAvailable() {
		res := Result{Route: fastRoute, Confidence: fastConfidence, Method: MethodFast}
		if returnScores {
			res.Detail = map[string]any{
				"tfidf_confidence": fastConfidence,
				"details":          fastDetail,
			}
		}
		return res
	}

	slow := h.ensureSlow()
	if slow == nil {
		res := Result{Route: fastRoute, Confidence: fastConfidence, Method: MethodFallback}
		if returnScores {
			res.Detail = map[string]any{"details": fastDetail}
		}
		return res
	}

	slowRes, err := slow.Classify(query)
	if err != nil {
		// A per-query encoding failure is transient; keep the fast answer
		// without disabling the slow tier.
		log.Warnf("Slow classifier failed, keeping fast result: %v", err)
		res := Result{Route: fastRoute, Confidence: fastConfidence, Method: MethodFallback}
		if returnScores {
			res.Detail = map[string]any{"details": fastDetail}
		}
		return res
	}

	res := Result{Route: slowRes.Route, Confidence: slowRes.Confidence, Method: MethodAccurate}
	if returnScores {
		res.Detail = map[string]any{
			"tfidf_route":      fastRoute,
			"tfidf_confidence": fastConfidence,
			"bert_route":       slowRes.Route,
			"bert_confidence":  slowRes.Confidence,
			"bert_details": map[string]any{
				"method": slowRes.Method,
				"reason": slowRes.Reason,
				"scores": slowRes.Scores,
			},
		}
	}
	return res
}

// Warmup forces the slow tier to load now, off the request path. Callers
// invoke it from startup when tail latency on the triggering request is
// unacceptable.
func (h *Hybrid) Warmup() {
	h.ensureSlow()
}

// SlowLoaded reports whether the slow tier is loaded.
func (h *Hybrid) SlowLoaded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == slowLoaded
}

// SlowDisabled reports whether the slow tier is permanently disabled.
func (h *Hybrid) SlowDisabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == slowDisabled
}

func (h *Hybrid) slowAvailable() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state != slowDisabled
}

// ensureSlow performs the guarded one-time load. Exactly one caller runs the
// factory; a failure moves the state machine to slowDisabled for the rest of
// the process lifetime, so the load cost is never paid repeatedly.
func (h *Hybrid) ensureSlow() SlowClassifier {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case slowLoaded:
		return h.slow
	case slowDisabled:
		return nil
	}

	slow, err := h.factory()
	if err != nil {
		log.Errorf("Slow classifier failed to load, degrading to fast-only: %v", err)
		h.state = slowDisabled
		return nil
	}
	h.slow = slow
	h.state = slowLoaded
	log.Info("Slow classifier loaded")
	return slow
}
