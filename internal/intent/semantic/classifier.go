// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

const (
	// DefaultConfidenceThreshold gates the low-confidence demotion.
	DefaultConfidenceThreshold = 0.60

	// exactCloseConfidence mirrors the fast tier's canned close confidence.
	exactCloseConfidence = 0.98

	// heuristicConfidence is the fixed confidence of the pre-encoder
	// call/schedule disambiguation rules.
	heuristicConfidence = 0.95

	// minSpecificScore is the floor below which no specific route is
	// trusted over normal_qa.
	minSpecificScore = 0.05
)

// Methods reported in classification details.
const (
	MethodEmbedding = "bert"
	MethodRule      = "bert_rule"
)

// Result is the slow tier's classification output.
type Result struct {
	Route      string
	Confidence float64
	Method     string
	Reason     string
	Scores     map[string]float64
}

// Substring word lists for the pre-encoder heuristics. These exist to split
// "call sales now" (agent_request) from "call me tomorrow" (scheduler), a
// distinction embedding similarity does not capture reliably. Common
// misspellings are included on purpose.
var (
	heuristicScheduleWords = []string{
		"schedule", "scheduled", "scheduling", "shedule", "booking",
		"book", "appointment", "reserve", "reservation", "slot",
		"time slot", "reschedule",
	}
	heuristicCallWords  = []string{"call", "phone", "meeting", "session"}
	heuristicHumanWords = []string{
		"agent", "human", "representative", "person", "someone",
		"support", "customer service", "sales", "sales team", "salesperson",
	}
	// Trailing spaces on "next ", "after ", "in " keep "interest" or
	// "within" from matching as future-time markers.
	heuristicFutureWords = []string{
		"tomorrow", "tommorow", "next ", "later", "after ",
		"in ", "day after tomorrow",
	}
)

// Post-similarity gate word sets. These intentionally duplicate the fast
// tier's sets; the two tiers are tuned independently.
var (
	gateAgentMarkers = tokenList(
		"agent", "human", "representative", "operator", "someone",
		"person", "support", "customer", "service", "sales", "team",
	)
	gateCommVerbs = tokenList(
		"talk", "speak", "call", "connect", "contact",
		"reach", "transfer", "escalate",
	)
	gateScheduleMarkers = tokenList(
		"schedule", "scheduling", "scheduled", "reschedule",
		"book", "booking", "appointment", "reservation",
		"reserve", "slot", "arrange", "calendar",
		"meeting",
	)
)

var wordRe = regexp.MustCompile(`\w+`)

func tokenList(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func queryWords(query string) map[string]struct{} {
	matches := wordRe.FindAllString(strings.ToLower(query), -1)
	s := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		s[m] = struct{}{}
	}
	return s
}

func hasAnyWord(words map[string]struct{}, set map[string]struct{}) bool {
	for w := range set {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

func hasAnySubstring(text string, list []string) bool {
	for _, s := range list {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// Classifier compares query embeddings against per-route centroid
// embeddings. Construction encodes every catalog example once; after that
// the instance is read-only and safe for concurrent use.
type Classifier struct {
	catalog   *routes.Catalog
	encoder   Encoder
	threshold float64

	centroids map[string][]float32
}

// NewClassifier encodes the catalog's examples and averages them into one
// centroid per route. This is the model-load-adjacent cost the coordinator
// pays lazily.
func NewClassifier(catalog *routes.Catalog, encoder Encoder, threshold float64) (*Classifier, error) {
	if encoder == nil || !encoder.IsEnabled() {
		return nil, fmt.Errorf("sentence encoder not available")
	}
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}

	c := &Classifier{
		catalog:   catalog,
		encoder:   encoder,
		threshold: threshold,
		centroids: make(map[string][]float32, catalog.Len()),
	}

	for _, r := range catalog.Routes() {
		var centroid []float32
		encoded := 0
		for _, example := range r.Examples {
			vec, err := c.encoder.Embed(example)
			if err != nil {
				log.Warnf("Failed to embed example for route %s: %v", r.Name, err)
				continue
			}
			if centroid == nil {
				centroid = make([]float32, len(vec))
			}
			for i, v := range vec {
				centroid[i] += v
			}
			encoded++
		}
		if encoded == 0 {
			return nil, fmt.Errorf("failed to embed any example for route %q", r.Name)
		}
		for i := range centroid {
			centroid[i] /= float32(encoded)
		}
		c.centroids[r.Name] = centroid
	}

	log.Infof("Semantic classifier ready with %d route centroids", len(c.centroids))
	return c, nil
}

// Classify runs the rule pre-filters, then the embedding comparison and
// demotion gates.
func (c *Classifier) Classify(query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return &Result{Route: routes.NormalQA, Confidence: 0.0, Method: MethodRule, Reason: "empty_query"}, nil
	}

	if routes.IsClosePhrase(routes.NormalizeExact(query)) {
		return &Result{
			Route:      routes.ConversationClose,
			Confidence: exactCloseConfidence,
			Method:     MethodRule,
			Reason:     "exact_close_match",
		}, nil
	}

	// Call/schedule disambiguation runs before the encoder: a future-time
	// or booking word alongside a call word means scheduling; a call word
	// with a human target and no time language means escalation.
	qLower := strings.ToLower(query)
	hasSchedule := hasAnySubstring(qLower, heuristicScheduleWords)
	hasCall := hasAnySubstring(qLower, heuristicCallWords)
	hasHuman := hasAnySubstring(qLower, heuristicHumanWords)
	hasFuture := hasAnySubstring(qLower, heuristicFutureWords)

	if hasCall && (hasSchedule || hasFuture) {
		return &Result{
			Route:      routes.Scheduler,
			Confidence: heuristicConfidence,
			Method:     MethodRule,
			Reason:     "schedule_or_future_call_heuristic",
		}, nil
	}
	if hasCall && hasHuman && !(hasSchedule || hasFuture) {
		return &Result{
			Route:      routes.AgentRequest,
			Confidence: heuristicConfidence,
			Method:     MethodRule,
			Reason:     "immediate_call_heuristic",
		}, nil
	}

	queryEmbedding, err := c.encoder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scores := make(map[string]float64, len(c.centroids))
	best := ""
	for _, r := range c.catalog.Routes() {
		sim := CosineSimilarity(queryEmbedding, c.centroids[r.Name])
		scores[r.Name] = sim
		if best == "" || sim > scores[best] {
			best = r.Name
		}
	}
	confidence := scores[best]

	// The same marker/verb and scheduling-word gates as the fast tier,
	// applied to similarity scores.
	words := queryWords(query)
	if best == routes.AgentRequest {
		if !(hasAnyWord(words, gateAgentMarkers) && hasAnyWord(words, gateCommVerbs)) {
			best = routes.NormalQA
			confidence = scores[routes.NormalQA]
		}
	}
	if best == routes.Scheduler {
		if !hasAnyWord(words, gateScheduleMarkers) {
			best = routes.NormalQA
			confidence = scores[routes.NormalQA]
		}
	}

	maxSpecific := scores[routes.Greeting]
	for _, name := range []string{routes.AgentRequest, routes.Scheduler, routes.ConversationClose} {
		if scores[name] > maxSpecific {
			maxSpecific = scores[name]
		}
	}

	if confidence < minSpecificScore || maxSpecific < minSpecificScore {
		best = routes.NormalQA
		confidence = scores[routes.NormalQA]
	} else if best != routes.NormalQA && confidence < c.threshold {
		// Note the 0.9 factor: the slow tier lets normal_qa win a near
		// tie, where the fast tier requires a strict score advantage.
		if scores[routes.NormalQA] >= confidence*0.9 {
			best = routes.NormalQA
			confidence = scores[routes.NormalQA]
		}
	}

	return &Result{
		Route:      best,
		Confidence: confidence,
		Method:     MethodEmbedding,
		Scores:     scores,
	}, nil
}

// Threshold returns the configured confidence threshold.
func (c *Classifier) Threshold() float64 {
	return c.threshold
}
