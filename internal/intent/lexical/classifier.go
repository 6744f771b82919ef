// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lexical

import (
	"strings"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

// Ensemble weights. The five signals are combined linearly; the weights sum
// to 1.0 so the ensemble score stays in [0,1].
const (
	weightTFIDF   = 0.30
	weightPattern = 0.25
	weightKeyword = 0.20
	weightPhrase  = 0.15
	weightBigram  = 0.10
)

// Decision thresholds for the post-ensemble demotion cascade.
const (
	// minSpecificScore is the floor below which no specific route is
	// trusted and the query falls through to normal_qa.
	minSpecificScore = 0.05

	// lowConfidence marks an ensemble winner weak enough to lose a direct
	// comparison against the normal_qa score.
	lowConfidence = 0.20

	// exactCloseConfidence is the fixed confidence for canned close phrases.
	exactCloseConfidence = 0.98
)

// SignalScores carries the per-route component scores of one classification.
type SignalScores struct {
	Ensemble float64 `json:"ensemble"`
	TFIDF    float64 `json:"tfidf"`
	Pattern  float64 `json:"pattern"`
	Keyword  float64 `json:"keyword"`
	Phrase   float64 `json:"phrase"`
	Bigram   float64 `json:"ngram"`
}

// Word sets for the route-specific guards. These correct the two systematic
// failure modes of bag-of-words scoring: technical questions that share
// vocabulary with escalation requests, and domain nouns like "meeting" that
// appear without any booking intent.
var (
	// infoTerms mark an information-seeking query inside the pattern signal.
	infoTerms = wordSet("know", "understand", "learn", "about", "explain", "tell")

	// patternAgentTerms are the human-referring words the pattern signal
	// requires alongside an information-seeking term.
	patternAgentTerms = wordSet("agent", "human", "representative", "operator", "person", "support")

	// keywordAgentTerms and keywordActionVerbs gate the keyword signal for
	// agent_request: both must be present or the signal is zeroed.
	keywordAgentTerms  = wordSet("agent", "human", "representative", "operator")
	keywordActionVerbs = wordSet("speak", "talk", "connect", "transfer", "need", "want", "get")

	// technicalTerms force-zero the agent_request keyword signal on queries
	// about protocols and comparisons unless a full agent phrase is present.
	technicalTerms = wordSet(
		"tcp", "http", "api", "protocol", "relationship", "between",
		"difference", "comparison", "vs", "versus", "know", "understand",
		"learn", "handshaking", "data",
	)

	// agentMarkers and commVerbs implement the post-ensemble agent_request
	// gate: the winner is demoted unless the query has one of each.
	agentMarkers = wordSet(
		"agent", "human", "representative", "operator", "someone",
		"person", "support", "customer", "service", "sales", "team",
	)
	commVerbs = wordSet(
		"talk", "speak", "call", "connect", "contact",
		"reach", "transfer", "escalate",
	)

	// scheduleMarkers implement the post-ensemble scheduler gate.
	scheduleMarkers = wordSet(
		"schedule", "scheduling", "scheduled", "reschedule",
		"book", "booking", "appointment", "reservation",
		"reserve", "slot", "arrange", "calendar",
		"meeting",
	)
)

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func tokenSet(text string) map[string]struct{} {
	toks := Tokenize(text)
	s := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		s[t] = struct{}{}
	}
	return s
}

func containsAny(tokens map[string]struct{}, set map[string]struct{}) bool {
	for w := range set {
		if _, ok := tokens[w]; ok {
			return true
		}
	}
	return false
}

// Classifier is the fast lexical tier. All state is derived from the catalog
// at construction and read-only afterwards, so a single instance may be
// shared across concurrent callers.
type Classifier struct {
	catalog      *routes.Catalog
	tables       *Tables
	routeVectors map[string][]float64
	routeBigrams map[string]map[string]struct{}
}

// NewClassifier derives the vocabulary, IDF table, route centroid vectors,
// and per-route bigram sets from the catalog.
func NewClassifier(catalog *routes.Catalog) *Classifier {
	tables := BuildTables(catalog)

	c := &Classifier{
		catalog:      catalog,
		tables:       tables,
		routeVectors: make(map[string][]float64, catalog.Len()),
		routeBigrams: make(map[string]map[string]struct{}, catalog.Len()),
	}

	dim := len(tables.Vocabulary)
	for _, r := range catalog.Routes() {
		centroid := make([]float64, dim)
		for _, example := range r.Examples {
			vec := tables.ToVector(example)
			for i, v := range vec {
				centroid[i] += v
			}
		}
		if n := len(r.Examples); n > 0 {
			for i := range centroid {
				centroid[i] /= float64(n)
			}
		}
		c.routeVectors[r.Name] = centroid

		grams := make(map[string]struct{})
		for _, example := range r.Examples {
			for _, g := range Bigrams(example) {
				grams[g] = struct{}{}
			}
		}
		c.routeBigrams[r.Name] = grams
	}
	return c
}

// Tables exposes the frozen vocabulary and IDF tables, mainly for tests.
func (c *Classifier) Tables() *Tables {
	return c.tables
}

// patternScore is the fraction of the route's regexes matching the query.
// abusive short-circuits to 1.0 on any hit; agent_request is zeroed for
// information-seeking queries that never mention a human.
func (c *Classifier) patternScore(query, routeName string) float64 {
	r := c.catalog.Get(routeName)
	if r == nil || len(r.CompiledPatterns()) == 0 {
		return 0.0
	}
	patterns := r.CompiledPatterns()

	if routeName == routes.Abusive {
		for _, re := range patterns {
			if re.MatchString(query) {
				return 1.0
			}
		}
	}

	if routeName == routes.AgentRequest {
		words := tokenSet(query)
		if containsAny(words, infoTerms) && !containsAny(words, patternAgentTerms) {
			return 0.0
		}
	}

	matches := 0
	for _, re := range patterns {
		if re.MatchString(query) {
			matches++
		}
	}
	return float64(matches) / float64(len(patterns))
}

// keywordScore is the fraction of the route's keywords present as tokens or
// substrings. abusive short-circuits to 1.0; agent_request requires an agent
// word plus an action verb and refuses technical queries.
func (c *Classifier) keywordScore(query string, r *routes.Route) float64 {
	words := tokenSet(query)
	if len(words) == 0 {
		return 0.0
	}

	if r.Name == routes.Abusive {
		for _, kw := range r.Keywords {
			if _, ok := words[kw]; ok {
				return 1.0
			}
			if strings.Contains(query, kw) {
				return 1.0
			}
		}
	}

	if r.Name == routes.AgentRequest {
		hasAgent := containsAny(words, keywordAgentTerms)
		hasVerb := containsAny(words, keywordActionVerbs)
		if containsAny(words, technicalTerms) && !(hasAgent && hasVerb) {
			return 0.0
		}
		if !(hasAgent && hasVerb) {
			return 0.0
		}
	}

	if len(r.Keywords) == 0 {
		return 0.0
	}
	matches := 0
	for _, kw := range r.Keywords {
		if _, ok := words[kw]; ok {
			matches++
			continue
		}
		if strings.Contains(query, kw) {
			matches++
		}
	}
	return float64(matches) / float64(len(r.Keywords))
}

// phraseScore is the fraction of the route's phrases appearing as substrings.
// abusive short-circuits to 1.0 on any hit.
func (c *Classifier) phraseScore(query string, r *routes.Route) float64 {
	if len(r.Phrases) == 0 {
		return 0.0
	}

	if r.Name == routes.Abusive {
		for _, p := range r.Phrases {
			if strings.Contains(query, p) {
				return 1.0
			}
		}
	}

	matches := 0
	for _, p := range r.Phrases {
		if strings.Contains(query, p) {
			matches++
		}
	}
	return float64(matches) / float64(len(r.Phrases))
}

// tfidfScore is the cosine similarity of the query vector and the route
// centroid.
func (c *Classifier) tfidfScore(query, routeName string) float64 {
	return Cosine(c.tables.ToVector(query), c.routeVectors[routeName])
}

// bigramScore is the Jaccard index of the query's bigram set against the
// union of the route's example bigrams.
func (c *Classifier) bigramScore(query, routeName string) float64 {
	queryGrams := make(map[string]struct{})
	for _, g := range Bigrams(query) {
		queryGrams[g] = struct{}{}
	}
	if len(queryGrams) == 0 {
		return 0.0
	}
	routeGrams := c.routeBigrams[routeName]
	if len(routeGrams) == 0 {
		return 0.0
	}

	intersection := 0
	for g := range queryGrams {
		if _, ok := routeGrams[g]; ok {
			intersection++
		}
	}
	union := len(queryGrams) + len(routeGrams) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func (c *Classifier) score(query, routeName string) SignalScores {
	r := c.catalog.Get(routeName)
	s := SignalScores{
		TFIDF:   c.tfidfScore(query, routeName),
		Pattern: c.patternScore(query, routeName),
		Keyword: c.keywordScore(query, r),
		Phrase:  c.phraseScore(query, r),
		Bigram:  c.bigramScore(query, routeName),
	}
	s.Ensemble = weightTFIDF*s.TFIDF +
		weightPattern*s.Pattern +
		weightKeyword*s.Keyword +
		weightPhrase*s.Phrase +
		weightBigram*s.Bigram
	return s
}

// Classify scores the query against every route and applies the demotion
// cascade. It returns the winning route, its ensemble score, and the
// per-route signal breakdown.
func (c *Classifier) Classify(query string) (string, float64, map[string]SignalScores) {
	q := Preprocess(query)
	if len(q) == 0 {
		return routes.NormalQA, 0.0, map[string]SignalScores{}
	}

	// Canned close phrases bypass the ensemble entirely.
	if routes.IsClosePhrase(q) {
		return routes.ConversationClose, exactCloseConfidence, map[string]SignalScores{
			routes.ConversationClose: {Ensemble: exactCloseConfidence},
		}
	}

	detail := make(map[string]SignalScores, c.catalog.Len())
	best := ""
	for _, r := range c.catalog.Routes() {
		s := c.score(q, r.Name)
		detail[r.Name] = s
		if best == "" || s.Ensemble > detail[best].Ensemble {
			best = r.Name
		}
	}
	confidence := detail[best].Ensemble

	// Naive similarity over-triggers agent_request on any query sharing
	// vocabulary with escalation examples. Require an explicit marker and
	// verb before trusting the win.
	if best == routes.AgentRequest {
		words := tokenSet(q)
		if !(containsAny(words, agentMarkers) && containsAny(words, commVerbs)) {
			best = routes.NormalQA
			confidence = detail[routes.NormalQA].Ensemble
		}
	}

	// Same correction for scheduler: "meeting" alone is not booking intent.
	if best == routes.Scheduler {
		words := tokenSet(q)
		if !containsAny(words, scheduleMarkers) {
			best = routes.NormalQA
			confidence = detail[routes.NormalQA].Ensemble
		}
	}

	maxSpecific := max4(
		detail[routes.Greeting].Ensemble,
		detail[routes.AgentRequest].Ensemble,
		detail[routes.Scheduler].Ensemble,
		detail[routes.ConversationClose].Ensemble,
	)

	if confidence < minSpecificScore || maxSpecific < minSpecificScore {
		best = routes.NormalQA
		confidence = detail[routes.NormalQA].Ensemble
	} else if best != routes.NormalQA && confidence < lowConfidence {
		if detail[routes.NormalQA].Ensemble >= confidence {
			best = routes.NormalQA
			confidence = detail[routes.NormalQA].Ensemble
		}
	}

	return best, confidence, detail
}

func max4(a, b, c, d float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	if d > m {
		m = d
	}
	return m
}
