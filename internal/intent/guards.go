// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intent

import (
	"strings"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

// A guard is a named deterministic predicate evaluated before either
// classifier tier. When its condition holds it returns a fixed-result
// override; otherwise nil and the next guard runs. Order matters: the slice in
// coordinatorGuards is the evaluation order.
type guard struct {
	name  string
	apply func(query string) *Result
}

// coordinatorGuards returns the ordered rule layer. Deterministic overrides
// beat statistical signal: when grammar makes the intent unambiguous, no
// ensemble or embedding gets a vote.
func coordinatorGuards() []guard {
	return []guard{
		{name: "empty_query", apply: emptyQueryGuard},
		{name: "exact_close_match", apply: exactCloseGuard},
		{name: "talk_to_bot_or_you_guard", apply: talkToBotGuard},
		{name: "explicit_contact_phrase", apply: explicitContactGuard},
	}
}

// emptyQueryGuard degrades blank input to normal_qa at zero confidence.
func emptyQueryGuard(query string) *Result {
	if strings.TrimSpace(query) == "" {
		return &Result{Route: routes.NormalQA, Confidence: 0.0, Method: MethodRule}
	}
	return nil
}

// exactCloseGuard catches the canned conversation-closing phrases.
func exactCloseGuard(query string) *Result {
	if routes.IsClosePhrase(routes.NormalizeExact(query)) {
		return &Result{
			Route:      routes.ConversationClose,
			Confidence: 0.98,
			Method:     MethodRule,
			Reason:     "exact_close_match",
		}
	}
	return nil
}

// Word lists for the remaining guards. All checks are substring matches on
// the lowercased query; entries like " you" carry deliberate spacing so
// "your" does not count as addressing the bot.
var (
	guardTalkMarkers = []string{"talk", "speak", "chat"}
	guardBotTargets  = []string{" you", "you ", " bot", "bot "}
	guardHumanWords  = []string{
		"agent", "human", "representative", "operator", "someone",
		"person", "support", "customer service", "customer-care",
		"customer care",
	}

	guardCommVerbs = []string{"talk", "speak", "call", "connect", "contact", "reach", "transfer"}
	guardTargets   = []string{
		"agent", "human", "representative", "person", "someone",
		"somebody", "support", "team", "staff", "sales", "sales team",
		"salesperson", "advisor", "consultant", "expert",
	}
	guardDirectPhrases = []string{
		"call me", "call us", "give me a call", "ring me",
		"connect me", "connect us",
	}
	guardScheduleWords = []string{"schedule", "book", "booking", "appointment", "slot"}
)

func containsAnySubstring(text string, list []string) bool {
	for _, s := range list {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// talkToBotGuard keeps "can I talk to you" with the bot. A talk verb aimed
// at "you"/"bot" with no human-referring word anywhere is a question for the
// assistant, not an escalation.
func talkToBotGuard(query string) *Result {
	q := strings.ToLower(query)
	if containsAnySubstring(q, guardTalkMarkers) &&
		containsAnySubstring(q, guardBotTargets) &&
		!containsAnySubstring(q, guardHumanWords) {
		return &Result{
			Route:      routes.NormalQA,
			Confidence: 0.95,
			Method:     MethodRule,
			Reason:     "talk_to_bot_or_you_guard",
		}
	}
	return nil
}

// explicitContactGuard fires agent_request for direct call-me phrasing or a
// communication verb aimed at an escalation target, unless scheduling
// language is also present (then the classifiers decide).
func explicitContactGuard(query string) *Result {
	q := strings.ToLower(query)
	hasDirect := containsAnySubstring(q, guardDirectPhrases)
	hasVerbTarget := containsAnySubstring(q, guardCommVerbs) && containsAnySubstring(q, guardTargets)
	hasSchedule := containsAnySubstring(q, guardScheduleWords)

	if (hasDirect || hasVerbTarget) && !hasSchedule {
		return &Result{
			Route:      routes.AgentRequest,
			Confidence: 0.97,
			Method:     MethodRule,
			Reason:     "explicit_contact_phrase",
		}
	}
	return nil
}
