// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intent

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

// genQuery produces arbitrary chat-like input: random words from the domain
// vocabulary mixed with arbitrary printable noise.
func genQuery() gopter.Gen {
	words := []string{
		"hello", "hi", "agent", "human", "schedule", "book", "call",
		"meeting", "tomorrow", "no", "thanks", "bye", "what", "is",
		"tcp", "help", "please", "talk", "speak", "connect", "now",
		"stupid", "price", "order", "support", "sales", "you", "me",
	}
	return gen.SliceOfN(6, gen.IntRange(0, len(words)-1)).Map(func(idxs []int) string {
		out := ""
		for i, idx := range idxs {
			if i > 0 {
				out += " "
			}
			out += words[idx]
		}
		return out
	})
}

// TestProperty_RouteEnumClosure: every classification lands in the fixed
// route set with a confidence in [0,1].
func TestProperty_RouteEnumClosure(t *testing.T) {
	properties := gopter.NewProperties(nil)
	h := New(nil)

	properties.Property("route is always a known name with bounded confidence", prop.ForAll(
		func(query string) bool {
			res := h.Classify(query, false)
			return routes.Valid(res.Route) &&
				res.Confidence >= 0.0 && res.Confidence <= 1.0
		},
		genQuery(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestProperty_Determinism: the same classifier instance gives identical
// answers for identical input.
func TestProperty_Determinism(t *testing.T) {
	properties := gopter.NewProperties(nil)
	h := New(nil)

	properties.Property("repeated classification is stable", prop.ForAll(
		func(query string) bool {
			first := h.Classify(query, true)
			second := h.Classify(query, true)
			return first.Route == second.Route &&
				first.Confidence == second.Confidence &&
				first.Method == second.Method &&
				first.Reason == second.Reason
		},
		genQuery(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestProperty_ClosePhraseIdempotence: every canned close phrase classifies
// as conversation_close at 0.98, with or without decorating punctuation.
func TestProperty_ClosePhraseIdempotence(t *testing.T) {
	properties := gopter.NewProperties(nil)
	h := New(nil)

	phrases := routes.ClosePhrases()
	properties.Property("close phrases always close", prop.ForAll(
		func(idx int, suffix string) bool {
			q := phrases[idx%len(phrases)] + suffix
			res := h.Classify(q, false)
			return res.Route == routes.ConversationClose && res.Confidence == 0.98
		},
		gen.IntRange(0, len(phrases)-1),
		gen.OneConstOf("", "!", ".", "!!", "?"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestProperty_ArbitraryTextNeverPanics: classification of arbitrary unicode
// never panics and never produces an out-of-range confidence.
func TestProperty_ArbitraryTextNeverPanics(t *testing.T) {
	properties := gopter.NewProperties(nil)
	h := New(nil)

	properties.Property("arbitrary strings are handled", prop.ForAll(
		func(query string) bool {
			res := h.Classify(query, true)
			return routes.Valid(res.Route) &&
				res.Confidence >= 0.0 && res.Confidence <= 1.0
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
