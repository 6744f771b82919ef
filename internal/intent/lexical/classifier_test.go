// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

func newFastClassifier(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(routes.FastCatalog())
}

func TestClassifyEmptyQuery(t *testing.T) {
	c := newFastClassifier(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		route, confidence, detail := c.Classify(q)
		assert.Equal(t, routes.NormalQA, route, "%q", q)
		assert.Zero(t, confidence)
		assert.Empty(t, detail)
	}
}

func TestClassifyGreeting(t *testing.T) {
	c := newFastClassifier(t)

	for _, q := range []string{"hi", "Hey", "hello", "good morning", "yo"} {
		route, confidence, _ := c.Classify(q)
		assert.Equal(t, routes.Greeting, route, q)
		assert.Greater(t, confidence, 0.0, q)
	}
}

func TestClassifyTechnicalQueryStaysQA(t *testing.T) {
	c := newFastClassifier(t)

	// Shares "want" and "know" vocabulary with escalation examples; the
	// agent gates must keep it in normal_qa.
	for _, q := range []string{
		"I want to know about TCP handshaking",
		"What is the relationship between TCP and HTTP?",
		"Explain the difference between REST and GraphQL",
	} {
		route, _, _ := c.Classify(q)
		assert.Equal(t, routes.NormalQA, route, q)
	}
}

func TestClassifyAgentRequest(t *testing.T) {
	c := newFastClassifier(t)

	route, confidence, _ := c.Classify("I need to speak with an agent")
	assert.Equal(t, routes.AgentRequest, route)
	assert.GreaterOrEqual(t, confidence, 0.30)

	route, _, _ = c.Classify("connect me to customer support")
	assert.Equal(t, routes.AgentRequest, route)
}

func TestClassifyOrderQuestionStaysQA(t *testing.T) {
	c := newFastClassifier(t)

	// "place an order" must not read as booking intent.
	route, _, _ := c.Classify("How can I place an order?")
	assert.Equal(t, routes.NormalQA, route)
}

func TestClassifyScheduler(t *testing.T) {
	c := newFastClassifier(t)

	for _, q := range []string{
		"I want to schedule my meeting",
		"book an appointment for tomorrow",
		"can you reschedule my booking",
	} {
		route, _, _ := c.Classify(q)
		assert.Equal(t, routes.Scheduler, route, q)
	}
}

func TestClassifySchedulerGate(t *testing.T) {
	c := newFastClassifier(t)

	// A meeting mention without any booking word is not scheduling.
	route, _, _ := c.Classify("what happened in the quarterly review")
	assert.Equal(t, routes.NormalQA, route)
}

func TestClassifyAbusiveZeroTolerance(t *testing.T) {
	c := newFastClassifier(t)

	route, _, detail := c.Classify("you are stupid")
	require.Equal(t, routes.Abusive, route)

	// Any abusive hit pins the matching sub-scores to 1.0.
	s := detail[routes.Abusive]
	assert.Equal(t, 1.0, s.Keyword)
	assert.Equal(t, 1.0, s.Pattern)
}

func TestClassifyExactClose(t *testing.T) {
	c := newFastClassifier(t)

	route, confidence, detail := c.Classify("no thanks")
	assert.Equal(t, routes.ConversationClose, route)
	assert.Equal(t, 0.98, confidence)
	assert.Equal(t, 0.98, detail[routes.ConversationClose].Ensemble)

	// Leading or trailing whitespace still matches after preprocessing.
	route, confidence, _ = c.Classify("  BYE ")
	assert.Equal(t, routes.ConversationClose, route)
	assert.Equal(t, 0.98, confidence)
}

func TestClassifyDeterministic(t *testing.T) {
	c := newFastClassifier(t)

	queries := []string{
		"hello there",
		"I need to talk to a human",
		"book a slot next week",
		"what is tcp handshaking",
	}
	for _, q := range queries {
		r1, c1, _ := c.Classify(q)
		for i := 0; i < 5; i++ {
			r2, c2, _ := c.Classify(q)
			assert.Equal(t, r1, r2, q)
			assert.Equal(t, c1, c2, q)
		}
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	c := newFastClassifier(t)

	queries := []string{
		"hi", "bye", "I want to speak to an agent", "schedule a call",
		"you are an idiot", "what is the capital of france",
		"asdf qwerty zxcv", "no thanks",
	}
	for _, q := range queries {
		route, confidence, detail := c.Classify(q)
		assert.True(t, routes.Valid(route), q)
		assert.GreaterOrEqual(t, confidence, 0.0, q)
		assert.LessOrEqual(t, confidence, 1.0, q)
		for name, s := range detail {
			assert.GreaterOrEqual(t, s.Ensemble, 0.0, "%s/%s", q, name)
			assert.LessOrEqual(t, s.Ensemble, 1.0, "%s/%s", q, name)
		}
	}
}

func TestClassifyUnknownVocabularyFallsThrough(t *testing.T) {
	c := newFastClassifier(t)

	// Nothing in the catalog matches; every specific score lands under the
	// floor and the query degrades to normal_qa.
	route, _, detail := c.Classify("florble wizzle snorf")
	assert.Equal(t, routes.NormalQA, route)

	maxSpecific := 0.0
	for _, name := range []string{routes.Greeting, routes.AgentRequest, routes.Scheduler, routes.ConversationClose} {
		if detail[name].Ensemble > maxSpecific {
			maxSpecific = detail[name].Ensemble
		}
	}
	assert.Less(t, maxSpecific, 0.05)
}

func TestSignalBreakdownPresent(t *testing.T) {
	c := newFastClassifier(t)

	_, _, detail := c.Classify("I want to schedule a demo call")
	require.Len(t, detail, routes.FastCatalog().Len())
	for _, name := range routes.Names() {
		_, ok := detail[name]
		assert.True(t, ok, name)
	}
}
