// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

// stubEncoder returns canned vectors keyed by exact text. Texts without an
// entry produce an error, which exercises the failure paths.
type stubEncoder struct {
	vectors map[string][]float32
	calls   int
}

func (s *stubEncoder) Embed(text string) ([]float32, error) {
	s.calls++
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return nil, fmt.Errorf("no stub vector for %q", text)
}

func (s *stubEncoder) IsEnabled() bool { return true }

// axis returns a 7-dim one-hot vector. Dimensions 0..5 map to the catalog's
// route order; dimension 6 is noise mass used to pull similarities down.
func axis(i int) []float32 {
	v := make([]float32, 7)
	v[i] = 1.0
	return v
}

func stubCatalog(t *testing.T) *routes.Catalog {
	t.Helper()
	catalog, err := routes.NewCatalog([]routes.Route{
		{Name: routes.Greeting, Examples: []string{"ex-greeting"}},
		{Name: routes.AgentRequest, Examples: []string{"ex-agent"}},
		{Name: routes.Scheduler, Examples: []string{"ex-scheduler"}},
		{Name: routes.ConversationClose, Examples: []string{"ex-close"}},
		{Name: routes.Abusive, Examples: []string{"ex-abusive"}},
		{Name: routes.NormalQA, Examples: []string{"ex-normal"}},
	})
	require.NoError(t, err)
	return catalog
}

func exampleVectors() map[string][]float32 {
	return map[string][]float32{
		"ex-greeting":  axis(0),
		"ex-agent":     axis(1),
		"ex-scheduler": axis(2),
		"ex-close":     axis(3),
		"ex-abusive":   axis(4),
		"ex-normal":    axis(5),
	}
}

func newStubClassifier(t *testing.T, extra map[string][]float32) (*Classifier, *stubEncoder) {
	t.Helper()
	vectors := exampleVectors()
	for k, v := range extra {
		vectors[k] = v
	}
	enc := &stubEncoder{vectors: vectors}
	c, err := NewClassifier(stubCatalog(t), enc, DefaultConfidenceThreshold)
	require.NoError(t, err)
	return c, enc
}

func TestNewClassifierRequiresEncoder(t *testing.T) {
	_, err := NewClassifier(stubCatalog(t), nil, 0)
	assert.Error(t, err)
}

func TestNewClassifierFailsWhenRouteHasNoEmbeddableExample(t *testing.T) {
	vectors := exampleVectors()
	delete(vectors, "ex-abusive")
	enc := &stubEncoder{vectors: vectors}

	_, err := NewClassifier(stubCatalog(t), enc, 0)
	assert.Error(t, err)
}

func TestClassifyEmptyQuery(t *testing.T) {
	c, enc := newStubClassifier(t, nil)
	before := enc.calls

	res, err := c.Classify("   ")
	require.NoError(t, err)
	assert.Equal(t, routes.NormalQA, res.Route)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, MethodRule, res.Method)
	assert.Equal(t, "empty_query", res.Reason)
	assert.Equal(t, before, enc.calls, "empty query must not reach the encoder")
}

func TestClassifyExactClose(t *testing.T) {
	c, enc := newStubClassifier(t, nil)
	before := enc.calls

	res, err := c.Classify("No, thanks!")
	require.NoError(t, err)
	assert.Equal(t, routes.ConversationClose, res.Route)
	assert.Equal(t, 0.98, res.Confidence)
	assert.Equal(t, MethodRule, res.Method)
	assert.Equal(t, "exact_close_match", res.Reason)
	assert.Equal(t, before, enc.calls, "canned phrases must not reach the encoder")
}

func TestClassifyFutureCallHeuristic(t *testing.T) {
	c, enc := newStubClassifier(t, nil)
	before := enc.calls

	for _, q := range []string{
		"call me tomorrow",
		"can we have a session next week",
		"book a call",
		"phone me later",
	} {
		res, err := c.Classify(q)
		require.NoError(t, err, q)
		assert.Equal(t, routes.Scheduler, res.Route, q)
		assert.Equal(t, 0.95, res.Confidence, q)
		assert.Equal(t, MethodRule, res.Method, q)
		assert.Equal(t, "schedule_or_future_call_heuristic", res.Reason, q)
	}
	assert.Equal(t, before, enc.calls)
}

func TestClassifyImmediateCallHeuristic(t *testing.T) {
	c, enc := newStubClassifier(t, nil)
	before := enc.calls

	for _, q := range []string{
		"call an agent right now",
		"i want a phone call with sales",
	} {
		res, err := c.Classify(q)
		require.NoError(t, err, q)
		assert.Equal(t, routes.AgentRequest, res.Route, q)
		assert.Equal(t, 0.95, res.Confidence, q)
		assert.Equal(t, "immediate_call_heuristic", res.Reason, q)
	}
	assert.Equal(t, before, enc.calls)
}

func TestClassifyEmbeddingPath(t *testing.T) {
	c, _ := newStubClassifier(t, map[string][]float32{
		"morning everyone": axis(0),
	})

	res, err := c.Classify("morning everyone")
	require.NoError(t, err)
	assert.Equal(t, routes.Greeting, res.Route)
	assert.InDelta(t, 1.0, res.Confidence, 1e-6)
	assert.Equal(t, MethodEmbedding, res.Method)
	require.Len(t, res.Scores, 6)
	assert.InDelta(t, 0.0, res.Scores[routes.NormalQA], 1e-6)
}

func TestClassifyAgentGateDemotion(t *testing.T) {
	// Embedding says agent_request, but the text has no communication verb;
	// the gate refuses the win.
	c, _ := newStubClassifier(t, map[string][]float32{
		"tell me about ticket queues": axis(1),
	})

	res, err := c.Classify("tell me about ticket queues")
	require.NoError(t, err)
	assert.Equal(t, routes.NormalQA, res.Route)
}

func TestClassifySchedulerGateDemotion(t *testing.T) {
	c, _ := newStubClassifier(t, map[string][]float32{
		"what about the agenda": axis(2),
	})

	res, err := c.Classify("what about the agenda")
	require.NoError(t, err)
	assert.Equal(t, routes.NormalQA, res.Route)
}

func TestClassifyLowConfidenceDemotion(t *testing.T) {
	// scheduler similarity 0.398, normal_qa 0.378: under the threshold and
	// within the 0.9 ratio, so normal_qa takes the win.
	query := make([]float32, 7)
	query[2] = 0.4
	query[5] = 0.38
	query[6] = 0.84

	c, _ := newStubClassifier(t, map[string][]float32{
		"thoughts on the schedule maybe": query,
	})

	res, err := c.Classify("thoughts on the schedule maybe")
	require.NoError(t, err)
	assert.Equal(t, routes.NormalQA, res.Route)
	assert.Equal(t, MethodEmbedding, res.Method)
	assert.InDelta(t, res.Scores[routes.NormalQA], res.Confidence, 1e-9)
}

func TestClassifyConfidentSpecificWinSurvives(t *testing.T) {
	c, _ := newStubClassifier(t, map[string][]float32{
		"please arrange an appointment": axis(2),
	})

	res, err := c.Classify("please arrange an appointment")
	require.NoError(t, err)
	assert.Equal(t, routes.Scheduler, res.Route)
	assert.InDelta(t, 1.0, res.Confidence, 1e-6)
}

func TestClassifyEncoderError(t *testing.T) {
	c, _ := newStubClassifier(t, nil)

	_, err := c.Classify("a query without a stub vector")
	assert.Error(t, err)
}

func TestThreshold(t *testing.T) {
	c, _ := newStubClassifier(t, nil)
	assert.Equal(t, DefaultConfidenceThreshold, c.Threshold())

	enc := &stubEncoder{vectors: exampleVectors()}
	c2, err := NewClassifier(stubCatalog(t), enc, 0.8)
	require.NoError(t, err)
	assert.Equal(t, 0.8, c2.Threshold())
}
