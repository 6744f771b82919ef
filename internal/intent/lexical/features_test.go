// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			in:   "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "drops single characters",
			in:   "I am a user",
			want: []string{"am", "user"},
		},
		{
			name: "collapses repeated separators",
			in:   "what -- is   TCP?",
			want: []string{"what", "is", "tcp"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestBigrams(t *testing.T) {
	assert.Equal(t, []string{"want to", "to schedule"}, Bigrams("want to schedule"))
	assert.Nil(t, Bigrams("hello"))
	assert.Nil(t, Bigrams(""))
}

func TestPreprocess(t *testing.T) {
	assert.Equal(t, "how are you?", Preprocess("  How   are you?  "))
	assert.Equal(t, "", Preprocess("   "))
	// Punctuation survives preprocessing; only tokenization strips it.
	assert.Equal(t, "what's up!", Preprocess("What's up!"))
}

func testCatalog(t *testing.T) *routes.Catalog {
	t.Helper()
	catalog, err := routes.NewCatalog([]Route{
		{Name: routes.Greeting, Examples: []string{"hello there", "good morning"}},
		{Name: routes.NormalQA, Examples: []string{"what is tcp", "explain tcp handshaking"}},
	})
	require.NoError(t, err)
	return catalog
}

// Route aliases routes.Route so the literal above stays readable.
type Route = routes.Route

func TestBuildTables(t *testing.T) {
	tables := BuildTables(testCatalog(t))

	// 4 documents, "tcp" appears in 2.
	wantIDF := math.Log(5.0/3.0) + 1
	assert.InDelta(t, wantIDF, tables.IDF["tcp"], 1e-9)

	// "hello" appears in 1 document.
	wantIDF = math.Log(5.0/2.0) + 1
	assert.InDelta(t, wantIDF, tables.IDF["hello"], 1e-9)

	// Vocabulary indices are dense and stable.
	assert.Len(t, tables.Vocabulary, len(tables.IDF))
	seen := make(map[int]bool)
	for _, idx := range tables.Vocabulary {
		assert.False(t, seen[idx])
		seen[idx] = true
		assert.Less(t, idx, len(tables.Vocabulary))
	}
}

func TestToVector(t *testing.T) {
	tables := BuildTables(testCatalog(t))

	vec := tables.ToVector("what is tcp")
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9, "vector must be L2 normalized")

	// Unknown tokens contribute nothing.
	zero := tables.ToVector("quantum entanglement")
	for _, v := range zero {
		assert.Zero(t, v)
	}
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}))
	assert.Zero(t, Cosine([]float64{1}, []float64{1, 2}), "length mismatch yields zero")
}
