// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOnnxEncoderRequiresModelPath(t *testing.T) {
	_, err := NewOnnxEncoder(EncoderConfig{})
	assert.Error(t, err)

	enc, err := NewOnnxEncoder(EncoderConfig{ModelPath: "/tmp/model.onnx"})
	require.NoError(t, err)
	assert.False(t, enc.IsEnabled(), "encoder must not be enabled before Initialize")
}

func TestInitializeMissingModel(t *testing.T) {
	enc, err := NewOnnxEncoder(EncoderConfig{ModelPath: "/nonexistent/model.onnx"})
	require.NoError(t, err)

	err = enc.Initialize("")
	assert.Error(t, err)
	assert.False(t, enc.IsEnabled())
}

func TestEmbedBeforeInitialize(t *testing.T) {
	enc, err := NewOnnxEncoder(EncoderConfig{ModelPath: "/tmp/model.onnx"})
	require.NoError(t, err)

	_, err = enc.Embed("hello")
	assert.Error(t, err)
}

func TestMeanPool(t *testing.T) {
	// Two tokens of dim embeddingDim; second token masked out.
	hidden := make([]float32, 2*embeddingDim)
	for i := 0; i < embeddingDim; i++ {
		hidden[i] = 2.0
		hidden[embeddingDim+i] = 10.0
	}

	pooled := meanPool(hidden, []int64{1, 0}, 2)
	require.Len(t, pooled, embeddingDim)
	for _, v := range pooled {
		assert.InDelta(t, 2.0, v, 1e-6)
	}

	// Both tokens attended: plain mean.
	pooled = meanPool(hidden, []int64{1, 1}, 2)
	for _, v := range pooled {
		assert.InDelta(t, 6.0, v, 1e-6)
	}
}

func TestL2Normalize(t *testing.T) {
	vec := l2Normalize([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(vec[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(vec[1]), 1e-6)

	// Zero vector stays zero rather than dividing by zero.
	zero := l2Normalize([]float32{0, 0})
	assert.Equal(t, float32(0), zero[0])
	assert.Equal(t, float32(0), zero[1])
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{5, 0}), 1e-6)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	assert.Zero(t, CosineSimilarity([]float32{1, 0}, []float32{1}), "length mismatch yields zero")
	assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
