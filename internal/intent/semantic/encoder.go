// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package semantic implements the slow classification tier: a sentence
// encoder over an ONNX MiniLM model and a cosine-similarity classifier
// against per-route centroid embeddings. It is loaded lazily; the fast tier
// answers most traffic without it.
package semantic

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	ort "github.com/yalue/onnxruntime_go"
)

const (
	// DefaultModelName is the sentence encoder used for route matching.
	DefaultModelName = "all-MiniLM-L6-v2"

	// embeddingDim is the MiniLM output dimension.
	embeddingDim = 384

	// maxSequenceLength caps the tokenized input length. Chat turns are
	// short; 128 matches the original service's truncation limit.
	maxSequenceLength = 128
)

// Encoder turns text into a dense sentence embedding. The classifier depends
// on this interface so tests can substitute a deterministic stub.
type Encoder interface {
	// Embed returns the L2-normalized sentence embedding of text.
	Embed(text string) ([]float32, error)

	// IsEnabled reports whether the encoder is ready for inference.
	IsEnabled() bool
}

// OnnxEncoder runs MiniLM through the ONNX runtime with attention-masked
// mean pooling over the token embeddings.
type OnnxEncoder struct {
	session   *ort.DynamicAdvancedSession
	tokenizer *WordPieceTokenizer

	modelPath string
	vocabPath string

	enabled bool
	mu      sync.RWMutex
}

// EncoderConfig locates the model artifacts on disk.
type EncoderConfig struct {
	// ModelPath is the ONNX model file.
	ModelPath string

	// VocabPath is the WordPiece vocabulary file.
	VocabPath string

	// SharedLibraryPath is the ONNX runtime shared library. Empty means
	// the runtime's default lookup.
	SharedLibraryPath string
}

// NewOnnxEncoder creates an encoder. No resources are acquired until
// Initialize.
func NewOnnxEncoder(cfg EncoderConfig) (*OnnxEncoder, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("model path is required")
	}
	return &OnnxEncoder{
		modelPath: cfg.ModelPath,
		vocabPath: cfg.VocabPath,
	}, nil
}

// Initialize loads the ONNX model and vocabulary. This is the expensive step
// the coordinator defers until the first low-confidence query.
func (e *OnnxEncoder) Initialize(sharedLibPath string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := os.Stat(e.modelPath); os.IsNotExist(err) {
		return fmt.Errorf("model file not found: %s", e.modelPath)
	}

	if sharedLibPath != "" {
		ort.SetSharedLibraryPath(sharedLibPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("failed to initialize ONNX runtime: %w", err)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return fmt.Errorf("failed to create session options: %w", err)
	}
	defer options.Destroy()

	session, err := ort.NewDynamicAdvancedSession(
		e.modelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{"last_hidden_state"},
		options,
	)
	if err != nil {
		return fmt.Errorf("failed to load ONNX model: %w", err)
	}

	tokenizer, err := NewWordPieceTokenizer(e.vocabPath)
	if err != nil {
		session.Destroy()
		return fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	e.session = session
	e.tokenizer = tokenizer
	e.enabled = true
	log.Infof("Sentence encoder initialized with model: %s", filepath.Base(e.modelPath))
	return nil
}

// IsEnabled reports whether the encoder is ready for inference.
func (e *OnnxEncoder) IsEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.enabled
}

// Embed tokenizes text and runs one forward pass through the model.
func (e *OnnxEncoder) Embed(text string) ([]float32, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.enabled {
		return nil, fmt.Errorf("sentence encoder not initialized")
	}

	input, err := e.tokenizer.Encode(text, maxSequenceLength)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}
	return e.infer(input)
}

// infer executes the session and reduces the hidden states to one vector.
// Must be called with the read lock held.
func (e *OnnxEncoder) infer(input *EncodedInput) ([]float32, error) {
	seqLen := int64(len(input.InputIDs))

	inputIDs, err := ort.NewTensor(ort.NewShape(1, seqLen), input.InputIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create input_ids tensor: %w", err)
	}
	defer inputIDs.Destroy()

	attentionMask, err := ort.NewTensor(ort.NewShape(1, seqLen), input.AttentionMask)
	if err != nil {
		return nil, fmt.Errorf("failed to create attention_mask tensor: %w", err)
	}
	defer attentionMask.Destroy()

	tokenTypeIDs, err := ort.NewTensor(ort.NewShape(1, seqLen), input.TokenTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create token_type_ids tensor: %w", err)
	}
	defer tokenTypeIDs.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, seqLen, int64(embeddingDim)))
	if err != nil {
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}
	defer output.Destroy()

	err = e.session.Run(
		[]ort.ArbitraryTensor{inputIDs, attentionMask, tokenTypeIDs},
		[]ort.ArbitraryTensor{output},
	)
	if err != nil {
		return nil, fmt.Errorf("ONNX inference failed: %w", err)
	}

	embedding := meanPool(output.GetData(), input.AttentionMask, int(seqLen))
	return l2Normalize(embedding), nil
}

// meanPool averages token embeddings over the positions the attention mask
// marks as real input.
func meanPool(hidden []float32, attentionMask []int64, seqLen int) []float32 {
	pooled := make([]float32, embeddingDim)
	var weight float32
	for i := 0; i < seqLen; i++ {
		if attentionMask[i] != 1 {
			continue
		}
		for j := 0; j < embeddingDim; j++ {
			pooled[j] += hidden[i*embeddingDim+j]
		}
		weight++
	}
	if weight > 0 {
		for j := range pooled {
			pooled[j] /= weight
		}
	}
	return pooled
}

func l2Normalize(vec []float32) []float32 {
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	norm = float32(math.Sqrt(float64(norm)))
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// CosineSimilarity computes the cosine similarity of two embeddings,
// returning 0 for mismatched lengths or zero vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Shutdown releases the ONNX session.
func (e *OnnxEncoder) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled {
		return nil
	}
	if e.session != nil {
		e.session.Destroy()
		e.session = nil
	}
	e.enabled = false
	log.Info("Sentence encoder shut down")
	return nil
}
