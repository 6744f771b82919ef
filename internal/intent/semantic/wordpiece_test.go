// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semantic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordPieceTokenizerBuiltin(t *testing.T) {
	tok, err := NewWordPieceTokenizer("")
	require.NoError(t, err)
	assert.Greater(t, tok.VocabSize(), 0)
}

func TestNewWordPieceTokenizerFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	vocab := "[PAD]\n[UNK]\n[CLS]\n[SEP]\nhello\nworld\n##ing\ncall"
	require.NoError(t, os.WriteFile(path, []byte(vocab), 0o644))

	tok, err := NewWordPieceTokenizer(path)
	require.NoError(t, err)
	assert.Equal(t, 8, tok.VocabSize())

	enc, err := tok.Encode("hello world", 128)
	require.NoError(t, err)
	// [CLS] hello world [SEP]
	assert.Equal(t, []int64{2, 4, 5, 3}, enc.InputIDs)
}

func TestNewWordPieceTokenizerMissingFileFallsBack(t *testing.T) {
	tok, err := NewWordPieceTokenizer(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)
	assert.Greater(t, tok.VocabSize(), 0)
}

func TestEncodeShape(t *testing.T) {
	tok, err := NewWordPieceTokenizer("")
	require.NoError(t, err)

	tests := []struct {
		name      string
		text      string
		maxLength int
	}{
		{name: "simple text", text: "hello agent", maxLength: 128},
		{name: "empty text", text: "", maxLength: 128},
		{name: "punctuation", text: "hello, can I talk to a person?", maxLength: 128},
		{name: "truncation", text: "can you please schedule a call with the sales team for tomorrow morning", maxLength: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := tok.Encode(tt.text, tt.maxLength)
			require.NoError(t, err)

			assert.LessOrEqual(t, len(enc.InputIDs), tt.maxLength)
			assert.Len(t, enc.AttentionMask, len(enc.InputIDs))
			assert.Len(t, enc.TokenTypeIDs, len(enc.InputIDs))

			for i := range enc.AttentionMask {
				assert.Equal(t, int64(1), enc.AttentionMask[i])
				assert.Equal(t, int64(0), enc.TokenTypeIDs[i])
			}
		})
	}
}

func TestEncodeWrapsWithSpecialTokens(t *testing.T) {
	tok, err := NewWordPieceTokenizer("")
	require.NoError(t, err)

	enc, err := tok.Encode("hello", 128)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(enc.InputIDs), 3)
	assert.Equal(t, tok.clsID, enc.InputIDs[0])
	assert.Equal(t, tok.sepID, enc.InputIDs[len(enc.InputIDs)-1])
}

func TestEncodeTruncationKeepsSep(t *testing.T) {
	tok, err := NewWordPieceTokenizer("")
	require.NoError(t, err)

	enc, err := tok.Encode("talk to a human agent about the schedule for the meeting tomorrow", 6)
	require.NoError(t, err)
	assert.Len(t, enc.InputIDs, 6)
	assert.Equal(t, tok.sepID, enc.InputIDs[len(enc.InputIDs)-1])
}

func TestEncodeWordGreedyLongestMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	// "booking" must split into "book" + "##ing", not char-by-char.
	vocab := "[PAD]\n[UNK]\n[CLS]\n[SEP]\nbook\n##ing\n##i\n##n\n##g"
	require.NoError(t, os.WriteFile(path, []byte(vocab), 0o644))

	tok, err := NewWordPieceTokenizer(path)
	require.NoError(t, err)

	enc, err := tok.Encode("booking", 128)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 5, 3}, enc.InputIDs)
}

func TestEncodeUnknownWord(t *testing.T) {
	tok, err := NewWordPieceTokenizer("")
	require.NoError(t, err)

	enc, err := tok.Encode("zzzzxqj", 128)
	require.NoError(t, err)
	// Whatever pieces come out, none may be missing from the id space and
	// the sequence still wraps correctly.
	require.GreaterOrEqual(t, len(enc.InputIDs), 3)
	assert.Contains(t, enc.InputIDs, tok.unkID)
}

func TestSplitPunctuation(t *testing.T) {
	assert.Equal(t, "hello , world !", splitPunctuation("hello, world!"))
	assert.Equal(t, "what ' s up", splitPunctuation("what's up"))
	assert.Equal(t, "", splitPunctuation(""))
}
