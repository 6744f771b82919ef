// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semantic

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// EncodedInput is the tokenized form the model consumes.
type EncodedInput struct {
	InputIDs      []int64
	AttentionMask []int64
	TokenTypeIDs  []int64
}

// WordPieceTokenizer implements greedy longest-match WordPiece tokenization
// for BERT-style models. It loads the model's vocab.txt, one token per line;
// without a file it falls back to a minimal built-in vocabulary sized for
// short chat utterances.
type WordPieceTokenizer struct {
	vocab map[string]int64

	clsID int64
	sepID int64
	padID int64
	unkID int64
}

// NewWordPieceTokenizer loads a vocabulary file. A missing file is not an
// error; the built-in vocabulary keeps the encoder usable for smoke tests.
func NewWordPieceTokenizer(vocabPath string) (*WordPieceTokenizer, error) {
	t := &WordPieceTokenizer{vocab: make(map[string]int64)}

	if vocabPath == "" {
		t.initBuiltinVocab()
		return t, nil
	}

	file, err := os.Open(vocabPath)
	if err != nil {
		t.initBuiltinVocab()
		return t, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var id int64
	for scanner.Scan() {
		t.vocab[scanner.Text()] = id
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading vocabulary: %w", err)
	}

	t.resolveSpecialTokens()
	return t, nil
}

// initBuiltinVocab seeds a vocabulary covering the special tokens and the
// words the route catalogs actually use.
func (t *WordPieceTokenizer) initBuiltinVocab() {
	builtin := []string{
		"[PAD]", "[UNK]", "[CLS]", "[SEP]", "[MASK]",
		"the", "a", "an", "is", "are", "was", "were",
		"to", "of", "in", "for", "on", "with", "at",
		"by", "from", "as", "or", "and", "but", "not",
		"this", "that", "it", "be", "have", "has", "had",
		"do", "does", "did", "will", "would", "could", "should",
		"can", "may", "might", "must",
		"i", "you", "he", "she", "we", "they", "me", "us", "them",
		"my", "your", "our", "their",
		"what", "which", "who", "where", "when", "why", "how",
		"no", "nope", "yes", "ok", "okay", "thanks", "thank",
		"hello", "hi", "hey", "morning", "afternoon", "evening",
		"bye", "goodbye", "done", "nothing", "stop", "fine", "good",
		"agent", "human", "representative", "operator", "person", "someone",
		"support", "service", "customer", "sales", "team", "help",
		"speak", "talk", "call", "connect", "transfer", "contact",
		"schedule", "book", "appointment", "meeting", "reserve",
		"reservation", "slot", "session", "calendar", "tomorrow",
		"need", "want", "know", "understand", "learn", "about",
		"explain", "tell", "question", "information", "cost", "price",
		"hours", "policy", "data", "protocol",
		"##s", "##ed", "##ing", "##er", "##ly", "##tion", "##ment",
	}
	for i, token := range builtin {
		t.vocab[token] = int64(i)
	}
	t.resolveSpecialTokens()
}

func (t *WordPieceTokenizer) resolveSpecialTokens() {
	if id, ok := t.vocab["[CLS]"]; ok {
		t.clsID = id
	}
	if id, ok := t.vocab["[SEP]"]; ok {
		t.sepID = id
	}
	if id, ok := t.vocab["[PAD]"]; ok {
		t.padID = id
	}
	if id, ok := t.vocab["[UNK]"]; ok {
		t.unkID = id
	}
}

// Encode lowercases, splits punctuation into standalone tokens, applies
// WordPiece to each word, and wraps the sequence in [CLS]/[SEP].
func (t *WordPieceTokenizer) Encode(text string, maxLength int) (*EncodedInput, error) {
	words := strings.Fields(splitPunctuation(strings.ToLower(text)))

	ids := []int64{t.clsID}
	for _, word := range words {
		ids = append(ids, t.encodeWord(word)...)
		if len(ids) >= maxLength-1 {
			break
		}
	}
	ids = append(ids, t.sepID)
	if len(ids) > maxLength {
		ids = append(ids[:maxLength-1], t.sepID)
	}

	seqLen := len(ids)
	mask := make([]int64, seqLen)
	types := make([]int64, seqLen)
	for i := range mask {
		mask[i] = 1
	}

	return &EncodedInput{InputIDs: ids, AttentionMask: mask, TokenTypeIDs: types}, nil
}

// splitPunctuation surrounds punctuation runes with spaces so they tokenize
// as standalone symbols, then collapses whitespace.
func splitPunctuation(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsPunct(r) {
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// encodeWord applies greedy longest-match WordPiece to one word. Characters
// with no vocabulary entry become [UNK].
func (t *WordPieceTokenizer) encodeWord(word string) []int64 {
	if id, ok := t.vocab[word]; ok {
		return []int64{id}
	}

	var ids []int64
	start := 0
	for start < len(word) {
		end := len(word)
		matched := false
		for end > start {
			piece := word[start:end]
			if start > 0 {
				piece = "##" + piece
			}
			if id, ok := t.vocab[piece]; ok {
				ids = append(ids, id)
				matched = true
				break
			}
			end--
		}
		if matched {
			start = end
		} else {
			ids = append(ids, t.unkID)
			start++
		}
	}

	if len(ids) == 0 {
		return []int64{t.unkID}
	}
	return ids
}

// VocabSize returns the number of vocabulary entries.
func (t *WordPieceTokenizer) VocabSize() int {
	return len(t.vocab)
}
