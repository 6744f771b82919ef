// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lexical implements the fast classification tier: a TF-IDF feature
// engine over the route catalog's example corpus and a weighted signal
// ensemble that scores a query against every route without touching a model.
package lexical

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Tokenize lowercases text, strips punctuation to spaces, and splits on
// whitespace. Single-character tokens are dropped; they carry no signal and
// inflate the vocabulary with stray letters.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Bigrams returns the space-joined token bigrams of text, in order.
func Bigrams(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) < 2 {
		return nil
	}
	grams := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}

// Preprocess normalizes a raw query for scoring: lowercase, trimmed,
// whitespace collapsed. Punctuation is kept; the regex signals expect it.
func Preprocess(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return whitespaceRe.ReplaceAllString(text, " ")
}

// Tables holds the frozen vocabulary and IDF weights derived from a catalog.
// They are built once at construction and never mutated at request time.
type Tables struct {
	// Vocabulary maps each corpus token to its dense vector slot.
	Vocabulary map[string]int

	// IDF maps each corpus token to its smoothed inverse document frequency.
	IDF map[string]float64
}

// BuildTables derives the vocabulary and IDF table from every example in the
// catalog. IDF uses the smoothed form log((N+1)/(df+1))+1 where N is the
// total example count and df the number of examples containing the token.
func BuildTables(catalog *routes.Catalog) *Tables {
	vocabSet := make(map[string]struct{})
	docCount := make(map[string]int)
	totalDocs := 0

	for _, r := range catalog.Routes() {
		for _, example := range r.Examples {
			totalDocs++
			seen := make(map[string]struct{})
			for _, tok := range Tokenize(example) {
				vocabSet[tok] = struct{}{}
				if _, dup := seen[tok]; !dup {
					seen[tok] = struct{}{}
					docCount[tok]++
				}
			}
		}
	}

	words := make([]string, 0, len(vocabSet))
	for w := range vocabSet {
		words = append(words, w)
	}
	sort.Strings(words)

	t := &Tables{
		Vocabulary: make(map[string]int, len(words)),
		IDF:        make(map[string]float64, len(words)),
	}
	for i, w := range words {
		t.Vocabulary[w] = i
	}
	for w, df := range docCount {
		t.IDF[w] = math.Log(float64(totalDocs+1)/float64(df+1)) + 1
	}
	return t
}

// ToVector converts text into an L2-normalized TF-IDF vector over the
// table's vocabulary. Tokens outside the vocabulary contribute nothing; a
// query with no known tokens yields the zero vector.
func (t *Tables) ToVector(text string) []float64 {
	tokens := Tokenize(text)
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	totalWords := len(tokens)
	if totalWords == 0 {
		totalWords = 1
	}

	vec := make([]float64, len(t.Vocabulary))
	for tok, count := range counts {
		idx, ok := t.Vocabulary[tok]
		if !ok {
			continue
		}
		tf := float64(count) / float64(totalWords)
		idf, ok := t.IDF[tok]
		if !ok {
			idf = 1.0
		}
		vec[idx] = tf * idf
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Cosine computes the cosine similarity of two equal-length vectors,
// returning 0 when either vector has zero norm.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
