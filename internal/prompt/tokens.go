// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prompt

import (
	"fmt"
	"strings"

	"github.com/tiktoken-go/tokenizer"
)

// Counter counts and truncates text against token budgets using the
// cl100k_base encoding.
type Counter struct {
	codec tokenizer.Codec
}

// NewCounter builds a token counter.
func NewCounter() (*Counter, error) {
	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}
	return &Counter{codec: codec}, nil
}

// Count returns the token count of text. Falls back to a words*1.3
// approximation if encoding fails.
func (c *Counter) Count(text string) int {
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return int(float64(len(strings.Fields(text))) * 1.3)
	}
	return len(ids)
}

// Truncate cuts text to at most maxTokens tokens, preserving token
// boundaries. Text at or under the budget is returned unchanged.
func (c *Counter) Truncate(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return "", nil
	}
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return "", fmt.Errorf("failed to encode text: %w", err)
	}
	if len(ids) <= maxTokens {
		return text, nil
	}
	out, err := c.codec.Decode(ids[:maxTokens])
	if err != nil {
		return "", fmt.Errorf("failed to decode truncated text: %w", err)
	}
	return out, nil
}

// FitsBudget reports whether text fits within the selection's token budget.
func (c *Counter) FitsBudget(text string, sel Selection) bool {
	return c.Count(text) <= sel.MaxTokens
}
