// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package routes

import (
	"regexp"
	"strings"
)

// closeExact is the canned set of conversation-closing phrases. A normalized
// query equal to any entry classifies as conversation_close at fixed
// confidence, bypassing both classifier tiers. The set is shared by the fast
// path, the slow path, and the coordinator guard so the three stay in
// agreement.
var closeExact = map[string]struct{}{
	"no": {}, "nope": {}, "nah": {}, "bye": {}, "goodbye": {}, "done": {},
	"nothing": {}, "stop": {}, "end": {}, "exit": {}, "close": {},
	"later": {}, "enough": {},
	"ok bye": {}, "okay bye": {}, "thanks bye": {}, "no thanks": {},
	"no thank you": {}, "im fine": {}, "i am fine": {}, "im good": {},
	"i am good": {}, "im done": {}, "i am done": {}, "all done": {},
	"thats all": {}, "that is all": {}, "thats it": {}, "that is it": {},
	"nothing else": {}, "no need": {}, "not needed": {}, "never mind": {},
	"nevermind": {}, "leave it": {}, "forget it": {}, "not interested": {},
	"not right now": {}, "maybe later": {}, "no i am ok": {}, "no its ok": {},
	"no it is ok": {}, "no more questions": {},
	"i dont need any answer": {}, "i do not need any answer": {},
	"i dont need anything": {}, "i do not need anything": {},
	"i dont want anything": {}, "i do not want anything": {},
}

var (
	exactPunctRe = regexp.MustCompile(`[^\w\s]`)
	exactSpaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeExact reduces a query to the form the close set is keyed by:
// lowercased, punctuation removed, whitespace collapsed.
func NormalizeExact(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	q = exactPunctRe.ReplaceAllString(q, "")
	q = exactSpaceRe.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// IsClosePhrase reports whether the already-normalized query is one of the
// canned closing phrases.
func IsClosePhrase(normalized string) bool {
	_, ok := closeExact[normalized]
	return ok
}

// ClosePhrases returns the canned closing phrases, mainly for tests.
func ClosePhrases() []string {
	out := make([]string, 0, len(closeExact))
	for p := range closeExact {
		out = append(out, p)
	}
	return out
}
