// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package prompt maps a classified route to a response template key and a
// token budget. It applies the per-route minimum-confidence demotion and the
// repeated-fallback tightening the response layer depends on.
package prompt

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/traylinx/intentGate/internal/intent/routes"
)

// Template keys the response layer renders.
const (
	TemplateQA       = "qa"
	TemplateGreeting = "greeting"
	TemplateAgent    = "agent_request"
	TemplateSchedule = "scheduler"
	TemplateClose    = "conversation_close"
	TemplateAbusive  = "abusive"
	TemplateFallback = "fallback"
)

// Token budgets per template. Tight budgets on the short routes keep the
// canned responses canned.
const (
	budgetQA         = 600
	budgetGreeting   = 80
	budgetAgent      = 100
	budgetScheduler  = 100
	budgetClose      = 60
	budgetAbusive    = 80
	budgetQAFallback = 100
	budgetUnknown    = 150
)

// Minimum confidences below which a specific route is not trusted for
// response selection. The action routes get a lower bar so requests like
// "arrange call from sales" do not fall back to plain QA too aggressively.
const (
	minConfidenceAction  = 0.30
	minConfidenceDefault = 0.40
)

// noQuestionPhrases trigger a direct greeting response regardless of what
// the classifier would say.
var noQuestionPhrases = []string{
	"i dont have any questions",
	"i don't have any questions",
	"i do not have any questions",
	"i dont have questions",
	"i don't have questions",
	"no questions",
}

// Selection is the chosen response template with its budget.
type Selection struct {
	// Template is the template key to render.
	Template string `json:"template"`

	// Route is the route the selection was made for, after demotion.
	Route string `json:"route"`

	// Confidence is the classifier confidence the selection used.
	Confidence float64 `json:"confidence"`

	// MaxTokens is the response token budget.
	MaxTokens int `json:"max_tokens"`
}

// Selector chooses response templates. Zero value is not usable; construct
// with NewSelector.
type Selector struct {
	fallbackAfter int
}

// NewSelector builds a selector. fallbackAfter is the consecutive
// low-confidence turn count after which normal_qa switches to the tight
// fallback template; non-positive means the default of 2.
func NewSelector(fallbackAfter int) *Selector {
	if fallbackAfter <= 0 {
		fallbackAfter = 2
	}
	return &Selector{fallbackAfter: fallbackAfter}
}

// NoQuestionsOverride reports whether the message explicitly says the user
// has no questions, which short-circuits to the greeting template.
func NoQuestionsOverride(message string) bool {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, p := range noQuestionPhrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

// Select maps a classified route and confidence to a template and budget.
// fallbackCount is the session's consecutive unanswered-QA counter.
func (s *Selector) Select(route string, confidence float64, fallbackCount int) Selection {
	// Weak specific wins are not worth a canned response.
	if route != routes.NormalQA && confidence < minConfidence(route) {
		log.Warnf("Low confidence for route %s (%.2f), defaulting to normal_qa", route, confidence)
		route = routes.NormalQA
	}

	sel := Selection{Route: route, Confidence: confidence}
	switch route {
	case routes.NormalQA:
		if fallbackCount >= s.fallbackAfter {
			sel.Template = TemplateFallback
			sel.MaxTokens = budgetQAFallback
		} else {
			sel.Template = TemplateQA
			sel.MaxTokens = budgetQA
		}
	case routes.Greeting:
		sel.Template = TemplateGreeting
		sel.MaxTokens = budgetGreeting
	case routes.AgentRequest:
		sel.Template = TemplateAgent
		sel.MaxTokens = budgetAgent
	case routes.Scheduler:
		sel.Template = TemplateSchedule
		sel.MaxTokens = budgetScheduler
	case routes.ConversationClose:
		sel.Template = TemplateClose
		sel.MaxTokens = budgetClose
	case routes.Abusive:
		sel.Template = TemplateAbusive
		sel.MaxTokens = budgetAbusive
	default:
		log.Warnf("Unknown route %s, using fallback template", route)
		sel.Template = TemplateFallback
		sel.Route = TemplateFallback
		sel.MaxTokens = budgetUnknown
	}
	return sel
}

func minConfidence(route string) float64 {
	switch route {
	case routes.Scheduler, routes.AgentRequest, routes.ConversationClose:
		return minConfidenceAction
	}
	return minConfidenceDefault
}
