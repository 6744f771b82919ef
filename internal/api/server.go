// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package api exposes the classification engine over HTTP. It provides a
// classify endpoint for raw route decisions, a respond endpoint that adds
// template selection and history context, and a health endpoint reporting
// the slow tier's state.
package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/traylinx/intentGate/internal/buildinfo"
	"github.com/traylinx/intentGate/internal/history"
	"github.com/traylinx/intentGate/internal/intent"
	"github.com/traylinx/intentGate/internal/intent/routes"
	"github.com/traylinx/intentGate/internal/prompt"
)

// Server wires the classifier, prompt selector, and history store behind a
// Gin engine.
type Server struct {
	engine     *gin.Engine
	classifier *intent.Hybrid
	selector   *prompt.Selector
	store      *history.Store
	counter    *prompt.Counter
}

// NewServer builds the HTTP server. store may be nil when history
// persistence is disabled.
func NewServer(classifier *intent.Hybrid, selector *prompt.Selector, store *history.Store) *Server {
	counter, err := prompt.NewCounter()
	if err != nil {
		log.Warnf("Token counter unavailable, history windows are not budgeted: %v", err)
	}
	s := &Server{
		engine:     gin.New(),
		classifier: classifier,
		selector:   selector,
		store:      store,
		counter:    counter,
	}

	s.engine.Use(gin.Recovery(), RequestID(), RequestLogger())

	s.engine.GET("/health", s.handleHealth)
	v1 := s.engine.Group("/v1")
	{
		v1.POST("/classify", s.handleClassify)
		v1.POST("/respond", s.handleRespond)
	}
	return s
}

// Engine returns the underlying Gin engine, mainly for tests and for the
// caller's http.Server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

type classifyRequest struct {
	Query        string `json:"query"`
	ReturnScores bool   `json:"return_scores"`
}

type classifyResponse struct {
	RequestID string `json:"request_id"`
	intent.Result
}

// handleClassify runs the hybrid classifier on a single query.
// POST /v1/classify
func (s *Server) handleClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	result := s.classifier.Classify(req.Query, req.ReturnScores)
	log.WithFields(log.Fields{
		"request_id": c.GetString(requestIDKey),
		"route":      result.Route,
		"method":     result.Method,
	}).Debugf("Classified query %q", truncateForLog(req.Query))

	c.JSON(http.StatusOK, classifyResponse{
		RequestID: c.GetString(requestIDKey),
		Result:    result,
	})
}

type respondRequest struct {
	BotID     string `json:"bot_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`

	// FallbackCount is the session's consecutive unanswered-QA counter,
	// tracked by the caller.
	FallbackCount int `json:"fallback_count"`

	// Contact carries details the caller extracted from the conversation,
	// persisted before the response context is assembled.
	Contact *contactPayload `json:"contact,omitempty"`
}

type contactPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type respondResponse struct {
	RequestID  string           `json:"request_id"`
	Route      string           `json:"route"`
	Confidence float64          `json:"confidence"`
	Method     string           `json:"method"`
	Selection  prompt.Selection `json:"selection"`
	History    []*history.Turn  `json:"history,omitempty"`
	Contact    *history.Contact `json:"contact,omitempty"`
}

// handleRespond classifies a message and resolves the response template,
// token budget, and session context in one round trip.
// POST /v1/respond
func (s *Server) handleRespond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if req.BotID == "" || req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bot_id and session_id are required"})
		return
	}

	var result intent.Result
	if prompt.NoQuestionsOverride(req.Message) {
		// "no questions" means a polite wrap-up, not a QA turn.
		result = intent.Result{Route: routes.Greeting, Confidence: 1.0, Method: intent.MethodRule, Reason: "no_questions_phrase"}
	} else {
		result = s.classifier.Classify(req.Message, false)
	}

	selection := s.selector.Select(result.Route, result.Confidence, req.FallbackCount)

	resp := respondResponse{
		RequestID:  c.GetString(requestIDKey),
		Route:      result.Route,
		Confidence: result.Confidence,
		Method:     result.Method,
		Selection:  selection,
	}

	if s.store != nil && s.store.IsEnabled() {
		ctx := c.Request.Context()
		turn := &history.Turn{
			BotID:      req.BotID,
			SessionID:  req.SessionID,
			Role:       "user",
			Content:    req.Message,
			Route:      result.Route,
			Confidence: result.Confidence,
		}
		if err := s.store.RecordTurn(ctx, turn); err != nil {
			log.Warnf("Failed to record turn: %v", err)
		}
		if req.Contact != nil {
			contact := &history.Contact{
				BotID:     req.BotID,
				SessionID: req.SessionID,
				Name:      req.Contact.Name,
				Email:     req.Contact.Email,
				Phone:     req.Contact.Phone,
			}
			if err := s.store.UpsertContact(ctx, contact); err != nil {
				log.Warnf("Failed to save contact: %v", err)
			}
		}
		if turns, err := s.store.RecentTurns(ctx, req.BotID, req.SessionID, 0); err == nil {
			resp.History = s.trimHistory(turns)
		} else {
			log.Warnf("Failed to load history: %v", err)
		}
		if contact, err := s.store.GetContact(ctx, req.BotID, req.SessionID); err == nil {
			resp.Contact = contact
		} else {
			log.Warnf("Failed to load contact: %v", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// handleHealth reports liveness and the slow tier's state.
// GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"version":       buildinfo.Version,
		"slow_loaded":   s.classifier.SlowLoaded(),
		"slow_disabled": s.classifier.SlowDisabled(),
	})
}

// historyTokenBudget caps how much prior conversation rides along in a
// respond payload.
const historyTokenBudget = 1000

// trimHistory drops the oldest turns until the window fits the token
// budget. A lone turn over the whole budget is truncated rather than
// dropped so the caller always sees the current exchange.
func (s *Server) trimHistory(turns []*history.Turn) []*history.Turn {
	if s.counter == nil || len(turns) == 0 {
		return turns
	}

	total := 0
	keep := 0
	for i := len(turns) - 1; i >= 0; i-- {
		n := s.counter.Count(turns[i].Content)
		if total+n > historyTokenBudget {
			break
		}
		total += n
		keep++
	}
	if keep == 0 {
		last := *turns[len(turns)-1]
		if cut, err := s.counter.Truncate(last.Content, historyTokenBudget); err == nil {
			last.Content = cut
		}
		return []*history.Turn{&last}
	}
	return turns[len(turns)-keep:]
}

func truncateForLog(q string) string {
	q = strings.TrimSpace(q)
	if len(q) <= 50 {
		return q
	}
	cut := 50
	for cut > 0 && !utf8.RuneStart(q[cut]) {
		cut--
	}
	return q[:cut]
}
