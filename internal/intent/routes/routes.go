// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package routes defines the static intent catalog used by both classifier
// tiers. A Route couples an intent name with the example utterances, regex
// patterns, keywords, and phrases that the scoring signals consume. Catalogs
// are immutable after construction.
package routes

import (
	"fmt"
	"regexp"
)

// Route names. These are the only values a classification may return.
const (
	Greeting          = "greeting"
	AgentRequest      = "agent_request"
	Scheduler         = "scheduler"
	ConversationClose = "conversation_close"
	Abusive           = "abusive"
	NormalQA          = "normal_qa"
)

// Names lists every route name in catalog order.
func Names() []string {
	return []string{Greeting, AgentRequest, Scheduler, ConversationClose, Abusive, NormalQA}
}

// Valid reports whether name is a known route name.
func Valid(name string) bool {
	switch name {
	case Greeting, AgentRequest, Scheduler, ConversationClose, Abusive, NormalQA:
		return true
	}
	return false
}

// Route is a single intent definition. The fast catalog populates every
// field; the slow catalog carries examples only.
type Route struct {
	// Name is the unique identifier for the route.
	Name string `yaml:"name"`

	// Examples are sample utterances that belong to this route. They feed
	// the TF-IDF vocabulary, the route centroids, and the bigram sets.
	Examples []string `yaml:"examples"`

	// Patterns are regex sources matched against the preprocessed query.
	Patterns []string `yaml:"patterns,omitempty"`

	// Keywords are matched as whole tokens or substrings of the query.
	Keywords []string `yaml:"keywords,omitempty"`

	// Phrases are matched as substrings of the query.
	Phrases []string `yaml:"phrases,omitempty"`

	compiled []*regexp.Regexp
}

// CompiledPatterns returns the route's pre-compiled regexes.
func (r *Route) CompiledPatterns() []*regexp.Regexp {
	return r.compiled
}

// Catalog is an ordered, immutable set of routes keyed by name.
type Catalog struct {
	routes []*Route
	byName map[string]*Route
}

// NewCatalog builds a catalog from route definitions and pre-compiles every
// regex pattern. Patterns compile case-insensitively, matching the behavior
// of the scoring layer which works on lowercased queries.
func NewCatalog(defs []Route) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog requires at least one route")
	}

	c := &Catalog{
		routes: make([]*Route, 0, len(defs)),
		byName: make(map[string]*Route, len(defs)),
	}
	for i := range defs {
		r := defs[i]
		if r.Name == "" {
			return nil, fmt.Errorf("route %d has no name", i)
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, fmt.Errorf("duplicate route %q", r.Name)
		}
		r.compiled = make([]*regexp.Regexp, 0, len(r.Patterns))
		for _, p := range r.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("route %q: compile pattern %q: %w", r.Name, p, err)
			}
			r.compiled = append(r.compiled, re)
		}
		c.routes = append(c.routes, &r)
		c.byName[r.Name] = &r
	}
	return c, nil
}

// Routes returns the catalog's routes in declaration order.
func (c *Catalog) Routes() []*Route {
	return c.routes
}

// Get returns the route with the given name, or nil.
func (c *Catalog) Get(name string) *Route {
	return c.byName[name]
}

// Len returns the number of routes.
func (c *Catalog) Len() int {
	return len(c.routes)
}
