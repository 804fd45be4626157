// Package chatbot provides the stateless keyword responder behind every chat surface.
package chatbot

import (
	"strings"

	"github.com/jonathan/placement-portal/internal/prompts"
)

// Predicate decides whether a rule applies to a lower-cased message.
type Predicate func(message string) bool

// Rule pairs a predicate with its reply.
type Rule struct {
	Name  string
	Match Predicate
	Reply string
}

// DefaultFallback is returned when no rule matches.
var DefaultFallback = prompts.MustGet(prompts.ChatbotFile, "fallback")

// Contains matches messages that contain keyword, ignoring case.
func Contains(keyword string) Predicate {
	keyword = strings.ToLower(keyword)
	return func(message string) bool {
		return strings.Contains(message, keyword)
	}
}

// DefaultRules are evaluated in order; the first match wins.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "skills", Match: Contains("skill"), Reply: prompts.MustGet(prompts.ChatbotFile, "skills")},
		{Name: "interviews", Match: Contains("interview"), Reply: prompts.MustGet(prompts.ChatbotFile, "interviews")},
	}
}

// Engine answers messages using an ordered rule list and an explicit fallback.
type Engine struct {
	rules    []Rule
	fallback string
}

// New creates an engine. An empty fallback uses DefaultFallback.
func New(rules []Rule, fallback string) *Engine {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Engine{rules: append([]Rule(nil), rules...), fallback: fallback}
}

// NewDefault creates an engine with DefaultRules.
func NewDefault() *Engine {
	return New(DefaultRules(), "")
}

// Respond returns the reply of the first matching rule, or the fallback.
// It depends only on message.
func (e *Engine) Respond(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range e.rules {
		if rule.Match != nil && rule.Match(lower) {
			return rule.Reply
		}
	}
	return e.fallback
}
