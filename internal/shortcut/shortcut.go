// Package shortcut answers identity questions from fixed templates without
// calling any completion provider.
package shortcut

import (
	"fmt"
	"strings"
)

// Identity fills the reply templates.
type Identity struct {
	AssistantName    string
	DeveloperName    string
	DeveloperContact string
}

// Reply is a matched fixed answer.
type Reply struct {
	Rule Rule
	Text string
}

// Tag is the provenance of the reply.
func (r Reply) Tag() string {
	return r.Rule.Tag()
}

type compiledRule struct {
	rule     Rule
	keywords []string
	text     string
}

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	rules []compiledRule
}

// New renders every template once.
func New(id Identity) *Engine {
	e := &Engine{rules: make([]compiledRule, 0, len(rules))}
	for _, spec := range rules {
		kws := make([]string, len(spec.keywords))
		for i, k := range spec.keywords {
			kws[i] = normalize(k)
		}
		e.rules = append(e.rules, compiledRule{
			rule:     spec.rule,
			keywords: kws,
			text:     fmt.Sprintf(spec.template, id.AssistantName, id.DeveloperName, id.DeveloperContact),
		})
	}
	return e
}

// Classify returns the first rule whose keyword is contained in the message.
func (e *Engine) Classify(message string) (Reply, bool) {
	text := normalize(message)
	if text == "" {
		return Reply{}, false
	}

	for _, r := range e.rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return Reply{Rule: r.rule, Text: r.text}, true
			}
		}
	}
	return Reply{}, false
}

// normalize lowercases and collapses runs of whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
