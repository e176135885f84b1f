// Package classify assigns exactly one document type to acquired text by
// walking an explicit, ordered rule list. The order is the contract: vendor
// signatures are checked before the generic invoice/waybill rules because
// the signatures overlap.
package classify

import (
	"regexp"
	"strings"

	"cargoscan/internal/config"
	"cargoscan/internal/domain"
)

// Signal is one observable trait of the text: a literal substring
// (optionally case-folded) or a regular expression. Exactly one of
// Substring/Pattern is set.
type Signal struct {
	Substring string
	Fold      bool
	Pattern   *regexp.Regexp
}

func (s Signal) matches(text, folded string) bool {
	if s.Pattern != nil {
		return s.Pattern.MatchString(text)
	}
	if s.Fold {
		return strings.Contains(folded, strings.ToLower(s.Substring))
	}
	return strings.Contains(text, s.Substring)
}

// Rule matches when every RequireAll signal is present and, if RequireAny
// is non-empty, at least one of those is too.
type Rule struct {
	Name         string
	DocumentType domain.DocumentType
	RequireAll   []Signal
	RequireAny   []Signal
}

func (r Rule) matches(text, folded string) bool {
	for _, s := range r.RequireAll {
		if !s.matches(text, folded) {
			return false
		}
	}
	if len(r.RequireAny) == 0 {
		return true
	}
	for _, s := range r.RequireAny {
		if s.matches(text, folded) {
			return true
		}
	}
	return false
}

// Classifier evaluates rules in order; the first match wins.
type Classifier struct {
	rules []Rule
}

// New returns a Classifier with the builtin rule set.
func New() *Classifier {
	return NewWithCustomRules(nil)
}

// NewWithCustomRules slots extra vendor-signature rules between the builtin
// vendor rules and the generic rules, preserving their given order.
func NewWithCustomRules(custom []Rule) *Classifier {
	rules := make([]Rule, 0, len(custom)+4)
	rules = append(rules, vendorRules()...)
	rules = append(rules, custom...)
	rules = append(rules, genericRules()...)
	return &Classifier{rules: rules}
}

// NewFromConfig builds a Classifier, loading custom rules from
// cfg.RulesPath when set.
func NewFromConfig(cfg config.ClassifyConfig) (*Classifier, error) {
	if cfg.RulesPath == "" {
		return New(), nil
	}
	custom, err := LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, err
	}
	return NewWithCustomRules(custom), nil
}

// Classify is pure and total: any input, including the empty string, maps
// to exactly one DocumentType. It consults nothing but the text.
func (c *Classifier) Classify(text string) domain.DocumentType {
	folded := strings.ToLower(text)
	for _, r := range c.rules {
		if r.matches(text, folded) {
			return r.DocumentType
		}
	}
	return domain.DocTypeUnknown
}

// Rules exposes the evaluation order, mostly for diagnostics and tests.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
