package ytt

import (
	"fmt"
	"math"
	"net/url"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/alanbriolat/ytt/generic"
)

var (
	PriorityHighest int16 = math.MinInt16
	PriorityDefault int16 = 0
	PriorityLowest  int16 = math.MaxInt16
)

// A MatchFunc extracts a raw video ID from a parsed URL, or explains why it can't.
type MatchFunc = func(*url.URL) (string, error)

// A Rule is one way of recognising a video ID in a URL.
type Rule struct {
	Name  string
	Match MatchFunc
	// Priority of the rule, lower (including negative) means matching earlier. Rules with equal priority are tried in
	// the order they were added.
	Priority int16
}

func (r Rule) WithPriority(priority int16) Rule {
	r.Priority = priority
	return r
}

// A RuleMatch is the result of a Rule successfully matching a URL.
type RuleMatch struct {
	RuleName string
	VideoID  VideoID
}

// A RuleRegistry is an ordered collection of Rule instances which can be used to extract video IDs from URLs.
type RuleRegistry struct {
	rules   []*Rule
	ruleMap map[string]*Rule
}

// Add registers a Rule with the RuleRegistry. Rule.Name and Rule.Match must be set, and Rule.Name must be unique
// within the RuleRegistry.
func (r *RuleRegistry) Add(rule Rule) error {
	if r.ruleMap == nil {
		r.ruleMap = make(map[string]*Rule)
	}
	if rule.Name == "" || rule.Match == nil {
		return ErrInvalidRule
	}
	if _, ok := r.ruleMap[rule.Name]; ok {
		return ErrDuplicateRule
	}
	r.ruleMap[rule.Name] = &rule
	r.rules = append(r.rules, r.ruleMap[rule.Name])
	r.sortByPriority()
	return nil
}

// Create is a shortcut for Add(Rule{Name: ..., Match: ...}).
func (r *RuleRegistry) Create(name string, f MatchFunc) error {
	return r.Add(Rule{
		Name:  name,
		Match: f,
	})
}

// GetPriority gets the priority of the named Rule. If ErrUnknownRule is returned, the returned priority is the
// default priority.
func (r *RuleRegistry) GetPriority(name string) (int16, error) {
	if rule, ok := r.ruleMap[name]; ok {
		return rule.Priority, nil
	} else {
		return PriorityDefault, ErrUnknownRule
	}
}

// List returns the names of registered rules in priority order.
func (r *RuleRegistry) List() []string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name)
	}
	return names
}

// Match a URL against each Rule in priority order. If no rule matches, the error is ErrNotFound wrapping the reason
// each rule gave.
func (r *RuleRegistry) Match(u *url.URL) (*RuleMatch, error) {
	var result error
	for _, rule := range r.rules {
		if match, err := matchRule(rule, u); err == nil {
			return match, nil
		} else {
			result = multierror.Append(result, multierror.Prefix(err, fmt.Sprintf("[%v]", rule.Name)))
		}
	}
	if result == nil {
		return nil, ErrNotFound
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, result)
}

// MatchWith will attempt to match a URL against a specific rule.
func (r *RuleRegistry) MatchWith(name string, u *url.URL) (*RuleMatch, error) {
	if rule, ok := r.ruleMap[name]; ok {
		if match, err := matchRule(rule, u); err == nil {
			return match, nil
		} else {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
	} else {
		return nil, ErrUnknownRule
	}
}

// MustAdd wraps Add but panics if there is an error.
func (r *RuleRegistry) MustAdd(rule Rule) {
	generic.Unwrap_(r.Add(rule))
}

// MustCreate wraps Create but panics if there is an error.
func (r *RuleRegistry) MustCreate(name string, f MatchFunc) {
	generic.Unwrap_(r.Create(name, f))
}

// SetPriority adjusts the priority of a named Rule.
func (r *RuleRegistry) SetPriority(name string, priority int16) error {
	if rule, ok := r.ruleMap[name]; ok {
		rule.Priority = priority
		r.sortByPriority()
		return nil
	} else {
		return ErrUnknownRule
	}
}

func (r *RuleRegistry) sortByPriority() {
	sort.SliceStable(r.rules, func(i, j int) bool {
		return r.rules[i].Priority < r.rules[j].Priority
	})
}

func matchRule(rule *Rule, u *url.URL) (*RuleMatch, error) {
	raw, err := rule.Match(u)
	if err != nil {
		return nil, err
	}
	id, err := NewVideoID(raw)
	if err != nil {
		return nil, err
	}
	return &RuleMatch{RuleName: rule.Name, VideoID: id}, nil
}
