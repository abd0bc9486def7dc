// Package rules defines resurrect/die rule sets and the catalog of named
// rules the scheduler rotates through.
package rules

import (
	"errors"
	"fmt"
	"sort"

	"cells/internal/core"
)

var (
	// ErrNotTotal is returned by Define when a predicate panics, is missing
	// or answers inconsistently for some count in the domain.
	ErrNotTotal = errors.New("predicate is not total")
	// ErrUnknownRule is returned by Lookup for names outside the catalog.
	ErrUnknownRule = errors.New("unknown rule")
)

// Predicate answers a yes/no question about an alive count.
type Predicate func(n int) bool

// RuleSet decides how a cell changes given the alive count of its window.
// Both predicates are pure and defined for every n in [0, core.MaxWindow].
type RuleSet interface {
	Name() string
	Resurrect(n int) bool
	Die(n int) bool
}

// Rule is a named predicate pair validated by Define.
type Rule struct {
	name      string
	resurrect Predicate
	die       Predicate
}

// Name returns the catalog name of the rule.
func (r *Rule) Name() string { return r.name }

// Resurrect reports whether a dead cell with n live cells in its window comes alive.
func (r *Rule) Resurrect(n int) bool { return r.resurrect(n) }

// Die reports whether a live cell with n live cells in its window dies.
func (r *Rule) Die(n int) bool { return r.die(n) }

// Define validates both predicates over the whole count domain and returns
// the rule. A predicate that panics or is nil yields ErrNotTotal.
func Define(name string, resurrect, die Predicate) (*Rule, error) {
	if name == "" {
		return nil, errors.New("rule name must not be empty")
	}
	if err := probe(resurrect); err != nil {
		return nil, fmt.Errorf("rule %q resurrect: %w", name, err)
	}
	if err := probe(die); err != nil {
		return nil, fmt.Errorf("rule %q die: %w", name, err)
	}
	return &Rule{name: name, resurrect: resurrect, die: die}, nil
}

func probe(p Predicate) error {
	if p == nil {
		return fmt.Errorf("nil predicate: %w", ErrNotTotal)
	}
	for n := 0; n <= core.MaxWindow; n++ {
		if err := probeOne(p, n); err != nil {
			return err
		}
	}
	return nil
}

func probeOne(p Predicate, n int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("n=%d panicked (%v): %w", n, r, ErrNotTotal)
		}
	}()
	if p(n) != p(n) {
		return fmt.Errorf("n=%d answered inconsistently: %w", n, ErrNotTotal)
	}
	return nil
}

// TruthTable evaluates both predicates over the whole count domain.
func TruthTable(rs RuleSet) (resurrect, die [core.MaxWindow + 1]bool) {
	for n := 0; n <= core.MaxWindow; n++ {
		resurrect[n] = rs.Resurrect(n)
		die[n] = rs.Die(n)
	}
	return resurrect, die
}

var catalog = map[string]*Rule{}

func mustDefine(name string, resurrect, die Predicate) *Rule {
	r, err := Define(name, resurrect, die)
	if err != nil {
		panic(err)
	}
	if _, dup := catalog[name]; dup {
		panic(fmt.Sprintf("rule %q defined twice", name))
	}
	catalog[name] = r
	return r
}

// Lookup returns the catalog rule registered under name.
func Lookup(name string) (RuleSet, error) {
	r, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return r, nil
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
