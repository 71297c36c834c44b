// Package mana parses Magic-style mana cost strings and compares them.
//
// A cost is an ordered sequence of bracketed symbol groups, each group a set
// of mutually exclusive payment alternatives ({R/W} is "red or white").
// Because of those alternatives a single cost denotes a set of concrete
// interpretations, and comparison between costs is existential: two costs
// relate when some interpretation of one relates to some interpretation of
// the other. See Cost.Less for the payability semantics.
package mana

import (
	"math"
	"regexp"
)

// Grammar for one bracketed group: single uppercase letter symbols or
// decimal literals, separated by slashes. Text outside groups is ignored.
const symbolPattern = `(?:[RUBGWCPX]|\d+)`

var groupPattern = regexp.MustCompile(`\{(` + symbolPattern + `(?:/` + symbolPattern + `)*)\}`)

// Cost is an immutable parsed mana cost. The zero value is not useful;
// construct with ParseCost.
type Cost struct {
	text   string
	groups [][]symbol
}

// ParseCost extracts every well-formed {...} group from text and returns the
// parsed cost. Malformed brackets and surrounding text are silently skipped,
// so parsing never fails: text with no matchable groups yields an empty
// (free) cost. Duplicate alternatives within one group collapse, keeping
// first-seen order.
func ParseCost(text string) *Cost {
	matches := groupPattern.FindAllStringSubmatch(text, -1)
	groups := make([][]symbol, 0, len(matches))
	for _, m := range matches {
		groups = append(groups, splitGroup(m[1]))
	}
	return &Cost{text: text, groups: groups}
}

// splitGroup splits a matched group body on slashes and collapses textual
// duplicates. The grammar guarantees at least one alternative.
func splitGroup(body string) []symbol {
	var group []symbol
	seen := make(map[string]struct{})
	start := 0
	for i := 0; i <= len(body); i++ {
		if i < len(body) && body[i] != '/' {
			continue
		}
		alt := body[start:i]
		start = i + 1
		if _, dup := seen[alt]; dup {
			continue
		}
		seen[alt] = struct{}{}
		group = append(group, newSymbol(alt))
	}
	return group
}

// String returns the original text the cost was parsed from.
func (c *Cost) String() string {
	return c.text
}

// NumGroups returns the number of symbol groups in the cost.
func (c *Cost) NumGroups() int {
	return len(c.groups)
}

// NumVariations returns the number of distinct concrete interpretations of
// the cost: the product of each group's alternative count. An empty cost has
// exactly one interpretation, the empty one. The product saturates at MaxInt
// instead of wrapping — enough hybrid groups overflow a machine word, and a
// wrapped count would slip past any variation cap.
func (c *Cost) NumVariations() int {
	n := 1
	for _, g := range c.groups {
		if n > math.MaxInt/len(g) {
			return math.MaxInt
		}
		n *= len(g)
	}
	return n
}

// MinTotal returns the smallest numeric total any interpretation can cost.
// Literals count their value, colors and colorless count one, Phyrexian and
// X symbols are skipped (they are not real mana amounts). A group with only
// skipped symbols contributes nothing.
func (c *Cost) MinTotal() int {
	return c.total(func(best, v int) bool { return v < best })
}

// MaxTotal returns the largest numeric total any interpretation can cost,
// under the same symbol accounting as MinTotal.
func (c *Cost) MaxTotal() int {
	return c.total(func(best, v int) bool { return v > best })
}

func (c *Cost) total(better func(best, v int) bool) int {
	sum := 0
	for _, g := range c.groups {
		best, found := 0, false
		for _, s := range g {
			if !s.countsAsMana() {
				continue
			}
			if v := s.manaValue(); !found || better(best, v) {
				best, found = v, true
			}
		}
		sum += best
	}
	return sum
}

// Interpretations returns every concrete interpretation of the cost: the
// Cartesian product over its groups, in group order. The slice is freshly
// built on every call; its length is exactly NumVariations. This is
// exponential in the number of multi-alternative groups — callers handling
// untrusted input must cap NumVariations before enumerating.
func (c *Cost) Interpretations() []Interpretation {
	out := make([]Interpretation, 0, c.NumVariations())
	c.EachInterpretation(func(in Interpretation) bool {
		out = append(out, in)
		return true
	})
	return out
}

// EachInterpretation enumerates interpretations in the same order as
// Interpretations, invoking fn for each until fn returns false. Each call
// walks the product from the start; no cursor state is shared.
func (c *Cost) EachInterpretation(fn func(Interpretation) bool) {
	choice := make([]int, len(c.groups))
	for {
		in := newInterpretation()
		for gi, si := range choice {
			in.pay(c.groups[gi][si])
		}
		if !fn(in) {
			return
		}
		// Odometer increment over group alternatives.
		gi := len(choice) - 1
		for ; gi >= 0; gi-- {
			choice[gi]++
			if choice[gi] < len(c.groups[gi]) {
				break
			}
			choice[gi] = 0
		}
		if gi < 0 {
			return
		}
	}
}
