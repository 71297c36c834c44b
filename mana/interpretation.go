package mana

// Interpretation is one fully resolved payment of a cost: a multiset of
// resolved mana types. Missing keys count zero. Interpretations are built by
// Cost enumeration and never mutated afterwards.
type Interpretation struct {
	counts map[Key]int
}

func newInterpretation() Interpretation {
	return Interpretation{counts: make(map[Key]int)}
}

// pay folds one chosen symbol into the multiset. A numeric literal adds its
// value under Generic — including zero, so {0} yields a Generic entry that
// a free cost lacks. Phyrexian and X symbols are kept under their own keys
// even though they are not real mana: searching for costs that contain them
// is useful.
func (in Interpretation) pay(s symbol) {
	if s.key == Generic {
		in.counts[Generic] += s.value
		return
	}
	in.counts[s.key]++
}

// Count returns the multiplicity of key, zero when absent.
func (in Interpretation) Count(k Key) int {
	return in.counts[k]
}

// Counts returns a copy of the multiset as a map.
func (in Interpretation) Counts() map[Key]int {
	out := make(map[Key]int, len(in.counts))
	for k, v := range in.counts {
		out[k] = v
	}
	return out
}

// Less reports whether rhs strictly covers this interpretation: every entry
// here is strictly exceeded by rhs's count for the same key. Only keys
// present on the left are examined — rhs may hold mana of types the left
// side never asks for. The relation is therefore not antisymmetric; it is a
// payability covering, not a total order.
func (in Interpretation) Less(rhs Interpretation) bool {
	for k, v := range in.counts {
		if v >= rhs.Count(k) {
			return false
		}
	}
	return true
}

// LessEq reports whether rhs covers this interpretation: for every entry
// here, rhs holds at least as much. Same left-side quantification as Less.
func (in Interpretation) LessEq(rhs Interpretation) bool {
	for k, v := range in.counts {
		if v > rhs.Count(k) {
			return false
		}
	}
	return true
}

// Equal reports multiset equality: the same count for every key on either
// side, with absent keys counting zero.
func (in Interpretation) Equal(rhs Interpretation) bool {
	for k, v := range in.counts {
		if v != rhs.Count(k) {
			return false
		}
	}
	for k, v := range rhs.counts {
		if v != in.Count(k) {
			return false
		}
	}
	return true
}
