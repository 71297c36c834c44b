package mana

// Cost-level relations are existential over the interpretation cross
// product: X rel Y when some interpretation of X relates to some
// interpretation of Y. Enumeration short-circuits on the first satisfying
// pair; the full product is never materialized.

// Equal reports whether some interpretation of c equals some interpretation
// of rhs.
func (c *Cost) Equal(rhs *Cost) bool {
	return c.exists(rhs, Interpretation.Equal)
}

// Less reports whether some interpretation of rhs strictly covers some
// interpretation of c — "rhs can overpay for c". See Interpretation.Less.
func (c *Cost) Less(rhs *Cost) bool {
	return c.exists(rhs, Interpretation.Less)
}

// LessEq reports whether some interpretation of rhs covers some
// interpretation of c.
func (c *Cost) LessEq(rhs *Cost) bool {
	return c.exists(rhs, Interpretation.LessEq)
}

// Greater is Less with the operands swapped. Because the underlying
// covering relation is asymmetric, Greater is NOT the complement of LessEq:
// both c.Less(rhs) and c.Greater(rhs) can hold at once.
func (c *Cost) Greater(rhs *Cost) bool {
	return rhs.Less(c)
}

// GreaterEq is LessEq with the operands swapped.
func (c *Cost) GreaterEq(rhs *Cost) bool {
	return rhs.LessEq(c)
}

func (c *Cost) exists(rhs *Cost, rel func(Interpretation, Interpretation) bool) bool {
	found := false
	c.EachInterpretation(func(left Interpretation) bool {
		rhs.EachInterpretation(func(right Interpretation) bool {
			if rel(left, right) {
				found = true
			}
			return !found
		})
		return !found
	})
	return found
}
