package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostEqual(t *testing.T) {
	tests := []struct {
		left  string
		right string
		want  bool
	}{
		{"{R}", "{R}", true},
		{"{R}", "{U}", false},
		{"{R/W}", "{R}", true},
		{"{R/W}", "{R/W}", true},
		{"{R}{R}", "{R}{W/R}", true},
		{"", "", true},
		// {0} carries an explicit zero-generic entry; the free cost does not.
		{"{0}", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.left+" == "+tt.right, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCost(tt.left).Equal(ParseCost(tt.right)))
		})
	}
}

func TestCostReflexiveEqual(t *testing.T) {
	for _, text := range []string{"", "{R}", "{R/W}{2/G}", "{X}{P/U}", "{10}{C}"} {
		assert.True(t, ParseCost(text).Equal(ParseCost(text)), text)
	}
}

func TestCostLessAndGreater(t *testing.T) {
	tests := []struct {
		left  string
		right string
	}{
		{"", "{R}"},
		{"{R}{R}", "{R}{R}{R}"},
		{"{5}{R}", "{6}{R}{R}"},
		{"{R}{R}{G}", "{R}{R}{R}{G}{G}"},
	}

	for _, tt := range tests {
		t.Run(tt.left+" < "+tt.right, func(t *testing.T) {
			assert.True(t, ParseCost(tt.left).Less(ParseCost(tt.right)))
			assert.True(t, ParseCost(tt.right).Greater(ParseCost(tt.left)))
		})
	}
}

func TestCostLessEqAndGreaterEq(t *testing.T) {
	tests := []struct {
		left  string
		right string
	}{
		{"{5000}", "{1000000}"},
		{"{R}", "{R}"},
		{"{R}{R}", "{R}{R}"},
		{"{5}{R}", "{5}{R}{R}"},
		{"{R}{R}{G}", "{R}{R}{R}{G}"},
	}

	for _, tt := range tests {
		t.Run(tt.left+" <= "+tt.right, func(t *testing.T) {
			assert.True(t, ParseCost(tt.left).LessEq(ParseCost(tt.right)))
			assert.True(t, ParseCost(tt.right).GreaterEq(ParseCost(tt.left)))
		})
	}
}

// The covering relation is existential over alternatives, so ordering is not
// antisymmetric: a hybrid cost can sit strictly below a cost that also sits
// strictly above it, and Greater is not the negation of Less.
func TestCoveringRelationIsNotAntisymmetric(t *testing.T) {
	rr := ParseCost("{R}{R}")
	hybrid := ParseCost("{R/G}")

	assert.False(t, rr.Less(hybrid))
	assert.True(t, hybrid.Less(rr))
	assert.True(t, rr.Greater(hybrid))
}
