package mana

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCost(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		groups int
	}{
		{name: "empty string", text: "", groups: 0},
		{name: "single group", text: "{R}", groups: 1},
		{name: "hybrid group", text: "{R/W}", groups: 1},
		{name: "multiple groups", text: "{2}{G}{G}", groups: 3},
		{name: "surrounding text ignored", text: "Casting cost {1}{U} as printed", groups: 2},
		{name: "unmatched bracket skipped", text: "{R", groups: 0},
		{name: "malformed group skipped", text: "{R/}{W}", groups: 1},
		{name: "lowercase not a symbol", text: "{r}", groups: 0},
		{name: "trailing garbage inside braces", text: "{Rx}", groups: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := ParseCost(tt.text)
			require.NotNil(t, cost)
			assert.Equal(t, tt.groups, cost.NumGroups())
			assert.Equal(t, tt.text, cost.String())
		})
	}
}

func TestNumVariations(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"{R}", 1},
		{"{R/R/R}", 1},
		{"{1/2/3/4}", 4},
		{"{1}{1}", 1},
		{"{R/W}{R/W}", 4},
		{"{W/R/G/B/U/10}{W/R/G/B/U/10}", 36},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCost(tt.text).NumVariations())
		})
	}
}

func TestNumVariationsSaturates(t *testing.T) {
	// 64 two-way groups denote 2^64 interpretations, which wraps a machine
	// word to zero if multiplied blindly; the count must pin at MaxInt so
	// variation caps still see an over-limit value.
	huge := ParseCost(strings.Repeat("{R/W}", 64))
	assert.Equal(t, math.MaxInt, huge.NumVariations())

	// 5^28 overflows 64-bit: same saturation.
	assert.Equal(t, math.MaxInt, ParseCost(strings.Repeat("{1/2/3/4/5}", 28)).NumVariations())

	// Just below the overflow threshold the exact product survives.
	assert.Equal(t, 1<<62, ParseCost(strings.Repeat("{R/W}", 62)).NumVariations())
}

func TestParseIdempotent(t *testing.T) {
	// Re-parsing identical text yields identical structure.
	const text = "{X}{2/W}{P}{U/B}"
	a, b := ParseCost(text), ParseCost(text)
	assert.Equal(t, a.NumVariations(), b.NumVariations())
	assert.Equal(t, a.MinTotal(), b.MinTotal())
	assert.Equal(t, a.MaxTotal(), b.MaxTotal())
	assert.True(t, a.Equal(b))
}

func TestMinMaxTotals(t *testing.T) {
	tests := []struct {
		text string
		min  int
		max  int
	}{
		{"", 0, 0},
		{"{R}", 1, 1},
		{"{R}{R}", 2, 2},
		{"{5}{R}", 6, 6},
		{"{5/R}{W}", 2, 6},
		{"{W/R/G/B/U/10}{W/R/G/B/U/10}", 2, 20},
		{"{0}", 0, 0},
		// P and X are not real mana: skipped entirely, and a group with
		// nothing but them contributes zero.
		{"{X}{R}", 1, 1},
		{"{P}{P/X}", 0, 0},
		{"{P/2}{G}", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cost := ParseCost(tt.text)
			assert.Equal(t, tt.min, cost.MinTotal(), "min")
			assert.Equal(t, tt.max, cost.MaxTotal(), "max")
		})
	}
}

func TestInterpretations(t *testing.T) {
	cost := ParseCost("{R/W}{2}")
	interps := cost.Interpretations()
	require.Len(t, interps, 2)

	assert.Equal(t, 1, interps[0].Count(Red))
	assert.Equal(t, 2, interps[0].Count(Generic))
	assert.Equal(t, 1, interps[1].Count(White))
	assert.Equal(t, 2, interps[1].Count(Generic))

	// Fresh sequence on every call.
	again := cost.Interpretations()
	require.Len(t, again, 2)
	assert.True(t, interps[0].Equal(again[0]))
	assert.True(t, interps[1].Equal(again[1]))
}

func TestInterpretationsEmptyCost(t *testing.T) {
	interps := ParseCost("no cost here").Interpretations()
	require.Len(t, interps, 1)
	for _, k := range Keys {
		assert.Zero(t, interps[0].Count(k))
	}
}

func TestEachInterpretationShortCircuit(t *testing.T) {
	seen := 0
	ParseCost("{1/2/3/4}{1/2/3/4}").EachInterpretation(func(Interpretation) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

func TestDuplicateCollapseIsTextual(t *testing.T) {
	// {1/01} resolves both alternatives to one generic mana, but the
	// collapse happens on raw text, so both survive as variations.
	assert.Equal(t, 2, ParseCost("{1/01}").NumVariations())
	assert.Equal(t, 1, ParseCost("{1/1}").NumVariations())
}
