package mana

import (
	"math"
	"strconv"
)

// Key identifies one resolved mana type in a concrete interpretation.
// Numeric literals all accumulate under Generic; every other symbol is
// tracked under its own key.
type Key string

const (
	White     Key = "W"
	Blue      Key = "U"
	Black     Key = "B"
	Red       Key = "R"
	Green     Key = "G"
	Colorless Key = "C"
	Phyrexian Key = "P"
	Variable  Key = "X"
	Generic   Key = "GENERIC"
)

// Keys lists every interpretation key in display order.
var Keys = []Key{White, Blue, Black, Red, Green, Colorless, Phyrexian, Variable, Generic}

// symbol is one alternative inside a cost group, as written in the source
// text. Numeric literals carry their parsed value; letter symbols carry
// their key. The raw text is kept because duplicate collapse is textual:
// {1/01} has two alternatives even though both resolve the same way.
type symbol struct {
	text  string
	key   Key
	value int // numeric value when key == Generic
}

func newSymbol(text string) symbol {
	c := text[0]
	if c >= '0' && c <= '9' {
		v, err := strconv.Atoi(text)
		if err != nil {
			// Digit runs beyond int range saturate.
			v = math.MaxInt
		}
		return symbol{text: text, key: Generic, value: v}
	}
	return symbol{text: text, key: Key(text)}
}

// countsAsMana reports whether the symbol participates in min/max totals.
// Phyrexian and X symbols are searchable but are not real mana amounts.
func (s symbol) countsAsMana() bool {
	return s.key != Phyrexian && s.key != Variable
}

// manaValue is the symbol's numeric contribution to a total: literals
// contribute their value, everything else one mana.
func (s symbol) manaValue() int {
	if s.key == Generic {
		return s.value
	}
	return 1
}
