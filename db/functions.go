package db

import (
	"sync/atomic"

	"github.com/mattn/go-sqlite3"

	"github.com/tapline/manaql/errors"
	"github.com/tapline/manaql/mana/costcache"
)

// DefaultMaxVariations caps the left×right interpretation product of one SQL
// comparison. Cost comparison is exponential in the number of hybrid groups;
// without a cap a single hostile mana_lt('{1/2/3/4/5}{1/2/3/4/5}...', ...)
// can stall a whole table scan.
const DefaultMaxVariations = 10000

var (
	maxVariations atomic.Int64
	costs         atomic.Pointer[costcache.Cache]
)

func init() {
	maxVariations.Store(DefaultMaxVariations)
}

// Configure applies guard options shared by every mana-aware connection.
func Configure(opts Options) error {
	if opts.MaxVariations != 0 {
		limit := int64(opts.MaxVariations)
		if limit < 0 {
			limit = 0 // disabled
		}
		maxVariations.Store(limit)
	}
	if opts.CacheSize != 0 || costs.Load() == nil {
		cache, err := costcache.New(opts.CacheSize)
		if err != nil {
			return errors.Wrap(err, "create cost cache")
		}
		costs.Store(cache)
	}
	return nil
}

func currentMaxVariations() int64 {
	return maxVariations.Load()
}

// registerManaFunctions installs the mana SQL functions on a new connection.
// All functions are pure: same arguments, same result, no side effects.
func registerManaFunctions(conn *sqlite3.SQLiteConn) error {
	relations := []struct {
		name string
		rel  func(*costcache.Entry, *costcache.Entry) bool
	}{
		{"mana_eq", (*costcache.Entry).Equal},
		{"mana_lt", (*costcache.Entry).Less},
		{"mana_le", (*costcache.Entry).LessEq},
		{"mana_gt", (*costcache.Entry).Greater},
		{"mana_ge", (*costcache.Entry).GreaterEq},
	}
	for _, r := range relations {
		rel := r.rel
		fn := func(left, right string) (bool, error) {
			l, rt, err := lookupPair(left, right)
			if err != nil {
				return false, err
			}
			return rel(l, rt), nil
		}
		if err := conn.RegisterFunc(r.name, fn, true); err != nil {
			return errors.Wrapf(err, "register %s", r.name)
		}
	}

	scalars := []struct {
		name string
		fn   func(*costcache.Entry) int64
	}{
		{"mana_min", func(e *costcache.Entry) int64 { return int64(e.Cost.MinTotal()) }},
		{"mana_max", func(e *costcache.Entry) int64 { return int64(e.Cost.MaxTotal()) }},
		{"mana_variations", func(e *costcache.Entry) int64 { return int64(e.Cost.NumVariations()) }},
	}
	for _, s := range scalars {
		scalar := s.fn
		fn := func(text string) int64 {
			return scalar(lookup(text))
		}
		if err := conn.RegisterFunc(s.name, fn, true); err != nil {
			return errors.Wrapf(err, "register %s", s.name)
		}
	}

	return nil
}

func lookup(text string) *costcache.Entry {
	return costs.Load().Get(text)
}

// lookupPair resolves both operands and enforces the variation cap before
// any comparison work happens.
func lookupPair(left, right string) (*costcache.Entry, *costcache.Entry, error) {
	l, r := lookup(left), lookup(right)
	if limit := maxVariations.Load(); limit > 0 {
		lv := int64(l.Cost.NumVariations())
		rv := int64(r.Cost.NumVariations())
		// Division instead of lv*rv: both operands are saturated, not
		// wrapped, but their product could still overflow int64.
		if lv > limit || rv > limit || lv > limit/rv {
			return nil, nil, errors.Wrapf(errors.ErrVariationLimit,
				"%d x %d interpretations exceeds cap %d", lv, rv, limit)
		}
	}
	return l, r, nil
}
