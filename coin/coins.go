package coin

import (
	"sort"
	"strings"

	"github.com/contractkit/contractkit/errors"
)

// Coins represents a set of coins. Most operations on the coin set require
// the normalized form: unique denominations, ascending denomination order
// and no zero amounts. Use NormalizeCoins on any externally supplied
// collection before operating on it.
type Coins []Coin

// Clone returns a copy that can be safely modified.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a collection with holdings increased by given coin. The
// receiver must be in normalized form and the result is normalized as
// well. The returned collection may share memory with the receiver.
func (cs Coins) Add(c Coin) (Coins, error) {
	// Zero coins carry no value.
	if c.IsZero() {
		return cs, nil
	}

	i, found := cs.findCoin(c.Denom)
	if found {
		sum, err := cs[i].Add(c)
		if err != nil {
			return nil, err
		}
		cs[i] = sum
		return cs, nil
	}
	// Special case, append at the end.
	if i == len(cs) {
		return append(cs, c), nil
	}
	// Insert in the beginning or the middle, with one alloc.
	res := append(cs, Coin{})
	copy(res[i+1:], res[i:])
	res[i] = c
	return res, nil
}

// Combine returns a new collection that adds all coins of both collections
// together. Amounts of shared denominations are summed, all the other
// coins pass through unchanged. The result is in normalized form
// regardless of the input.
func (cs Coins) Combine(o Coins) (Coins, error) {
	merged := make(Coins, 0, len(cs)+len(o))
	merged = append(merged, cs...)
	merged = append(merged, o...)
	return NormalizeCoins(merged)
}

// AmountOf returns the amount held for given denomination. A denomination
// that is not present is reported as a zero amount, never as an error.
func (cs Coins) AmountOf(denom string) Amount {
	for _, c := range cs {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return Amount{}
}

// Contains returns true if there is at least that much coin in the
// collection. The receiver must be in normalized form.
func (cs Coins) Contains(c Coin) bool {
	i, found := cs.findCoin(c.Denom)
	if !found {
		return false
	}
	return cs[i].Amount.Cmp(c.Amount) >= 0
}

// findCoin returns the index of the coin with given denomination. The
// receiver must be sorted by denomination.
//
// If there was no match, found is false and the index is where the coin
// should be inserted (which may be between 0 and len(cs)).
func (cs Coins) findCoin(denom string) (idx int, found bool) {
	for i, c := range cs {
		switch strings.Compare(denom, c.Denom) {
		case -1:
			return i, false
		case 0:
			return i, true
		}
	}
	// Hit the end, must append.
	return len(cs), false
}

// IsEmpty returns true if there is nothing in the collection.
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// Count returns the number of unique denominations in the collection.
func (cs Coins) Count() int {
	return len(cs)
}

// Equals returns true if both collections contain the same coins in the
// same order.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that all coins are in ascending denomination order and
// that each coin is valid in its own right.
//
// Zero amounts and duplicated denominations must not be present. All
// violations are reported at once, clubbed together into a single error.
func (cs Coins) Validate() error {
	var err error
	last := ""
	for _, c := range cs {
		err = errors.Append(err, errors.Wrap(c.Validate(), "coin"))

		if c.IsZero() {
			err = errors.Append(err, errors.Wrapf(errors.ErrState, "zero coin %q", c.Denom))
		}
		switch strings.Compare(c.Denom, last) {
		case 0:
			err = errors.Append(err, errors.Wrapf(errors.ErrDuplicate, "denomination %q", c.Denom))
		case -1:
			err = errors.Append(err, errors.Wrap(errors.ErrState, "not sorted"))
		}
		last = c.Denom
	}
	return err
}

func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// ParseCoins parses a comma separated list of compact coin representations,
// for example "5uatom,3uosmo". The result is in normalized form.
func ParseCoins(raw string) (Coins, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var coins Coins
	for _, part := range strings.Split(raw, ",") {
		c, err := ParseCoin(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return NormalizeCoins(coins)
}

// NormalizeCoins is a cleanup operation that merges and orders a set of
// coin instances into a unified form. This includes summing coins of the
// same denomination, dropping zero amounts and sorting by the denomination
// name. The operation is idempotent. If the given set of coins is already
// normalized it is returned unchanged.
func NormalizeCoins(cs Coins) (Coins, error) {
	// If there is one or no coins, there is almost nothing to normalize.
	switch len(cs) {
	case 0:
		return nil, nil
	case 1:
		if cs[0].IsZero() {
			return nil, nil
		}
		return cs, nil
	}

	if isNormalized(cs) {
		return cs, nil
	}

	set := make(map[string]Coin)
	for _, c := range cs {
		sum, ok := set[c.Denom]
		if ok {
			var err error
			sum, err = sum.Add(c)
			if err != nil {
				return nil, errors.Wrap(err, "cannot sum coins")
			}
		} else {
			sum = c
		}
		set[c.Denom] = sum
	}

	coins := make(Coins, 0, len(set))
	for _, c := range set {
		if c.IsZero() {
			// Ignore zero coins because they carry no value.
			continue
		}
		coins = append(coins, c)
	}
	if len(coins) == 0 {
		return nil, nil
	}
	sort.Slice(coins, func(i, j int) bool {
		return coins[i].Denom < coins[j].Denom
	})
	return coins, nil
}

// isNormalized checks if a coin collection is in the normalized form. This
// is a cheap operation.
func isNormalized(cs Coins) bool {
	last := ""
	for _, c := range cs {
		if c.IsZero() {
			// Zero coins should not be a part of a collection
			// because they carry no value.
			return false
		}
		if c.Denom <= last {
			// Not ordered by the denomination or the
			// denomination is duplicated.
			return false
		}
		last = c.Denom
	}
	return true
}
