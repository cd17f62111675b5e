package coin

import (
	"github.com/contractkit/contractkit/errors"
)

// AssertExact verifies that given funds contain exactly one entry for the
// expected denomination and that the entry carries exactly the expected
// amount. With exclusive set, any other denomination present in the funds
// is a violation as well. Exclusivity is a deliberate choice of the caller
// and never a silent default.
//
// Funds are accepted in raw form, as attached to the transaction by the
// caller. They do not have to be normalized.
func AssertExact(funds Coins, denom string, amount Amount, exclusive bool) error {
	found := false
	for _, c := range funds {
		if c.Denom != denom {
			if exclusive {
				return errors.Wrapf(errors.ErrUnexpectedDenom, "%q", c.Denom)
			}
			continue
		}
		if found {
			return errors.Wrapf(errors.ErrDuplicate, "denomination %q attached more than once", denom)
		}
		found = true
		if !c.Amount.Equals(amount) {
			return errors.Wrapf(errors.ErrAmountMismatch, "expected %s%s, got %s%s",
				amount, denom, c.Amount, denom)
		}
	}
	if !found {
		return errors.Wrapf(errors.ErrMissingDenom, "%q", denom)
	}
	return nil
}

// OnlyOne verifies that given funds consist of a single coin and returns
// it. Empty funds and funds carrying more than one denomination are
// rejected.
func OnlyOne(funds Coins) (Coin, error) {
	switch len(funds) {
	case 0:
		return Coin{}, errors.Wrap(errors.ErrEmpty, "no funds attached")
	case 1:
		return funds[0], nil
	default:
		return Coin{}, errors.Wrapf(errors.ErrUnexpectedDenom, "want a single coin, got %d", len(funds))
	}
}

// OnlyOneDenom works like OnlyOne but additionally asserts the
// denomination of the single attached coin.
func OnlyOneDenom(funds Coins, denom string) (Coin, error) {
	c, err := OnlyOne(funds)
	if err != nil {
		return Coin{}, err
	}
	if c.Denom != denom {
		return Coin{}, errors.Wrapf(errors.ErrUnexpectedDenom, "found %q, expected %q", c.Denom, denom)
	}
	return c, nil
}

// FundsMap transforms given funds into a denomination to amount lookup
// table. Funds carrying the same denomination more than once are rejected,
// because collapsing them silently could hide a client mistake.
func FundsMap(funds Coins) (map[string]Amount, error) {
	res := make(map[string]Amount, len(funds))
	for _, c := range funds {
		if _, ok := res[c.Denom]; ok {
			return nil, errors.Wrapf(errors.ErrDuplicate, "multiple %q entries", c.Denom)
		}
		res[c.Denom] = c.Amount
	}
	return res, nil
}
