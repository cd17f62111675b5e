package coin

import (
	"encoding/json"
	"regexp"

	"github.com/contractkit/contractkit/errors"
)

// IsDenom is the RegExp to ensure valid denomination identifiers.
// Denominations are case sensitive and follow the usual chain grammar: a
// letter followed by 2 to 127 characters from a restricted set.
var IsDenom = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`).MatchString

// Coin is an immutable pair of a denomination and a non negative amount.
type Coin struct {
	Denom  string `json:"denom"`
	Amount Amount `json:"amount"`
}

// NewCoin creates a new coin of given denomination.
func NewCoin(denom string, amount Amount) Coin {
	return Coin{
		Denom:  denom,
		Amount: amount,
	}
}

// NewCoin64 creates a new coin from a plain integer value. This is a
// convenience constructor, most useful in tests.
func NewCoin64(denom string, value uint64) Coin {
	return NewCoin(denom, NewAmount(value))
}

// Add combines two coins of the same denomination. A coin of a different
// denomination or an amount overflow result in an error.
func (c Coin) Add(o Coin) (Coin, error) {
	// A coin without a denomination represents no value and has no
	// influence on the addition result.
	if c.Denom == "" && c.Amount.IsZero() {
		return o, nil
	}
	if o.Denom == "" && o.Amount.IsZero() {
		return c, nil
	}

	if !c.SameDenom(o) {
		return Coin{}, errors.Wrapf(errors.ErrUnexpectedDenom, "cannot add %q to %q", o.Denom, c.Denom)
	}
	sum, err := c.Amount.Add(o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: c.Denom, Amount: sum}, nil
}

// Sub decreases this coin value by given coin. Denominations must match
// and the result must not drop below zero.
func (c Coin) Sub(o Coin) (Coin, error) {
	if !c.SameDenom(o) {
		return Coin{}, errors.Wrapf(errors.ErrUnexpectedDenom, "cannot subtract %q from %q", o.Denom, c.Denom)
	}
	diff, err := c.Amount.Sub(o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: c.Denom, Amount: diff}, nil
}

// Multiply returns the result of a coin value multiplication. This method
// can fail if the result would overflow the maximum amount value.
func (c Coin) Multiply(times uint64) (Coin, error) {
	product, err := c.Amount.Mul(times)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: c.Denom, Amount: product}, nil
}

// IsZero returns true if the amount is 0.
func (c Coin) IsZero() bool {
	return c.Amount.IsZero()
}

// Equals returns true if both coins have the same denomination and value.
func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && c.Amount.Equals(o.Amount)
}

// SameDenom returns true if both coins are of the same denomination.
func (c Coin) SameDenom(o Coin) bool {
	return c.Denom == o.Denom
}

// Clone provides an independent copy of a coin.
func (c Coin) Clone() Coin {
	return Coin{
		Denom:  c.Denom,
		Amount: c.Amount.Clone(),
	}
}

// Validate ensures that the denomination is well formed. A zero amount is
// a valid coin, although a normalized collection never contains one.
func (c Coin) Validate() error {
	if !IsDenom(c.Denom) {
		return errors.Wrapf(errors.ErrDenom, "%q", c.Denom)
	}
	return nil
}

// String provides a compact human readable representation of the coin,
// for example "5uatom". For a valid coin the result can be parsed back
// using ParseCoin.
func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// coinFormatRx describes the compact coin representation as produced by
// the String method.
var coinFormatRx = regexp.MustCompile(`^(\d+)\s*([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

// ParseCoin parses the compact "<amount><denom>" coin representation.
func ParseCoin(raw string) (Coin, error) {
	results := coinFormatRx.FindStringSubmatch(raw)
	if results == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format: %q", raw)
	}
	amount, err := ParseAmount(results[1])
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: results[2], Amount: amount}, nil
}

func (c *Coin) UnmarshalJSON(raw []byte) error {
	// Prioritize the compact format that is a string "<amount><denom>".
	var compact string
	if err := json.Unmarshal(raw, &compact); err == nil {
		parsed, err := ParseCoin(compact)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// Fallback into the default unmarshaling. Because UnmarshalJSON
	// method is provided, we can no longer use the Coin type for this.
	var coin struct {
		Denom  string `json:"denom"`
		Amount Amount `json:"amount"`
	}
	if err := json.Unmarshal(raw, &coin); err != nil {
		return err
	}
	c.Denom = coin.Denom
	c.Amount = coin.Amount
	return nil
}

// MergeCoin combines two optional coins into one. A nil coin represents no
// value and is skipped. If both coins are present they must be of the same
// denomination and the result amount is their sum.
func MergeCoin(from, with *Coin) (*Coin, error) {
	if from == nil {
		if with == nil {
			return nil, nil
		}
		c := with.Clone()
		return &c, nil
	}
	if with == nil {
		c := from.Clone()
		return &c, nil
	}
	sum, err := from.Add(*with)
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
