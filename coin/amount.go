package coin

import (
	"math/big"

	"github.com/contractkit/contractkit/errors"
)

// maxAmount is the highest value an Amount can hold. It is 2^128-1, the
// conventional token amount width on wasm virtual machine chains.
var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

var zeroInt = big.NewInt(0)

// Amount is a non negative integer token quantity in the range
// [0, 2^128-1]. The zero value of this type is a usable zero amount.
//
// Every arithmetic operation is bound checked. A result outside of the
// valid range is reported as an ErrOverflow instead of wrapping around.
type Amount struct {
	i *big.Int
}

// NewAmount returns an amount of given value.
func NewAmount(value uint64) Amount {
	return asAmount(new(big.Int).SetUint64(value))
}

// asAmount wraps a non negative integer. Zero is always represented by the
// nil backed form so that amounts created through different code paths
// compare equal with reflect.DeepEqual.
func asAmount(i *big.Int) Amount {
	if i.Sign() == 0 {
		return Amount{}
	}
	return Amount{i: i}
}

// ParseAmount parses a decimal string representation of an amount.
func ParseAmount(raw string) (Amount, error) {
	if raw == "" {
		return Amount{}, errors.Wrap(errors.ErrEmpty, "amount")
	}
	i, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Amount{}, errors.Wrapf(errors.ErrInput, "not a decimal number: %q", raw)
	}
	if i.Sign() < 0 {
		return Amount{}, errors.Wrapf(errors.ErrInput, "negative amount: %q", raw)
	}
	if i.Cmp(maxAmount) > 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "amount %q", raw)
	}
	return asAmount(i), nil
}

// value returns a nil safe view of the wrapped integer. The result must
// not be mutated.
func (a Amount) value() *big.Int {
	if a.i == nil {
		return zeroInt
	}
	return a.i
}

// Add returns the sum of two amounts. ErrOverflow is returned if the sum
// is above the valid amount range.
func (a Amount) Add(o Amount) (Amount, error) {
	sum := new(big.Int).Add(a.value(), o.value())
	if sum.Cmp(maxAmount) > 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, o)
	}
	return asAmount(sum), nil
}

// Sub returns the difference of two amounts. Amounts are unsigned so a
// result below zero is reported as ErrOverflow.
func (a Amount) Sub(o Amount) (Amount, error) {
	diff := new(big.Int).Sub(a.value(), o.value())
	if diff.Sign() < 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s - %s is below zero", a, o)
	}
	return asAmount(diff), nil
}

// Mul returns this amount multiplied given number of times. ErrOverflow is
// returned if the result is above the valid amount range.
func (a Amount) Mul(times uint64) (Amount, error) {
	product := new(big.Int).Mul(a.value(), new(big.Int).SetUint64(times))
	if product.Cmp(maxAmount) > 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s * %d", a, times)
	}
	return asAmount(product), nil
}

// Cmp returns 1 if a is larger, -1 if o is larger and 0 when equal.
func (a Amount) Cmp(o Amount) int {
	return a.value().Cmp(o.value())
}

// Equals returns true if both amounts represent the same value.
func (a Amount) Equals(o Amount) bool {
	return a.Cmp(o) == 0
}

// IsZero returns true if the amount value is 0.
func (a Amount) IsZero() bool {
	return a.value().Sign() == 0
}

// Clone provides an independent copy of an amount.
func (a Amount) Clone() Amount {
	if a.i == nil {
		return Amount{}
	}
	return asAmount(new(big.Int).Set(a.i))
}

func (a Amount) String() string {
	return a.value().String()
}

// MarshalJSON encodes the amount as a decimal string. String form is used
// because JSON numbers cannot represent the full amount range.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Amount) UnmarshalJSON(raw []byte) error {
	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	val, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = val
	return nil
}
