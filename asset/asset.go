// Package asset provides a light abstraction over the two kinds of
// fungible tokens a contract can deal with: native chain denominations
// and tokens managed by another contract. It allows helpers to handle
// both uniformly while keeping the conversion to transaction funds (which
// can carry native coins only) explicit.
package asset

import (
	"strings"

	"github.com/contractkit/contractkit/coin"
	"github.com/contractkit/contractkit/errors"
)

// Info identifies a fungible token type. Exactly one of the fields is
// set: either the denomination of a native token or the bech32 account
// address of the managing contract.
type Info struct {
	Native   string `json:"native,omitempty"`
	Contract string `json:"contract,omitempty"`
}

// NativeInfo returns the token identity of a native denomination.
func NativeInfo(denom string) Info {
	return Info{Native: denom}
}

// ContractInfo returns the token identity of a contract managed token.
func ContractInfo(addr string) Info {
	return Info{Contract: addr}
}

// IsNative returns true if this is a native chain denomination.
func (i Info) IsNative() bool {
	return i.Native != ""
}

// Validate ensures the token identity is well formed: a valid
// denomination for a native token, a valid account address for a contract
// token.
func (i Info) Validate() error {
	switch {
	case i.Native != "" && i.Contract != "":
		return errors.Wrap(errors.ErrState, "both native and contract set")
	case i.Native != "":
		if !coin.IsDenom(i.Native) {
			return errors.Wrapf(errors.ErrDenom, "%q", i.Native)
		}
		return nil
	case i.Contract != "":
		return ValidateAddress(i.Contract)
	default:
		return errors.Wrap(errors.ErrEmpty, "token identity")
	}
}

// Equals returns true if both identities refer to the same token type.
func (i Info) Equals(o Info) bool {
	return i.Native == o.Native && i.Contract == o.Contract
}

// String encodes the identity in the "<kind>:<value>" form, for example
// "native:uatom" or "contract:wasm1...". The result can be parsed back
// using ParseInfo.
func (i Info) String() string {
	if i.IsNative() {
		return "native:" + i.Native
	}
	return "contract:" + i.Contract
}

// ParseInfo parses the "<kind>:<value>" token identity representation.
func ParseInfo(raw string) (Info, error) {
	chunks := strings.SplitN(raw, ":", 2)
	if len(chunks) != 2 {
		return Info{}, errors.Wrapf(errors.ErrInput, "invalid token identity format: %q", raw)
	}
	var info Info
	switch chunks[0] {
	case "native":
		info = NativeInfo(chunks[1])
	case "contract":
		info = ContractInfo(chunks[1])
	default:
		return Info{}, errors.Wrapf(errors.ErrInput, "unknown token kind: %q", chunks[0])
	}
	if err := info.Validate(); err != nil {
		return Info{}, err
	}
	return info, nil
}

// Asset is a quantity of one token type.
type Asset struct {
	Info   Info        `json:"info"`
	Amount coin.Amount `json:"amount"`
}

// Native returns an asset of a native denomination.
func Native(denom string, amount coin.Amount) Asset {
	return Asset{Info: NativeInfo(denom), Amount: amount}
}

// Contract returns an asset of a contract managed token.
func Contract(addr string, amount coin.Amount) Asset {
	return Asset{Info: ContractInfo(addr), Amount: amount}
}

// FromCoin converts a native coin into an asset. Every coin has an asset
// representation, so this conversion cannot fail.
func FromCoin(c coin.Coin) Asset {
	return Native(c.Denom, c.Amount)
}

// Validate ensures the token identity is well formed. A zero amount is a
// valid asset.
func (a Asset) Validate() error {
	return errors.Wrap(a.Info.Validate(), "info")
}

// Add combines two assets of the same token type.
func (a Asset) Add(o Asset) (Asset, error) {
	if !a.Info.Equals(o.Info) {
		return Asset{}, errors.Wrapf(errors.ErrUnexpectedDenom, "cannot add %q to %q", o.Info, a.Info)
	}
	sum, err := a.Amount.Add(o.Amount)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Info: a.Info, Amount: sum}, nil
}

// AsCoin converts a native asset into a transaction funds coin. A
// contract managed token has no coin representation and is reported as an
// error.
func (a Asset) AsCoin() (coin.Coin, error) {
	if !a.Info.IsNative() {
		return coin.Coin{}, errors.Wrapf(errors.ErrState, "%q has no coin representation", a.Info)
	}
	return coin.NewCoin(a.Info.Native, a.Amount), nil
}

func (a Asset) String() string {
	return a.Amount.String() + " " + a.Info.String()
}
