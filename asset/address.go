package asset

import (
	"github.com/btcsuite/btcutil/bech32"

	"github.com/contractkit/contractkit/errors"
)

// DecodeAddress converts given bech32 encoded account address into the
// human readable prefix and the raw payload.
func DecodeAddress(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrAddress, "bech32 decode: %s", err)
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrAddress, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// EncodeAddress converts given payload into a bech32 encoded account
// address with the given human readable prefix.
func EncodeAddress(hrp string, payload []byte) (string, error) {
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrAddress, "convert bits: %s", err)
	}
	raw, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", errors.Wrapf(errors.ErrAddress, "bech32 encode: %s", err)
	}
	return raw, nil
}

// ValidateAddress ensures that given string is a well formed bech32
// account address. Both key hash (20 bytes) and contract (32 bytes)
// payload sizes are accepted.
func ValidateAddress(raw string) error {
	_, payload, err := DecodeAddress(raw)
	if err != nil {
		return err
	}
	switch len(payload) {
	case 20, 32:
		return nil
	}
	return errors.Wrapf(errors.ErrAddress, "invalid payload length %d", len(payload))
}
