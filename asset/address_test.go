package asset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractkit/contractkit/errors"
)

func TestAddressRoundTrip(t *testing.T) {
	for _, size := range []int{20, 32} {
		payload := bytes.Repeat([]byte{0x42}, size)
		addr, err := EncodeAddress("wasm", payload)
		require.NoError(t, err)

		hrp, got, err := DecodeAddress(addr)
		require.NoError(t, err)
		assert.Equal(t, "wasm", hrp)
		assert.Equal(t, payload, got)

		assert.NoError(t, ValidateAddress(addr))
	}
}

func TestDecodeAddressChecksum(t *testing.T) {
	addr, err := EncodeAddress("wasm", bytes.Repeat([]byte{0x42}, 20))
	require.NoError(t, err)

	// A single character substitution must be detected.
	last := addr[len(addr)-1]
	flip := byte('q')
	if last == 'q' {
		flip = 'p'
	}
	corrupted := addr[:len(addr)-1] + string(flip)

	_, _, err = DecodeAddress(corrupted)
	assert.True(t, errors.ErrAddress.Is(err), "got %+v", err)
}

func TestValidateAddressPayloadLength(t *testing.T) {
	addr, err := EncodeAddress("wasm", bytes.Repeat([]byte{0x42}, 7))
	require.NoError(t, err)

	err = ValidateAddress(addr)
	assert.True(t, errors.ErrAddress.Is(err), "got %+v", err)
}

func TestValidateAddressGarbage(t *testing.T) {
	for _, raw := range []string{"", "not an address", "wasm1"} {
		err := ValidateAddress(raw)
		assert.True(t, errors.ErrAddress.Is(err), "%q: got %+v", raw, err)
	}
}
