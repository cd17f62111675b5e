package asset

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractkit/contractkit/coin"
	"github.com/contractkit/contractkit/errors"
)

// contractAddr returns a valid bech32 contract address. Only for tests.
func contractAddr(t *testing.T) string {
	t.Helper()
	addr, err := EncodeAddress("wasm", bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return addr
}

func TestInfoValidate(t *testing.T) {
	addr := contractAddr(t)

	cases := map[string]struct {
		info    Info
		wantErr *errors.Error
	}{
		"native token": {
			info: NativeInfo("uatom"),
		},
		"contract token": {
			info: ContractInfo(addr),
		},
		"invalid denomination": {
			info:    NativeInfo("u$d"),
			wantErr: errors.ErrDenom,
		},
		"invalid contract address": {
			info:    ContractInfo("garbage"),
			wantErr: errors.ErrAddress,
		},
		"both set": {
			info:    Info{Native: "uatom", Contract: addr},
			wantErr: errors.ErrState,
		},
		"none set": {
			info:    Info{},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.info.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}

func TestInfoStringRoundTrip(t *testing.T) {
	addr := contractAddr(t)

	for _, info := range []Info{
		NativeInfo("uatom"),
		ContractInfo(addr),
	} {
		got, err := ParseInfo(info.String())
		require.NoError(t, err)
		assert.True(t, info.Equals(got), "%q != %q", info, got)
	}

	_, err := ParseInfo("uatom")
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)

	_, err = ParseInfo("cw721:something")
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}

func TestInfoJSON(t *testing.T) {
	raw, err := json.Marshal(NativeInfo("uatom"))
	require.NoError(t, err)
	assert.Equal(t, `{"native":"uatom"}`, string(raw))

	var info Info
	require.NoError(t, json.Unmarshal(raw, &info))
	assert.True(t, NativeInfo("uatom").Equals(info))
}

func TestAssetAdd(t *testing.T) {
	sum, err := Native("uatom", coin.NewAmount(5)).Add(Native("uatom", coin.NewAmount(3)))
	require.NoError(t, err)
	assert.Equal(t, "8", sum.Amount.String())

	_, err = Native("uatom", coin.NewAmount(5)).Add(Native("uosmo", coin.NewAmount(3)))
	assert.True(t, errors.ErrUnexpectedDenom.Is(err), "got %+v", err)

	addr := contractAddr(t)
	_, err = Native("uatom", coin.NewAmount(5)).Add(Contract(addr, coin.NewAmount(3)))
	assert.True(t, errors.ErrUnexpectedDenom.Is(err), "got %+v", err)
}

func TestAssetCoinConversion(t *testing.T) {
	c := coin.NewCoin64("uatom", 5)
	a := FromCoin(c)
	require.NoError(t, a.Validate())

	back, err := a.AsCoin()
	require.NoError(t, err)
	assert.True(t, c.Equals(back))

	_, err = Contract(contractAddr(t), coin.NewAmount(5)).AsCoin()
	assert.True(t, errors.ErrState.Is(err), "got %+v", err)
}
