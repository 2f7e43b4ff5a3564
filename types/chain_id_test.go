package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"encoding/json"
	"testing"

	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainID_Discriminants(t *testing.T) {
	t.Parallel()

	// Persisted values; never change them.
	assert.Equal(t, ChainID(0), Compound)
	assert.Equal(t, ChainID(1), Ethereum)
	assert.Equal(t, ChainID(2), Polkadot)
	assert.Equal(t, ChainID(3), Solana)
	assert.Equal(t, ChainID(4), Tezos)
	assert.Equal(t, Ethereum, DefaultChainID)
	assert.Equal(t, []ChainID{Compound, Ethereum, Polkadot, Solana, Tezos}, AllChainIDs())
}

func TestParseChainID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    ChainID
		wantErr string
	}{
		{name: "success: ETH", give: "ETH", want: Ethereum},
		{name: "success: lowercase eth", give: "eth", want: Ethereum},
		{name: "success: mixed case Sol", give: "Sol", want: Solana},
		{name: "success: COMP", give: "COMP", want: Compound},
		{name: "success: DOT", give: "dot", want: Polkadot},
		{name: "success: TEZ", give: "TEZ", want: Tezos},
		{name: "failure: unknown tag", give: "xyz", wantErr: `bad chain id: "xyz"`},
		{name: "failure: empty", give: "", wantErr: `bad chain id: ""`},
		{name: "failure: padded", give: " ETH", wantErr: `bad chain id: " ETH"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseChainID(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				require.ErrorIs(t, err, ErrBadChainID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestChainID_String(t *testing.T) {
	t.Parallel()

	for _, id := range AllChainIDs() {
		parsed, err := ParseChainID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
		assert.True(t, id.Valid())
	}

	assert.Equal(t, "ChainID(9)", ChainID(9).String())
	assert.False(t, ChainID(9).Valid())
}

func TestChainID_Family(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    ChainID
		want    string
		wantErr error
	}{
		{name: "ethereum", give: Ethereum, want: chainsel.FamilyEVM},
		{name: "solana", give: Solana, want: chainsel.FamilySolana},
		{name: "tezos", give: Tezos, wantErr: ErrChainFamilyNotFound},
		{name: "compound", give: Compound, wantErr: ErrChainFamilyNotFound},
		{name: "unknown", give: ChainID(42), wantErr: ErrUnsupportedChain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.give.Family()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestChainID_JSON(t *testing.T) {
	t.Parallel()

	type doc struct {
		Chain ChainID `json:"chain"`
	}

	b, err := json.Marshal(doc{Chain: Tezos})
	require.NoError(t, err)
	assert.JSONEq(t, `{"chain":"TEZ"}`, string(b))

	var got doc
	require.NoError(t, json.Unmarshal([]byte(`{"chain":"sol"}`), &got))
	assert.Equal(t, Solana, got.Chain)

	require.ErrorIs(t, json.Unmarshal([]byte(`{"chain":"btc"}`), &got), ErrBadChainID)

	_, err = json.Marshal(doc{Chain: ChainID(7)})
	require.ErrorIs(t, err, ErrUnsupportedChain)
}
