package xchain

import (
	"crypto/ecdsa"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smartcontractkit/xchain/internal/testutils"
	"github.com/smartcontractkit/xchain/metrics"
	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/sdk/evm"
	"github.com/smartcontractkit/xchain/types"
)

const testKeyID = sdk.KeyID("node-eth-key")

type recordingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counts: make(map[string]int)}
}

func (r *recordingMetrics) IncCounter(name string, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[name+"/"+labels[metrics.LabelChain]+"/"+labels[metrics.LabelOutcome]]++
}

func (r *recordingMetrics) ObserveLatency(string, time.Duration, map[string]string) {}

func (r *recordingMetrics) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.counts[key]
}

type testRegistry struct {
	*Registry
	signer  *testutils.ECDSASigner
	logs    *observer.ObservedLogs
	metrics *recordingMetrics
}

func newTestRegistry(t *testing.T) testRegistry {
	t.Helper()

	signer := testutils.NewECDSASigner()
	keyring := evm.NewPrivateKeyKeyring(map[sdk.KeyID]*ecdsa.PrivateKey{testKeyID: signer.Key})
	core, logs := observer.New(zapcore.DebugLevel)
	rec := newRecordingMetrics()

	r, err := NewEthereumRegistry(
		sdk.StaticKeyIDs{types.Ethereum: testKeyID},
		keyring,
		WithLogger(zap.New(core).Sugar()),
		WithMetrics(rec),
	)
	require.NoError(t, err)

	return testRegistry{Registry: r, signer: signer, logs: logs, metrics: rec}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(WithLogger(zap.NewNop().Sugar()))
	require.NoError(t, err)

	for _, id := range types.AllChainIDs() {
		c, err := r.Chain(id)
		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
	}

	_, err = r.Chain(types.ChainID(5))
	require.ErrorIs(t, err, types.ErrUnsupportedChain)

	// Ethereum without keys still hashes and parses but cannot sign.
	_, err = r.HashBytes(types.Ethereum, []byte("data"))
	require.NoError(t, err)
	_, err = r.Sign(types.Ethereum, []byte("data"))
	require.ErrorIs(t, err, types.ErrKeyNotFound)
}

func TestNewRegistry_WithChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    sdk.Chain
		wantErr string
	}{
		{
			name: "success: replace placeholder",
			give: sdk.UnimplementedChain{Chain: types.Solana},
		},
		{
			name:    "failure: unknown chain",
			give:    sdk.UnimplementedChain{Chain: types.ChainID(77)},
			wantErr: "unsupported chain: ChainID(77)",
		},
		{
			name:    "failure: nil",
			give:    nil,
			wantErr: "chain implementation is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewRegistry(WithChain(tt.give), WithLogger(zap.NewNop().Sugar()))

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			c, err := r.Chain(tt.give.ID())
			require.NoError(t, err)
			assert.Equal(t, tt.give, c)
		})
	}
}

func TestRegistry_UnknownChain(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	unknown := types.ChainID(200)

	_, err := r.ToAccount(unknown, "0x2222222222222222222222222222222222222222")
	require.ErrorIs(t, err, types.ErrUnsupportedChain)
	_, err = r.ToAsset(unknown, "0x2222222222222222222222222222222222222222")
	require.ErrorIs(t, err, types.ErrUnsupportedChain)
	_, err = r.SignerAddress(unknown)
	require.ErrorIs(t, err, types.ErrUnsupportedChain)
	_, err = r.HashBytes(unknown, []byte("data"))
	require.ErrorIs(t, err, types.ErrUnsupportedChain)
	_, err = r.Sign(unknown, []byte("data"))
	require.ErrorIs(t, err, types.ErrUnsupportedChain)
	_, err = r.ZeroHash(unknown)
	require.ErrorIs(t, err, types.ErrUnsupportedChain)
	_, err = r.Recover(ChainSignature{Chain: unknown}, []byte("data"))
	require.ErrorIs(t, err, types.ErrUnsupportedChain)
}

func TestRegistry_PlaceholderChains(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	for _, id := range []types.ChainID{types.Compound, types.Polkadot, types.Solana, types.Tezos} {
		t.Run(id.String(), func(t *testing.T) {
			t.Parallel()

			_, err := r.HashBytes(id, []byte("data"))
			require.ErrorIs(t, err, types.ErrUnsupportedOperation)
			_, err = r.ZeroHash(id)
			require.ErrorIs(t, err, types.ErrUnsupportedOperation)
			_, err = r.Sign(id, []byte("data"))
			require.ErrorIs(t, err, types.ErrUnsupportedOperation)
			_, err = r.SignerAddress(id)
			require.ErrorIs(t, err, types.ErrUnsupportedOperation)
			_, err = r.ToAccount(id, "0x2222222222222222222222222222222222222222")
			require.ErrorIs(t, err, types.ErrUnsupportedOperation)
			_, err = r.Recover(ChainSignature{Chain: id}, []byte("data"))
			require.ErrorIs(t, err, types.ErrUnsupportedOperation)
		})
	}
}

func TestRegistry_HashBytes_Polkadot(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	_, err := r.HashBytes(types.Polkadot, []byte("data"))
	require.EqualError(t, err, "unsupported operation: hash_bytes is not implemented for chain DOT")
}

func TestRegistry_ToAccount(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	acct, err := r.ToAccount(types.Ethereum, "0x2222222222222222222222222222222222222222")
	require.NoError(t, err)
	assert.Equal(t, NewChainAccount(types.Ethereum, addr22), acct)

	asset, err := r.ToAsset(types.Ethereum, "0x2222222222222222222222222222222222222222")
	require.NoError(t, err)
	assert.Equal(t, NewChainAsset(types.Ethereum, addr22), asset)

	_, err = r.ToAccount(types.Ethereum, "0x222")
	require.ErrorIs(t, err, types.ErrBadAddress)
}

func TestRegistry_Hashes(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	zero, err := r.ZeroHash(types.Ethereum)
	require.NoError(t, err)
	assert.Equal(t, ChainHash{Chain: types.Ethereum}, zero)

	again, err := r.ZeroHash(types.Ethereum)
	require.NoError(t, err)
	assert.Equal(t, zero, again)

	h, err := r.HashBytes(types.Ethereum, []byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, types.Ethereum, h.ChainID())
	assert.NotEqual(t, zero, h)
	assert.Equal(t, types.Hash(common.HexToHash("0x5fe7f977e71dba2ea1a68e21057beebb9be2ac30c6410aa38d4f3fbe41dcffd2")), h.Hash)
}

func TestRegistry_Sign(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	signer, err := r.SignerAddress(types.Ethereum)
	require.NoError(t, err)
	assert.Equal(t, NewChainAccount(types.Ethereum, r.signer.Address()), signer)

	message := []byte("attest")
	sig, err := r.Sign(types.Ethereum, message)
	require.NoError(t, err)
	assert.Equal(t, types.Ethereum, sig.ChainID())
	assert.Equal(t, r.signer.SignPersonal(message), sig.Signature)
	assert.Equal(t, 1, r.metrics.count("sign/ETH/ok"))

	_, err = r.Sign(types.Tezos, message)
	require.Error(t, err)
	assert.Equal(t, 1, r.metrics.count("sign/TEZ/error"))
}
