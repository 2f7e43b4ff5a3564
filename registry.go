package xchain

import (
	"errors"

	"github.com/smartcontractkit/xchain/metrics"
	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/sdk/compound"
	"github.com/smartcontractkit/xchain/sdk/evm"
	"github.com/smartcontractkit/xchain/sdk/polkadot"
	"github.com/smartcontractkit/xchain/sdk/solana"
	"github.com/smartcontractkit/xchain/sdk/tezos"
	"github.com/smartcontractkit/xchain/types"
)

// Metric operation names.
const (
	metricSign           = "sign"
	metricRecover        = "recover"
	metricRecoverAccount = "recover_account"
)

// Registry dispatches chain tagged operations to the sdk.Chain registered for each ChainID.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	compound sdk.Chain
	ethereum sdk.Chain
	polkadot sdk.Chain
	solana   sdk.Chain
	tezos    sdk.Chain

	logger  sdk.Logger
	metrics metrics.Recorder
}

type registryOptions struct {
	chains  []sdk.Chain
	logger  sdk.Logger
	metrics metrics.Recorder
}

type Option func(*registryOptions)

// WithChain replaces the implementation registered for chain.ID().
func WithChain(chain sdk.Chain) Option {
	return func(opts *registryOptions) {
		opts.chains = append(opts.chains, chain)
	}
}

func WithLogger(logger sdk.Logger) Option {
	return func(opts *registryOptions) {
		opts.logger = logger
	}
}

func WithMetrics(recorder metrics.Recorder) Option {
	return func(opts *registryOptions) {
		opts.metrics = recorder
	}
}

// NewRegistry creates a registry with an implementation for every ChainID. Ethereum starts
// without signing keys; use WithChain or NewEthereumRegistry to provide them.
func NewRegistry(opts ...Option) (*Registry, error) {
	o := registryOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		compound: compound.NewChain(),
		ethereum: evm.NewChain(nil, nil, nil),
		polkadot: polkadot.NewChain(),
		solana:   solana.NewChain(),
		tezos:    tezos.NewChain(),
		logger:   o.logger,
		metrics:  o.metrics,
	}
	if r.logger == nil {
		r.logger = sdk.DefaultLogger()
	}
	if r.metrics == nil {
		r.metrics = metrics.NoopRecorder{}
	}

	for _, c := range o.chains {
		if err := r.set(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// NewEthereumRegistry creates a registry whose Ethereum chain signs with keyring, using the
// key keys reports for Ethereum.
func NewEthereumRegistry(keys sdk.KeyIDSource, keyring sdk.Keyring, opts ...Option) (*Registry, error) {
	return NewRegistry(append([]Option{WithChain(evm.NewChain(keys, keyring, nil))}, opts...)...)
}

func (r *Registry) set(c sdk.Chain) error {
	if c == nil {
		return errors.New("chain implementation is nil")
	}

	switch c.ID() {
	case types.Compound:
		r.compound = c
	case types.Ethereum:
		r.ethereum = c
	case types.Polkadot:
		r.polkadot = c
	case types.Solana:
		r.solana = c
	case types.Tezos:
		r.tezos = c
	default:
		return types.NewUnsupportedChainError(c.ID())
	}

	return nil
}

// Chain returns the implementation registered for id.
func (r *Registry) Chain(id types.ChainID) (sdk.Chain, error) {
	switch id {
	case types.Compound:
		return r.compound, nil
	case types.Ethereum:
		return r.ethereum, nil
	case types.Polkadot:
		return r.polkadot, nil
	case types.Solana:
		return r.solana, nil
	case types.Tezos:
		return r.tezos, nil
	default:
		return nil, types.NewUnsupportedChainError(id)
	}
}

// ToAccount parses addr with the address format of chain id.
func (r *Registry) ToAccount(id types.ChainID, addr string) (ChainAccount, error) {
	c, err := r.Chain(id)
	if err != nil {
		return ChainAccount{}, err
	}

	parsed, err := c.ParseAddress(addr)
	if err != nil {
		return ChainAccount{}, err
	}

	return ChainAccount{Chain: id, Address: parsed}, nil
}

// ToAsset parses addr with the address format of chain id.
func (r *Registry) ToAsset(id types.ChainID, addr string) (ChainAsset, error) {
	c, err := r.Chain(id)
	if err != nil {
		return ChainAsset{}, err
	}

	parsed, err := c.ParseAddress(addr)
	if err != nil {
		return ChainAsset{}, err
	}

	return ChainAsset{Chain: id, Address: parsed}, nil
}

// SignerAddress returns this node's signing account on chain id.
func (r *Registry) SignerAddress(id types.ChainID) (ChainAccount, error) {
	c, err := r.Chain(id)
	if err != nil {
		return ChainAccount{}, err
	}

	addr, err := c.SignerAddress()
	if err != nil {
		return ChainAccount{}, err
	}

	return ChainAccount{Chain: id, Address: addr}, nil
}

// HashBytes hashes data with the hash function of chain id.
func (r *Registry) HashBytes(id types.ChainID, data []byte) (ChainHash, error) {
	c, err := r.Chain(id)
	if err != nil {
		return ChainHash{}, err
	}

	h, err := c.HashBytes(data)
	if err != nil {
		return ChainHash{}, err
	}

	return ChainHash{Chain: id, Hash: h}, nil
}

// Sign signs message with this node's key for chain id.
func (r *Registry) Sign(id types.ChainID, message []byte) (ChainSignature, error) {
	c, err := r.Chain(id)
	if err != nil {
		return ChainSignature{}, err
	}

	sig, err := c.SignMessage(message)
	if err != nil {
		r.count(metricSign, id, metrics.OutcomeError)
		return ChainSignature{}, err
	}
	r.count(metricSign, id, metrics.OutcomeOK)
	r.logger.Debugf("signed %d byte message on %s", len(message), id)

	return ChainSignature{Chain: id, Signature: sig}, nil
}

// ZeroHash returns the "no prior event" hash of chain id.
func (r *Registry) ZeroHash(id types.ChainID) (ChainHash, error) {
	c, err := r.Chain(id)
	if err != nil {
		return ChainHash{}, err
	}

	h, err := c.ZeroHash()
	if err != nil {
		return ChainHash{}, err
	}

	return ChainHash{Chain: id, Hash: h}, nil
}

func (r *Registry) count(name string, id types.ChainID, outcome string) {
	r.metrics.IncCounter(name, map[string]string{
		metrics.LabelChain:   id.String(),
		metrics.LabelOutcome: outcome,
	})
}
