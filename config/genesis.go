package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/xchain"
	"github.com/smartcontractkit/xchain/types"
)

// AssetConfig describes one asset supported at genesis.
type AssetConfig struct {
	Asset    xchain.ChainAsset `json:"asset" validate:"required"`
	Symbol   string            `json:"symbol" validate:"required,alphanum,max=12"`
	Decimals uint8             `json:"decimals" validate:"lte=36"`
}

// Genesis is the initial chain configuration. Accounts and assets use the
// "<chain-tag>:<address>" text format.
type Genesis struct {
	Reporters    []xchain.ChainAccount `json:"reporters" validate:"required,min=1,unique"`
	Assets       []AssetConfig         `json:"assets" validate:"omitempty,unique=Asset,dive"`
	CashAsset    xchain.CashAsset      `json:"cashAsset"`
	DefaultChain types.ChainID         `json:"defaultChain"`
}

// NewGenesis decodes and validates a genesis document.
func NewGenesis(reader io.Reader) (*Genesis, error) {
	out := Genesis{DefaultChain: types.DefaultChainID}
	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, err
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoadGenesisFile reads a genesis document from path.
func LoadGenesisFile(path string) (*Genesis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open genesis file: %w", err)
	}
	defer f.Close()

	return NewGenesis(f)
}

func (g *Genesis) Validate() error {
	var validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(g); err != nil {
		return err
	}

	if !g.DefaultChain.Valid() {
		return types.NewUnsupportedChainError(g.DefaultChain)
	}

	for _, r := range g.Reporters {
		if r.Address.IsZero() {
			return fmt.Errorf("reporter %s cannot be the zero address", r)
		}
	}

	if !g.CashAsset.IsCash() && !g.hasAsset(g.CashAsset.Asset) {
		return fmt.Errorf("cash asset %s is not a configured asset", g.CashAsset)
	}

	return nil
}

func (g *Genesis) hasAsset(asset xchain.ChainAsset) bool {
	for _, a := range g.Assets {
		if a.Asset == asset {
			return true
		}
	}

	return false
}

// ReporterSet returns the reporters as a set for signature checks.
func (g *Genesis) ReporterSet() map[xchain.ChainAccount]struct{} {
	set := make(map[xchain.ChainAccount]struct{}, len(g.Reporters))
	for _, r := range g.Reporters {
		set[r] = struct{}{}
	}

	return set
}

// ErrNotReporter is returned when a signer is not one of the genesis reporters.
var ErrNotReporter = errors.New("signer is not a reporter")

// CheckReporters returns an error unless every signer is a genesis reporter.
func (g *Genesis) CheckReporters(signers []xchain.ChainAccount) error {
	set := g.ReporterSet()
	for _, s := range signers {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("%w: %s", ErrNotReporter, s)
		}
	}

	return nil
}
