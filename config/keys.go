package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/types"
)

var _ sdk.KeyIDSource = (*EnvKeyIDs)(nil)

// EnvKeyIDs reads signing key ids from <TAG>_KEY_ID variables, e.g. ETH_KEY_ID. The process
// environment takes precedence over values read from env files.
type EnvKeyIDs struct {
	fileValues map[string]string
}

// NewEnvKeyIDs reads the given .env files, if any.
func NewEnvKeyIDs(envFiles ...string) (*EnvKeyIDs, error) {
	values := map[string]string{}
	if len(envFiles) > 0 {
		read, err := godotenv.Read(envFiles...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env files: %w", err)
		}
		values = read
	}

	return &EnvKeyIDs{fileValues: values}, nil
}

// KeyIDEnvVar returns the variable holding the key id of chain.
func KeyIDEnvVar(chain types.ChainID) string {
	return chain.String() + "_KEY_ID"
}

func (e *EnvKeyIDs) SigningKeyID(chain types.ChainID) (sdk.KeyID, bool) {
	name := KeyIDEnvVar(chain)
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return sdk.KeyID(v), true
	}
	if v, ok := e.fileValues[name]; ok && v != "" {
		return sdk.KeyID(v), true
	}

	return "", false
}
