package xchain

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/xchain"
	"github.com/smartcontractkit/xchain/config"
	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/sdk/evm"
	"github.com/smartcontractkit/xchain/types"
)

const defaultKeyID = sdk.KeyID("default")

// envFiles returns the env file to read, or none when the default file does not exist.
func (o *rootOptions) envFiles() []string {
	if o.envFile == "" {
		return nil
	}
	if _, err := os.Stat(o.envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return []string{o.envFile}
}

func (o *rootOptions) loadPrivateKey() (string, error) {
	if pk, ok := os.LookupEnv("PRIVATE_KEY"); ok && pk != "" {
		return pk, nil
	}

	files := o.envFiles()
	if len(files) == 0 {
		return "", errors.New("PRIVATE_KEY not set and no .env file found")
	}

	values, err := godotenv.Read(files...)
	if err != nil {
		return "", err
	}

	pk := values["PRIVATE_KEY"]
	if pk == "" {
		return "", fmt.Errorf("PRIVATE_KEY not found in %s", o.envFile)
	}

	return pk, nil
}

// signingRegistry returns a registry whose Ethereum chain signs with PRIVATE_KEY. The key is
// registered under ETH_KEY_ID, or "default" when that is unset.
func (o *rootOptions) signingRegistry(cmd *cobra.Command) (*xchain.Registry, error) {
	pk, err := o.loadPrivateKey()
	if err != nil {
		return nil, err
	}

	keyIDs, err := config.NewEnvKeyIDs(o.envFiles()...)
	if err != nil {
		return nil, err
	}
	keyID, ok := keyIDs.SigningKeyID(types.Ethereum)
	if !ok {
		keyID = defaultKeyID
	}

	keyring, err := evm.NewPrivateKeyKeyringFromHex(keyID, pk)
	if err != nil {
		return nil, err
	}

	return xchain.NewEthereumRegistry(
		sdk.StaticKeyIDs{types.Ethereum: keyID},
		keyring,
		xchain.WithLogger(sdk.LoggerFrom(cmd.Context())),
		xchain.WithMetrics(o.recorder),
	)
}

func (o *rootOptions) message(arg string) ([]byte, error) {
	if !o.hexMessage {
		return []byte(arg), nil
	}

	msg, err := hexutil.Decode(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid message hex: %w", err)
	}

	return msg, nil
}
