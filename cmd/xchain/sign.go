package xchain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/xchain"
	"github.com/smartcontractkit/xchain/sdk"
)

func buildSignerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signer",
		Short: "Prints the account of the configured signing key",
		Long:  `Configure a private key in a .env file (using the PRIVATE_KEY var) and print the account it signs as.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := opts.chain()
			if err != nil {
				return err
			}

			registry, err := opts.signingRegistry(cmd)
			if err != nil {
				return err
			}

			account, err := registry.SignerAddress(chain)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), account)

			return nil
		},
	}
}

func buildSignCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Signs a message with the configured signing key",
		Long: `Configure a private key in a .env file (using the PRIVATE_KEY var) and sign a message with it.
The envelope line is a versioned Borsh encoding of the signature and its signer, as accepted by verify.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := opts.chain()
			if err != nil {
				return err
			}
			msg, err := opts.message(args[0])
			if err != nil {
				return err
			}

			registry, err := opts.signingRegistry(cmd)
			if err != nil {
				return err
			}

			sig, err := registry.Sign(chain, msg)
			if err != nil {
				return err
			}
			signer, err := registry.SignerAddress(chain)
			if err != nil {
				return err
			}
			accountSig, err := xchain.NewChainAccountSignature(signer, sig)
			if err != nil {
				return err
			}
			envelope, err := xchain.Marshal(accountSig)
			if err != nil {
				return err
			}

			sdk.LoggerFrom(cmd.Context()).Infof("signed %d byte message as %s", len(msg), signer)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "signer: %s\n", signer)
			fmt.Fprintf(out, "signature: %s\n", sig.Signature)
			fmt.Fprintf(out, "envelope: %s\n", hexutil.Encode(envelope))

			return nil
		},
	}
}
