package xchain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/xchain"
	"github.com/smartcontractkit/xchain/config"
	"github.com/smartcontractkit/xchain/types"
)

func buildRecoverCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recover <message> <signature>",
		Short: "Recovers the account that signed a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := opts.chain()
			if err != nil {
				return err
			}
			msg, err := opts.message(args[0])
			if err != nil {
				return err
			}
			sig, err := types.SignatureFromHex(args[1])
			if err != nil {
				return err
			}

			registry, err := opts.readOnlyRegistry(cmd)
			if err != nil {
				return err
			}

			account, err := registry.Recover(xchain.ChainSignature{Chain: chain, Signature: sig}, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), account)

			return nil
		},
	}
}

func buildVerifyCmd(opts *rootOptions) *cobra.Command {
	var genesisPath string

	cmd := &cobra.Command{
		Use:   "verify <message> <envelope>...",
		Short: "Verifies signature envelopes produced by sign",
		Long: `Decodes each envelope, checks that every signature recovers to the account it claims
and, with --genesis, that every signer is a genesis reporter.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := opts.chain()
			if err != nil {
				return err
			}
			msg, err := opts.message(args[0])
			if err != nil {
				return err
			}

			list := xchain.NewChainSignatureList(chain)
			for i, arg := range args[1:] {
				data, err := hexutil.Decode(arg)
				if err != nil {
					return fmt.Errorf("envelope %d: invalid hex: %w", i, err)
				}
				var sig xchain.ChainAccountSignature
				if err := xchain.Unmarshal(data, &sig); err != nil {
					return fmt.Errorf("envelope %d: %w", i, err)
				}
				if list, err = list.Append(sig); err != nil {
					return fmt.Errorf("envelope %d: %w", i, err)
				}
			}

			registry, err := opts.readOnlyRegistry(cmd)
			if err != nil {
				return err
			}

			signers, err := registry.RecoverSigners(list, msg)
			if err != nil {
				return err
			}

			if genesisPath != "" {
				genesis, err := config.LoadGenesisFile(genesisPath)
				if err != nil {
					return err
				}
				if err := genesis.CheckReporters(signers); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, s := range signers {
				fmt.Fprintf(out, "ok: %s\n", s)
			}
			fmt.Fprintf(out, "verified %d signatures\n", len(signers))

			return nil
		},
	}

	cmd.Flags().StringVar(&genesisPath, "genesis", "", "Genesis file whose reporters must have signed")

	return cmd
}
