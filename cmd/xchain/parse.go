package xchain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/xchain"
)

func buildParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <chain:address>",
		Short: "Parses a chain tagged account and prints its encodings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := xchain.ParseChainAccount(args[0])
			if err != nil {
				return err
			}

			borsh, err := xchain.Marshal(account)
			if err != nil {
				return err
			}
			bcs, err := xchain.EncodeBCS(&account)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "account: %s\n", account)
			if family, err := account.Chain.Family(); err == nil {
				fmt.Fprintf(out, "family: %s\n", family)
			}
			fmt.Fprintf(out, "borsh: %s\n", hexutil.Encode(borsh))
			fmt.Fprintf(out, "bcs: %s\n", hexutil.Encode(bcs))

			return nil
		},
	}
}
