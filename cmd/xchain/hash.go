package xchain

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildHashCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <message>",
		Short: "Hashes a message with the chain's hash function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := opts.chain()
			if err != nil {
				return err
			}
			msg, err := opts.message(args[0])
			if err != nil {
				return err
			}

			registry, err := opts.readOnlyRegistry(cmd)
			if err != nil {
				return err
			}

			hash, err := registry.HashBytes(chain, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)

			return nil
		},
	}
}
