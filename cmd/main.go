package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/xchain/cmd/xchain"
)

func main() {
	rootCmd := xchain.BuildXChainCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
