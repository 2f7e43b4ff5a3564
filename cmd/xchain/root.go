package xchain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcontractkit/xchain"
	"github.com/smartcontractkit/xchain/metrics"
	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/types"
)

type rootOptions struct {
	chainTag     string
	envFile      string
	hexMessage   bool
	verbose      bool
	printMetrics bool

	promRegistry *prometheus.Registry
	recorder     metrics.Recorder
}

func BuildXChainCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := cobra.Command{
		Use:   "xchain",
		Short: "Parse, hash, sign and verify chain tagged values",
		Long:  ``,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if opts.verbose {
				var err error
				logger, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
			}
			cmd.SetContext(sdk.ContextWithLogger(cmd.Context(), logger.Sugar()))

			opts.promRegistry = prometheus.NewRegistry()
			recorder, err := metrics.NewPrometheusRecorder(opts.promRegistry)
			if err != nil {
				return err
			}
			opts.recorder = recorder

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.printMetrics {
				return nil
			}

			return writeMetrics(cmd, opts.promRegistry)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.chainTag, "chain", types.DefaultChainID.String(), "Chain tag to operate on (CMP, ETH, DOT, SOL, TEZ)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "Path of the .env file holding PRIVATE_KEY and <TAG>_KEY_ID")
	cmd.PersistentFlags().BoolVar(&opts.hexMessage, "hex", false, "Treat message arguments as 0x prefixed hex instead of text")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable development logging")
	cmd.PersistentFlags().BoolVar(&opts.printMetrics, "metrics", false, "Print operation counters after the command")

	cmd.AddCommand(buildParseCmd())
	cmd.AddCommand(buildHashCmd(opts))
	cmd.AddCommand(buildSignerCmd(opts))
	cmd.AddCommand(buildSignCmd(opts))
	cmd.AddCommand(buildRecoverCmd(opts))
	cmd.AddCommand(buildVerifyCmd(opts))

	return &cmd
}

func (o *rootOptions) chain() (types.ChainID, error) {
	return types.ParseChainID(o.chainTag)
}

// readOnlyRegistry returns a registry without signing keys.
func (o *rootOptions) readOnlyRegistry(cmd *cobra.Command) (*xchain.Registry, error) {
	return xchain.NewRegistry(
		xchain.WithLogger(sdk.LoggerFrom(cmd.Context())),
		xchain.WithMetrics(o.recorder),
	)
}

func writeMetrics(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %v", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	for _, l := range lines {
		fmt.Fprintln(cmd.ErrOrStderr(), l)
	}

	return nil
}
