package main

import (
	"os"

	"github.com/openweb3-io/radixutils/cmd/rdx/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:          "rdx",
		Short:        "Query validators, wallets and transactions through a Radix gateway",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.RpcArgsFromCmd(cmd)
			if err != nil {
				return err
			}

			cfg, err := setup.LoadConfig(cmd, args)
			if err != nil {
				return err
			}

			client, err := setup.LoadClient(cfg)
			if err != nil {
				return err
			}

			network := cfg.NetworkConfig()
			logrus.WithFields(logrus.Fields{
				"gateway": network.GatewayURL(),
				"network": network.Network,
			}).Debug("network")

			cmd.SetContext(setup.CreateContext(client, args.Output))
			return nil
		},
	}
	setup.AddRpcArgs(cmd)

	cmd.AddCommand(CmdValidator())
	cmd.AddCommand(CmdWallet())
	cmd.AddCommand(CmdResourceCheck())
	cmd.AddCommand(CmdTxEvent())
	cmd.AddCommand(CmdClaimNFTs())
	cmd.AddCommand(CmdFeeFactor())
	cmd.AddCommand(CmdEpochDate())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
