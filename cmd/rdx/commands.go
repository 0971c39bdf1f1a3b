package main

import (
	"fmt"
	"strconv"

	"github.com/openweb3-io/radixutils/blockchain/radix/address"
	"github.com/openweb3-io/radixutils/client"
	"github.com/openweb3-io/radixutils/cmd/rdx/setup"
	"github.com/openweb3-io/radixutils/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func requireAddresses(kind address.EntityKind, addrs ...string) error {
	for _, addr := range addrs {
		if err := address.Validate(addr, kind); err != nil {
			return err
		}
		if network, ok := address.Network(addr); ok {
			logrus.WithFields(logrus.Fields{"address": addr, "network": network}).Debug("address")
		}
	}
	return nil
}

func stateVersionFlag(cmd *cobra.Command) {
	cmd.Flags().Int64("state-version", 0, "Read the ledger as of this state version. Optional.")
}

func selectorFromFlags(cmd *cobra.Command) *types.LedgerStateSelector {
	version, _ := cmd.Flags().GetInt64("state-version")
	if version <= 0 {
		return nil
	}
	return types.AtStateVersion(version)
}

func CmdValidator() *cobra.Command {
	return &cobra.Command{
		Use:   "validator <address>",
		Short: "Show stake, vaults, unlocking schedule and fees of a validator.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rdx := setup.UnwrapClient(cmd.Context())
			lookup := rdx.LookupValidator(cmd.Context(), args[0])
			switch lookup.Status {
			case client.ValidatorNotFound:
				return fmt.Errorf("validator %s not found", args[0])
			case client.ValidatorUnavailable:
				return fmt.Errorf("could not fetch validator %s: %v", args[0], lookup.Err)
			}
			return setup.Print(cmd.Context(), cmd.OutOrStdout(), lookup.Info)
		},
	}
}

type walletView struct {
	Fungible    []client.FungibleBalance    `json:"fungible" yaml:"fungible"`
	NonFungible []client.NonFungibleBalance `json:"nonFungible" yaml:"nonFungible"`
}

func CmdWallet() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wallet <account>",
		Aliases: []string{"balances"},
		Short:   "List every fungible and non-fungible balance of an account.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAddresses(address.Account, args[0]); err != nil {
				return err
			}
			rdx := setup.UnwrapClient(cmd.Context())
			balances, err := rdx.FetchWalletBalances(cmd.Context(), args[0], selectorFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("could not fetch balances: %v", err)
			}
			return setup.Print(cmd.Context(), cmd.OutOrStdout(), walletView{
				Fungible:    balances.SortedFungible(),
				NonFungible: balances.SortedNonFungible(),
			})
		},
	}
	stateVersionFlag(cmd)
	return cmd
}

type resourceCheckView struct {
	Holders     []client.ResourceHolder `json:"holders" yaml:"holders"`
	TotalAmount types.Decimal           `json:"totalAmount" yaml:"totalAmount"`
}

func CmdResourceCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource-check <resource> <account>...",
		Short: "Show how much of a fungible resource each account holds.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAddresses(address.Resource, args[0]); err != nil {
				return err
			}
			if err := requireAddresses(address.Account, args[1:]...); err != nil {
				return err
			}
			rdx := setup.UnwrapClient(cmd.Context())
			result, err := rdx.CheckResourceInUsersFungibleAssets(cmd.Context(), args[1:], args[0], selectorFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("could not check resource: %v", err)
			}
			return setup.Print(cmd.Context(), cmd.OutOrStdout(), resourceCheckView{
				Holders:     result.SortedHolders(),
				TotalAmount: result.TotalAmount,
			})
		},
	}
	stateVersionFlag(cmd)
	return cmd
}

func CmdTxEvent() *cobra.Command {
	return &cobra.Command{
		Use:   "tx-event <intent-hash> <event-name>",
		Short: "Print the fields of the first event with the given name in a committed transaction.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rdx := setup.UnwrapClient(cmd.Context())
			values, err := rdx.GetEventKeyValuesFromTransaction(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return setup.Print(cmd.Context(), cmd.OutOrStdout(), values)
		},
	}
}

func CmdClaimNFTs() *cobra.Command {
	return &cobra.Command{
		Use:   "claim-nfts <claim-resource> <id>...",
		Short: "Show claim amount and epoch of unstake claim NFTs.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAddresses(address.Resource, args[0]); err != nil {
				return err
			}
			rdx := setup.UnwrapClient(cmd.Context())
			claims, err := rdx.FetchUnstakeClaimNFTData(cmd.Context(), args[0], args[1:])
			if err != nil {
				return fmt.Errorf("could not fetch claim nfts: %v", err)
			}
			return setup.Print(cmd.Context(), cmd.OutOrStdout(), claims)
		},
	}
}

func CmdFeeFactor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee-factor <current>",
		Short: "Format a validator fee factor and an optional pending change.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rdx := setup.UnwrapClient(cmd.Context())
			newFactor, _ := cmd.Flags().GetString("new")
			effective, _ := cmd.Flags().GetInt64("epoch-effective")
			epoch, _ := cmd.Flags().GetInt64("epoch")

			var pending *client.NewFeeFactor
			if newFactor != "" {
				pending = &client.NewFeeFactor{NewFeeFactor: newFactor, EpochEffective: effective}
			}
			return setup.Print(cmd.Context(), cmd.OutOrStdout(), rdx.ComputeValidatorFeeFactor(args[0], pending, epoch))
		},
	}
	cmd.Flags().String("new", "", "Pending fee factor. Optional.")
	cmd.Flags().Int64("epoch-effective", 0, "Epoch the pending fee factor applies from")
	cmd.Flags().Int64("epoch", 0, "Current epoch")
	return cmd
}

func CmdEpochDate() *cobra.Command {
	return &cobra.Command{
		Use:   "epoch-date <target-epoch> <current-epoch>",
		Short: "Estimate when an epoch starts.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rdx := setup.UnwrapClient(cmd.Context())
			target, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid target epoch: %v", err)
			}
			current, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid current epoch: %v", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rdx.EstimateEpochDate(target, current))
			return err
		},
	}
}
