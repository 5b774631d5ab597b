package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyptokoz-svg/polymarket-cli/internal/ctf"
)

func (a *App) newDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Query on-chain data (positions, trades, activity, holders)",
	}
	cmd.AddCommand(
		a.newDataPositionsCmd(),
		a.newDataTradesCmd(),
		a.newDataActivityCmd(),
		a.newDataValueCmd(),
		a.newDataHoldersCmd(),
	)
	return cmd
}

func (a *App) newDataPositionsCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "positions <address>",
		Short: "Get open positions for a wallet address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := ctf.ParseAddress(args[0])
			if err != nil {
				return wrap("get positions", err)
			}
			positions, err := a.data().GetPositions(cmd.Context(), addr.Hex(), limit, offset)
			if err != nil {
				return wrap("get positions", err)
			}
			return a.out.Positions(positions)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	return cmd
}

func (a *App) newDataTradesCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "trades <address>",
		Short: "Get trade history for a wallet address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := ctf.ParseAddress(args[0])
			if err != nil {
				return wrap("get trades", err)
			}
			trades, err := a.data().GetTrades(cmd.Context(), addr.Hex(), limit, offset)
			if err != nil {
				return wrap("get trades", err)
			}
			return a.out.Trades(trades)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	return cmd
}

func (a *App) newDataActivityCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "activity <address>",
		Short: "Get on-chain activity for a wallet address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := ctf.ParseAddress(args[0])
			if err != nil {
				return wrap("get activity", err)
			}
			records, err := a.data().GetActivity(cmd.Context(), addr.Hex(), limit, offset)
			if err != nil {
				return wrap("get activity", err)
			}
			return a.out.Activity(records)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	return cmd
}

func (a *App) newDataValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value <address>",
		Short: "Get total position value for a wallet address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := ctf.ParseAddress(args[0])
			if err != nil {
				return wrap("get value", err)
			}
			value, err := a.data().GetValue(cmd.Context(), addr.Hex())
			if err != nil {
				return wrap("get value", err)
			}
			return a.out.KV([][2]string{
				{"Wallet", addr.Hex()},
				{"Value", fmt.Sprintf("%.2f", value)},
			})
		},
	}
}

func (a *App) newDataHoldersCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "holders <condition-id>",
		Short: "Get top token holders for a market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conditionID, err := ctf.ParseHash32(args[0])
			if err != nil {
				return wrap("get holders", err)
			}
			holders, err := a.data().GetHolders(cmd.Context(), conditionID.Hex(), limit)
			if err != nil {
				return wrap("get holders", err)
			}
			return a.out.Holders(holders)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "max results per token")
	return cmd
}
