package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newMarketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markets",
		Short: "Interact with markets",
	}

	var limit, offset int
	list := &cobra.Command{
		Use:   "list",
		Short: "List markets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			markets, err := a.gamma().GetMarkets(cmd.Context(), limit, offset)
			if err != nil {
				return wrap("list markets", err)
			}
			return a.out.Markets(markets)
		},
	}
	list.Flags().IntVar(&limit, "limit", 25, "max results")
	list.Flags().IntVar(&offset, "offset", 0, "pagination offset")

	get := &cobra.Command{
		Use:   "get <id-or-slug>",
		Short: "Get a market by numeric ID or URL slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if isNumericID(args[0]) {
				market, merr := a.gamma().GetMarket(cmd.Context(), args[0])
				if merr == nil {
					return a.out.Market(market)
				}
				err = merr
			} else {
				market, merr := a.gamma().GetMarketBySlug(cmd.Context(), args[0])
				if merr == nil {
					return a.out.Market(market)
				}
				err = merr
			}
			return wrap("get market", err)
		},
	}

	var searchLimit int
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search markets by text query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markets, err := a.gamma().SearchMarkets(cmd.Context(), args[0], searchLimit)
			if err != nil {
				return wrap("search markets", err)
			}
			return a.out.Markets(markets)
		},
	}
	search.Flags().IntVar(&searchLimit, "limit", 50, "max results")

	cmd.AddCommand(list, get, search)
	return cmd
}

// isNumericID reports whether the argument looks like a numeric Gamma id
// rather than a URL slug.
func isNumericID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
