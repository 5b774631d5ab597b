package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/cyptokoz-svg/polymarket-cli/internal/platform/polymarket"
)

func (a *App) newWatchCmd() *cobra.Command {
	var assets []string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream live order-book events for one or more asset (token) ids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap("watch", a.runWatch(cmd.Context(), assets))
		},
	}
	cmd.Flags().StringSliceVar(&assets, "asset", nil, "asset (ERC-1155 token) id to watch; repeatable")
	cmd.MarkFlagRequired("asset")
	return cmd
}

// runWatch streams until the context is cancelled (Ctrl-C) or the feed
// drops. Cancellation is a clean exit, not an error.
func (a *App) runWatch(ctx context.Context, assets []string) error {
	ws := polymarket.NewWSClient(a.cfg.API.WsHost)
	if err := ws.Connect(ctx); err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.Subscribe(assets); err != nil {
		return err
	}

	err := ws.Stream(ctx, func(ev polymarket.BookEvent) {
		a.out.BookEvent(ev)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
