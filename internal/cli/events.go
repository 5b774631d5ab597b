package cli

import (
	"github.com/spf13/cobra"

	"github.com/cyptokoz-svg/polymarket-cli/internal/domain"
)

func (a *App) newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Interact with events",
	}

	var limit, offset int
	list := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := a.gamma().GetEvents(cmd.Context(), limit, offset)
			if err != nil {
				return wrap("list events", err)
			}
			return a.out.Events(events)
		},
	}
	list.Flags().IntVar(&limit, "limit", 25, "max results")
	list.Flags().IntVar(&offset, "offset", 0, "pagination offset")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an event by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := a.gamma().GetEvent(cmd.Context(), args[0])
			if err != nil {
				return wrap("get event", err)
			}
			return a.out.Events([]domain.Event{event})
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
