package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check API health status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.gamma().Status(cmd.Context())
			if err != nil {
				return wrap("status", err)
			}
			return a.out.ID("status", status)
		},
	}
}
