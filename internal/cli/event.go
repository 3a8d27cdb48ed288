package cli

import (
	"github.com/spf13/cobra"
)

func newEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "event",
		Short: "Show the event window and whether it is open",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result EventStatus

			if err := client.Get("/api/v1/event", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
