package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerSubmissionsCmd())
	cmd.AddCommand(newPlayerDisqualifyCmd())
	cmd.AddCommand(newPlayerReinstateCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var staticID, nickname string

	cmd := &cobra.Command{
		Use:   "register <identity>",
		Short: "Register a player for the event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"identity":  args[0],
				"static_id": staticID,
				"nickname":  nickname,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&staticID, "static-id", "", "Stable in-game identifier (required)")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Display nickname (required)")
	_ = cmd.MarkFlagRequired("static-id")
	_ = cmd.MarkFlagRequired("nickname")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <identity>",
		Short: "Show a registered player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerSubmissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submissions <identity>",
		Short: "List a player's submissions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SubmissionList

			if err := client.Get("/api/v1/players/"+args[0]+"/submissions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerDisqualifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disqualify <identity>",
		Short: "Disqualify a player and invalidate their submissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/players/"+args[0]+"/disqualify", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %s disqualified", args[0]))
			return nil
		},
	}
}

func newPlayerReinstateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reinstate <identity>",
		Short: "Reinstate a player and revalidate their submissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/players/"+args[0]+"/reinstate", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %s reinstated", args[0]))
			return nil
		},
	}
}
