package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Event reporting commands",
	}

	cmd.AddCommand(newStatsPlayersCmd())
	cmd.AddCommand(newStatsLeaderboardCmd())
	cmd.AddCommand(newStatsApprovedCmd())
	cmd.AddCommand(newStatsTopCmd())
	cmd.AddCommand(newStatsPayoutsCmd())

	return cmd
}

func newStatsPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Show the registered player count",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerCount

			if err := client.Get("/api/v1/stats/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard ranked by valid submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get("/api/v1/stats/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsApprovedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approved",
		Short: "Show payment-eligibility stats for approved submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ApprovedStats

			if err := client.Get("/api/v1/stats/approved", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the leaderboard ranked by approved submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ApprovedLeaderboard

			if err := client.Get("/api/v1/stats/leaderboard-by-approved", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsPayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payouts",
		Short: "Show computed payouts per player (moderator only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PayoutSummary

			if err := client.Get("/api/v1/stats/payouts", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
