package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSubmissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submission",
		Short: "Submission tracking commands",
	}

	cmd.AddCommand(newSubmissionAddCmd())
	cmd.AddCommand(newSubmissionGetCmd())
	cmd.AddCommand(newSubmissionApproveCmd())
	cmd.AddCommand(newSubmissionRejectCmd())

	return cmd
}

func newSubmissionAddCmd() *cobra.Command {
	var owner, url string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a screenshot submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"owner":        owner,
				"resource_url": url,
			}
			var result Submission

			if err := client.Post("/api/v1/submissions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owning player identity (required)")
	cmd.Flags().StringVar(&url, "url", "", "Screenshot resource URL (required)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newSubmissionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a submission with its ordinal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Submission

			if err := client.Get("/api/v1/submissions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSubmissionApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/submissions/"+args[0]+"/approve", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Submission %s approved", args[0]))
			return nil
		},
	}
}

func newSubmissionRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/submissions/"+args[0]+"/reject", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Submission %s rejected", args[0]))
			return nil
		},
	}
}
