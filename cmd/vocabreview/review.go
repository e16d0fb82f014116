package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiv1 "github.com/at-ishikawa/vocabreview/internal/api/v1"
	"github.com/at-ishikawa/vocabreview/internal/cli"
	"github.com/at-ishikawa/vocabreview/internal/client"
)

func newEnrollCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <word-id>",
		Short: "Start reviewing a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wordID, err := parseWordID(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd.OutOrStdout(), func(c *client.Client, p *cli.Printer) error {
				resp, err := c.EnrollWord(cmd.Context(), &apiv1.EnrollWordRequest{WordID: wordID})
				if err != nil {
					return fmt.Errorf("enroll word %d: %w", wordID, err)
				}
				return p.PrintEnroll(resp)
			})
		},
	}
}

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Review the words that are due now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.OutOrStdout(), func(c *client.Client, p *cli.Printer) error {
				session, err := cli.NewReviewSession(cmd.Context(), c,
					cli.WithInput(cmd.InOrStdin()),
					cli.WithOutput(cmd.OutOrStdout()),
				)
				if err != nil {
					return err
				}
				return cli.Run(cmd.Context(), session)
			})
		},
	}
}

func newDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List the words that are due now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.OutOrStdout(), func(c *client.Client, p *cli.Printer) error {
				resp, err := c.ListDueWords(cmd.Context())
				if err != nil {
					return fmt.Errorf("list due words: %w", err)
				}
				return p.PrintDueWords(resp)
			})
		},
	}
}

func newOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show how many words are mastered, learning and due",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.OutOrStdout(), func(c *client.Client, p *cli.Printer) error {
				resp, err := c.GetOverview(cmd.Context())
				if err != nil {
					return fmt.Errorf("get overview: %w", err)
				}
				return p.PrintOverview(resp)
			})
		},
	}
}

func newHistoryCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <word-id>",
		Short: "Show the review outcomes of a word, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wordID, err := parseWordID(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd.OutOrStdout(), func(c *client.Client, p *cli.Printer) error {
				resp, err := c.ListReviewHistory(cmd.Context(), &apiv1.ListReviewHistoryRequest{WordID: wordID, Limit: limit})
				if err != nil {
					return fmt.Errorf("list review history of word %d: %w", wordID, err)
				}
				return p.PrintHistory(resp)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of outcomes, 0 for the server maximum")
	return cmd
}

func parseWordID(arg string) (int64, error) {
	wordID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || wordID <= 0 {
		return 0, fmt.Errorf("invalid word id %q: must be a positive integer", arg)
	}
	return wordID, nil
}
