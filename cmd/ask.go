package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Ask a question about a session's notes",
	Long: "Sends your prompt to the tutor with the session's study material attached.\n" +
		"Run `insightmentor prompts` for ideas.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("session")

		d, err := buildDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		st, err := d.sessions.Load(ctx, id)
		if err != nil {
			return fmt.Errorf("load session %s: %w", id, err)
		}
		if cmd.Flags().Changed("provider") {
			st.Provider = d.cfg.LLM.DefaultProvider
		}

		answer, err := d.service.Ask(ctx, st, strings.Join(args, " "))
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		p.Title("Insight Mentor's Response")
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("session", "s", "", "Session ID (required)")
	_ = askCmd.MarkFlagRequired("session")
}
