package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored study sessions",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := buildDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		list, err := d.sessions.List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No sessions found.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-8s  %-8s  %-5s  %-4s  %s\n",
			"ID", "Provider", "Concepts", "Cards", "Plan", "Updated")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, s := range list {
			plan := "-"
			if s.HasPlan {
				plan = "✓"
			}
			fmt.Fprintf(out, "%-36s  %-8s  %-8d  %-5d  %-4s  %s\n",
				s.ID, s.Provider, s.Concepts, s.Cards, plan,
				s.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show everything generated in a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		st, err := d.sessions.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load session %s: %w", args[0], err)
		}
		newPrinter(cmd).Session(st)
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.sessions.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete session %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s.\n", args[0])
		return nil
	},
}

func init() {
	sessionListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")

	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
}
