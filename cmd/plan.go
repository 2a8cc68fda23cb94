package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a personalized study plan and quiz",
	Long: "Builds a study plan that puts weaker concepts first and a short quiz,\n" +
		"then counts the session as studied and raises every concept's mastery.",
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
		before := st.Mastery

		st, err = d.service.PlanAndQuiz(st)
		if err != nil {
			return err
		}
		if err := d.sessions.Save(ctx, st); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		p := newPrinter(cmd)
		p.Plan(st.StudyPlan)
		p.Quiz(st.Quiz)
		p.Mastery(st.Concepts, before)
		p.Hint("Mastery above is before this session; it has been raised for next time.")
		return nil
	},
}

func init() {
	planCmd.Flags().StringP("session", "s", "", "Session ID (required)")
	_ = planCmd.MarkFlagRequired("session")
}
