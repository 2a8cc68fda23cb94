package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/insightmentor/insightmentor/internal/promptguide"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts [major]",
	Short: "Show example prompts for your major",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)
		if len(args) == 0 {
			p.Majors(promptguide.Majors())
			return nil
		}
		p.Prompts(promptguide.For(strings.Join(args, " ")))
		return nil
	},
}
