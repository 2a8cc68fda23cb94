package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/insightmentor/insightmentor/internal/session"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Generate study notes, key concepts and flashcards from text",
	Long: "Reads study material from a text or Markdown file, or from stdin when the\n" +
		"argument is \"-\" or omitted, and stores the result in a session.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readMaterial(cmd, args)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		var st session.State
		if id, _ := cmd.Flags().GetString("session"); id != "" {
			if st, err = d.sessions.Load(ctx, id); err != nil {
				return fmt.Errorf("load session %s: %w", id, err)
			}
		} else {
			st = session.New(d.cfg.LLM.DefaultProvider)
		}
		if cmd.Flags().Changed("provider") {
			st.Provider = d.cfg.LLM.DefaultProvider
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Analyzing your content with %s…\n", st.Provider)
		st, err = d.service.Analyze(ctx, st, text)
		if err != nil {
			return err
		}
		if err := d.sessions.Save(ctx, st); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		p := newPrinter(cmd)
		p.Session(st)
		p.Hint(fmt.Sprintf("\nNext: insightmentor plan --session %s", st.ID))
		return nil
	},
}

// readMaterial returns the file named by args[0], or stdin for "-" or no
// argument.
func readMaterial(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(b), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && len(args) == 0 && isatty.IsTerminal(f.Fd()) {
		return "", errors.New("no input: pass a file, or pipe text on stdin")
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func init() {
	analyzeCmd.Flags().StringP("session", "s", "", "Existing session to analyze into (default: new session)")
}
