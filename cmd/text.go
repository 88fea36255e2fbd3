package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/plain"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Take the quiz in plain text (no TUI)",
	Long: `Run the quiz as a line-oriented prompt on stdin and stdout.

Answer with the option number or its exact text. Useful for terminals
without full-screen support and for scripting with --seed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeLog, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer closeLog()

		return plain.Run(cmd.Context(), engine, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
