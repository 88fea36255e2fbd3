package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active bank",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		issuesOnly, _ := cmd.Flags().GetBool("issues")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}

		printBank(cmd.OutOrStdout(), b, issuesOnly)
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a bank file against the schema and record rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		b, err := bank.Load(args[0])
		if err != nil {
			var joined interface{ Unwrap() []error }
			if errors.As(err, &joined) {
				for _, e := range joined.Unwrap() {
					fmt.Fprintf(out, "  %v\n", e)
				}
			}
			return fmt.Errorf("validate bank: %w", err)
		}

		issues := 0
		for _, q := range b.All() {
			if q.KnownIssue != "" {
				issues++
			}
		}
		fmt.Fprintf(out, "%s: ok, %q, %d questions, %d flagged\n", args[0], b.Title(), b.Size(), issues)
		return nil
	},
}

func init() {
	bankListCmd.Flags().Bool("issues", false, "Only show questions with a known issue")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}

func printBank(w io.Writer, b *bank.Bank, issuesOnly bool) {
	fmt.Fprintf(w, "%s\n\n", b.Title())
	fmt.Fprintf(w, "%4s  %-60s  %-24s  %s\n", "#", "Prompt", "Answer", "Issue")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	shown := 0
	for i, q := range b.All() {
		if issuesOnly && q.KnownIssue == "" {
			continue
		}
		flag := ""
		if q.KnownIssue != "" {
			flag = "!"
		}
		fmt.Fprintf(w, "%4d  %-60s  %-24s  %s\n", i+1, truncate(q.Prompt, 60), truncate(q.Answer, 24), flag)
		if issuesOnly {
			fmt.Fprintf(w, "      %s\n", q.KnownIssue)
		}
		shown++
	}

	fmt.Fprintf(w, "\n%d of %d questions\n", shown, b.Size())
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
