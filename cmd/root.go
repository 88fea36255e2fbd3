package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/bank"
	"github.com/abhisek/studyquiz/internal/config"
	"github.com/abhisek/studyquiz/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "studyquiz",
	Short: "Multiple-choice study quiz for the terminal",
	Long: `StudyQuiz: randomized multiple-choice practice in the terminal.

Each session draws questions from a bank, shuffles their options, and gives
feedback with an explanation after every answer. The built-in bank covers
game theory; use --bank to load your own YAML or JSON bank.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (overrides STUDYQUIZ_CONFIG)")
	pf.IntP("count", "n", config.DefaultQuestionCount, "Questions per session")
	pf.Uint64("seed", 0, "Seed for reproducible sessions")
	pf.String("bank", "", "Path to a YAML or JSON question bank (default: built-in)")
	pf.String("log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers flags that were set explicitly over the config file
// and environment.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	var o config.Overrides
	if flags.Changed("count") {
		n, _ := flags.GetInt("count")
		o.QuestionCount = &n
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		o.Seed = &seed
	}
	if flags.Changed("bank") {
		p, _ := flags.GetString("bank")
		o.BankPath = &p
	}
	if flags.Changed("log-file") {
		p, _ := flags.GetString("log-file")
		o.LogFile = &p
	}

	return config.Resolve(path, o)
}

// loadBank returns the bank at path, or the built-in bank when path is empty.
func loadBank(path string) (*bank.Bank, error) {
	if path == "" {
		return bank.Default()
	}
	return bank.Load(path)
}

// newEngine resolves config, logging and the bank, and builds an engine.
// The returned func closes the log file.
func newEngine(cmd *cobra.Command) (*session.Engine, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}

	b, err := loadBank(cfg.BankPath)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("load bank: %w", err)
	}

	opts := []session.EngineOption{session.WithQuestionCount(cfg.QuestionCount)}
	if cfg.Seed != nil {
		opts = append(opts, session.WithSeed(*cfg.Seed))
	}
	return session.NewEngine(b, opts...), closeLog, nil
}

// setupLogging sends the standard logger to path, or discards it.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "studyquiz")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
