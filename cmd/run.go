package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyquiz/internal/app"
)

// runApp builds the engine and launches the TUI.
func runApp(cmd *cobra.Command) error {
	engine, closeLog, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	return app.Run(app.Options{Engine: engine})
}
