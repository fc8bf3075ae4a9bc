package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/remindme/internal/tui"
)

// runCmd starts an interactive reminder session.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive reminder session",
	Long: `Start the interactive session: an empty reminder board, the
notification scheduler, and the overdue sweep. Everything lives in
memory and is gone when the session ends.`,
	RunE: runSession,
}

// runSession wires the background machinery and hands the terminal to
// the dashboard.
func runSession(cmd *cobra.Command, args []string) error {
	if err := ctx.Start(); err != nil {
		return err
	}
	return tui.Run(ctx)
}
