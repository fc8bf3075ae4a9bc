package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/remindme/internal/model"
)

// webhookCmd groups webhook subcommands.
var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Inspect and test notification webhooks",
}

// webhookListCmd shows the configured endpoints.
var webhookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured webhook endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().JSON(ctx.Config.Endpoints)
		}

		cli := ctx.CLIFormatter()
		if len(ctx.Config.Endpoints) == 0 {
			cli.Muted("No webhooks configured.")
			cli.Muted(fmt.Sprintf("Add them to %s", ctx.Config.Path))
			return nil
		}

		for _, w := range ctx.Config.Endpoints {
			state := "disabled"
			if w.Enabled {
				state = "enabled"
			}
			cli.Printf("  %s (%s, %s)\n", w.Name, w.Type, state)
		}
		return nil
	},
}

// webhookTestCmd fires a test notification through every enabled
// endpoint.
var webhookTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test notification to all enabled webhooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := ctx.CLIFormatter()
		if !ctx.Dispatcher.HasWebhooks() {
			cli.Warning("No enabled webhooks to test.")
			return nil
		}

		n := model.NewNotification(model.NotifyTest,
			"Test Notification",
			"If you can read this, webhook delivery works.")
		ctx.Dispatcher.FireNow(0, n)

		cli.Success("Test notification dispatched.")
		return nil
	},
}

func init() {
	webhookCmd.AddCommand(webhookListCmd)
	webhookCmd.AddCommand(webhookTestCmd)
}
