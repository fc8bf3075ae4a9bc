// Package cmd provides the CLI commands for RemindMe.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/remindme/internal/errors"
	"github.com/manav03panchal/remindme/internal/output"
	"github.com/manav03panchal/remindme/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagConfig string
	flagDebug  bool
	flagForce  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "remindme",
	Short: "An in-memory reminder board with notifications",
	Long: `RemindMe keeps a session-scoped reminder list with due dates,
priorities, and categories, raises alerts when tasks come due, and
sweeps for overdue tasks in the background.

Reminders live only for the lifetime of the session. Webhook endpoints
for notification delivery can be configured in the config file.

Examples:
  remindme                 start an interactive session
  remindme run             same, explicitly
  remindme webhook list    show configured notification endpoints
  remindme webhook test    send a test notification`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		opts.Force = flagForce
		if flagConfig != "" {
			opts.ConfigPath = flagConfig
		}

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: start a session.
		return runSession(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file path (default: XDG config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flagForce, "force", false,
		"Skip confirmation prompts")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(webhookCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("remindme %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().JSON(output.ErrorResponse{
			Status:  "error",
			Error:   err.Error(),
			Message: errors.Suggestion(err),
		})
	} else {
		msg := err.Error()
		if s := errors.Suggestion(err); s != "" {
			msg += "\n" + s
		}
		os.Stderr.WriteString("Error: " + msg + "\n")
	}
	os.Exit(1)
}
