// Package runtime provides application runtime context for RemindMe.
package runtime

import (
	"os"

	"github.com/google/uuid"

	"github.com/manav03panchal/remindme/internal/clock"
	"github.com/manav03panchal/remindme/internal/config"
	"github.com/manav03panchal/remindme/internal/confirm"
	"github.com/manav03panchal/remindme/internal/lifecycle"
	"github.com/manav03panchal/remindme/internal/logging"
	"github.com/manav03panchal/remindme/internal/notify"
	"github.com/manav03panchal/remindme/internal/output"
	"github.com/manav03panchal/remindme/internal/scheduler"
	"github.com/manav03panchal/remindme/internal/store"
)

// Context holds the wired application for one session: the in-memory
// store, the scheduling pipeline, and the presentation collaborators.
type Context struct {
	SessionID string

	Config     *config.FileConfig
	Store      *store.Store
	Clock      clock.Clock
	Scheduler  *scheduler.Scheduler
	Sweep      *scheduler.Sweep
	Runner     *scheduler.Runner
	MOTD       *scheduler.MOTD
	Dispatcher *notify.Dispatcher
	Lifecycle  *lifecycle.Events
	Formatter  *output.Formatter
	Confirmer  confirm.Confirmer

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
	Force      bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		ConfigPath: config.DefaultPath(),
		Format:     output.FormatCLI,
		ColorMode:  output.ColorAuto,
		Debug:      false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	if envPath := os.Getenv("REMINDME_CONFIG"); envPath != "" {
		opts.ConfigPath = envPath
	}

	fileCfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	if opts.Debug {
		logCfg = logging.DebugConfig()
	}
	logging.Init(logCfg)

	sessionID := uuid.NewString()
	logging.Info("session starting", logging.KeySession, sessionID)

	clk := clock.System()
	st := store.New(clk)

	dispatcher := notify.NewDispatcher(fileCfg.EnabledWebhooks())
	sched := scheduler.New(dispatcher, clk)
	st.SetPlanner(sched)

	sweep := scheduler.NewSweep(st, sched, clk)
	events := lifecycle.New()
	runner := scheduler.NewRunner(sweep, events)

	motd := scheduler.NewMOTD(st, dispatcher, clk)
	st.OnChange(motd.OnChange)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	var confirmer confirm.Confirmer
	if opts.Force {
		confirmer = confirm.Static{Answer: true}
	} else {
		confirmer = confirm.NewTerminal()
	}

	return &Context{
		SessionID:  sessionID,
		Config:     fileCfg,
		Store:      st,
		Clock:      clk,
		Scheduler:  sched,
		Sweep:      sweep,
		Runner:     runner,
		MOTD:       motd,
		Dispatcher: dispatcher,
		Lifecycle:  events,
		Formatter:  formatter,
		Confirmer:  confirmer,
		Debug:      opts.Debug,
	}, nil
}

// Start begins the background machinery: signal hooks and the sweep.
func (c *Context) Start() error {
	c.Lifecycle.Start()
	if err := c.Runner.Start(); err != nil {
		return err
	}
	// Opening message-of-the-day check.
	c.MOTD.OnChange()
	return nil
}

// Close tears the session down in reverse order.
func (c *Context) Close() error {
	c.Runner.Stop()
	c.Lifecycle.Stop()
	c.MOTD.Stop()
	c.Dispatcher.Close()
	logging.Info("session closed", logging.KeySession, c.SessionID)
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
