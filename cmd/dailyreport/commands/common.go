package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/dailyreport/internal/config"
	"git.home.luguber.info/inful/dailyreport/internal/util/files"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	// Out receives user-facing output; nil means stdout.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"dailyreport.yaml"`
	Dir     string           `short:"C" help:"Project directory holding the template and reports" default:"." type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Update   UpdateCmd   `cmd:"" default:"1" help:"Archive today's report and seed tomorrow's (default)"`
	Status   StatusCmd   `cmd:"" help:"Show whether today's report has been written"`
	Init     InitCmd     `cmd:"" help:"Write a configuration file and a starter template"`
	List     ListCmd     `cmd:"" help:"List archived reports, newest first"`
	Show     ShowCmd     `cmd:"" help:"Print the working report, an archive, or one section"`
	Export   ExportCmd   `cmd:"" help:"Render a report to HTML"`
	Schedule ScheduleCmd `cmd:"" help:"Run the update every day at a fixed time"`
	Info     VersionCmd  `cmd:"" name:"version" help:"Print build information"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ConfigPath resolves --config against --dir.
func (c *CLI) ConfigPath() string {
	if filepath.IsAbs(c.Config) || c.Dir == "" {
		return c.Config
	}
	return filepath.Join(c.Dir, c.Config)
}

// LoadConfig loads the configuration and applies its logging settings. Without a
// configuration file the project root is --dir.
func (c *CLI) LoadConfig() (*config.Config, error) {
	path := c.ConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if !files.Exists(path) && c.Dir != "" {
		cfg.Root = c.Dir
	}
	slog.SetDefault(cfg.Logging.NewLogger(os.Stderr, c.Verbose))
	return cfg, nil
}
