package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/cruciblehq/pyfreeze/internal"
)

// Represents the pyfreeze command line.
type RootCmd struct {
	Quiet   bool             `short:"q" help:"Suppress informational output."`
	Verbose bool             `short:"v" help:"Print the module probe table."`
	Debug   bool             `short:"d" help:"Enable debug output."`
	Config  string           `short:"c" help:"Read the project from this YAML file." placeholder:"PATH" type:"path"`
	Dir     string           `short:"C" help:"Workspace root." default:"." placeholder:"PATH" type:"existingdir"`
	Version kong.VersionFlag `help:"Show version information."`
}

// Parses arguments, configures logging, and runs the packaging pass.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var root RootCmd
	kongCtx := kong.Parse(&root,
		kong.Name(internal.Name),
		kong.Description("Packages a Python application into a standalone executable.\n\nCleans the previous build, probes optional modules, and runs PyInstaller once."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
		exitOption(),
	)

	configureLogger(&root)

	return kongCtx.Run()
}

// Process exit, replaced in tests.
var osExit = os.Exit

// Maps every non-zero kong exit, usage errors included, to status 1.
// Help and version output still exit 0.
func exitOption() kong.Option {
	return kong.Exit(func(code int) {
		if code != 0 {
			code = 1
		}
		osExit(code)
	})
}

// Configures the global logger based on CLI flags.
func configureLogger(root *RootCmd) {
	if root.Debug {
		internal.SetDebug(true)
	}
	if root.Quiet {
		internal.SetQuiet(true)
	}
	if root.Verbose {
		internal.SetVerbose(true)
	}
	internal.SyncLogLevel()

	slog.SetDefault(NewLogger(internal.IsDebug()))
}

// Creates the stderr logger used by pyfreeze.
//
// The level follows [internal.LogLevel]. Attributes are grouped under the
// program name. Debug output includes source locations.
func NewLogger(debug bool) *slog.Logger {
	return newLogger(os.Stderr, debug)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     internal.LogLevel(),
		AddSource: debug,
	})
	return slog.New(handler).WithGroup(internal.Name)
}
