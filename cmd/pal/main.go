package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/palshell/pal/internal/appupdate"
	"github.com/palshell/pal/internal/config"
	"github.com/palshell/pal/internal/core"
	"github.com/palshell/pal/internal/filesystem"
	"github.com/palshell/pal/internal/probe"
	"github.com/palshell/pal/internal/registry"
	"github.com/palshell/pal/internal/shellexec"
	"github.com/palshell/pal/internal/styles"
	"github.com/palshell/pal/internal/usage"
	"github.com/palshell/pal/internal/wrapper"
	"go.uber.org/zap"
)

var BUILD_VERSION = "dev"

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `pal - shell-profile aliases for third-party CLI tools

USAGE:
  pal <alias> [args...]       Run an alias, forwarding arguments to its tool
  pal run <alias> [args...]   Same, for aliases that collide with a command below

COMMANDS:
  list [tool]       List registered aliases, grouped per tool
  which <alias>     Print the underlying invocation of an alias
  doctor            Check which wrapped tools are installed
  init <shell>      Print a profile fragment for bash, zsh, or fish
  history [-n N]    Show recent invocations (-reset clears them)
  stats [-n N]      Show the most-used aliases
  upgrade           Download and install the latest pal release

Aliases are defined by the builtin table plus ~/.pal/pal.yaml.

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	args := flag.Args()
	if *helpFlag || len(args) == 0 {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	// Load configuration before the logger; it decides the log level
	cfg, err := config.NewLoader(nil).LoadFromFile(core.ConfigFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		os.Exit(1)
	}

	logger, err := initializeLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Debug("-------- new pal invocation --------", zap.Any("args", os.Args))

	reg := registry.Default()
	cfg.Apply(reg)
	prober := probe.NewProber()

	if appupdate.JustUpgraded(BUILD_VERSION) {
		fmt.Fprintln(os.Stderr, styles.HINT("pal was upgraded to "+BUILD_VERSION))
	}

	// Check for updates in background
	if cfg.ShouldCheckUpdates() {
		notifyPendingUpdate()
		appupdate.HandleSelfUpdate(
			BUILD_VERSION,
			logger,
			filesystem.DefaultFileSystem{},
			appupdate.DefaultUpdater{},
		)
	}

	code := dispatch(context.Background(), args, reg, prober, logger)

	if err := appupdate.UpdateVersionMarker(BUILD_VERSION); err != nil {
		logger.Warn("failed to update version marker", zap.Error(err))
	}

	os.Exit(code)
}

// dispatch routes the first argument to a builtin command, falling back to
// alias execution.
func dispatch(
	ctx context.Context,
	args []string,
	reg *registry.Registry,
	prober *probe.Prober,
	logger *zap.Logger,
) int {
	switch args[0] {
	case "run":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, styles.ERROR("pal: run requires an alias name"))
			return 1
		}
		return runAlias(ctx, args[1], args[2:], reg, prober, logger)
	case "list":
		tool := ""
		if len(args) > 1 {
			tool = args[1]
		}
		return runList(reg, prober, tool)
	case "which":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, styles.ERROR("pal: which requires an alias name"))
			return 1
		}
		return runWhich(reg, args[1])
	case "doctor":
		return runDoctor(ctx, reg, prober)
	case "init":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, styles.ERROR("pal: init requires a shell name (bash, zsh, fish)"))
			return 1
		}
		return runInit(reg, args[1])
	case "history":
		return runHistory(args[1:], logger)
	case "stats":
		return runStats(args[1:], logger)
	case "upgrade":
		return runUpgrade(ctx)
	default:
		return runAlias(ctx, args[0], args[1:], reg, prober, logger)
	}
}

func runAlias(
	ctx context.Context,
	alias string,
	args []string,
	reg *registry.Registry,
	prober *probe.Prober,
	logger *zap.Logger,
) int {
	runner, err := shellexec.NewRunner()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		return 1
	}

	usageManager := initializeUsageManager(logger)

	forwarder := wrapper.NewForwarder(reg, prober, runner, usageManager, logger)
	code, _ := forwarder.Run(ctx, alias, args)
	return code
}

// notifyPendingUpdate prints a one-line hint when a previous background
// check recorded a newer version.
func notifyPendingUpdate() {
	notice := appupdate.PendingUpdateNotice(filesystem.DefaultFileSystem{}, BUILD_VERSION)
	if notice != "" {
		fmt.Fprintln(os.Stderr, styles.HINT(notice))
	}
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	logLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		logLevel = level
	}
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	// Logs go to file only; the terminal is reserved for the wrapped tool

	return loggerConfig.Build()
}

func initializeUsageManager(logger *zap.Logger) *usage.UsageManager {
	usageManager, err := usage.NewUsageManager(core.UsageFile())
	if err != nil {
		// Recording usage is best-effort; the wrapper still runs without it
		logger.Warn("failed to open usage database", zap.Error(err))
		return nil
	}
	return usageManager
}
