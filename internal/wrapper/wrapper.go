// Package wrapper implements pass-through execution of aliases: resolve the
// alias, check that the underlying tool is installed, and forward the fixed
// arguments plus the user's arguments to it. A missing tool produces a
// warning with an install hint and nothing is invoked.
package wrapper

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/palshell/pal/internal/probe"
	"github.com/palshell/pal/internal/registry"
	"github.com/palshell/pal/internal/shellexec"
	"github.com/palshell/pal/internal/styles"
	"github.com/palshell/pal/internal/usage"
	"go.uber.org/zap"
	"mvdan.cc/sh/v3/interp"
)

// Forwarder runs alias invocations.
type Forwarder struct {
	registry *registry.Registry
	prober   *probe.Prober
	runner   *interp.Runner
	usage    *usage.UsageManager
	logger   *zap.Logger

	// Stderr receives warnings and error messages. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewForwarder creates a Forwarder. The usage manager is optional (can be
// nil); invocations are then not recorded.
func NewForwarder(
	reg *registry.Registry,
	prober *probe.Prober,
	runner *interp.Runner,
	usageManager *usage.UsageManager,
	logger *zap.Logger,
) *Forwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forwarder{
		registry: reg,
		prober:   prober,
		runner:   runner,
		usage:    usageManager,
		logger:   logger,
		Stderr:   os.Stderr,
	}
}

// Run resolves and executes an alias, forwarding args unchanged after the
// alias's fixed arguments. The returned exit code is the wrapped tool's own
// exit code, passed through untouched.
//
// If the alias is unknown, an error message with fuzzy suggestions is
// printed and the exit code is 1. If the underlying tool is not installed,
// a warning with an install hint is printed, nothing is invoked, and the
// exit code is 0.
func (f *Forwarder) Run(ctx context.Context, aliasName string, args []string) (int, error) {
	inv, ok := f.registry.Resolve(aliasName)
	if !ok {
		fmt.Fprintln(f.Stderr, styles.ERROR(fmt.Sprintf("pal: unknown alias %q", aliasName)))
		if suggestions := f.registry.Suggest(aliasName, 3); len(suggestions) > 0 {
			fmt.Fprintln(f.Stderr, styles.HINT("did you mean: "+strings.Join(suggestions, ", ")))
		}
		return 1, nil
	}

	if !f.prober.Seen(inv.Tool) {
		f.logger.Debug("probing tool", zap.String("tool", inv.Tool))
	}
	if !f.prober.Exists(inv.Tool) {
		f.warnMissing(inv)
		return 0, nil
	}

	argv := make([]string, 0, 1+len(inv.Args)+len(args))
	argv = append(argv, inv.Tool)
	argv = append(argv, inv.Args...)
	argv = append(argv, args...)

	command := strings.Join(argv, " ")
	f.logger.Debug("forwarding alias",
		zap.String("alias", aliasName),
		zap.String("command", command),
	)

	var entry *usage.InvocationEntry
	if f.usage != nil {
		dir, _ := os.Getwd()
		started, err := f.usage.StartInvocation(aliasName, inv.Tool, command, dir)
		if err != nil {
			f.logger.Warn("failed to record invocation", zap.Error(err))
		} else {
			entry = started
		}
	}

	code, err := shellexec.RunArgv(ctx, f.runner, argv)

	if entry != nil {
		if _, finishErr := f.usage.FinishInvocation(entry, code); finishErr != nil {
			f.logger.Warn("failed to record exit code", zap.Error(finishErr))
		}
	}

	if err != nil {
		f.logger.Error("execution failed", zap.String("alias", aliasName), zap.Error(err))
		fmt.Fprintln(f.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		return code, err
	}

	return code, nil
}

func (f *Forwarder) warnMissing(inv registry.Invocation) {
	fmt.Fprintln(f.Stderr, styles.WARNING(fmt.Sprintf("pal: %q requires %s, which is not installed", inv.Alias, inv.Tool)))
	if inv.InstallHint != "" {
		fmt.Fprintln(f.Stderr, styles.HINT("install it from "+inv.InstallHint))
	}
	f.logger.Info("tool not installed",
		zap.String("alias", inv.Alias),
		zap.String("tool", inv.Tool),
	)
}
