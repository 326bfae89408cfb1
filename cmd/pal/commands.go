package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/palshell/pal/internal/appupdate"
	"github.com/palshell/pal/internal/core"
	"github.com/palshell/pal/internal/doctor"
	"github.com/palshell/pal/internal/probe"
	"github.com/palshell/pal/internal/registry"
	"github.com/palshell/pal/internal/shellexec"
	"github.com/palshell/pal/internal/shellgen"
	"github.com/palshell/pal/internal/styles"
	"go.uber.org/zap"
)

var (
	toolHeaderStyle = lipgloss.NewStyle().Bold(true)
	aliasStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Width(8)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runList(reg *registry.Registry, prober *probe.Prober, tool string) int {
	groups := reg.Groups()
	if tool != "" {
		group := reg.Group(tool)
		if group == nil {
			fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: no aliases registered for %q", tool)))
			return 1
		}
		groups = []*registry.Group{group}
	}

	for _, group := range groups {
		marker := styles.OK("✓")
		if !prober.Exists(group.Tool) {
			marker = styles.MISSING("✗")
		}
		fmt.Printf("%s %s\n", marker, toolHeaderStyle.Render(group.Tool))

		for _, alias := range group.Aliases {
			invocation := strings.TrimSpace(group.Tool + " " + strings.Join(alias.Args, " "))
			fmt.Printf("    %s %s\n", aliasStyle.Render(alias.Name), dimStyle.Render(invocation))
		}
	}
	return 0
}

func runWhich(reg *registry.Registry, alias string) int {
	inv, ok := reg.Resolve(alias)
	if !ok {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: unknown alias %q", alias)))
		if suggestions := reg.Suggest(alias, 3); len(suggestions) > 0 {
			fmt.Fprintln(os.Stderr, styles.HINT("did you mean: "+strings.Join(suggestions, ", ")))
		}
		return 1
	}

	fmt.Println(strings.TrimSpace(styles.ACCENT(inv.Tool) + " " + strings.Join(inv.Args, " ")))
	return 0
}

func runDoctor(ctx context.Context, reg *registry.Registry, prober *probe.Prober) int {
	runner, err := shellexec.NewRunner()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		return 1
	}

	reports := doctor.Run(ctx, reg, prober, runner)
	doctor.Render(os.Stdout, reports)
	if len(doctor.Missing(reports)) > 0 {
		return 1
	}
	return 0
}

func runInit(reg *registry.Registry, shell string) int {
	if err := shellgen.Write(os.Stdout, shell, reg); err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		return 1
	}
	return 0
}

func runHistory(args []string, logger *zap.Logger) int {
	flags := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := flags.Int("n", 20, "number of entries to show")
	currentDir := flags.Bool("d", false, "only show invocations from the current directory")
	reset := flags.Bool("reset", false, "clear all recorded invocations")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	usageManager := initializeUsageManager(logger)
	if usageManager == nil {
		fmt.Fprintln(os.Stderr, styles.ERROR("pal: usage database unavailable"))
		return 1
	}

	if *reset {
		if err := usageManager.ResetUsage(); err != nil {
			fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
			return 1
		}
		fmt.Println("usage history cleared")
		return 0
	}

	directory := ""
	if *currentDir {
		directory, _ = os.Getwd()
	}

	entries, err := usageManager.RecentEntries(directory, *limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		return 1
	}

	for _, entry := range entries {
		exit := " "
		if entry.ExitCode.Valid && entry.ExitCode.Int32 != 0 {
			exit = styles.MISSING(fmt.Sprintf("%d", entry.ExitCode.Int32))
		}
		fmt.Printf("%s  %s %s\n",
			dimStyle.Render(humanize.Time(entry.CreatedAt)),
			entry.Command,
			exit,
		)
	}
	return 0
}

func runStats(args []string, logger *zap.Logger) int {
	flags := flag.NewFlagSet("stats", flag.ContinueOnError)
	limit := flags.Int("n", 10, "number of aliases to show")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	usageManager := initializeUsageManager(logger)
	if usageManager == nil {
		fmt.Fprintln(os.Stderr, styles.ERROR("pal: usage database unavailable"))
		return 1
	}

	counts, err := usageManager.TopAliases(*limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		return 1
	}

	for _, count := range counts {
		fmt.Printf("%s %s %s\n",
			aliasStyle.Render(count.Alias),
			fmt.Sprintf("%4d×", count.Count),
			dimStyle.Render("last used "+humanize.Time(count.LastUsed)),
		)
	}
	return 0
}

func runUpgrade(ctx context.Context) int {
	fmt.Println("checking for the latest release...")

	version, err := appupdate.Apply(ctx, BUILD_VERSION, appupdate.DefaultUpdater{})
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("pal: %v", err)))
		return 1
	}

	fmt.Println(styles.OK(fmt.Sprintf("updated to pal %s", version)))

	// A fresh binary makes any recorded pending version stale
	_ = os.Remove(core.LatestVersionFile())
	return 0
}
