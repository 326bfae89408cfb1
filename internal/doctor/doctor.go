// Package doctor inspects every tool in the alias registry and reports
// whether it is installed, its version, and how to install it when missing.
package doctor

import (
	"context"
	"strings"

	"github.com/palshell/pal/internal/probe"
	"github.com/palshell/pal/internal/registry"
	"github.com/palshell/pal/internal/shellexec"
	"github.com/samber/lo"
	"mvdan.cc/sh/v3/interp"
)

// Status is the diagnosis of a single tool.
type Status string

const (
	StatusOK      Status = "OK"
	StatusMissing Status = "MISSING"
)

// Report is the diagnosis for one tool.
type Report struct {
	Tool        string
	Status      Status
	Version     string
	InstallHint string
	AliasCount  int
}

// Run probes every tool in the registry and collects a report per tool,
// sorted by tool name. Versions are captured by running `<tool> --version`
// through the given runner.
func Run(ctx context.Context, reg *registry.Registry, prober *probe.Prober, runner *interp.Runner) []Report {
	return lo.Map(reg.Groups(), func(group *registry.Group, _ int) Report {
		report := Report{
			Tool:        group.Tool,
			Status:      StatusMissing,
			InstallHint: group.InstallHint,
			AliasCount:  len(group.Aliases),
		}

		if prober.Exists(group.Tool) {
			report.Status = StatusOK
			report.Version = toolVersion(ctx, runner, group.Tool)
		}

		return report
	})
}

// toolVersion returns the first line printed by `<tool> --version`, or an
// empty string when the tool refuses the flag.
func toolVersion(ctx context.Context, runner *interp.Runner, tool string) string {
	out, _, code, err := shellexec.CaptureArgv(ctx, runner, []string{tool, "--version"})
	if err != nil || code != 0 {
		return ""
	}
	line := strings.TrimSpace(out)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	return line
}

// Missing filters a report list down to the tools that are not installed.
func Missing(reports []Report) []Report {
	return lo.Filter(reports, func(r Report, _ int) bool {
		return r.Status == StatusMissing
	})
}
