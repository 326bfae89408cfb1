// Package shellexec runs resolved alias invocations through a mvdan.cc/sh
// runner, so wrapped tools inherit the session environment, stdio, and
// foreground job control, and their exit codes pass through untouched.
package shellexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const defaultKillTimeout = 2 * time.Second

// threadSafeBuffer provides a thread-safe wrapper around bytes.Buffer.
type threadSafeBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

func (b *threadSafeBuffer) Write(p []byte) (n int, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

func (b *threadSafeBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}

// NewRunner creates an interp.Runner wired to the process environment and
// stdio, with foreground process-group handling for external commands.
func NewRunner() (*interp.Runner, error) {
	env := expand.ListEnviron(os.Environ()...)

	runner, err := interp.New(
		interp.Env(env),
		interp.StdIO(os.Stdin, os.Stdout, os.Stderr),
		interp.ExecHandlers(func(interp.ExecHandlerFunc) interp.ExecHandlerFunc {
			return NewProcessGroupExecHandler(defaultKillTimeout)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shell runner: %w", err)
	}
	return runner, nil
}

// RunArgv executes argv[0] with the remaining arguments, forwarding each
// argument unchanged. Returns the command's exit code; a non-zero exit code
// is not an error.
func RunArgv(ctx context.Context, runner *interp.Runner, argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, nil
	}

	err := runner.Run(ctx, argvStmt(argv))
	if err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return int(exitStatus), nil
		}
		return 1, err
	}

	return 0, nil
}

// CaptureArgv runs argv in a subshell and captures stdout/stderr.
// Returns stdout, stderr, exit code, and any execution error.
func CaptureArgv(ctx context.Context, runner *interp.Runner, argv []string) (string, string, int, error) {
	if len(argv) == 0 {
		return "", "", 0, nil
	}

	subShell := runner.Subshell()

	outBuf := &threadSafeBuffer{}
	errBuf := &threadSafeBuffer{}
	interp.StdIO(nil, outBuf, errBuf)(subShell) //nolint:errcheck

	err := subShell.Run(ctx, argvStmt(argv))

	exitCode := 0
	if err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			// Non-zero exit code is not an execution error
			return outBuf.String(), errBuf.String(), int(exitStatus), nil
		}
		return outBuf.String(), errBuf.String(), 1, err
	}

	return outBuf.String(), errBuf.String(), exitCode, nil
}

// argvStmt builds a call statement from argv without going through the shell
// parser. Every argument becomes a single-quoted word, so the runner performs
// no globbing, splitting, or variable expansion on forwarded arguments.
func argvStmt(argv []string) *syntax.Stmt {
	call := &syntax.CallExpr{}
	for _, arg := range argv {
		call.Args = append(call.Args, &syntax.Word{
			Parts: []syntax.WordPart{&syntax.SglQuoted{Value: arg}},
		})
	}
	return &syntax.Stmt{Cmd: call}
}
