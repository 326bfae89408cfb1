//go:build !windows

package shellexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/term"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
)

// NewProcessGroupExecHandler returns an ExecHandlerFunc that runs external
// commands in their own process group and makes that group the foreground
// group of the terminal. Ctrl+C then reaches the wrapped tool rather than
// pal, which is the standard job control model for foreground commands.
//
// killTimeout is how long to wait after SIGINT before SIGKILL when the
// context is cancelled programmatically.
func NewProcessGroupExecHandler(killTimeout time.Duration) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		hc := interp.HandlerCtx(ctx)
		path, err := interp.LookPathDir(hc.Dir, hc.Env, args[0])
		if err != nil {
			fmt.Fprintf(hc.Stderr, "%s: command not found\n", args[0])
			return interp.ExitStatus(127)
		}

		cmd := exec.Cmd{
			Path:   path,
			Args:   args,
			Dir:    hc.Dir,
			Env:    execEnv(hc.Env),
			Stdin:  hc.Stdin,
			Stdout: hc.Stdout,
			Stderr: hc.Stderr,
			SysProcAttr: &syscall.SysProcAttr{
				Setpgid: true,
			},
		}

		if err := cmd.Start(); err != nil {
			return err
		}

		childPgid := cmd.Process.Pid

		// Hand the terminal's foreground to the child's process group.
		// Requires stdin to be a tty; otherwise the child just runs in the
		// background of the session as usual.
		var ttyFd = -1
		var originalPgrp int

		if f, ok := hc.Stdin.(*os.File); ok {
			fd := int(f.Fd())
			if term.IsTerminal(fd) {
				ttyFd = fd
				originalPgrp, _ = tcgetpgrp(ttyFd)
				_ = tcsetpgrp(ttyFd, childPgid)
			}
		}

		defer func() {
			if ttyFd >= 0 && originalPgrp > 0 {
				_ = tcsetpgrp(ttyFd, originalPgrp)
			}
		}()

		waitDone := make(chan error, 1)
		go func() {
			waitDone <- cmd.Wait()
		}()

		select {
		case err := <-waitDone:
			return waitStatus(err)
		case <-ctx.Done():
			if cmd.Process != nil {
				_ = syscall.Kill(-childPgid, syscall.SIGINT)
			}

			if killTimeout >= 0 {
				select {
				case err := <-waitDone:
					return waitStatus(err)
				case <-time.After(killTimeout):
					if cmd.Process != nil {
						_ = syscall.Kill(-childPgid, syscall.SIGKILL)
					}
				}
			} else {
				if cmd.Process != nil {
					_ = syscall.Kill(-childPgid, syscall.SIGKILL)
				}
			}

			return waitStatus(<-waitDone)
		}
	}
}

// waitStatus maps a cmd.Wait error to an interp.ExitStatus so the child's
// exit code passes through the runner unchanged.
func waitStatus(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return interp.ExitStatus(128 + int(status.Signal()))
		}
		return interp.ExitStatus(exitErr.ExitCode())
	}
	return err
}

// tcgetpgrp returns the foreground process group ID of the terminal.
func tcgetpgrp(fd int) (int, error) {
	var pgrp int32
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, uintptr(fd), syscall.TIOCGPGRP, uintptr(unsafe.Pointer(&pgrp)))
	if errno != 0 {
		return 0, errno
	}
	return int(pgrp), nil
}

// tcsetpgrp sets the foreground process group ID of the terminal.
func tcsetpgrp(fd int, pgrp int) error {
	pgrp32 := int32(pgrp)
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, uintptr(fd), syscall.TIOCSPGRP, uintptr(unsafe.Pointer(&pgrp32)))
	if errno != 0 {
		return errno
	}
	return nil
}

// execEnv converts expand.Environ to []string for exec.Cmd.Env.
func execEnv(env interface {
	Each(func(name string, vr expand.Variable) bool)
}) []string {
	var result []string
	env.Each(func(name string, vr expand.Variable) bool {
		if vr.Exported {
			result = append(result, name+"="+vr.String())
		}
		return true
	})
	result = append(result, os.Environ()...)
	return result
}
