// Package procreap reaps spawned children asynchronously to the core event
// loop, following the signal.Notify-driven goroutine idiom the corpus uses
// for OS-signal handling (e.g. other_examples/kettek-gwmbl's main.go), but
// listening for SIGCHLD and calling into golang.org/x/sys/unix.Wait4 with
// WNOHANG instead of exiting the process (§5 "background goroutines only
// communicate via channels", §10.3).
package procreap

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Reaper is a suture.Service (String + Serve) that drains zombie children
// left behind by core.CmdSpawn until ctx is canceled.
type Reaper struct{}

func New() *Reaper {
	return &Reaper{}
}

func (r *Reaper) String() string {
	return "procreap"
}

// Serve blocks reaping SIGCHLD-notified children until ctx is done. It
// never touches core.Context: the WM's own children are unrelated to any
// window it manages, so reaping needs no channel back into the event loop.
func (r *Reaper) Serve(ctx context.Context) error {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGCHLD)
	defer signal.Stop(sigC)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sigC:
			reapAll()
		}
	}
}

// reapAll drains every already-exited child with a non-blocking Wait4,
// since one SIGCHLD can coalesce multiple exits.
func reapAll() {
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		if err != nil || pid <= 0 {
			return
		}
		slog.Debug("reaped child", "pid", pid, "exit_status", status.ExitStatus())
	}
}
