// Package supervisor wires the background services the core event loop
// depends on — the backend's event pump and the child-process reaper —
// under a github.com/thejerf/suture/v4 tree, following the same
// EventHook/ServiceFunc pattern ItsNotGoodName-x-ipcviewer's pkg/sutureext
// uses (§10.3). The core event loop itself is never registered here: it
// owns core.Context and must run as the single, un-retried control thread.
package supervisor

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/thejerf/suture/v4"

	"github.com/mx-scissortail/wasdwm/internal/core"
	"github.com/mx-scissortail/wasdwm/internal/procreap"
)

// New builds a supervisor with the two background services added, and
// returns the channel the event pump publishes backend events onto; the
// caller's event loop selects on it alongside its own shutdown signal.
func New(backend core.DisplayBackend) (*suture.Supervisor, <-chan PumpedEvent) {
	super := suture.New("wasdwm", suture.Spec{EventHook: eventHook()})

	events := make(chan PumpedEvent, 64)
	super.Add(&eventPump{backend: backend, out: events})
	super.Add(procreap.New())

	return super, events
}

// PumpedEvent carries either a decoded core.Event or the error NextEvent
// returned, so a lost connection surfaces to the event loop instead of
// silently stalling it.
type PumpedEvent struct {
	Event core.Event
	Err   error
}

type eventPump struct {
	backend core.DisplayBackend
	out     chan<- PumpedEvent
}

func (p *eventPump) String() string { return "eventpump" }

// Serve blocks on backend.NextEvent and forwards every result until ctx is
// canceled; NextEvent has no cancellation hook of its own, so a shutdown
// leaves this goroutine blocked until the backend connection is closed,
// at which point NextEvent returns an error and Serve exits.
func (p *eventPump) Serve(ctx context.Context) error {
	for {
		ev, err := p.backend.NextEvent()
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		select {
		case p.out <- PumpedEvent{Event: ev, Err: err}:
		case <-ctx.Done():
			return ctx.Err()
		}
		if err != nil {
			return err
		}
	}
}

func eventHook() suture.EventHook {
	return func(ei suture.Event) {
		switch e := ei.(type) {
		case suture.EventStopTimeout:
			slog.Warn("service failed to terminate in time", "service", e.ServiceName)
		case suture.EventServicePanic:
			slog.Error("service panicked, restarting", "service", e.ServiceName, "panic", e.PanicMsg)
		case suture.EventServiceTerminate:
			slog.Error("service terminated", "service", e.ServiceName, "error", e.Err)
		case suture.EventBackoff:
			slog.Warn("supervisor entering backoff", "supervisor", e.SupervisorName)
		case suture.EventResume:
			slog.Info("supervisor resuming from backoff", "supervisor", e.SupervisorName)
		default:
			b, _ := json.Marshal(e)
			slog.Debug("suture event", "type", int(e.Type()), "data", string(b))
		}
	}
}
