// Command wasdwm is the executable window manager: it wires configuration
// loading, logging, the X11 backend, the background-service supervisor and
// the core event loop together, following the corpus's cobra-rootCmd-with-
// persistent-flags entrypoint idiom (other_examples/ryanthedev-the-grid's
// main.go).
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mx-scissortail/wasdwm/internal/config"
	"github.com/mx-scissortail/wasdwm/internal/core"
	"github.com/mx-scissortail/wasdwm/internal/supervisor"
	"github.com/mx-scissortail/wasdwm/internal/wmlog"
	"github.com/mx-scissortail/wasdwm/internal/x11backend"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "wasdwm",
	Short:   "A dynamic tiling window manager for X11",
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", os.Getenv("WASDWM_DEBUG") == "1", "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("wasdwm exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	wmlog.Init(debug)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	backend := x11backend.New()
	ctx := core.NewContext(backend, cfg)

	if err := ctx.Bootstrap(); err != nil {
		return err
	}
	defer ctx.Shutdown()

	super, events := supervisor.New(backend)

	svcCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := super.Serve(svcCtx); err != nil && svcCtx.Err() == nil {
			slog.Error("supervisor exited", "error", err)
		}
	}()

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	slog.Info("wasdwm started")
	for ctx.Running {
		select {
		case sig := <-sigC:
			slog.Info("received signal, shutting down", "signal", sig)
			ctx.Running = false
		case pumped := <-events:
			if pumped.Err != nil {
				slog.Error("event pump error, shutting down", "error", pumped.Err)
				ctx.Running = false
				continue
			}
			ctx.Dispatch(pumped.Event)
		}
	}
	return nil
}
