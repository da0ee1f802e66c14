// Package main is the entry point for babblewitz.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/cmd/babblewitz/commands"
	"go.trai.ch/babblewitz/internal/app"
	"go.trai.ch/babblewitz/internal/core/domain"
	_ "go.trai.ch/babblewitz/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Close() }()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	if l, ok := components.Logger.(interface{ SetJSON(bool) }); ok {
		cli.SetLogJSONHook(l.SetJSON)
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// The build summary already lists every failure.
		if errors.Is(err, domain.ErrBuildFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
