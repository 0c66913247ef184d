package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"

	"wavefd/internal/cli"
	"wavefd/pkg/wave"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	err := cli.NewRootCommand().ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		atexit.Exit(0)
	case errors.Is(err, wave.ErrConfiguration):
		atexit.Exit(2)
	default:
		atexit.Exit(1)
	}
}
