package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/illarion/securepass/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Run(ctx, os.Args[1:], cmd.DefaultEnv())
	stop()
	os.Exit(code)
}
