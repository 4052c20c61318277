package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/nocount/illien/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli.Main(ctx)
}
