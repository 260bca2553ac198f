package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/starwars-blog/catalogapi/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := cmd.New(os.Stdout, os.Stderr)
	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		cmd.ExitOnError(err)
	}
}
