package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/veedubyou/track-splitter/src/shared/config/envvar"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
)

func main() {
	log.SetHandler(cli.New(os.Stderr))
	log.SetLevelFromString(envvar.Get(envvar.LOG_LEVEL, "info"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		cerr.Log(err)
		os.Exit(1)
	}
}
