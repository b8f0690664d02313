package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"stockchart/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault(os.Getenv("LOG_LEVEL")))
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&fetchCmd{}, "")
	subcommands.Register(&chartCmd{}, "")
	subcommands.Register(&batchCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
