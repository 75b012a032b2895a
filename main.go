// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/bvk/cmdtree/subcmds"
	"github.com/visvasity/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmds := []cli.Command{
		new(subcmds.Repl),
		new(subcmds.Run),
		new(subcmds.Parse),
		new(subcmds.Suggest),
		new(subcmds.Usage),
	}
	if err := cli.Run(ctx, cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
