// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/visvasity/cli"
)

type Run struct {
	TreeFlags
	LogFlags
}

func (c *Run) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("run command needs a command to run")
	}

	closeLog, err := c.Setup()
	if err != nil {
		return err
	}
	defer closeLog()

	reg, err := NewSampleRegistry()
	if err != nil {
		return err
	}
	d, err := c.NewDispatcher(ctx, reg)
	if err != nil {
		return err
	}
	input := strings.Join(args, c.separator)
	if _, err := d.Dispatch(ctx, input, nil); err != nil {
		printError(cli.Stdout(ctx), err)
		return err
	}
	return nil
}

func (c *Run) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("run", flag.ContinueOnError)
	c.TreeFlags.SetFlags(fset)
	c.LogFlags.SetFlags(fset)
	return "run", fset, cli.CmdFunc(c.run)
}

func (c *Run) Purpose() string {
	return "Runs one command given as the arguments"
}
