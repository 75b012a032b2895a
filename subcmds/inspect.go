// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/visvasity/cli"
)

type Parse struct {
	TreeFlags
}

func (c *Parse) run(ctx context.Context, args []string) error {
	reg, err := NewSampleRegistry()
	if err != nil {
		return err
	}
	d, err := c.NewDispatcher(ctx, reg)
	if err != nil {
		return err
	}
	stdout := cli.Stdout(ctx)
	r := d.Parse(strings.Join(args, c.separator))
	if err := r.Err(); err != nil {
		printError(stdout, err)
		return err
	}
	printResult(stdout, r)
	return nil
}

func (c *Parse) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("parse", flag.ContinueOnError)
	c.TreeFlags.SetFlags(fset)
	return "parse", fset, cli.CmdFunc(c.run)
}

func (c *Parse) Purpose() string {
	return "Parses a command without running it and prints the matches"
}

type Suggest struct {
	TreeFlags

	complete bool
}

func (c *Suggest) run(ctx context.Context, args []string) error {
	reg, err := NewSampleRegistry()
	if err != nil {
		return err
	}
	d, err := c.NewDispatcher(ctx, reg)
	if err != nil {
		return err
	}
	input := strings.Join(args, c.separator)
	if c.complete {
		printSuggestions(cli.Stdout(ctx), d.Complete(input))
		return nil
	}
	if len(args) != 0 {
		input += c.separator
	}
	printSuggestions(cli.Stdout(ctx), d.Suggest(input))
	return nil
}

func (c *Suggest) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("suggest", flag.ContinueOnError)
	c.TreeFlags.SetFlags(fset)
	fset.BoolVar(&c.complete, "complete", false, "when true, last argument is treated as a partial token and full line completions are printed")
	return "suggest", fset, cli.CmdFunc(c.run)
}

func (c *Suggest) Purpose() string {
	return "Prints possible next tokens for a partial command"
}

type Usage struct {
	TreeFlags
}

func (c *Usage) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage command takes no arguments")
	}
	reg, err := NewSampleRegistry()
	if err != nil {
		return err
	}
	d, err := c.NewDispatcher(ctx, reg)
	if err != nil {
		return err
	}
	stdout := cli.Stdout(ctx)
	for _, line := range d.Usage() {
		fmt.Fprintln(stdout, line)
	}
	return nil
}

func (c *Usage) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("usage", flag.ContinueOnError)
	c.TreeFlags.SetFlags(fset)
	return "usage", fset, cli.CmdFunc(c.run)
}

func (c *Usage) Purpose() string {
	return "Prints one usage line for every runnable command"
}
