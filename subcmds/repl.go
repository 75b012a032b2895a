// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bvk/cmdtree/specfile"
	"github.com/bvk/cmdtree/tree"
	"github.com/peterh/liner"
	"github.com/visvasity/cli"
	"golang.org/x/term"
)

type Repl struct {
	TreeFlags
	LogFlags

	watch       bool
	prompt      string
	historyFile string
}

func (c *Repl) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("repl command takes no arguments")
	}
	if c.watch && len(c.specPath) == 0 {
		return fmt.Errorf("-watch flag requires a -spec file: %w", os.ErrInvalid)
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

	if c.watch {
		w, err := specfile.NewWatcher(c.specPath, reg, d.Replace, &specfile.WatchOptions{Tree: c.Options()})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	stdout := cli.Stdout(ctx)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return serve(ctx, d, os.Stdin, stdout)
	}
	return c.interact(ctx, d, stdout)
}

// serve processes one command per input line until the input is exhausted.
func serve(ctx context.Context, d *tree.Dispatcher, in io.Reader, out io.Writer) error {
	ctx = cli.WithStdout(ctx, out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		handleLine(ctx, d, out, scanner.Text())
	}
	return scanner.Err()
}

func (c *Repl) interact(ctx context.Context, d *tree.Dispatcher, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(d.Complete)

	if len(c.historyFile) != 0 {
		if fp, err := os.Open(c.historyFile); err == nil {
			line.ReadHistory(fp)
			fp.Close()
		}
		defer func() {
			fp, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				slog.WarnContext(ctx, "could not save command history (ignored)", "file", c.historyFile, "err", err)
				return
			}
			defer fp.Close()
			line.WriteHistory(fp)
		}()
	}

	ctx = cli.WithStdout(ctx, out)
	for ctx.Err() == nil {
		input, err := line.Prompt(c.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
		if len(strings.TrimSpace(input)) != 0 {
			line.AppendHistory(input)
		}
		handleLine(ctx, d, out, input)
	}
	return context.Cause(ctx)
}

// handleLine dispatches one input line. A standalone "?" as the last token
// prints the suggestions for the line before it instead of running it.
func handleLine(ctx context.Context, d *tree.Dispatcher, w io.Writer, line string) {
	if len(strings.TrimSpace(line)) == 0 {
		return
	}
	if strings.TrimSpace(line) == "?" {
		printSuggestions(w, d.Suggest(""))
		return
	}
	sep := d.Separator()
	if input, ok := strings.CutSuffix(line, sep+"?"); ok {
		printSuggestions(w, d.Suggest(input+sep))
		return
	}
	if _, err := d.Dispatch(ctx, line, nil); err != nil {
		printError(w, err)
	}
}

func (c *Repl) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("repl", flag.ContinueOnError)
	c.TreeFlags.SetFlags(fset)
	c.LogFlags.SetFlags(fset)
	fset.BoolVar(&c.watch, "watch", false, "when true, reloads the command tree when the spec file changes")
	fset.StringVar(&c.prompt, "prompt", "> ", "prompt string for the interactive mode")
	fset.StringVar(&c.historyFile, "history-file", "", "when non-empty, command history is loaded from and saved to this file")
	return "repl", fset, cli.CmdFunc(c.run)
}

func (c *Repl) Purpose() string {
	return "Reads commands from the standard input and runs them"
}

func (c *Repl) Description() string {
	return `
Repl command reads one command per line and dispatches it through the
command tree. A line ending with "?" prints the possible next tokens instead
of running the command. When the standard input is a terminal, line editing,
history and tab completion are enabled.

With -watch flag, the spec file is monitored and the command tree is rebuilt
whenever the file changes. Invalid edits are logged and the last good tree
stays in service.
`
}
