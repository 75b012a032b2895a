// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/bvk/cmdtree/specfile"
	"github.com/bvk/cmdtree/tree"
	"github.com/visvasity/sglog"
)

// TreeFlags select the command tree and the parser options.
type TreeFlags struct {
	specPath      string
	separator     string
	caseSensitive bool
}

func (tf *TreeFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&tf.specPath, "spec", "", "path to a json, toml or yaml command spec file; uses the built-in sample commands when empty")
	fset.StringVar(&tf.separator, "separator", tree.DefaultSeparator, "token separator string")
	fset.BoolVar(&tf.caseSensitive, "case-sensitive", false, "when true, literal keywords are matched case-sensitively")
}

func (tf *TreeFlags) Options() *tree.Options {
	return &tree.Options{
		Separator:     tf.separator,
		CaseSensitive: tf.caseSensitive,
	}
}

// NewRoot builds the command tree from the spec file or the sample commands.
func (tf *TreeFlags) NewRoot(reg *specfile.Registry) (*tree.Node, error) {
	if len(tf.specPath) == 0 {
		return specfile.NewRoot(SampleSpecs(), tf.Options())
	}
	return reg.LoadRoot(tf.specPath, tf.Options())
}

// NewDispatcher returns a dispatcher over a freshly built command tree.
func (tf *TreeFlags) NewDispatcher(ctx context.Context, reg *specfile.Registry) (*tree.Dispatcher, error) {
	root, err := tf.NewRoot(reg)
	if err != nil {
		return nil, err
	}
	d, err := tree.NewDispatcher(root, tf.Options(), slog.Default())
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "command tree is ready", "spec", tf.specPath, "commands", len(root.Literals()))
	return d, nil
}

type LogFlags struct {
	logDir string
	debug  bool
}

func (lf *LogFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&lf.logDir, "log-dir", "", "when non-empty, writes glog style log files in this directory")
	fset.BoolVar(&lf.debug, "debug", false, "when true, enables debug messages")
}

// Setup installs the default slog logger. Returned function must be called
// to flush the log files before exit.
func (lf *LogFlags) Setup() (func(), error) {
	if len(lf.logDir) == 0 {
		if lf.debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		return func() {}, nil
	}

	if err := os.MkdirAll(lf.logDir, 0o700); err != nil {
		return nil, err
	}
	backend := sglog.NewBackend(&sglog.Options{
		LogDirs:       []string{lf.logDir},
		LogFileHeader: true,
	})
	if lf.debug {
		backend.SetLevel(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(backend.Handler()))
	return backend.Close, nil
}
