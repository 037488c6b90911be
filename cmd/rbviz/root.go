package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/rbtree/metrics"
	"github.com/npillmayer/rbtree/render"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// outputFormat is the value of flag --format.
type outputFormat string

const (
	formatConsole outputFormat = "console"
	formatDot     outputFormat = "dot"
	formatHTML    outputFormat = "html"
	formatLevels  outputFormat = "levels"
)

var formats = []outputFormat{formatConsole, formatDot, formatHTML, formatLevels}

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(s string) error {
	for _, format := range formats {
		if string(format) == strings.ToLower(s) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, must be one of %v", s, formats)
}

func (f *outputFormat) Type() string {
	return "format"
}

var _ pflag.Value = (*outputFormat)(nil)

// op is a single step of a script.
type op struct {
	remove bool
	key    int
}

func (o op) String() string {
	if o.remove {
		return fmt.Sprintf("-%d", o.key)
	}
	return fmt.Sprintf("+%d", o.key)
}

func parseOp(s string) (op, error) {
	var o op
	digits := s
	switch {
	case strings.HasPrefix(s, "+"):
		digits = s[1:]
	case strings.HasPrefix(s, "-"):
		o.remove = true
		digits = s[1:]
	}
	key, err := strconv.Atoi(digits)
	if err != nil || digits == "" || digits[0] == '+' || digits[0] == '-' {
		return o, fmt.Errorf("malformed operation %q: expected [+|-]integer", s)
	}
	o.key = key
	return o, nil
}

func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, arg := range args {
		o, err := parseOp(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func readScript(path string, stdin io.Reader) ([]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read script: %w", err)
	}
	return strings.Fields(string(data)), nil
}

// options collects the command line flags.
type options struct {
	format   outputFormat
	events   bool
	stats    bool
	verify   bool
	plain    bool
	sideways bool
	debug    bool
	script   string
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	o.format = formatConsole
	fs.VarP(&o.format, "format", "f", "Output format of the tree: console, dot, html or levels.")
	fs.BoolVarP(&o.events, "events", "e", false, "Print the rebalancing events of every operation.")
	fs.BoolVar(&o.stats, "stats", false, "Print shape statistics of the final tree.")
	fs.BoolVar(&o.verify, "verify", false, "Verify the red-black properties after every operation.")
	fs.BoolVar(&o.plain, "plain", false, "Do not use colors for console output.")
	fs.BoolVar(&o.sideways, "sideways", false, "Draw the tree sideways, root on the left.")
	fs.BoolVar(&o.debug, "debug", false, "Trace the rebalancing cases at debug level.")
	fs.StringVar(&o.script, "script", "", "Read operations from a file, or from stdin for \"-\".")
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "rbviz [flags] [--] OPS...",
		Short: "Apply insertions and removals to a red-black tree and print it.",
		Long: `rbviz builds a red-black tree of integer keys from a script of operations.
Every operation is a key, prefixed with '+' for insertion or '-' for removal.
Keys without prefix are inserted. Separate removals from the flags with "--".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.script != "" {
				words, err := readScript(opts.script, cmd.InOrStdin())
				if err != nil {
					return err
				}
				args = append(words, args...)
			}
			ops, err := parseOps(args)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), ops, opts)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func run(out, errout io.Writer, ops []op, opts *options) error {
	if opts.debug {
		tracing.Select("rbtree").SetTraceLevel(tracing.LevelDebug)
	}
	tree := rbtree.NewOrdered[int]()
	if opts.events {
		tree.EnableEventRecording()
	}
	for _, o := range ops {
		if o.remove {
			if err := tree.Delete(o.key); errors.Is(err, rbtree.ErrKeyNotFound) {
				fmt.Fprintf(errout, "rbviz: key %d not in tree, skipping removal\n", o.key)
			}
		} else {
			tree.Insert(o.key)
		}
		if opts.events {
			fmt.Fprintf(out, "%s\n", o)
			for _, ev := range tree.DrainEvents() {
				fmt.Fprintf(out, "    %s\n", ev)
			}
		}
		if opts.verify {
			if err := tree.Check(); err != nil {
				return fmt.Errorf("after %s: %w", o, err)
			}
		}
	}
	if err := printTree(out, tree, opts); err != nil {
		return err
	}
	if opts.stats {
		fmt.Fprintln(out, metrics.Collect(tree))
	}
	return nil
}

func printTree(out io.Writer, tree *rbtree.Tree[int], opts *options) error {
	switch opts.format {
	case formatDot:
		return rbtree.Tree2Dot(tree, out)
	case formatHTML:
		if err := render.HTML(out, tree); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	case formatLevels:
		keys := tree.LevelOrderTraversal()
		labels := make([]string, len(keys))
		for i, k := range keys {
			labels[i] = strconv.Itoa(k)
		}
		_, err := fmt.Fprintln(out, strings.Join(labels, " "))
		return err
	}
	config := render.ConfigFor(out)
	config.Plain = config.Plain || opts.plain
	config.Sideways = opts.sideways
	return render.NewConsole(nil).Fprint(out, render.Layout(tree), config)
}
