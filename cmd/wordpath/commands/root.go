// Package commands implements the wordpath command tree.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the global flags and the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg *Config
	log *slog.Logger
	in  *bufio.Scanner // lazily wraps the command's stdin for prompts
}

// NewRootCommand builds a fresh wordpath command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wordpath",
		Short: "Shortest paths in weighted graphs and shortest word ladders",
		Long: `wordpath runs two classic search algorithms from the command line.

  dijkstra  single-source shortest paths over an edge-list graph file
  ladder    shortest word ladder between two words of a dictionary
  verify    reference ladder checks against a dictionary

Examples:
  wordpath dijkstra graphs/small.txt
  wordpath ladder cat dog --dict words.txt
  wordpath --config wordpath.yaml verify
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file with default dictionary and source")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newDijkstraCommand(a))
	root.AddCommand(newLadderCommand(a))
	root.AddCommand(newVerifyCommand(a))

	return root
}

// Execute runs the command tree against the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// init configures logging and loads the optional config file.
func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.configPath == "" {
		return nil
	}
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.configPath)

	return nil
}

// prompt writes label to out and reads one whitespace-delimited token from
// the command's input.
func (a *app) prompt(cmd *cobra.Command, label string) (string, error) {
	if a.in == nil {
		a.in = bufio.NewScanner(cmd.InOrStdin())
		a.in.Split(bufio.ScanWords)
	}
	fmt.Fprint(cmd.OutOrStdout(), label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}

	return a.in.Text(), nil
}

// addDictFlag registers --dict on fs and returns a resolver that applies the
// flag > config > default precedence.
func (a *app) addDictFlag(fs *pflag.FlagSet) func() string {
	var path string
	fs.StringVarP(&path, "dict", "d", DefaultDictionary, "dictionary file (whitespace-delimited words)")

	return func() string {
		return a.cfg.dictionaryPath(path, fs.Changed("dict"))
	}
}
