package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/ladder"
	"github.com/katalvlaran/wordpath/wordlist"
)

// Errors reported by the ladder command before any search runs.
var (
	// ErrSameWords indicates the start and end words are identical.
	ErrSameWords = errors.New("start and end words must be different")

	// ErrEndNotInDictionary indicates the end word is absent from the dictionary.
	ErrEndNotInDictionary = errors.New("end word is not in the dictionary")
)

func newLadderCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ladder [start] [end]",
		Short: "Find a shortest word ladder between two words",
		Long: `Find a shortest sequence of dictionary words from start to end in which
every consecutive pair differs by one letter substitution, insertion or
deletion.

Both words are lowercased. Missing words are prompted for on stdin.`,
		Args: cobra.MaximumNArgs(2),
	}
	dict := a.addDictFlag(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		words := append([]string(nil), args...)
		labels := []string{"Enter start word: ", "Enter end word: "}
		for len(words) < 2 {
			w, err := a.prompt(cmd, labels[len(words)])
			if err != nil {
				return err
			}
			words = append(words, w)
		}

		return a.runLadder(cmd.OutOrStdout(), words[0], words[1], dict())
	}

	return cmd
}

// runLadder validates the words, loads the dictionary and prints the ladder.
func (a *app) runLadder(out io.Writer, start, end, dictPath string) error {
	start, end = strings.ToLower(start), strings.ToLower(end)
	if start == end {
		return fmt.Errorf("words %q and %q: %w", start, end, ErrSameWords)
	}

	dict, err := wordlist.Load(dictPath)
	if err != nil {
		return err
	}
	a.log.Debug("dictionary loaded", "path", dictPath, "words", dict.Len())

	if !dict.Contains(end) {
		return fmt.Errorf("%w: %q", ErrEndNotInDictionary, end)
	}

	began := time.Now()
	l := ladder.Generate(start, end, dict)
	a.log.Debug("ladder search finished", "start", start, "end", end, "length", len(l), "elapsed", time.Since(began))

	printLadder(out, l)

	return nil
}

// printLadder writes the ladder, or "No word ladder found." when it is empty.
func printLadder(out io.Writer, l []string) {
	if len(l) == 0 {
		fmt.Fprintln(out, "No word ladder found.")
		return
	}
	fmt.Fprintf(out, "Word ladder found: %s\n", strings.Join(l, " "))
}
