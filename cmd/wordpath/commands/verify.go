package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/ladder"
	"github.com/katalvlaran/wordpath/wordlist"
)

func newVerifyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the reference word ladder checks against a dictionary",
		Args:  cobra.NoArgs,
	}
	dict := a.addDictFlag(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return a.runVerify(cmd.OutOrStdout(), dict(), ladder.DefaultCases)
	}

	return cmd
}

// runVerify prints one passed/failed line per case and fails if any case did.
func (a *app) runVerify(out io.Writer, dictPath string, cases []ladder.Case) error {
	dict, err := wordlist.Load(dictPath)
	if err != nil {
		return err
	}
	a.log.Debug("dictionary loaded", "path", dictPath, "words", dict.Len())

	failed := 0
	for _, o := range ladder.Verify(dict, cases) {
		status := "passed"
		if !o.Passed {
			status = "failed"
			failed++
			a.log.Debug("check failed", "case", o.Case.String(), "got", len(o.Ladder))
		}
		fmt.Fprintf(out, "%s %s\n", o.Case, status)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(cases))
	}

	return nil
}
