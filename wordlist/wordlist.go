// Package wordlist loads word-ladder dictionaries from whitespace-delimited
// text files.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/wordpath/ladder"
)

// Load opens path and parses it with Read.
func Load(path string) (*ladder.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read collects every whitespace-delimited word from r, lowercased.
// Duplicates collapse into one dictionary entry.
func Read(r io.Reader) (*ladder.Dictionary, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, strings.ToLower(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}

	return ladder.NewDictionary(words...), nil
}
