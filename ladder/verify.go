package ladder

import "fmt"

// Case is one expected ladder length between two words.
type Case struct {
	Begin string
	End   string
	Want  int // expected number of words in the ladder, including both ends
}

// String renders the case as the check it performs.
func (c Case) String() string {
	return fmt.Sprintf("generate(%q, %q) length == %d", c.Begin, c.End, c.Want)
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case   Case
	Ladder []string // ladder produced by Generate; nil if none was found
	Passed bool
}

// DefaultCases are reference checks that hold against the standard words.txt
// dictionary shipped with the word ladder exercise.
var DefaultCases = []Case{
	{Begin: "cat", End: "dog", Want: 4},
	{Begin: "marty", End: "curls", Want: 6},
	{Begin: "code", End: "data", Want: 6},
	{Begin: "work", End: "play", Want: 6},
	{Begin: "sleep", End: "awake", Want: 8},
	{Begin: "car", End: "cheat", Want: 4},
}

// Verify runs Generate for every case against dict and reports, in order,
// whether each ladder has the expected length.
func Verify(dict *Dictionary, cases []Case) []Outcome {
	out := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		l := Generate(c.Begin, c.End, dict)
		out = append(out, Outcome{Case: c, Ladder: l, Passed: len(l) == c.Want})
	}

	return out
}
