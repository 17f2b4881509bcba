package ladder

import "sort"

// Dictionary is a set of words iterated in lexicographic order.
//
// Words are stored exactly as given; lowercasing is left to the loader.
// The zero value is an empty dictionary ready for use.
type Dictionary struct {
	index map[string]struct{}
	words []string // sorted, unique
}

// NewDictionary returns a dictionary holding the given words.
// Duplicates are collapsed.
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = struct{}{}
		d.words = append(d.words, w)
	}
	sort.Strings(d.words)

	return d
}

// Add inserts w, keeping the iteration order sorted.
// Reports whether w was not already present.
func (d *Dictionary) Add(w string) bool {
	if d.index == nil {
		d.index = make(map[string]struct{})
	}
	if _, ok := d.index[w]; ok {
		return false
	}
	d.index[w] = struct{}{}
	i := sort.SearchStrings(d.words, w)
	d.words = append(d.words, "")
	copy(d.words[i+1:], d.words[i:])
	d.words[i] = w

	return true
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.index[w]

	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.words)
}

// Words returns the words in lexicographic order.
// The returned slice must not be modified.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}

	return d.words
}
