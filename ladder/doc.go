// Package ladder finds shortest word ladders: sequences of dictionary words in
// which each consecutive pair differs by a single edit.
//
// Two words are adjacent when their case-insensitive edit distance
// (insertions, deletions and substitutions) is at most one. Generate runs a
// breadth-first search from the begin word over the implicit graph whose
// vertices are dictionary words and whose edges join adjacent words.
//
// Search policy:
//
//   - The queue holds complete partial ladders, not bare words, so no parent
//     reconstruction is needed once the end word is reached.
//   - One visited set is shared by every ladder in flight. The first ladder to
//     reach a word keeps it; because BFS dequeues ladders in non-decreasing
//     length order, the first ladder that reaches the end word is a shortest one.
//   - Candidates are tried in the dictionary's lexicographic order, which makes
//     the result deterministic when several shortest ladders exist.
//
// No ladder is reported as an empty (nil) slice, never as an error.
//
// Complexity:
//
//   - Time:  O(L · D · W), L = ladders expanded, D = dictionary size, W = word length.
//   - Space: O(L · P) for the queued ladder copies, P = ladder length.
//
// Example:
//
//	dict := ladder.NewDictionary("cat", "cot", "cog", "dog", "dot")
//	fmt.Println(ladder.Generate("cat", "dog", dict)) // [cat cot cog dog]
package ladder
