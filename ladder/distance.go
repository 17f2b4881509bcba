package ladder

import "strings"

// IsAdjacent reports whether a and b are at most one edit apart, ignoring case.
// Every word is adjacent to itself.
func IsAdjacent(a, b string) bool {
	return EditDistanceWithin(a, b, 1)
}

// EditDistanceWithin reports whether the case-insensitive Levenshtein distance
// between a and b is at most d.
//
// Algorithm:
//  1. If the lengths differ by more than d, return false (no DP needed).
//  2. For d == 1 use a linear scan:
//     equal lengths: at most one position may differ;
//     lengths ±1: align along the longer string with a single skip.
//  3. Otherwise fill the full (m+1)x(n+1) table:
//     D[i][0] = i, D[0][j] = j
//     D[i][j] = D[i-1][j-1]                                   if a[i-1] == b[j-1]
//     D[i][j] = 1 + min(D[i-1][j-1], D[i-1][j], D[i][j-1])    otherwise
//     and accept iff D[m][n] <= d.
//
// Lengths are counted in runes. A negative d is never satisfied. The result is
// symmetric in a and b.
//
// Complexity: O(m+n) for d == 1, O(m·n) time and memory otherwise.
func EditDistanceWithin(a, b string, d int) bool {
	s, t := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	m, n := len(s), len(t)

	diff := m - n
	if diff < 0 {
		diff = -diff
	}
	if diff > d {
		return false
	}

	if d == 1 {
		if m == n {
			return withinOneSubstitution(s, t)
		}
		if m < n {
			return withinOneSkip(s, t)
		}

		return withinOneSkip(t, s)
	}

	return editDistance(s, t) <= d
}

// withinOneSubstitution reports whether equal-length s and t differ in at most
// one position.
func withinOneSubstitution(s, t []rune) bool {
	diffs := 0
	for i := range s {
		if s[i] != t[i] {
			diffs++
			if diffs > 1 {
				return false
			}
		}
	}

	return true
}

// withinOneSkip reports whether short becomes long by inserting one rune.
// Requires len(long) == len(short)+1.
func withinOneSkip(short, long []rune) bool {
	i, j := 0, 0
	skipped := false
	for i < len(short) && j < len(long) {
		if short[i] == long[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		// Treat long[j] as the inserted rune.
		skipped = true
		j++
	}

	return true
}

// editDistance computes the Levenshtein distance between s and t.
func editDistance(s, t []rune) int {
	m, n := len(s), len(t)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if s[i-1] == t[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = 1 + min(dp[i-1][j-1], dp[i-1][j], dp[i][j-1])
		}
	}

	return dp[m][n]
}
