package speech

import "unicode"

// MatchThreshold is the similarity at which a spoken answer counts as correct.
const MatchThreshold = 0.8

type Match struct {
	Similarity float64 `json:"similarity"`
	Match      bool    `json:"match"`
}

// Compare scores a transcript against the expected sentence. Case,
// punctuation (including Japanese 。、「」) and whitespace are ignored;
// similarity is 1 minus the edit distance over the longer length.
func Compare(expected, transcript string) Match {
	a, b := normalize(expected), normalize(transcript)
	longest := max(len(a), len(b))
	if longest == 0 {
		return Match{}
	}
	sim := 1 - float64(levenshtein(a, b))/float64(longest)
	return Match{Similarity: sim, Match: sim >= MatchThreshold-1e-9}
}

func normalize(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// levenshtein computes edit distance (insertion, deletion, substitution cost 1).
func levenshtein(a, b []rune) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			dp[j] = min(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return dp[m]
}
