package validation

import (
	"slices"
	"strings"
	"unicode"
)

// minPartialLength is the fewest runes a partial answer must have
const minPartialLength = 3

// similarityThreshold is the largest edit distance, relative to the longer
// answer, that still counts as the same answer
const similarityThreshold = 0.2

var articles = []string{"the ", "a ", "an "}

// NormalizeAnswer normalizes an answer for comparison
func NormalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))

	for _, prefix := range articles {
		answer = strings.TrimPrefix(answer, prefix)
	}

	var result strings.Builder
	for _, r := range answer {
		if !unicode.IsPunct(r) {
			result.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(result.String()), " ")
}

// IsSimilarAnswer checks if a guess is close enough to the expected answer
func IsSimilarAnswer(expected, guess string) bool {
	want := NormalizeAnswer(expected)
	got := NormalizeAnswer(guess)

	if got == "" {
		return want == ""
	}
	if want == got {
		return true
	}

	// "fleming" for "alexander fleming", or the reverse
	if containsWords(want, got) || containsWords(got, want) {
		return true
	}

	a, b := []rune(want), []rune(got)
	distance := levenshteinDistance(a, b)
	return float64(distance)/float64(max(len(a), len(b))) < similarityThreshold
}

// containsWords reports whether part is a run of whole words inside s and
// long enough to count as an answer on its own
func containsWords(s, part string) bool {
	if len([]rune(part)) < minPartialLength {
		return false
	}
	words, partWords := strings.Fields(s), strings.Fields(part)
	for i := 0; i+len(partWords) <= len(words); i++ {
		if slices.Equal(words[i:i+len(partWords)], partWords) {
			return true
		}
	}
	return false
}

// levenshteinDistance calculates the Levenshtein distance between two rune slices
func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}
