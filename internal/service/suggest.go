package service

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/aacboard/internal/board"
)

// Suggest returns the candidate closest to key by edit distance. A
// candidate is compared both whole and by its file stem ("img/apple.png"
// also matches "apple"), case-insensitively. Nothing is suggested when
// key is already a candidate or the best distance exceeds maxDistance.
func Suggest(key string, candidates []string, maxDistance int) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(key))
	if needle == "" {
		return "", false
	}
	best, bestDist := "", maxDistance+1
	for _, c := range candidates {
		if c == key {
			return "", false
		}
		lc := strings.ToLower(c)
		d := levenshtein.ComputeDistance(needle, lc)
		if sd := levenshtein.ComputeDistance(needle, board.Stem(lc)); sd < d {
			d = sd
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
