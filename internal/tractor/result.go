package tractor

import (
	"strconv"
	"strings"
)

// LevelChange converts a result string into a signed level change relative
// to the attacking side: "A+n" -> +n, "D+n" -> -n, "Draw" -> 0. Anything
// malformed or empty degrades to 0; parsing never fails loudly.
func LevelChange(result string) int {
	result = strings.TrimSpace(result)

	switch {
	case result == "" || result == "Draw":
		return 0
	case strings.HasPrefix(result, "A+"):
		n, err := strconv.Atoi(result[2:])
		if err != nil || n < 0 {
			return 0
		}
		return n
	case strings.HasPrefix(result, "D+"):
		n, err := strconv.Atoi(result[2:])
		if err != nil || n < 0 {
			return 0
		}
		return -n
	default:
		return 0
	}
}
