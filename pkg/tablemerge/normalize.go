package tablemerge

import (
	"regexp"
	"strings"
)

// parenthetical is greedy: it spans from the first "(" to the last ")" on
// the same line. Line terminators include \r, U+2028 and U+2029.
var parenthetical = regexp.MustCompile(`\([^\n\r\x{2028}\x{2029}]*\)`)

// Normalize turns a name into its grouping key: lower-cased, with the first
// parenthetical run removed and trailing spaces stripped.
func Normalize(name string) string {
	key := strings.ToLower(name)
	if loc := parenthetical.FindStringIndex(key); loc != nil {
		key = key[:loc[0]] + key[loc[1]:]
	}
	return strings.TrimRight(key, " ")
}
