package tablemerge

// EditDistance returns the Levenshtein distance between a and b, counted in
// runes. Insertions, deletions and substitutions each cost one.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// matrix[i][j] is the distance between rb[:i] and ra[:j].
	matrix := make([][]int, len(rb)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ra)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = min(
				matrix[i-1][j-1]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j]+1,
			)
		}
	}

	return matrix[len(rb)][len(ra)]
}
