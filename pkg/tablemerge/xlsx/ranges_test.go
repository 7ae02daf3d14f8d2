package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected cellRange
	}{
		{"A1:D10", cellRange{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"$B$2:$C$5", cellRange{R1: 2, C1: 2, R2: 5, C2: 3}},
		{"'My Sheet'!A1:B3", cellRange{R1: 1, C1: 1, R2: 3, C2: 2}},
		{"C3:A1", cellRange{R1: 1, C1: 1, R2: 3, C2: 3}},
	}

	for _, tt := range tests {
		got, err := parseRange(tt.input)
		require.NoError(t, err, "parseRange(%q)", tt.input)
		assert.Equal(t, tt.expected, got, "parseRange(%q)", tt.input)
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, s := range []string{"", "A1", "A1:B2:C3", "1A:B2"} {
		_, err := parseRange(s)
		assert.Error(t, err, "parseRange(%q)", s)
	}
}

func TestCellRangeString(t *testing.T) {
	rng := cellRange{R1: 2, C1: 1, R2: 4, C2: 3}
	assert.Equal(t, "A2:C4", rng.String())
	assert.Equal(t, 3, rng.Height())
	assert.Equal(t, 3, rng.Width())
}
