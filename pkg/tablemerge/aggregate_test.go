package tablemerge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCollapsesDuplicates(t *testing.T) {
	entries := Aggregate(Decode([][]string{
		{"Name", "Value"},
		{"Widget", "5"},
		{"Widget (used)", "7"},
	}))

	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Name: "Widget", Count: 2, Value: 12}, entries[0])
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	entries := Aggregate(Decode([][]string{
		{"Name", "Value"},
		{"gadget (old) ", "1"},
		{"Widget", "2"},
		{"GADGET", "3"},
		{"Sprocket", "4"},
		{"widget   ", "5"},
	}))

	assert.Equal(t, []Entry{
		{Name: "gadget (old) ", Count: 2, Value: 4},
		{Name: "Widget", Count: 2, Value: 7},
		{Name: "Sprocket", Count: 1, Value: 4},
	}, entries)
}

func TestAggregateNaNPoisonsGroup(t *testing.T) {
	entries := Aggregate(Decode([][]string{
		{"Name", "Value"},
		{"Widget", "abc"},
		{"Widget", "5"},
		{"Gadget", "2"},
	}))

	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Count)
	assert.True(t, entries[0].Value.IsNaN())
	assert.Equal(t, Amount(2), entries[1].Value)
}

func TestAggregateMissingValue(t *testing.T) {
	entries := Aggregate([]Record{
		{"Name": "Widget"},
		{"Name": "Widget", "Value": "4"},
	})

	require.Len(t, entries, 1)
	assert.True(t, entries[0].Value.IsNaN())
}

func TestAggregateMissingName(t *testing.T) {
	entries := Aggregate([]Record{
		{"Value": "1"},
		{"Name": "", "Value": "2"},
		{"Name": "(blank)", "Value": "3"},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Name: "", Count: 3, Value: 6}, entries[0])
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestAggregateWithColumns(t *testing.T) {
	entries := Aggregate(Decode([][]string{
		{"Product", "Qty"},
		{"Widget", "1"},
		{"widget", "2"},
	}), WithColumns("Product", "Qty"))

	assert.Equal(t, []Entry{{Name: "Widget", Count: 2, Value: 3}}, entries)
}

func TestAggregateExactIgnoresNearMatches(t *testing.T) {
	entries := Aggregate(Decode([][]string{
		{"Name", "Value"},
		{"Widget", "1"},
		{"Widgets", "2"},
	}))

	assert.Len(t, entries, 2)
}

func TestAggregateWithMaxDistance(t *testing.T) {
	entries := Aggregate(Decode([][]string{
		{"Name", "Value"},
		{"Widget", "1"},
		{"Gadget", "10"},
		{"Widgets", "2"},
		{"Widget (XL)", "3"},
		{"Sprocket", "4"},
	}), WithMaxDistance(1))

	assert.Equal(t, []Entry{
		{Name: "Widget", Count: 3, Value: 6},
		{Name: "Gadget", Count: 1, Value: 10},
		{Name: "Sprocket", Count: 1, Value: 4},
	}, entries)
}

func TestEntryCells(t *testing.T) {
	assert.Equal(t, []any{"Widget", 2, int64(12)}, Entry{Name: "Widget", Count: 2, Value: 12}.Cells())
	assert.Equal(t, []any{"Bad", 1, NaNText}, Entry{Name: "Bad", Count: 1, Value: NaN()}.Cells())
}
