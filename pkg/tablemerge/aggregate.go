package tablemerge

// Entry is the running total for one group of names within a source.
type Entry struct {
	// Name is the literal text of the first record seen in the group.
	Name string `json:"name"`
	// Count is the number of records folded into the group.
	Count int `json:"count"`
	// Value is the sum of the group's parsed values.
	Value Amount `json:"value"`
}

// Cells flattens the entry into a destination row: Name, Count, Value.
func (e Entry) Cells() []any {
	return []any{e.Name, e.Count, e.Value.CellValue()}
}

type aggregateConfig struct {
	nameColumn  string
	valueColumn string
	maxDistance int
}

// AggregateOption adjusts how records are grouped.
type AggregateOption func(*aggregateConfig)

// WithColumns sets the columns read for the name and the value.
func WithColumns(name, value string) AggregateOption {
	return func(c *aggregateConfig) {
		if name != "" {
			c.nameColumn = name
		}
		if value != "" {
			c.valueColumn = value
		}
	}
}

// WithMaxDistance also groups names whose keys are within n edits of an
// existing group. Zero keeps exact key matching.
func WithMaxDistance(n int) AggregateOption {
	return func(c *aggregateConfig) {
		c.maxDistance = max(n, 0)
	}
}

// Aggregate folds records into entries keyed by Normalize(Name), in
// first-seen order.
func Aggregate(records []Record, opts ...AggregateOption) []Entry {
	cfg := aggregateConfig{nameColumn: ColumnName, valueColumn: ColumnValue}
	for _, opt := range opts {
		opt(&cfg)
	}

	var entries []Entry
	index := make(map[string]int)
	for _, record := range records {
		// A missing name groups with the empty name; a missing value parses to NaN.
		name, _ := record.Get(cfg.nameColumn)
		value, _ := record.Get(cfg.valueColumn)
		key := Normalize(name)

		i, ok := index[key]
		if !ok && cfg.maxDistance > 0 {
			i, ok = nearest(entries, key, cfg.maxDistance)
		}

		if ok {
			entries[i].Count++
			entries[i].Value = entries[i].Value.Add(ParseInt(value))
			continue
		}

		index[key] = len(entries)
		entries = append(entries, Entry{
			Name:  name,
			Count: 1,
			Value: ParseInt(value),
		})
	}

	return entries
}

// nearest scans entries in first-seen order for one whose key is within
// maxDistance edits of key.
func nearest(entries []Entry, key string, maxDistance int) (int, bool) {
	for i, e := range entries {
		if EditDistance(key, Normalize(e.Name)) <= maxDistance {
			return i, true
		}
	}
	return 0, false
}
