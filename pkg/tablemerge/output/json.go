// Package output serializes merge results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/tablemerge-go/pkg/tablemerge/models"
)

// ToJSON serializes a merge report.
func ToJSON(report *models.MergeReport, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// TableToJSON serializes a combined table. NaN values are already text by
// the time they reach a table row.
func TableToJSON(table *models.Table, pretty bool) ([]byte, error) {
	return marshal(table, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
