package xlsx

import (
	"github.com/ukaji3/tablemerge-go/pkg/tablemerge"
	"github.com/ukaji3/tablemerge-go/pkg/tablemerge/models"
	"go.uber.org/zap"
)

// MergeFile merges the tables of the xlsx file at path and saves the result
// to outPath, or back to path when outPath is empty.
func MergeFile(path, outPath string, opts tablemerge.Options, logger *zap.Logger) (*models.MergeReport, error) {
	wb, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	report, err := tablemerge.NewMerger(opts, logger).Merge(wb)
	if err != nil {
		return nil, err
	}
	report.BookName = wb.BookName()

	if outPath == "" {
		err = wb.Save()
	} else {
		err = wb.SaveAs(outPath)
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}
