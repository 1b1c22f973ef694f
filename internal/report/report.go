package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gostonefire/hashmetrics/internal/bench"
	"github.com/pkg/errors"
)

// CSVHeader - Columns of every CSV report, in order
var CSVHeader = []string{
	"Dataset",
	"Method",
	"LoadFactor",
	"AvgCluster",
	"MaxCluster",
	"InsertTime(us)",
	"FindTime(us)",
	"EraseTime(us)",
	"Memory(B)",
}

// PrintResult - Renders a result as an indented text block under a title line
func PrintResult(w io.Writer, title string, result bench.Result) error {
	_, err := fmt.Fprintf(w,
		"%s\n"+
			"  Load factor       : %.4f\n"+
			"  Avg cluster length: %.4f\n"+
			"  Max cluster length: %d\n"+
			"  Insert time (us)  : %.3f\n"+
			"  Find time (us)    : %.3f\n"+
			"  Erase time (us)   : %.3f\n"+
			"  Memory usage (B)  : %d\n",
		title,
		result.Metrics.LoadFactor,
		result.Metrics.AverageClusterLength,
		result.Metrics.MaxClusterLength,
		bench.Microseconds(result.InsertTime),
		bench.Microseconds(result.FindTime),
		bench.Microseconds(result.EraseTime),
		result.Metrics.MemoryUsage,
	)
	if err != nil {
		return errors.Wrap(err, "Fprintf")
	}

	return nil
}

// CSVWriter - Appends one row per result to a delimited report
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter - Returns a CSVWriter writing to w, the header row is written right away
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	c := &CSVWriter{w: csv.NewWriter(w)}
	if err := c.w.Write(CSVHeader); err != nil {
		return nil, errors.Wrap(err, "write header")
	}

	return c, nil
}

// Write - Appends the row of a result
func (C *CSVWriter) Write(result bench.Result) error {
	err := C.w.Write(Row(result))
	if err != nil {
		return errors.Wrap(err, "write row")
	}

	return nil
}

// Flush - Writes any buffered rows to the underlying writer
func (C *CSVWriter) Flush() error {
	C.w.Flush()

	return errors.Wrap(C.w.Error(), "flush")
}

// Row - Formats a result as the fields of one CSV row
func Row(result bench.Result) []string {
	return []string{
		result.Dataset,
		result.Method,
		strconv.FormatFloat(result.Metrics.LoadFactor, 'f', 6, 64),
		strconv.FormatFloat(result.Metrics.AverageClusterLength, 'f', 6, 64),
		strconv.FormatInt(result.Metrics.MaxClusterLength, 10),
		strconv.FormatFloat(bench.Microseconds(result.InsertTime), 'f', 3, 64),
		strconv.FormatFloat(bench.Microseconds(result.FindTime), 'f', 3, 64),
		strconv.FormatFloat(bench.Microseconds(result.EraseTime), 'f', 3, 64),
		strconv.FormatInt(result.Metrics.MemoryUsage, 10),
	}
}
