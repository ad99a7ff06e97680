package workbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeCSV writes the formatted cell values of the sheet. Merged cells carry
// their value in the top-left cell only.
func (d *Document) writeCSV(w io.Writer) (int64, error) {
	rows, err := d.file.GetRows(d.sheet)
	if err != nil {
		return 0, fmt.Errorf("get rows: %w", err)
	}

	cw := &countingWriter{w: w}
	out := csv.NewWriter(cw)
	if err := out.WriteAll(rows); err != nil {
		return cw.n, fmt.Errorf("write csv: %w", err)
	}
	return cw.n, nil
}

func (d *Document) saveCSV(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = d.writeCSV(out)
	return err
}
