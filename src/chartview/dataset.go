package chartview

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// dataset is a column-indexed view over one chart's backing CSV.
type dataset struct {
	cols map[string]int
	rows [][]string
}

func loadDataset(path string) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}
	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	return &dataset{cols: cols, rows: records[1:]}, nil
}

func (d *dataset) len() int { return len(d.rows) }

func (d *dataset) str(row int, field string) string {
	ix, ok := d.cols[field]
	if !ok || row < 0 || row >= len(d.rows) || ix >= len(d.rows[row]) {
		return ""
	}
	return d.rows[row][ix]
}

func (d *dataset) float(row int, field string) (float64, bool) {
	v, err := strconv.ParseFloat(d.str(row, field), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// floatRange scans a numeric column and returns its min and max.
func (d *dataset) floatRange(field string) (min, max float64, ok bool) {
	for i := 0; i < d.len(); i++ {
		v, valid := d.float(i, field)
		if !valid {
			continue
		}
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return min, max, ok
}
