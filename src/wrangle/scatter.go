package wrangle

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// ScatterRow joins one state's UV summary with its melanoma summary.
type ScatterRow struct {
	StateCode     string
	StateName     string
	AnnualMeanUVI float64
	ASRMean       float64
	CountSum      int
}

// JoinScatter inner-joins UV state metrics with melanoma means on state code.
func JoinScatter(uv []UVStateMetric, mel []MelanomaStateMean) []ScatterRow {
	melByCode := make(map[string]MelanomaStateMean, len(mel))
	for _, m := range mel {
		melByCode[m.StateCode] = m
	}
	out := make([]ScatterRow, 0, len(uv))
	for _, u := range uv {
		m, ok := melByCode[u.StateCode]
		if !ok {
			continue
		}
		out = append(out, ScatterRow{
			StateCode:     u.StateCode,
			StateName:     u.StateName,
			AnnualMeanUVI: u.AnnualMeanUVI,
			ASRMean:       m.ASRMean,
			CountSum:      m.CountSum,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StateCode < out[j].StateCode })
	return out
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// WriteUVStateMetricCSV writes the uv_state_metric dataset, sorted by
// descending annual mean (the map legend reads top-down).
func WriteUVStateMetricCSV(path string, metrics []UVStateMetric) error {
	sorted := append([]UVStateMetric(nil), metrics...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AnnualMeanUVI > sorted[j].AnnualMeanUVI })
	rows := make([][]string, 0, len(sorted))
	for _, m := range sorted {
		rows = append(rows, []string{
			m.StateCode, m.StateName, m.Capital,
			ftoa(m.AnnualMeanUVI), strconv.Itoa(m.PeakMonth), ftoa(m.PeakUVI),
		})
	}
	return writeCSV(path, []string{"state_code", "state_name", "capital", "annual_mean_uvi", "peak_month", "peak_uvi"}, rows)
}

// MonthlyUVRow is one city-year-month value of the monthly-by-year dataset.
type MonthlyUVRow struct {
	City  string
	Year  int
	Month int
	Mean  float64
}

// WriteMonthlyUVCSV writes the per-year monthly dataset sorted by city,
// year, month.
func WriteMonthlyUVCSV(path string, rows []MonthlyUVRow) error {
	sorted := append([]MonthlyUVRow(nil), rows...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].City != sorted[j].City {
			return sorted[i].City < sorted[j].City
		}
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Month < sorted[j].Month
	})
	out := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, []string{r.City, strconv.Itoa(r.Year), strconv.Itoa(r.Month), ftoa(r.Mean)})
	}
	return writeCSV(path, []string{"city", "year", "month", "mean_daily_max_uvi"}, out)
}

// ClimatologyRow is one city-month value of the seasonality dataset.
type ClimatologyRow struct {
	City  string
	Month int
	Mean  float64
}

// WriteClimatologyCSV writes the seasonality dataset sorted by city, month.
func WriteClimatologyCSV(path string, rows []ClimatologyRow) error {
	sorted := append([]ClimatologyRow(nil), rows...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].City != sorted[j].City {
			return sorted[i].City < sorted[j].City
		}
		return sorted[i].Month < sorted[j].Month
	})
	out := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, []string{r.City, strconv.Itoa(r.Month), ftoa(r.Mean)})
	}
	return writeCSV(path, []string{"city", "month", "mean_daily_max_uvi_clim"}, out)
}

// WriteMelanomaYearlyCSV writes the filtered per-year melanoma rows.
func WriteMelanomaYearlyCSV(path string, yearly []MelanomaYearly) error {
	rows := make([][]string, 0, len(yearly))
	for _, y := range yearly {
		rows = append(rows, []string{
			y.StateCode, y.StateName, strconv.Itoa(y.Year),
			strconv.FormatFloat(y.ASR, 'f', 1, 64), strconv.Itoa(y.Count),
		})
	}
	return writeCSV(path, []string{"state_code", "state_name", "year", "asr_per_100k", "count"}, rows)
}

// WriteMelanomaMeanCSV writes the per-state melanoma summary dataset.
func WriteMelanomaMeanCSV(path string, means []MelanomaStateMean) error {
	rows := make([][]string, 0, len(means))
	for _, m := range means {
		rows = append(rows, []string{
			m.StateCode, m.StateName,
			strconv.FormatFloat(m.ASRMean, 'f', 1, 64), strconv.Itoa(m.CountSum),
		})
	}
	return writeCSV(path, []string{"state_code", "state_name", "asr_2017_2021_mean", "count_sum"}, rows)
}

// WriteScatterCSV writes the joined scatter dataset.
func WriteScatterCSV(path string, rows []ScatterRow) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.StateCode, r.StateName,
			ftoa(r.AnnualMeanUVI), strconv.FormatFloat(r.ASRMean, 'f', 1, 64), strconv.Itoa(r.CountSum),
		})
	}
	return writeCSV(path, []string{"state_code", "state_name", "annual_mean_uvi", "asr_2017_2021_mean", "count_sum"}, out)
}
