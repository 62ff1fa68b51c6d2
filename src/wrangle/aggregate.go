package wrangle

import (
	"fmt"
	"sort"
)

// MonthlyUV is the mean of daily-max UVI for one calendar month.
type MonthlyUV struct {
	Year         int
	Month        int
	MeanDailyMax float64
}

// MonthlyMeanOfDailyMax reduces minute observations to a monthly series:
// minute readings -> daily max -> monthly mean of the daily maxima.
func MonthlyMeanOfDailyMax(obs []UVObservation) []MonthlyUV {
	type dayKey struct{ y, m, d int }
	dailyMax := map[dayKey]float64{}
	for _, o := range obs {
		k := dayKey{o.Date.Year(), int(o.Date.Month()), o.Date.Day()}
		if cur, ok := dailyMax[k]; !ok || o.UV > cur {
			dailyMax[k] = o.UV
		}
	}
	type monthKey struct{ y, m int }
	sums := map[monthKey]float64{}
	counts := map[monthKey]int{}
	for k, v := range dailyMax {
		mk := monthKey{k.y, k.m}
		sums[mk] += v
		counts[mk]++
	}
	out := make([]MonthlyUV, 0, len(sums))
	for mk, sum := range sums {
		out = append(out, MonthlyUV{Year: mk.y, Month: mk.m, MeanDailyMax: sum / float64(counts[mk])})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// ClimatologyPoint is the multi-year average for one calendar month.
type ClimatologyPoint struct {
	Month        int
	MeanDailyMax float64
}

// Climatology averages monthly series across years, yielding up to 12 points.
func Climatology(monthly []MonthlyUV) []ClimatologyPoint {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, m := range monthly {
		sums[m.Month] += m.MeanDailyMax
		counts[m.Month]++
	}
	out := make([]ClimatologyPoint, 0, len(sums))
	for m, sum := range sums {
		out = append(out, ClimatologyPoint{Month: m, MeanDailyMax: sum / float64(counts[m])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// UVStateMetric is one row of the uv_state_metric dataset.
type UVStateMetric struct {
	StateCode     string
	StateName     string
	Capital       string
	AnnualMeanUVI float64
	PeakMonth     int
	PeakUVI       float64
}

// StateMetric folds a capital's climatology into its state summary: annual
// mean plus the peak month and its value.
func StateMetric(capital string, clim []ClimatologyPoint) (UVStateMetric, error) {
	ref, ok := CapitalStates[capital]
	if !ok {
		return UVStateMetric{}, fmt.Errorf("state metric: unknown capital %q", capital)
	}
	if len(clim) == 0 {
		return UVStateMetric{}, fmt.Errorf("state metric: no climatology for %s", capital)
	}
	sum := 0.0
	peak := clim[0]
	for _, p := range clim {
		sum += p.MeanDailyMax
		if p.MeanDailyMax > peak.MeanDailyMax {
			peak = p
		}
	}
	return UVStateMetric{
		StateCode:     ref.Code,
		StateName:     ref.Name,
		Capital:       capital,
		AnnualMeanUVI: sum / float64(len(clim)),
		PeakMonth:     peak.Month,
		PeakUVI:       peak.MeanDailyMax,
	}, nil
}
