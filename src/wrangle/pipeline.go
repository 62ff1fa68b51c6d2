package wrangle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Pipeline runs the full dataset build: UV archives per capital, climatology
// and state metrics, the melanoma summary, and the scatter join.
type Pipeline struct {
	Config *Config
	CKAN   *CKANClient
}

// NewPipeline wires a pipeline from configuration.
func NewPipeline(cfg *Config) *Pipeline {
	return &Pipeline{Config: cfg, CKAN: NewCKANClient(cfg.CKANBaseURL)}
}

// Run executes the pipeline and writes the six dataset CSVs into OutDir:
// the per-year monthly UV table, the UV climatology, the per-state UV
// metrics, the yearly and 5-year-mean melanoma tables, and the scatter join.
// A capital whose archives cannot be fetched is logged and skipped; the
// pipeline fails only when no capital produced data or an output cannot be
// written. The melanoma stage is skipped with a warning when the source CSV
// is absent, matching how the datasets were originally produced.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := os.MkdirAll(p.Config.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	var metrics []UVStateMetric
	var climRows []ClimatologyRow
	var monthlyRows []MonthlyUVRow
	cities := make([]string, 0, len(p.Config.Packages))
	for city := range p.Config.Packages {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	for _, city := range cities {
		monthly, err := p.cityMonthly(ctx, city, p.Config.Packages[city])
		if err != nil {
			Warnf("no UV data for %s: %v", city, err)
			continue
		}
		clim := Climatology(monthly)
		metric, err := StateMetric(city, clim)
		if err != nil {
			Warnf("state metric for %s: %v", city, err)
			continue
		}
		metrics = append(metrics, metric)
		for _, m := range monthly {
			monthlyRows = append(monthlyRows, MonthlyUVRow{City: city, Year: m.Year, Month: m.Month, Mean: m.MeanDailyMax})
		}
		for _, pt := range clim {
			climRows = append(climRows, ClimatologyRow{City: city, Month: pt.Month, Mean: pt.MeanDailyMax})
		}
		Infof("%s: annual mean %.2f, peak month %d (%.2f)", city, metric.AnnualMeanUVI, metric.PeakMonth, metric.PeakUVI)
	}
	if len(metrics) == 0 {
		return fmt.Errorf("no UV data downloaded — check years and network access")
	}

	monthlyPath := filepath.Join(p.Config.OutDir, "uv_monthly_by_year.csv")
	if err := WriteMonthlyUVCSV(monthlyPath, monthlyRows); err != nil {
		return err
	}
	uvPath := filepath.Join(p.Config.OutDir, "uv_state_metric.csv")
	if err := WriteUVStateMetricCSV(uvPath, metrics); err != nil {
		return err
	}
	climPath := filepath.Join(p.Config.OutDir, "uv_climatology_selected_years.csv")
	if err := WriteClimatologyCSV(climPath, climRows); err != nil {
		return err
	}
	Infof("UV datasets written: %s, %s, %s", monthlyPath, climPath, uvPath)

	if _, err := os.Stat(p.Config.MelanomaCSV); err != nil {
		Warnf("skipping melanoma stage: %s not found", p.Config.MelanomaCSV)
		return nil
	}
	f, err := os.Open(p.Config.MelanomaCSV)
	if err != nil {
		return fmt.Errorf("open melanoma csv: %w", err)
	}
	defer f.Close()
	yearly, means, err := ReadMelanomaRates(f, p.Config.RateStandard)
	if err != nil {
		return err
	}
	yearlyPath := filepath.Join(p.Config.OutDir, "melanoma_rates_state_2017_2021.csv")
	if err := WriteMelanomaYearlyCSV(yearlyPath, yearly); err != nil {
		return err
	}
	melPath := filepath.Join(p.Config.OutDir, "melanoma_rates_state_5yr_mean.csv")
	if err := WriteMelanomaMeanCSV(melPath, means); err != nil {
		return err
	}
	scatterPath := filepath.Join(p.Config.OutDir, "uv_melanoma_scatter.csv")
	if err := WriteScatterCSV(scatterPath, JoinScatter(metrics, means)); err != nil {
		return err
	}
	Infof("melanoma datasets written: %s, %s, %s", yearlyPath, melPath, scatterPath)
	return nil
}

// cityMonthly downloads one capital's UV archives and reduces them to the
// per-year monthly series.
func (p *Pipeline) cityMonthly(ctx context.Context, city, packageID string) ([]MonthlyUV, error) {
	label := CityFileLabel(city)
	resources, err := p.CKAN.ListYearResources(ctx, packageID, label, p.Config.Years)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, fmt.Errorf("no resources found for years %v", p.Config.Years)
	}
	var monthly []MonthlyUV
	for _, res := range resources {
		Debugf("downloading %s", res.Name)
		body, err := p.CKAN.FetchCSV(ctx, res.URL)
		if err != nil {
			Warnf("%s: %v", res.Name, err)
			continue
		}
		obs, err := ParseUVCSV(body)
		if err != nil {
			Warnf("%s: %v", res.Name, err)
			continue
		}
		monthly = append(monthly, MonthlyMeanOfDailyMax(obs)...)
	}
	if len(monthly) == 0 {
		return nil, fmt.Errorf("no usable archives")
	}
	return monthly, nil
}
