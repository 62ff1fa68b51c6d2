package wrangle

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// End-to-end pipeline run against a stub CKAN server and a local melanoma CSV.
func TestPipelineRunWritesDatasets(t *testing.T) {
	srv := ckanServer(t, strings.Join([]string{
		"datetime,uv",
		"2022-01-10 12:00:00,11.0",
		"2022-01-10 13:00:00,12.0",
		"2022-01-11 12:00:00,10.0",
		"2022-07-10 12:00:00,3.0",
	}, "\n"))

	outDir := t.TempDir()
	melPath := filepath.Join(outDir, "book7.csv")
	mel := melanomaHeader + "\n" +
		"Incidence,Melanoma of the skin,2017,Persons,New South Wales,5000,57.0,55.5\n" +
		"Incidence,Melanoma of the skin,2017,Persons,Victoria,3000,43.0,41.5\n"
	if err := os.WriteFile(melPath, []byte(mel), 0o644); err != nil {
		t.Fatalf("write melanoma csv: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Years = []int{2022, 2023}
	cfg.OutDir = outDir
	cfg.MelanomaCSV = melPath
	cfg.CKANBaseURL = srv.URL + "/api/3/action/package_show?id="
	cfg.Packages = map[string]string{"Sydney": "uv-sydney", "Melbourne": "uv-melbourne"}

	p := NewPipeline(cfg)
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("pipeline run: %v", err)
	}

	for _, name := range []string{
		"uv_monthly_by_year.csv",
		"uv_state_metric.csv",
		"uv_climatology_selected_years.csv",
		"melanoma_rates_state_2017_2021.csv",
		"melanoma_rates_state_5yr_mean.csv",
		"uv_melanoma_scatter.csv",
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}

	monthly := readCSVFile(t, filepath.Join(outDir, "uv_monthly_by_year.csv"))
	// Melbourne matched one resource, Sydney two (both serving the same body
	// with January and July 2022 data), so 2 + 4 data rows sorted by city.
	if len(monthly) != 7 {
		t.Fatalf("expected 6 monthly rows, got %d: %v", len(monthly)-1, monthly)
	}
	if got := monthly[1]; got[0] != "Melbourne" || got[1] != "2022" || got[2] != "1" || got[3] != "11.00" {
		t.Fatalf("unexpected first monthly row: %v", got)
	}

	yearly := readCSVFile(t, filepath.Join(outDir, "melanoma_rates_state_2017_2021.csv"))
	if len(yearly) != 3 {
		t.Fatalf("expected 2 yearly melanoma rows, got %d: %v", len(yearly)-1, yearly)
	}
	if got := yearly[1]; got[0] != "NSW" || got[2] != "2017" || got[3] != "57.0" || got[4] != "5000" {
		t.Fatalf("unexpected NSW yearly row: %v", got)
	}
	if yearly[2][0] != "VIC" {
		t.Fatalf("unexpected yearly ordering: %v", yearly)
	}

	records := readCSVFile(t, filepath.Join(outDir, "uv_melanoma_scatter.csv"))
	// header + NSW + VIC (the stub serves Sydney/Melbourne resources)
	if len(records) != 3 {
		t.Fatalf("expected 2 scatter rows, got %d: %v", len(records)-1, records)
	}
	if records[1][0] != "NSW" || records[2][0] != "VIC" {
		t.Fatalf("unexpected scatter codes: %v", records)
	}
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestPipelineSkipsMelanomaWhenSourceMissing(t *testing.T) {
	srv := ckanServer(t, "datetime,uv\n2022-01-10 12:00:00,11.0\n")
	outDir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Years = []int{2022}
	cfg.OutDir = outDir
	cfg.MelanomaCSV = filepath.Join(outDir, "absent.csv")
	cfg.CKANBaseURL = srv.URL + "/api/3/action/package_show?id="
	cfg.Packages = map[string]string{"Sydney": "uv-sydney"}

	if err := NewPipeline(cfg).Run(context.Background()); err != nil {
		t.Fatalf("pipeline run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "uv_state_metric.csv")); err != nil {
		t.Fatalf("expected UV dataset despite missing melanoma source: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "uv_melanoma_scatter.csv")); err == nil {
		t.Fatalf("scatter dataset should not exist without melanoma data")
	}
	if _, err := os.Stat(filepath.Join(outDir, "melanoma_rates_state_2017_2021.csv")); err == nil {
		t.Fatalf("yearly melanoma dataset should not exist without melanoma data")
	}
}

func TestPipelineFailsWithNoData(t *testing.T) {
	srv := ckanServer(t, "datetime,uv\n2022-01-10 12:00:00,11.0\n")
	cfg := DefaultConfig()
	cfg.Years = []int{1999} // no matching resources
	cfg.OutDir = t.TempDir()
	cfg.CKANBaseURL = srv.URL + "/api/3/action/package_show?id="
	cfg.Packages = map[string]string{"Sydney": "uv-sydney"}
	if err := NewPipeline(cfg).Run(context.Background()); err == nil {
		t.Fatalf("expected failure when no city produced data")
	}
}
