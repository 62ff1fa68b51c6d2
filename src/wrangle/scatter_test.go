package wrangle

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestJoinScatterInnerJoin(t *testing.T) {
	uv := []UVStateMetric{
		{StateCode: "QLD", StateName: "Queensland", AnnualMeanUVI: 8.0},
		{StateCode: "NSW", StateName: "New South Wales", AnnualMeanUVI: 6.7},
		{StateCode: "WA", StateName: "Western Australia", AnnualMeanUVI: 7.1}, // no melanoma row
	}
	mel := []MelanomaStateMean{
		{StateCode: "NSW", StateName: "New South Wales", ASRMean: 57.4, CountSum: 25075},
		{StateCode: "QLD", StateName: "Queensland", ASRMean: 72.7, CountSum: 20866},
		{StateCode: "VIC", StateName: "Victoria", ASRMean: 43.6, CountSum: 14555}, // no uv row
	}
	rows := JoinScatter(uv, mel)
	if len(rows) != 2 {
		t.Fatalf("expected 2 joined rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].StateCode != "NSW" || rows[1].StateCode != "QLD" {
		t.Fatalf("expected NSW,QLD sorted, got %+v", rows)
	}
	if rows[1].AnnualMeanUVI != 8.0 || rows[1].ASRMean != 72.7 || rows[1].CountSum != 20866 {
		t.Fatalf("QLD join mismatch: %+v", rows[1])
	}
}

func TestWriteUVStateMetricCSVSortedByAnnualMean(t *testing.T) {
	p := filepath.Join(t.TempDir(), "uv.csv")
	err := WriteUVStateMetricCSV(p, []UVStateMetric{
		{StateCode: "TAS", StateName: "Tasmania", Capital: "Hobart", AnnualMeanUVI: 4.9, PeakMonth: 1, PeakUVI: 9.6},
		{StateCode: "NT", StateName: "Northern Territory", Capital: "Darwin", AnnualMeanUVI: 10.3, PeakMonth: 10, PeakUVI: 12.9},
	})
	if err != nil {
		t.Fatalf("WriteUVStateMetricCSV: %v", err)
	}
	f, err := os.Open(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "state_code" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "NT" || records[2][0] != "TAS" {
		t.Fatalf("rows not sorted by descending annual mean: %v", records)
	}
	if records[1][3] != "10.30" || records[1][4] != "10" {
		t.Fatalf("unexpected NT row: %v", records[1])
	}
}

func TestWriteMonthlyUVCSVSortsByCityYearMonth(t *testing.T) {
	p := filepath.Join(t.TempDir(), "monthly.csv")
	err := WriteMonthlyUVCSV(p, []MonthlyUVRow{
		{City: "Sydney", Year: 2023, Month: 1, Mean: 11.5},
		{City: "Sydney", Year: 2022, Month: 7, Mean: 3.1},
		{City: "Darwin", Year: 2022, Month: 10, Mean: 12.9},
		{City: "Sydney", Year: 2022, Month: 1, Mean: 11.7},
	})
	if err != nil {
		t.Fatalf("WriteMonthlyUVCSV: %v", err)
	}
	f, _ := os.Open(p)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if records[0][0] != "city" || records[0][3] != "mean_daily_max_uvi" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Darwin" {
		t.Fatalf("expected Darwin first: %v", records)
	}
	if records[2][1] != "2022" || records[2][2] != "1" || records[2][3] != "11.70" {
		t.Fatalf("unexpected first Sydney row: %v", records[2])
	}
	if records[4][1] != "2023" {
		t.Fatalf("year ordering broken: %v", records)
	}
}

func TestWriteMelanomaYearlyCSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "yearly.csv")
	err := WriteMelanomaYearlyCSV(p, []MelanomaYearly{
		{StateCode: "QLD", StateName: "Queensland", Year: 2017, ASR: 71.0, Count: 4100},
		{StateCode: "QLD", StateName: "Queensland", Year: 2018, ASR: 74.4, Count: 4100},
	})
	if err != nil {
		t.Fatalf("WriteMelanomaYearlyCSV: %v", err)
	}
	f, _ := os.Open(p)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if records[0][2] != "year" || records[0][3] != "asr_per_100k" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][2] != "2017" || records[1][3] != "71.0" || records[1][4] != "4100" {
		t.Fatalf("unexpected 2017 row: %v", records[1])
	}
}

func TestWriteClimatologyCSVSortsByCityMonth(t *testing.T) {
	p := filepath.Join(t.TempDir(), "clim.csv")
	err := WriteClimatologyCSV(p, []ClimatologyRow{
		{City: "Sydney", Month: 2, Mean: 10.9},
		{City: "Darwin", Month: 1, Mean: 11.2},
		{City: "Sydney", Month: 1, Mean: 11.7},
	})
	if err != nil {
		t.Fatalf("WriteClimatologyCSV: %v", err)
	}
	f, _ := os.Open(p)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if records[1][0] != "Darwin" || records[2][0] != "Sydney" || records[2][1] != "1" {
		t.Fatalf("unexpected ordering: %v", records)
	}
}
