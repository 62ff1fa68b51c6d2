package regiondata

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown on the state card when nothing is selected.
const Placeholder = "—"

// RegionUVRecord summarizes the UV climatology for one state/territory,
// derived from the monthly mean of daily-max UVI at its capital.
type RegionUVRecord struct {
	DisplayName     string
	AnnualMeanIndex float64
	PeakMonth       int // 1..12
	PeakMonthIndex  float64
}

// RegionMelanomaRecord holds the 2017-2021 melanoma incidence summary
// for one state/territory (AIHW Book 7, persons, 2001 rate standard).
type RegionMelanomaRecord struct {
	AgeStandardizedRate float64 // per 100k
	TotalCases          int
}

// UVByCode maps state code to its UV summary.
var UVByCode = map[string]RegionUVRecord{
	"ACT": {DisplayName: "Australian Capital Territory", AnnualMeanIndex: 6.3, PeakMonth: 1, PeakMonthIndex: 11.4},
	"NSW": {DisplayName: "New South Wales", AnnualMeanIndex: 6.7, PeakMonth: 1, PeakMonthIndex: 11.7},
	"NT":  {DisplayName: "Northern Territory", AnnualMeanIndex: 10.3, PeakMonth: 10, PeakMonthIndex: 12.9},
	"QLD": {DisplayName: "Queensland", AnnualMeanIndex: 8.0, PeakMonth: 1, PeakMonthIndex: 12.4},
	"SA":  {DisplayName: "South Australia", AnnualMeanIndex: 6.5, PeakMonth: 1, PeakMonthIndex: 11.6},
	"TAS": {DisplayName: "Tasmania", AnnualMeanIndex: 4.9, PeakMonth: 1, PeakMonthIndex: 9.6},
	"VIC": {DisplayName: "Victoria", AnnualMeanIndex: 5.8, PeakMonth: 1, PeakMonthIndex: 10.9},
	"WA":  {DisplayName: "Western Australia", AnnualMeanIndex: 7.1, PeakMonth: 1, PeakMonthIndex: 12.0},
}

// MelanomaByCode maps state code to its melanoma incidence summary.
// Keys must match UVByCode exactly; regiondata_test enforces this.
var MelanomaByCode = map[string]RegionMelanomaRecord{
	"ACT": {AgeStandardizedRate: 45.1, TotalCases: 991},
	"NSW": {AgeStandardizedRate: 57.4, TotalCases: 25075},
	"NT":  {AgeStandardizedRate: 35.5, TotalCases: 413},
	"QLD": {AgeStandardizedRate: 72.7, TotalCases: 20866},
	"SA":  {AgeStandardizedRate: 47.9, TotalCases: 4570},
	"TAS": {AgeStandardizedRate: 58.3, TotalCases: 1836},
	"VIC": {AgeStandardizedRate: 43.6, TotalCases: 14555},
	"WA":  {AgeStandardizedRate: 56.2, TotalCases: 7903},
}

// Codes returns the known state codes, sorted.
func Codes() []string {
	out := make([]string, 0, len(UVByCode))
	for c := range UVByCode {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

var casesPrinter = message.NewPrinter(language.English)

// FormatIndex renders a UVI or ASR value with one decimal place.
func FormatIndex(v float64) string { return fmt.Sprintf("%.1f", v) }

// FormatCases renders a case count with digit grouping, e.g. 20866 -> "20,866".
func FormatCases(n int) string { return casesPrinter.Sprintf("%d", n) }

// MonthName maps 1..12 to the English month name. Out-of-range input
// returns the placeholder rather than panicking.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return Placeholder
	}
	return time.Month(m).String()
}
