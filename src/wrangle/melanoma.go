package wrangle

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// MelanomaYearly is one filtered row of the AIHW incidence table.
type MelanomaYearly struct {
	StateCode string
	StateName string
	Year      int
	ASR       float64 // per 100k
	Count     int
}

// MelanomaStateMean is the 2017-2021 summary per state.
type MelanomaStateMean struct {
	StateCode string
	StateName string
	ASRMean   float64
	CountSum  int
}

const (
	melanomaFromYear = 2017
	melanomaToYear   = 2021
)

// ReadMelanomaRates filters a CSV export of AIHW Book 7 Table S7.1 down to
// melanoma incidence for persons in 2017-2021, picking the age-standardised
// rate column for the requested standard ("2001" or "2025"). The national
// Australia row is dropped. Returns the yearly rows plus per-state means.
func ReadMelanomaRates(r io.Reader, rateStandard string) ([]MelanomaYearly, []MelanomaStateMean, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read melanoma csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("read melanoma csv: no data rows")
	}
	header := records[0]
	col := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	dataTypeCol := col("Data type")
	siteCol := col("Cancer group/site")
	sexCol := col("Sex")
	yearCol := col("Year")
	stateCol := col("State or Territory")
	countCol := col("Count")
	rateCol := -1
	for i, h := range header {
		if strings.Contains(h, "Age-standardised rate") && strings.Contains(h, rateStandard) {
			rateCol = i
			break
		}
	}
	if dataTypeCol < 0 || siteCol < 0 || sexCol < 0 || yearCol < 0 || stateCol < 0 || countCol < 0 {
		return nil, nil, fmt.Errorf("read melanoma csv: missing expected columns in %v", header)
	}
	if rateCol < 0 {
		return nil, nil, fmt.Errorf("read melanoma csv: no age-standardised rate column for the %s standard", rateStandard)
	}

	var yearly []MelanomaYearly
	for _, row := range records[1:] {
		get := func(ix int) string {
			if ix >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[ix])
		}
		if get(dataTypeCol) != "Incidence" || get(siteCol) != "Melanoma of the skin" || get(sexCol) != "Persons" {
			continue
		}
		year, err := strconv.Atoi(get(yearCol))
		if err != nil || year < melanomaFromYear || year > melanomaToYear {
			continue
		}
		name := get(stateCol)
		if name == "Australia" {
			continue
		}
		code, ok := StateCodeByName[name]
		if !ok {
			Warnf("melanoma: skipping unknown state %q", name)
			continue
		}
		asr, err := strconv.ParseFloat(get(rateCol), 64)
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(strings.ReplaceAll(get(countCol), ",", ""))
		if err != nil {
			continue
		}
		yearly = append(yearly, MelanomaYearly{
			StateCode: code,
			StateName: name,
			Year:      year,
			ASR:       asr,
			Count:     count,
		})
	}
	if len(yearly) == 0 {
		return nil, nil, fmt.Errorf("read melanoma csv: no rows matched the melanoma incidence filter")
	}
	sort.Slice(yearly, func(i, j int) bool {
		if yearly[i].StateCode != yearly[j].StateCode {
			return yearly[i].StateCode < yearly[j].StateCode
		}
		return yearly[i].Year < yearly[j].Year
	})

	type agg struct {
		name  string
		sum   float64
		n     int
		count int
	}
	byCode := map[string]*agg{}
	for _, y := range yearly {
		a, ok := byCode[y.StateCode]
		if !ok {
			a = &agg{name: y.StateName}
			byCode[y.StateCode] = a
		}
		a.sum += y.ASR
		a.n++
		a.count += y.Count
	}
	means := make([]MelanomaStateMean, 0, len(byCode))
	for code, a := range byCode {
		means = append(means, MelanomaStateMean{
			StateCode: code,
			StateName: a.name,
			ASRMean:   a.sum / float64(a.n),
			CountSum:  a.count,
		})
	}
	sort.Slice(means, func(i, j int) bool { return means[i].StateCode < means[j].StateCode })
	return yearly, means, nil
}
