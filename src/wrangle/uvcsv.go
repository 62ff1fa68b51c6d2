package wrangle

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UVObservation is one usable reading from an ARPANSA minute-level CSV.
type UVObservation struct {
	Date time.Time // day precision; clock time is dropped after parsing
	UV   float64
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeHeader(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

// Header candidates observed across years of ARPANSA exports.
var uvColumnCandidates = []string{"uvindex", "uv_index", "uv", "uvi", "uv1min", "uvindex1min", "uvindexminute"}

var timeColumnCandidates = []string{
	"utctime", "utc", "timestamp", "datetime", "datetimeutc", "date_time", "datetimelocal",
	"date", "time", "datetimeaest", "datetimeaedt", "datetimeacst", "datetimeawst",
	"datetimeawdt", "datetimeacdt",
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

func parseObservationTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseUVCSV parses an ARPANSA UV CSV with varying headers. It locates the UV
// and timestamp columns by normalized-name probing, drops rows that fail to
// parse, and keeps only plausible UVI values (0..25).
func ParseUVCSV(content []byte) ([]UVObservation, error) {
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse uv csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("parse uv csv: no data rows")
	}
	header := records[0]
	norm := make([]string, len(header))
	byNorm := map[string]int{}
	for i, h := range header {
		norm[i] = normalizeHeader(h)
		if _, exists := byNorm[norm[i]]; !exists {
			byNorm[norm[i]] = i
		}
	}

	uvCol := -1
	for _, key := range uvColumnCandidates {
		if ix, ok := byNorm[key]; ok {
			uvCol = ix
			break
		}
	}
	if uvCol < 0 {
		for i, n := range norm {
			if strings.HasPrefix(n, "uv") {
				uvCol = i
				break
			}
		}
	}
	timeCol := -1
	for _, key := range timeColumnCandidates {
		if ix, ok := byNorm[key]; ok {
			timeCol = ix
			break
		}
	}
	if timeCol < 0 {
		for i, n := range norm {
			if strings.Contains(n, "time") || strings.Contains(n, "date") {
				timeCol = i
				break
			}
		}
	}
	if uvCol < 0 || timeCol < 0 {
		return nil, fmt.Errorf("parse uv csv: could not locate UV or time columns in %v", header)
	}

	var out []UVObservation
	for _, row := range records[1:] {
		if uvCol >= len(row) || timeCol >= len(row) {
			continue
		}
		ts, ok := parseObservationTime(row[timeCol])
		if !ok {
			continue
		}
		uv, err := strconv.ParseFloat(strings.TrimSpace(row[uvCol]), 64)
		if err != nil {
			continue
		}
		if uv < 0 || uv > 25 {
			continue
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		out = append(out, UVObservation{Date: day, UV: uv})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse uv csv: no usable observations")
	}
	return out, nil
}
