// Package wrangle builds the dashboard datasets: ARPANSA minute-level UV
// archives are reduced to per-state climatology metrics, and the AIHW
// melanoma incidence table is filtered to a five-year state summary. The
// package also joins the two for the scatter chart.
package wrangle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StateRef names the state/territory a capital city stands in for.
type StateRef struct {
	Code string
	Name string
}

// CapitalStates maps each capital to its state. Hobart's feed is published
// under the Kingston monitoring site; see Config.CityFileLabel.
var CapitalStates = map[string]StateRef{
	"Adelaide":  {Code: "SA", Name: "South Australia"},
	"Brisbane":  {Code: "QLD", Name: "Queensland"},
	"Canberra":  {Code: "ACT", Name: "Australian Capital Territory"},
	"Darwin":    {Code: "NT", Name: "Northern Territory"},
	"Hobart":    {Code: "TAS", Name: "Tasmania"},
	"Melbourne": {Code: "VIC", Name: "Victoria"},
	"Perth":     {Code: "WA", Name: "Western Australia"},
	"Sydney":    {Code: "NSW", Name: "New South Wales"},
}

// StateCodeByName maps full state names (as the AIHW table spells them) to codes.
var StateCodeByName = map[string]string{
	"New South Wales":              "NSW",
	"Victoria":                     "VIC",
	"Queensland":                   "QLD",
	"South Australia":              "SA",
	"Western Australia":            "WA",
	"Tasmania":                     "TAS",
	"Northern Territory":           "NT",
	"Australian Capital Territory": "ACT",
}

// Config is the wrangle pipeline configuration.
type Config struct {
	// Years of UV archives to aggregate into the climatology.
	Years []int `yaml:"years"`
	// OutDir receives the four dataset CSVs.
	OutDir string `yaml:"out_dir"`
	// RateStandard selects the AIHW age-standardised rate column: "2001" or "2025".
	RateStandard string `yaml:"rate_standard"`
	// MelanomaCSV is the local CSV export of AIHW Book 7, Table S7.1.
	MelanomaCSV string `yaml:"melanoma_csv"`
	// Packages maps capital city to its CKAN package slug on data.gov.au.
	Packages map[string]string `yaml:"packages"`
	// CKANBaseURL points at the CKAN package_show endpoint.
	CKANBaseURL string `yaml:"ckan_base_url"`
}

// DefaultConfig returns the configuration the published datasets were built with.
func DefaultConfig() *Config {
	return &Config{
		Years:        []int{2022, 2023, 2024},
		OutDir:       "data",
		RateStandard: "2001",
		MelanomaCSV:  "data/aihw_book7_s7_1.csv",
		CKANBaseURL:  "https://data.gov.au/data/api/3/action/package_show?id=",
		Packages: map[string]string{
			"Adelaide":  "ultraviolet-radiation-index-adelaide",
			"Brisbane":  "ultraviolet-radiation-index-brisbane",
			"Canberra":  "ultraviolet-radiation-index-canberra",
			"Darwin":    "ultraviolet-radiation-index-darwin",
			"Hobart":    "ultraviolet-radiation-index-kingston",
			"Melbourne": "ultraviolet-radiation-index-melbourne",
			"Perth":     "ultraviolet-radiation-index-perth",
			"Sydney":    "ultraviolet-radiation-index-sydney",
		},
	}
}

// LoadConfig loads configuration from a YAML file, filling unset fields from
// the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if len(c.Years) == 0 {
		return fmt.Errorf("config: at least one year is required")
	}
	if c.RateStandard != "2001" && c.RateStandard != "2025" {
		return fmt.Errorf("config: rate_standard must be 2001 or 2025, got %q", c.RateStandard)
	}
	if len(c.Packages) == 0 {
		return fmt.Errorf("config: no CKAN packages configured")
	}
	for city := range c.Packages {
		if _, ok := CapitalStates[city]; !ok {
			return fmt.Errorf("config: unknown capital %q", city)
		}
	}
	return nil
}

// CityFileLabel returns the city name as it appears in the ARPANSA resource
// file names. Hobart's monitor is at Kingston.
func CityFileLabel(city string) string {
	if city == "Hobart" {
		return "Kingston"
	}
	return city
}
