package wrangle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// CKANClient lists and downloads the ARPANSA UV resources published on
// data.gov.au.
type CKANClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewCKANClient builds a client against the given package_show endpoint.
func NewCKANClient(baseURL string) *CKANClient {
	return &CKANClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// YearResource is one City-YYYY.csv resource inside a CKAN package.
type YearResource struct {
	Year int
	URL  string
	Name string
}

type ckanPackage struct {
	Result struct {
		Resources []struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"resources"`
	} `json:"result"`
}

// ListYearResources queries CKAN and returns the resources matching
// "<cityLabel>-YYYY.csv" for the requested years, sorted by year.
func (c *CKANClient) ListYearResources(ctx context.Context, packageID, cityLabel string, years []int) ([]YearResource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+packageID, nil)
	if err != nil {
		return nil, fmt.Errorf("ckan request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ckan package_show %s: %w", packageID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ckan package_show %s: unexpected status %s", packageID, resp.Status)
	}
	var pkg ckanPackage
	if err := json.NewDecoder(resp.Body).Decode(&pkg); err != nil {
		return nil, fmt.Errorf("ckan package_show %s: decode: %w", packageID, err)
	}

	wanted := map[int]bool{}
	for _, y := range years {
		wanted[y] = true
	}
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(cityLabel) + `-(\d{4})\.csv$`)
	if err != nil {
		return nil, err
	}
	var out []YearResource
	for _, res := range pkg.Result.Resources {
		m := pattern.FindStringSubmatch(res.Name)
		if m == nil || res.URL == "" {
			continue
		}
		y, err := strconv.Atoi(m[1])
		if err != nil || !wanted[y] {
			continue
		}
		out = append(out, YearResource{Year: y, URL: res.URL, Name: res.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// FetchCSV downloads one resource body.
func (c *CKANClient) FetchCSV(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
