// file: geocoder_client.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// GeocoderClient talks to a Nominatim-compatible geocoding service. Callers
// are expected to degrade to their own fallbacks on any error; the client
// never retries.
type GeocoderClient struct {
	baseURL string
	http    *http.Client
}

func NewGeocoderClient(baseURL string) *GeocoderClient {
	return &GeocoderClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ErrNoResults — the query geocoded to nothing.
var ErrNoResults = errors.New("no geocoding results")

// GeoPlace is the slice of the Nominatim response we care about.
type GeoPlace struct {
	Lat     string     `json:"lat"`
	Lon     string     `json:"lon"`
	Address GeoAddress `json:"address"`
}

type GeoAddress struct {
	State         string `json:"state"`
	Region        string `json:"region"`
	StateDistrict string `json:"state_district"`
	County        string `json:"county"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
}

// StateName prefers the state field, then region.
func (a GeoAddress) StateName() string {
	if a.State != "" {
		return a.State
	}
	return a.Region
}

// CityName walks city, town, village, county in that preference order.
func (a GeoAddress) CityName() string {
	for _, v := range []string{a.City, a.Town, a.Village, a.County} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Latitude parses the textual lat field.
func (p *GeoPlace) Latitude() (float64, error) {
	return strconv.ParseFloat(p.Lat, 64)
}

// Search forward-geocodes a free-text place name. The first (best) result is
// returned; an empty result set is ErrNoResults.
func (c *GeocoderClient) Search(ctx context.Context, query string) (*GeoPlace, error) {
	u := fmt.Sprintf("%s/search?format=json&q=%s&addressdetails=1&limit=1",
		c.baseURL, url.QueryEscape(query))

	var places []GeoPlace
	if err := c.get(ctx, u, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrNoResults
	}
	return &places[0], nil
}

// Reverse resolves a coordinate to an address.
func (c *GeocoderClient) Reverse(ctx context.Context, lat, lng float64) (*GeoPlace, error) {
	u := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&addressdetails=1",
		c.baseURL, lat, lng)

	var place GeoPlace
	if err := c.get(ctx, u, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (c *GeocoderClient) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "kisanmitra/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocoder call failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("geocoder non-2xx: %s, body: %s", resp.Status, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode geocoder resp: %w", err)
	}
	return nil
}
