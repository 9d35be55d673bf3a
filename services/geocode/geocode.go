package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Point is a geocoded coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text location query to a coordinate pair.
// A (nil, nil) return means the query did not resolve; an unconfigured
// collaborator behaves exactly the same way.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Point, error)
}

// NominatimGeocoder calls a Nominatim-compatible search endpoint.
type NominatimGeocoder struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// NewNominatimGeocoder builds a geocoder with a bounded request timeout.
func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*Point, error) {
	if g.BaseURL == "" {
		// No geocoder configured; treated identically to "not found".
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if g.UserAgent != "" {
		req.Header.Set("User-Agent", g.UserAgent)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var rows []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(rows[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", rows[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(rows[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", rows[0].Lon, err)
	}
	return &Point{Lat: lat, Lon: lon}, nil
}
