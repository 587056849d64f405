// Package nominatim implements the geocoder port against the Nominatim
// search API. One address in, the best-ranked coordinate out.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// userAgent identifies this service to the API, which rejects anonymous
// clients.
const userAgent = "fastfood-delivery/1.0"

// Geocoder resolves postal addresses through the Nominatim search endpoint.
type Geocoder struct {
	baseURL string
	client  *http.Client
}

// NewGeocoder creates a geocoder for the given API base URL, e.g.
// "https://nominatim.openstreetmap.org".
func NewGeocoder(baseURL string) (*Geocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	return &Geocoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves the address to a coordinate. An address the API cannot
// resolve yields an ObjectNotFoundError; transport failures propagate as-is.
func (g *Geocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if strings.TrimSpace(address) == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/search?%s", g.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var results []searchResult
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return kernel.GeoPoint{}, err
	}
	if len(results) == 0 {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("coordinate", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lon", err)
	}

	return kernel.NewGeoPoint(lat, lon)
}
