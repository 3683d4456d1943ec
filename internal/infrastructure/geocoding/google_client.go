package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/service"
	"subleasehub/pkg/logger"
)

type googleGeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewGoogleGeocodingClient(baseURL, apiKey string) service.GeocodingService {
	return &googleGeocodingClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve never surfaces an error into the caller: any failure logs a
// warning and returns no location.
func (c *googleGeocodingClient) Resolve(ctx context.Context, address string) (*entity.GeoPoint, error) {
	uri := c.baseURL + "?address=" + url.QueryEscape(address) + "&key=" + c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		logger.Warn("geocode request build failed: %v", err)
		return nil, nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("geocode lookup failed for %q: %v", address, err)
		return nil, nil
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		logger.Warn("geocode response decode failed: %v", err)
		return nil, nil
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, nil
	}

	loc := decoded.Results[0].Geometry.Location
	return &entity.GeoPoint{Lat: loc.Lat, Lng: loc.Lng}, nil
}
