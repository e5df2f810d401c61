package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
)

const (
	metersPerKilometer = 1000.0
	milesPerKilometer  = 0.621371
	secondsPerHour     = 3600.0
)

// ORSRouteLookup implements RouteLookup using the OpenRouteService
// directions endpoint. Lookups are cached persistently when a cache is
// configured; cache failures degrade to a direct API call.
//
// The lookup is safe for concurrent use.
type ORSRouteLookup struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	cache   ports.RouteCache
}

func NewORSRouteLookup(apiKey string, cache ports.RouteCache) (*ORSRouteLookup, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSRouteLookup{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
		cache:   cache,
	}, nil
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// Lookup returns road distance in miles and driving duration in hours
// for one leg. Any failure (network, non-success status, malformed
// payload) surfaces as an error for the caller's fallback policy.
func (o *ORSRouteLookup) Lookup(ctx context.Context, origin, destination domain.Point) (_ ports.RouteData, err error) {
	defer obs.Time(ctx, "ors.Lookup")(&err)

	if o.cache != nil {
		data, ok, cerr := o.cache.Get(ctx, origin, destination)
		if cerr != nil {
			log.Printf("leg cache read failed: %v", cerr)
		} else if ok {
			return data, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		// ORS expects [lng, lat] pairs.
		Coordinates: [][]float64{
			{origin.Lng, origin.Lat},
			{destination.Lng, destination.Lat},
		},
	})
	if err != nil {
		return ports.RouteData{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.RouteData{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.RouteData{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return ports.RouteData{}, errors.New("directions response contains no routes")
	}

	summary := dr.Routes[0].Summary
	data := ports.RouteData{
		DistanceMiles: summary.Distance / metersPerKilometer * milesPerKilometer,
		DurationHours: summary.Duration / secondsPerHour,
		Geometry:      dr.Routes[0].Geometry,
	}

	if o.cache != nil {
		if cerr := o.cache.Put(ctx, origin, destination, data); cerr != nil {
			log.Printf("leg cache write failed: %v", cerr)
		}
	}

	return data, nil
}
