package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"fairway/models"
	"fairway/services/geocode"
	"fairway/utils"

	"go.uber.org/zap"
)

// DefaultRadiusMiles applies to city searches that omit an explicit radius.
const DefaultRadiusMiles = 25

// InvalidInput sentinels for location resolution.
var (
	ErrNoLocation      = errors.New("at least one of city, state or country is required")
	ErrStateAndCountry = errors.New("state and country are mutually exclusive; use state for USA courses and country for international ones")
)

// Plan kinds.
const (
	PlanRadius = "radius"
	PlanExact  = "exact"
)

// Degradation reasons attached when a radius search falls back to exact
// matching.
const (
	DegradedGeocoderUnavailable = "geocoder_unavailable"
	DegradedLocationNotGeocoded = "location_not_geocoded"
)

// LocationPlan is the resolved location strategy: either a geocoded radius
// search or an exact-match predicate. Degraded records why a requested
// radius search fell back to exact matching.
type LocationPlan struct {
	Kind        string
	City        string
	State       string // uppercased
	Country     string
	CenterLat   float64
	CenterLon   float64
	RadiusMiles float64
	Degraded    string
}

// LocationResolver turns request location fields into a LocationPlan,
// memoizing geocode results through an injectable cache.
type LocationResolver struct {
	Geocoder geocode.Geocoder
	Cache    geocode.Cache
}

func NewLocationResolver(g geocode.Geocoder, cache geocode.Cache) *LocationResolver {
	if cache == nil {
		cache = geocode.NewMemoryCache()
	}
	return &LocationResolver{Geocoder: g, Cache: cache}
}

// Resolve validates the location fields and picks the search strategy.
// Geocoding problems are never fatal: the plan degrades to exact matching
// with the reason recorded.
func (r *LocationResolver) Resolve(ctx context.Context, criteria models.SearchCriteria) (LocationPlan, error) {
	city := strings.TrimSpace(criteria.City)
	state := strings.ToUpper(strings.TrimSpace(criteria.State))
	country := strings.TrimSpace(criteria.Country)

	if city == "" && state == "" && country == "" {
		return LocationPlan{}, ErrNoLocation
	}
	if state != "" && country != "" {
		return LocationPlan{}, ErrStateAndCountry
	}

	plan := LocationPlan{Kind: PlanExact, City: city, State: state, Country: country}

	// Radius search needs a city to anchor the geocode query. State or
	// country alone never defaults a radius.
	if city == "" {
		return plan, nil
	}
	radius := criteria.RadiusMiles
	if radius <= 0 {
		radius = DefaultRadiusMiles
	}

	query := locationQuery(city, state, country)
	point, degraded := r.geocodeCached(ctx, query)
	if point == nil {
		plan.Degraded = degraded
		return plan, nil
	}

	return LocationPlan{
		Kind:        PlanRadius,
		City:        city,
		State:       state,
		Country:     country,
		CenterLat:   point.Lat,
		CenterLon:   point.Lon,
		RadiusMiles: radius,
	}, nil
}

// geocodeCached consults the cache first and memoizes both hits and
// failures, so an unresolvable query is only sent to the collaborator once.
func (r *LocationResolver) geocodeCached(ctx context.Context, query string) (*geocode.Point, string) {
	key := strings.ToLower(query)
	if point, ok := r.Cache.Get(key); ok {
		if point == nil {
			return nil, DegradedLocationNotGeocoded
		}
		return point, ""
	}

	lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	point, err := r.Geocoder.Geocode(lookupCtx, query)
	if err != nil {
		utils.GetLogger().Warn("geocode lookup failed, falling back to exact match",
			zap.String("query", query), zap.Error(err))
		r.Cache.Set(key, nil)
		return nil, DegradedGeocoderUnavailable
	}
	r.Cache.Set(key, point)
	if point == nil {
		return nil, DegradedLocationNotGeocoded
	}
	return point, ""
}

// locationQuery builds the normalized geocode query string. State implies a
// USA search; country covers international ones.
func locationQuery(city, state, country string) string {
	switch {
	case city != "" && state != "":
		return city + ", " + state + ", USA"
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	case state != "":
		return state + ", USA"
	default:
		return country
	}
}
