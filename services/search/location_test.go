package search

import (
	"context"
	"errors"
	"testing"

	"fairway/models"
	"fairway/services/geocode"
)

// stubGeocoder records lookups and serves canned answers.
type stubGeocoder struct {
	point *geocode.Point
	err   error
	calls int
	last  string
}

func (s *stubGeocoder) Geocode(ctx context.Context, query string) (*geocode.Point, error) {
	s.calls++
	s.last = query
	return s.point, s.err
}

func TestResolveLocationValidation(t *testing.T) {
	resolver := NewLocationResolver(&stubGeocoder{}, nil)

	t.Run("no location fields at all", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), models.SearchCriteria{})
		if !errors.Is(err, ErrNoLocation) {
			t.Errorf("expected ErrNoLocation, got %v", err)
		}
	})

	t.Run("state and country together", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), models.SearchCriteria{State: "CA", Country: "Scotland"})
		if !errors.Is(err, ErrStateAndCountry) {
			t.Errorf("expected ErrStateAndCountry, got %v", err)
		}
	})

	t.Run("state is canonicalized to uppercase", func(t *testing.T) {
		plan, err := resolver.Resolve(context.Background(), models.SearchCriteria{State: "ca"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Kind != PlanExact || plan.State != "CA" {
			t.Errorf("got plan %+v, want exact plan with state CA", plan)
		}
	})
}

func TestResolveLocationRadius(t *testing.T) {
	t.Run("city with radius geocodes to a radius plan", func(t *testing.T) {
		geo := &stubGeocoder{point: &geocode.Point{Lat: 32.7157, Lon: -117.1611}}
		resolver := NewLocationResolver(geo, nil)

		plan, err := resolver.Resolve(context.Background(), models.SearchCriteria{
			City: "San Diego", State: "ca", RadiusMiles: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Kind != PlanRadius {
			t.Fatalf("expected radius plan, got %+v", plan)
		}
		if plan.CenterLat != 32.7157 || plan.CenterLon != -117.1611 || plan.RadiusMiles != 10 {
			t.Errorf("bad radius plan %+v", plan)
		}
		if geo.last != "San Diego, CA, USA" {
			t.Errorf("geocode query %q, want normalized domestic form", geo.last)
		}
	})

	t.Run("international query form", func(t *testing.T) {
		geo := &stubGeocoder{point: &geocode.Point{Lat: 56.34, Lon: -2.8}}
		resolver := NewLocationResolver(geo, nil)

		if _, err := resolver.Resolve(context.Background(), models.SearchCriteria{
			City: "St Andrews", Country: "Scotland",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if geo.last != "St Andrews, Scotland" {
			t.Errorf("geocode query %q, want international form", geo.last)
		}
	})

	t.Run("city-only search defaults the radius to 25 miles", func(t *testing.T) {
		geo := &stubGeocoder{point: &geocode.Point{Lat: 1, Lon: 2}}
		resolver := NewLocationResolver(geo, nil)

		plan, err := resolver.Resolve(context.Background(), models.SearchCriteria{City: "Austin"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Kind != PlanRadius || plan.RadiusMiles != DefaultRadiusMiles {
			t.Errorf("got plan %+v, want default 25 mile radius", plan)
		}
	})

	t.Run("state-only search never defaults a radius", func(t *testing.T) {
		geo := &stubGeocoder{point: &geocode.Point{Lat: 1, Lon: 2}}
		resolver := NewLocationResolver(geo, nil)

		plan, err := resolver.Resolve(context.Background(), models.SearchCriteria{State: "CA", RadiusMiles: 50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Kind != PlanExact {
			t.Errorf("expected exact plan for state-only search, got %+v", plan)
		}
		if geo.calls != 0 {
			t.Errorf("geocoder should not be consulted, got %d calls", geo.calls)
		}
	})
}

func TestResolveLocationDegradation(t *testing.T) {
	t.Run("geocoder failure degrades to exact match", func(t *testing.T) {
		geo := &stubGeocoder{err: errors.New("connection refused")}
		resolver := NewLocationResolver(geo, nil)

		plan, err := resolver.Resolve(context.Background(), models.SearchCriteria{City: "San Diego", State: "CA"})
		if err != nil {
			t.Fatalf("degradation must not be an error, got %v", err)
		}
		if plan.Kind != PlanExact || plan.Degraded != DegradedGeocoderUnavailable {
			t.Errorf("got plan %+v, want degraded exact plan", plan)
		}
	})

	t.Run("unresolvable location degrades to exact match", func(t *testing.T) {
		geo := &stubGeocoder{} // (nil, nil): not found
		resolver := NewLocationResolver(geo, nil)

		plan, err := resolver.Resolve(context.Background(), models.SearchCriteria{City: "Atlantis"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Kind != PlanExact || plan.Degraded != DegradedLocationNotGeocoded {
			t.Errorf("got plan %+v, want degraded exact plan", plan)
		}
	})

	t.Run("negative results are cached", func(t *testing.T) {
		geo := &stubGeocoder{}
		resolver := NewLocationResolver(geo, nil)
		criteria := models.SearchCriteria{City: "Atlantis"}

		if _, err := resolver.Resolve(context.Background(), criteria); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := resolver.Resolve(context.Background(), criteria); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if geo.calls != 1 {
			t.Errorf("expected a single geocoder call, got %d", geo.calls)
		}
	})

	t.Run("successful results are cached too", func(t *testing.T) {
		geo := &stubGeocoder{point: &geocode.Point{Lat: 1, Lon: 2}}
		resolver := NewLocationResolver(geo, nil)
		criteria := models.SearchCriteria{City: "Austin"}

		for i := 0; i < 3; i++ {
			plan, err := resolver.Resolve(context.Background(), criteria)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.Kind != PlanRadius {
				t.Fatalf("expected radius plan on call %d, got %+v", i, plan)
			}
		}
		if geo.calls != 1 {
			t.Errorf("expected a single geocoder call, got %d", geo.calls)
		}
	})
}
