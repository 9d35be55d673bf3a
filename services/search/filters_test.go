package search

import (
	"testing"

	"fairway/models"
)

func attrCourse() *models.Course {
	return &models.Course{
		ID:   "c1",
		Name: "Pine Valley",
		Location: models.CourseLocation{
			City: "San Diego", State: "CA", Country: "USA",
		},
		Type:         models.CourseTypePublic,
		Holes:        18,
		Par:          72,
		Yardage:      6800,
		Slope:        130,
		Rating:       72.5,
		Designer:     "Tom Fazio",
		YearBuilt:    1985,
		AveragePrice: 120,
		Amenities:    []string{"driving_range", "pro_shop"},
		RatingStars:  4.4,
		ReviewsCount: 300,
		Description:  "Tree-lined parkland course",
		LocalRules:   "Winter rules apply November through February.",
	}
}

func TestAcceptsAttributeFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters models.CourseFilters
		want    bool
	}{
		{"empty filters accept everything", models.CourseFilters{}, true},
		{"type match is case-insensitive", models.CourseFilters{Type: "Public"}, true},
		{"type mismatch", models.CourseFilters{Type: "private"}, false},
		{"types membership", models.CourseFilters{Types: []string{"resort", "public"}}, true},
		{"types exclusion", models.CourseFilters{Types: []string{"resort", "private"}}, false},
		{"holes_in match", models.CourseFilters{HolesIn: []int{9, 18}}, true},
		{"holes_in exclusion", models.CourseFilters{HolesIn: []int{9, 27}}, false},
		{"par range inclusive", models.CourseFilters{ParMin: 72, ParMax: 72}, true},
		{"par min rejects", models.CourseFilters{ParMin: 73}, false},
		{"yardage range", models.CourseFilters{YardageMin: 6000, YardageMax: 7000}, true},
		{"yardage max rejects", models.CourseFilters{YardageMax: 6500}, false},
		{"slope min", models.CourseFilters{SlopeMin: 125}, true},
		{"course rating range", models.CourseFilters{CourseRatingMin: 70, CourseRatingMax: 75}, true},
		{"year built range", models.CourseFilters{YearBuiltMin: 1980, YearBuiltMax: 1990}, true},
		{"year built min rejects", models.CourseFilters{YearBuiltMin: 1990}, false},
		{"price range on average price", models.CourseFilters{PriceMin: 100, PriceMax: 150}, true},
		{"price max rejects", models.CourseFilters{PriceMax: 100}, false},
		{"designer substring", models.CourseFilters{Designer: "fazio"}, true},
		{"designer mismatch", models.CourseFilters{Designer: "jones"}, false},
		{"search text over name", models.CourseFilters{SearchText: "pine"}, true},
		{"search text over description", models.CourseFilters{SearchText: "parkland"}, true},
		{"search text over city", models.CourseFilters{SearchText: "san diego"}, true},
		{"search text miss", models.CourseFilters{SearchText: "links"}, false},
		{"local rules substring", models.CourseFilters{LocalRulesContains: "winter rules"}, true},
		{"amenities all required", models.CourseFilters{Amenities: []string{"driving_range", "pro_shop"}}, true},
		{"missing amenity rejects", models.CourseFilters{Amenities: []string{"driving_range", "spa"}}, false},
		{"min rating met", models.CourseFilters{MinRating: 4.0}, true},
		{"min rating rejects", models.CourseFilters{MinRating: 4.5}, false},
		{"min reviews met", models.CourseFilters{MinReviews: 100}, true},
		{"min reviews rejects", models.CourseFilters{MinReviews: 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accepts(attrCourse(), tt.filters, ""); got != tt.want {
				t.Errorf("Accepts(%+v) = %v, want %v", tt.filters, got, tt.want)
			}
		})
	}
}

func TestAcceptsAvailabilityFilters(t *testing.T) {
	course := func(playersAvailable int) *models.Course {
		c := attrCourse()
		c.Availability = []models.DailyAvailability{
			{
				Date: "2025-06-01",
				Slots: []models.TeeSlot{
					{Time: "09:00", Available: true, Price: 100, PlayersAvailable: playersAvailable},
				},
			},
		}
		c.Normalize()
		return c
	}

	t.Run("players_min satisfied by a four-seat slot", func(t *testing.T) {
		if !Accepts(course(4), models.CourseFilters{PlayersMin: 2}, "2025-06-01") {
			t.Error("expected course with 4 open seats to pass players_min=2")
		}
		if !Accepts(course(4), models.CourseFilters{PlayersMin: 4}, "2025-06-01") {
			t.Error("expected course with 4 open seats to pass players_min=4")
		}
	})

	t.Run("players_min rejects an undersized slot", func(t *testing.T) {
		if Accepts(course(1), models.CourseFilters{PlayersMin: 2}, "2025-06-01") {
			t.Error("expected course with 1 open seat to fail players_min=2")
		}
	})

	t.Run("availability filters are vacuous without a date", func(t *testing.T) {
		if !Accepts(course(1), models.CourseFilters{PlayersMin: 4}, "") {
			t.Error("players_min must not apply when no date resolved")
		}
	})

	t.Run("time window requires an open slot inside it", func(t *testing.T) {
		if Accepts(course(4), models.CourseFilters{TimeWindow: "twilight"}, "2025-06-01") {
			t.Error("no twilight slot exists, course should be rejected")
		}
		if !Accepts(course(4), models.CourseFilters{TimeWindow: "morning"}, "2025-06-01") {
			t.Error("09:00 slot is in the morning window")
		}
	})

	t.Run("price_on_date bounds open slot prices", func(t *testing.T) {
		if !Accepts(course(4), models.CourseFilters{PriceOnDateMax: 100}, "2025-06-01") {
			t.Error("slot at 100 should satisfy price_on_date_max=100")
		}
		if Accepts(course(4), models.CourseFilters{PriceOnDateMax: 99}, "2025-06-01") {
			t.Error("slot at 100 should fail price_on_date_max=99")
		}
	})

	t.Run("course without a tee sheet for the date", func(t *testing.T) {
		c := attrCourse() // no availability at all
		// Stays in by default so callers can render "no availability".
		if !Accepts(c, models.CourseFilters{}, "2025-06-01") {
			t.Error("course with no tee sheet should be kept by default")
		}
		exclude := false
		if Accepts(c, models.CourseFilters{IncludeUnavailable: &exclude}, "2025-06-01") {
			t.Error("include_unavailable=false should drop the course")
		}
	})

	t.Run("has_availability scans the forward window without a date", func(t *testing.T) {
		if Accepts(attrCourse(), models.CourseFilters{HasAvailability: true}, "") {
			t.Error("course with no open slots should fail has_availability")
		}
		if !Accepts(course(2), models.CourseFilters{HasAvailability: true}, "") {
			t.Error("course with an open slot should pass has_availability")
		}
	})
}
