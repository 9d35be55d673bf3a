package search

import (
	"testing"

	"fairway/models"
)

func rankFixture() []models.Course {
	return []models.Course{
		{ID: "mid", AveragePrice: 175, RatingStars: 4.6, Yardage: 7007, YearBuilt: 1991, Slope: 137},
		{ID: "cheap", AveragePrice: 58, RatingStars: 4.1, Yardage: 6339, YearBuilt: 1915, Slope: 122},
		{ID: "dear", AveragePrice: 295, RatingStars: 4.8, Yardage: 7802, YearBuilt: 1957, Slope: 144},
		{ID: "noyear", AveragePrice: 120, RatingStars: 4.0, Yardage: 6500, Slope: 128},
	}
}

func ids(courses []models.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.Course, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got order %v, want %v", gotIDs, want)
		}
	}
}

func TestRankBasicPolicies(t *testing.T) {
	t.Run("cheapest is non-decreasing in average price", func(t *testing.T) {
		got := Rank(rankFixture(), SortCheapest, RankContext{})
		assertOrder(t, got, "cheap", "noyear", "mid", "dear")
		for i := 1; i < len(got); i++ {
			if got[i].AveragePrice < got[i-1].AveragePrice {
				t.Fatalf("prices not non-decreasing at %d", i)
			}
		}
	})

	t.Run("most_expensive reverses cheapest for a tie-free set", func(t *testing.T) {
		cheapest := ids(Rank(rankFixture(), SortCheapest, RankContext{}))
		expensive := ids(Rank(rankFixture(), SortMostExpensive, RankContext{}))
		for i := range cheapest {
			if cheapest[i] != expensive[len(expensive)-1-i] {
				t.Fatalf("most_expensive %v is not the reverse of cheapest %v", expensive, cheapest)
			}
		}
	})

	t.Run("cheapest is stable for ties", func(t *testing.T) {
		tied := []models.Course{
			{ID: "a", AveragePrice: 100},
			{ID: "b", AveragePrice: 100},
			{ID: "c", AveragePrice: 50},
		}
		assertOrder(t, Rank(tied, SortCheapest, RankContext{}), "c", "a", "b")
	})

	t.Run("highest_rated", func(t *testing.T) {
		assertOrder(t, Rank(rankFixture(), SortHighestRated, RankContext{}), "dear", "mid", "cheap", "noyear")
	})

	t.Run("longest and shortest", func(t *testing.T) {
		assertOrder(t, Rank(rankFixture(), SortLongest, RankContext{}), "dear", "mid", "noyear", "cheap")
		assertOrder(t, Rank(rankFixture(), SortShortest, RankContext{}), "cheap", "noyear", "mid", "dear")
	})

	t.Run("highest_slope", func(t *testing.T) {
		assertOrder(t, Rank(rankFixture(), SortHighestSlope, RankContext{}), "dear", "mid", "noyear", "cheap")
	})

	t.Run("missing year sorts last for newest and oldest", func(t *testing.T) {
		assertOrder(t, Rank(rankFixture(), SortNewest, RankContext{}), "mid", "dear", "cheap", "noyear")
		assertOrder(t, Rank(rankFixture(), SortOldest, RankContext{}), "cheap", "dear", "mid", "noyear")
	})

	t.Run("unknown policy preserves input order", func(t *testing.T) {
		assertOrder(t, Rank(rankFixture(), "alphabetical_by_mascot", RankContext{}), "mid", "cheap", "dear", "noyear")
	})
}

func TestRankMostAvailable(t *testing.T) {
	courses := []models.Course{
		{ID: "one", Availability: []models.DailyAvailability{{Date: "2025-06-01", Slots: []models.TeeSlot{
			{Time: "08:00", Available: true, PlayersAvailable: 2},
		}}}},
		{ID: "three", Availability: []models.DailyAvailability{
			{Date: "2025-06-01", Slots: []models.TeeSlot{
				{Time: "08:00", Available: true, PlayersAvailable: 2},
				{Time: "09:00", Available: true, PlayersAvailable: 4},
			}},
			{Date: "2025-06-02", Slots: []models.TeeSlot{
				{Time: "10:00", Available: true, PlayersAvailable: 1},
				{Time: "11:00", Available: false},
			}},
		}},
		{ID: "none"},
	}
	assertOrder(t, Rank(courses, SortMostAvailable, RankContext{}), "three", "one", "none")
}

func TestRankBestValue(t *testing.T) {
	// score = stars / (1 + price/100):
	// budget: 4.0/(1+0.5)=2.67, premium: 4.8/(1+3)=1.2, unrated last.
	courses := []models.Course{
		{ID: "premium", AveragePrice: 300, RatingStars: 4.8},
		{ID: "budget", AveragePrice: 50, RatingStars: 4.0},
		{ID: "unrated", AveragePrice: 20},
	}
	assertOrder(t, Rank(courses, SortBestValue, RankContext{}), "budget", "premium", "unrated")
}

func TestRankDateScopedPolicies(t *testing.T) {
	withSlots := func(id string, slots ...models.TeeSlot) models.Course {
		return models.Course{
			ID:           id,
			Availability: []models.DailyAvailability{{Date: "2025-06-01", Slots: slots}},
		}
	}
	courses := []models.Course{
		withSlots("late", models.TeeSlot{Time: "15:00", Available: true, Price: 60, PlayersAvailable: 4}),
		withSlots("early", models.TeeSlot{Time: "07:00", Available: true, Price: 110, PlayersAvailable: 2}),
		withSlots("closed", models.TeeSlot{Time: "08:00", Available: false, Price: 40}),
	}
	ctx := RankContext{Date: "2025-06-01"}

	t.Run("cheapest_on_date, no availability last", func(t *testing.T) {
		assertOrder(t, Rank(courses, SortCheapestOnDate, ctx), "late", "early", "closed")
	})

	t.Run("earliest_available", func(t *testing.T) {
		assertOrder(t, Rank(courses, SortEarliestAvailable, ctx), "early", "late", "closed")
	})

	t.Run("closest_to_time", func(t *testing.T) {
		ctx := RankContext{Date: "2025-06-01", DesiredTime: "14:00"}
		assertOrder(t, Rank(courses, SortClosestToTime, ctx), "late", "early", "closed")
	})

	t.Run("closest_to_time breaks distance ties by earlier slot", func(t *testing.T) {
		tied := []models.Course{
			withSlots("after", models.TeeSlot{Time: "11:00", Available: true, PlayersAvailable: 2}),
			withSlots("before", models.TeeSlot{Time: "09:00", Available: true, PlayersAvailable: 2}),
		}
		ctx := RankContext{Date: "2025-06-01", DesiredTime: "10:00"}
		assertOrder(t, Rank(tied, SortClosestToTime, ctx), "before", "after")
	})

	t.Run("date policies without a date leave order alone", func(t *testing.T) {
		assertOrder(t, Rank(courses, SortCheapestOnDate, RankContext{}), "late", "early", "closed")
	})
}
