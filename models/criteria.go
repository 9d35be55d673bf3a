package models

// CourseFilters enumerates every recognized search filter. Omitted fields
// are vacuously true; unrecognized JSON keys are dropped by the decoder.
// Numeric zero means "not set" for all range and threshold fields.
type CourseFilters struct {
	// Attribute filters.
	Type    string   `json:"type,omitempty"`
	Types   []string `json:"types,omitempty"`
	HolesIn []int    `json:"holes_in,omitempty"`

	ParMin          int     `json:"par_min,omitempty"`
	ParMax          int     `json:"par_max,omitempty"`
	YardageMin      int     `json:"yardage_min,omitempty"`
	YardageMax      int     `json:"yardage_max,omitempty"`
	SlopeMin        int     `json:"slope_min,omitempty"`
	SlopeMax        int     `json:"slope_max,omitempty"`
	CourseRatingMin float64 `json:"course_rating_min,omitempty"`
	CourseRatingMax float64 `json:"course_rating_max,omitempty"`
	YearBuiltMin    int     `json:"year_built_min,omitempty"`
	YearBuiltMax    int     `json:"year_built_max,omitempty"`
	PriceMin        float64 `json:"price_min,omitempty"` // bounds averagePrice
	PriceMax        float64 `json:"price_max,omitempty"`

	Designer           string   `json:"designer,omitempty"`
	SearchText         string   `json:"search_text,omitempty"`
	LocalRulesContains string   `json:"local_rules_contains,omitempty"`
	Amenities          []string `json:"amenities,omitempty"`

	MinRating  float64 `json:"min_rating,omitempty"` // ratingStars threshold
	MinReviews int     `json:"min_reviews,omitempty"`

	// Availability-scoped filters; active only once a date is resolved.
	StartTime      string  `json:"start_time,omitempty"` // "HH:mm"
	EndTime        string  `json:"end_time,omitempty"`
	TimeWindow     string  `json:"time_window,omitempty"` // morning, midday, afternoon, twilight
	PlayersMin     int     `json:"players_min,omitempty"`
	PriceOnDateMin float64 `json:"price_on_date_min,omitempty"`
	PriceOnDateMax float64 `json:"price_on_date_max,omitempty"`

	// HasAvailability requires at least one open slot anywhere in the
	// forward window, independent of the resolved date.
	HasAvailability bool `json:"has_availability,omitempty"`

	// IncludeUnavailable controls whether courses with no open slots on the
	// resolved date stay in the result set. Defaults to true when a date is
	// present so callers can render "no availability" instead of dropping
	// the course.
	IncludeUnavailable *bool `json:"include_unavailable,omitempty"`

	Sort        string `json:"sort,omitempty"`
	DesiredTime string `json:"desired_time,omitempty"` // for closest_to_time
}

// SearchCriteria is the per-request search input. A literal Date always
// wins over RelativeDate when both are supplied.
type SearchCriteria struct {
	City         string        `json:"city,omitempty"`
	State        string        `json:"state,omitempty"`
	Country      string        `json:"country,omitempty"`
	RadiusMiles  float64       `json:"radius,omitempty"`
	Date         string        `json:"date,omitempty"` // "2006-01-02"
	RelativeDate string        `json:"relative_date,omitempty"`
	Filters      CourseFilters `json:"filters,omitempty"`
}

// CourseResult is a course enriched with per-request derived fields.
type CourseResult struct {
	Course
	MatchedDate     string   `json:"matchedDate,omitempty"`
	AvailableOnDate *bool    `json:"availableOnDate,omitempty"`
	DistanceMiles   *float64 `json:"distanceMiles,omitempty"`
}

// SearchResult is the assembled response payload for a search call.
type SearchResult struct {
	Count       int            `json:"count"`
	Courses     []CourseResult `json:"courses"`
	Summary     string         `json:"summary"`
	MatchedDate string         `json:"matchedDate,omitempty"`
	Degraded    string         `json:"degraded,omitempty"`
}
