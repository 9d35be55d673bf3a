package search

import (
	"strings"

	"fairway/models"
)

// Accepts applies the full conjunctive filter set to a single course. Every
// omitted sub-filter is vacuously true. Availability-scoped filters only
// engage once a date has been resolved.
func Accepts(course *models.Course, f models.CourseFilters, date string) bool {
	if !acceptsAttributes(course, f) {
		return false
	}
	if f.HasAvailability && !hasAnyAvailability(course) {
		return false
	}
	if date == "" {
		return true
	}
	return acceptsOnDate(course, f, date)
}

func acceptsAttributes(course *models.Course, f models.CourseFilters) bool {
	if f.Type != "" && !strings.EqualFold(course.Type, f.Type) {
		return false
	}
	if len(f.Types) > 0 && !containsFold(f.Types, course.Type) {
		return false
	}
	if len(f.HolesIn) > 0 && !containsInt(f.HolesIn, course.Holes) {
		return false
	}

	if !inIntRange(course.Par, f.ParMin, f.ParMax) {
		return false
	}
	if !inIntRange(course.Yardage, f.YardageMin, f.YardageMax) {
		return false
	}
	if !inIntRange(course.Slope, f.SlopeMin, f.SlopeMax) {
		return false
	}
	if !inFloatRange(course.Rating, f.CourseRatingMin, f.CourseRatingMax) {
		return false
	}
	if !inIntRange(course.YearBuilt, f.YearBuiltMin, f.YearBuiltMax) {
		return false
	}
	if !inFloatRange(course.AveragePrice, f.PriceMin, f.PriceMax) {
		return false
	}

	if f.Designer != "" && !containsIgnoreCase(course.Designer, f.Designer) {
		return false
	}
	if f.LocalRulesContains != "" && !containsIgnoreCase(course.LocalRules, f.LocalRulesContains) {
		return false
	}
	if f.SearchText != "" {
		haystack := course.Name + " " + course.Description + " " + course.Location.City + " " + course.Designer
		if !containsIgnoreCase(haystack, f.SearchText) {
			return false
		}
	}

	for _, amenity := range f.Amenities {
		if !course.HasAmenity(amenity) {
			return false
		}
	}

	if f.MinRating > 0 && course.RatingStars < f.MinRating {
		return false
	}
	if f.MinReviews > 0 && course.ReviewsCount < f.MinReviews {
		return false
	}
	return true
}

// acceptsOnDate evaluates the date-scoped availability filters over the
// windowed tee sheet.
func acceptsOnDate(course *models.Course, f models.CourseFilters, date string) bool {
	window := WindowFromFilters(f)
	summary := MatchAvailability(course, date, window)

	// An explicit time window asks for at least one open slot inside it.
	if !window.IsZero() && summary.AvailableCount == 0 {
		return false
	}

	if f.PlayersMin > 0 {
		found := false
		for _, slot := range summary.Slots {
			if slot.Available && slot.PlayersAvailable >= f.PlayersMin {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.PriceOnDateMin > 0 || f.PriceOnDateMax > 0 {
		found := false
		for _, slot := range summary.Slots {
			if !slot.Available {
				continue
			}
			if inFloatRange(slot.Price, f.PriceOnDateMin, f.PriceOnDateMax) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Courses with no open slots on the date stay in unless the caller
	// explicitly excluded them.
	if f.IncludeUnavailable != nil && !*f.IncludeUnavailable && summary.AvailableCount == 0 {
		return false
	}
	return true
}

func inIntRange(v, min, max int) bool {
	if min > 0 && v < min {
		return false
	}
	if max > 0 && v > max {
		return false
	}
	return true
}

func inFloatRange(v, min, max float64) bool {
	if min > 0 && v < min {
		return false
	}
	if max > 0 && v > max {
		return false
	}
	return true
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

func containsInt(list []int, value int) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func containsIgnoreCase(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
