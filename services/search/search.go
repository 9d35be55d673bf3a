package search

import (
	"context"
	"fmt"
	"time"

	"fairway/database/repository"
	"fairway/models"
	"fairway/utils"

	"go.uber.org/zap"
)

// MaxResults caps the assembled result set.
const MaxResults = 100

// DegradedStorageUnavailable marks a result built after a storage failure.
const DegradedStorageUnavailable = "storage_unavailable"

// SearchService is the course discovery engine's querying surface. Errors
// returned by Search are always invalid-input rejections; collaborator
// failures degrade the result instead of failing it.
type SearchService interface {
	Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	LookupCourse(ctx context.Context, name, state, country string) (*models.Course, error)
}

// DefaultSearchService orchestrates location resolution, filtering, ranking
// and result assembly.
type DefaultSearchService struct {
	Repo      repository.CourseRepository
	Locations *LocationResolver
	Now       func() time.Time // injectable clock; defaults to time.Now
}

func (s *DefaultSearchService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Search resolves the request into a candidate set, applies the filter
// predicates and ranking policy, and assembles the capped response.
func (s *DefaultSearchService) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error) {
	date, err := ResolveDate(criteria, s.now())
	if err != nil {
		return nil, err
	}
	if err := ValidateFilterTimes(criteria.Filters); err != nil {
		return nil, err
	}

	plan, err := s.Locations.Resolve(ctx, criteria)
	if err != nil {
		return nil, err
	}

	courses, distances, degraded := s.candidates(plan)
	if degraded == "" {
		degraded = plan.Degraded
	}

	filters := criteria.Filters
	var filtered []models.Course
	for i := range courses {
		if Accepts(&courses[i], filters, date) {
			filtered = append(filtered, courses[i])
		}
	}

	rankCtx := RankContext{
		Date:        date,
		DesiredTime: filters.DesiredTime,
		Window:      WindowFromFilters(filters),
	}
	ranked := Rank(filtered, filters.Sort, rankCtx)
	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}

	results := make([]models.CourseResult, 0, len(ranked))
	for i := range ranked {
		result := models.CourseResult{Course: ranked[i]}
		if date != "" {
			result.MatchedDate = date
			open := MatchAvailability(&ranked[i], date, TimeWindow{}).AvailableCount > 0
			result.AvailableOnDate = &open
		}
		if miles, ok := distances[ranked[i].ID]; ok {
			m := miles
			result.DistanceMiles = &m
		}
		results = append(results, result)
	}

	return &models.SearchResult{
		Count:       len(results),
		Courses:     results,
		Summary:     buildSummary(len(results), plan, filters.Sort, date),
		MatchedDate: date,
		Degraded:    degraded,
	}, nil
}

// candidates fetches the raw course set for the plan. Storage failures are
// logged and yield an empty, degraded set rather than an error.
func (s *DefaultSearchService) candidates(plan LocationPlan) ([]models.Course, map[string]float64, string) {
	logger := utils.GetLogger()

	if plan.Kind == PlanRadius {
		rows, err := s.Repo.NearbyIDs(plan.CenterLat, plan.CenterLon, plan.RadiusMiles)
		if err != nil {
			logger.Error("radius lookup failed", zap.Error(err))
			return nil, nil, DegradedStorageUnavailable
		}

		ids := make([]string, 0, len(rows))
		distances := make(map[string]float64, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
			distances[row.ID] = row.DistanceMeters / metersPerMile
		}

		courses, err := s.Repo.FindOpenByIDs(ids)
		if err != nil {
			logger.Error("course fetch failed", zap.Error(err))
			return nil, nil, DegradedStorageUnavailable
		}

		// FindOpenByIDs does not guarantee order; restore nearest-first.
		byID := make(map[string]models.Course, len(courses))
		for _, c := range courses {
			byID[c.ID] = c
		}
		ordered := make([]models.Course, 0, len(courses))
		for _, id := range ids {
			if c, ok := byID[id]; ok {
				ordered = append(ordered, c)
			}
		}
		return ordered, distances, ""
	}

	courses, err := s.Repo.FindOpen(repository.CourseQuery{
		City:    plan.City,
		State:   plan.State,
		Country: plan.Country,
	})
	if err != nil {
		logger.Error("course query failed", zap.Error(err))
		return nil, nil, DegradedStorageUnavailable
	}
	return courses, nil, ""
}

// GetCourse fetches a single course by id.
func (s *DefaultSearchService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.Repo.GetByID(id)
}

// LookupCourse fetches a single course by name, optionally narrowed by
// state or country.
func (s *DefaultSearchService) LookupCourse(ctx context.Context, name, state, country string) (*models.Course, error) {
	return s.Repo.GetByName(name, state, country)
}

const metersPerMile = 1609.34

// sortLabels cover the four basic policies mentioned in summaries.
var sortLabels = map[string]string{
	SortCheapest:      "sorted by price (low to high)",
	SortMostExpensive: "sorted by price (high to low)",
	SortHighestRated:  "sorted by rating",
	SortMostAvailable: "sorted by availability",
}

// buildSummary produces the one-line natural-language result description.
func buildSummary(count int, plan LocationPlan, policy, date string) string {
	noun := "golf courses"
	if count == 1 {
		noun = "golf course"
	}
	summary := fmt.Sprintf("Found %d %s %s", count, noun, locationLabel(plan))
	if label, ok := sortLabels[policy]; ok {
		summary += ", " + label
	}
	if date != "" {
		summary += ", for " + date
	}
	return summary + "."
}

func locationLabel(plan LocationPlan) string {
	place := plan.City
	switch {
	case plan.City != "" && plan.State != "":
		place = plan.City + ", " + plan.State
	case plan.City != "" && plan.Country != "":
		place = plan.City + ", " + plan.Country
	case plan.City == "" && plan.State != "":
		place = plan.State
	case plan.City == "" && plan.Country != "":
		place = plan.Country
	}
	if plan.Kind == PlanRadius {
		return fmt.Sprintf("within %.0f miles of %s", plan.RadiusMiles, place)
	}
	return "in " + place
}
