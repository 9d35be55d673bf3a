package search

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"fairway/models"
)

// Named sort policies.
const (
	SortCheapest          = "cheapest"
	SortMostExpensive     = "most_expensive"
	SortHighestRated      = "highest_rated"
	SortMostAvailable     = "most_available"
	SortLongest           = "longest"
	SortShortest          = "shortest"
	SortNewest            = "newest"
	SortOldest            = "oldest"
	SortHighestSlope      = "highest_slope"
	SortCheapestOnDate    = "cheapest_on_date"
	SortEarliestAvailable = "earliest_available"
	SortClosestToTime     = "closest_to_time"
	SortBestValue         = "best_value"
)

// RankContext carries the per-request inputs the date-scoped policies need.
type RankContext struct {
	Date        string
	DesiredTime string // "HH:mm", for closest_to_time
	Window      TimeWindow
}

// rankKey orders a course under a policy. Courses with missing keys always
// sort after the rest; ties fall back to the secondary key, then to the
// original (stable) order.
type rankKey struct {
	primary   float64
	secondary float64
	missing   bool
}

// Rank orders courses under the named policy. An unknown or empty policy
// leaves the input order untouched.
func Rank(courses []models.Course, policy string, ctx RankContext) []models.Course {
	key := keyFunc(policy, ctx)
	if key == nil {
		return courses
	}

	keys := make([]rankKey, len(courses))
	for i := range courses {
		keys[i] = key(&courses[i])
	}

	idx := make([]int, len(courses))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.missing != kb.missing {
			return !ka.missing
		}
		if ka.missing {
			return false
		}
		if ka.primary != kb.primary {
			return ka.primary < kb.primary
		}
		return ka.secondary < kb.secondary
	})

	ordered := make([]models.Course, len(courses))
	for i, j := range idx {
		ordered[i] = courses[j]
	}
	return ordered
}

func keyFunc(policy string, ctx RankContext) func(*models.Course) rankKey {
	switch policy {
	case SortCheapest:
		return func(c *models.Course) rankKey { return rankKey{primary: c.AveragePrice} }
	case SortMostExpensive:
		return func(c *models.Course) rankKey { return rankKey{primary: -c.AveragePrice} }
	case SortHighestRated:
		return func(c *models.Course) rankKey { return rankKey{primary: -c.RatingStars} }
	case SortMostAvailable:
		return func(c *models.Course) rankKey {
			return rankKey{primary: -float64(totalAvailable(c))}
		}
	case SortLongest:
		return func(c *models.Course) rankKey { return rankKey{primary: -float64(c.Yardage)} }
	case SortShortest:
		return func(c *models.Course) rankKey { return rankKey{primary: float64(c.Yardage)} }
	case SortNewest:
		return func(c *models.Course) rankKey {
			return rankKey{primary: -float64(c.YearBuilt), missing: c.YearBuilt == 0}
		}
	case SortOldest:
		return func(c *models.Course) rankKey {
			return rankKey{primary: float64(c.YearBuilt), missing: c.YearBuilt == 0}
		}
	case SortHighestSlope:
		return func(c *models.Course) rankKey { return rankKey{primary: -float64(c.Slope)} }
	case SortCheapestOnDate:
		if ctx.Date == "" {
			return nil
		}
		return func(c *models.Course) rankKey {
			summary := MatchAvailability(c, ctx.Date, ctx.Window)
			if summary.CheapestPrice == nil {
				return rankKey{missing: true}
			}
			return rankKey{primary: *summary.CheapestPrice}
		}
	case SortEarliestAvailable:
		if ctx.Date == "" {
			return nil
		}
		return func(c *models.Course) rankKey {
			summary := MatchAvailability(c, ctx.Date, ctx.Window)
			m := slotMinutes(summary.EarliestTime)
			if summary.AvailableCount == 0 || m < 0 {
				return rankKey{missing: true}
			}
			return rankKey{primary: float64(m)}
		}
	case SortClosestToTime:
		if ctx.Date == "" || ctx.DesiredTime == "" {
			return nil
		}
		desired := slotMinutes(ctx.DesiredTime)
		if desired < 0 {
			return nil
		}
		return func(c *models.Course) rankKey {
			summary := MatchAvailability(c, ctx.Date, ctx.Window)
			best := rankKey{missing: true}
			for _, slot := range summary.Slots {
				if !slot.Available {
					continue
				}
				m := slotMinutes(slot.Time)
				if m < 0 {
					continue
				}
				dist := math.Abs(float64(m - desired))
				// Ties between equidistant slots favor the earlier time.
				if best.missing || dist < best.primary || (dist == best.primary && float64(m) < best.secondary) {
					best = rankKey{primary: dist, secondary: float64(m)}
				}
			}
			return best
		}
	case SortBestValue:
		return func(c *models.Course) rankKey {
			// Rating weighed against price: stars divided by a softened
			// price term, so a $100 premium must be backed by roughly
			// double the rating. Unrated courses go last.
			if c.RatingStars == 0 {
				return rankKey{missing: true}
			}
			score := c.RatingStars / (1 + c.AveragePrice/100)
			return rankKey{primary: -score}
		}
	default:
		return nil
	}
}

// totalAvailable counts open slots across the full forward window.
func totalAvailable(c *models.Course) int {
	count := 0
	for _, day := range c.Availability {
		for _, slot := range day.Slots {
			if slot.Available {
				count++
			}
		}
	}
	return count
}

// slotMinutes parses "HH:mm" into minutes from midnight, -1 when malformed.
func slotMinutes(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}
