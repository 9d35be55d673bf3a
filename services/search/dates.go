package search

import (
	"fmt"
	"time"

	"fairway/models"
)

const isoDate = "2006-01-02"

// Recognized relative-date tokens.
const (
	TokenToday        = "today"
	TokenTomorrow     = "tomorrow"
	TokenThisSaturday = "this_saturday"
	TokenThisSunday   = "this_sunday"
	TokenNextSaturday = "next_saturday"
	TokenNextSunday   = "next_sunday"
	TokenThisWeekend  = "this_weekend"
	TokenNextWeekend  = "next_weekend"
)

// ResolveRelativeDate maps a relative-date token to a concrete ISO date.
// "this_saturday" on a Saturday is today; "next_saturday" is always strictly
// beyond this week's Saturday. The weekend tokens alias their Saturday.
func ResolveRelativeDate(token string, now time.Time) (string, error) {
	switch token {
	case TokenToday:
		return now.Format(isoDate), nil
	case TokenTomorrow:
		return now.AddDate(0, 0, 1).Format(isoDate), nil
	case TokenThisSaturday, TokenThisWeekend:
		return upcoming(now, time.Saturday).Format(isoDate), nil
	case TokenThisSunday:
		return upcoming(now, time.Sunday).Format(isoDate), nil
	case TokenNextSaturday, TokenNextWeekend:
		return upcoming(now, time.Saturday).AddDate(0, 0, 7).Format(isoDate), nil
	case TokenNextSunday:
		return upcoming(now, time.Sunday).AddDate(0, 0, 7).Format(isoDate), nil
	default:
		return "", fmt.Errorf("unknown relative date %q", token)
	}
}

// upcoming returns the next occurrence of the target weekday, counting today
// as a match.
func upcoming(now time.Time, target time.Weekday) time.Time {
	offset := (int(target) - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, offset)
}

// ResolveDate derives the search date from the criteria. A literal date
// wins over a relative token; both absent yields an empty date.
func ResolveDate(criteria models.SearchCriteria, now time.Time) (string, error) {
	if criteria.Date != "" {
		if _, err := time.Parse(isoDate, criteria.Date); err != nil {
			return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", criteria.Date)
		}
		return criteria.Date, nil
	}
	if criteria.RelativeDate != "" {
		return ResolveRelativeDate(criteria.RelativeDate, now)
	}
	return "", nil
}
