package booking

import (
	"net/url"
	"strconv"
	"strings"

	"fairway/models"
)

// bookingLink builds the external checkout link: the course's own website
// when it has one, otherwise the shared booking portal. Query parameters
// carry the booking context so the target page can prefill.
func bookingLink(course *models.Course, portalURL string, req models.BookingRequest, players int) string {
	base := strings.TrimSpace(course.Website)
	if base == "" {
		base = portalURL
	}
	if base == "" {
		return ""
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return base
	}

	q := parsed.Query()
	q.Set("course_id", course.ID)
	q.Set("players", strconv.Itoa(players))
	if req.Date != "" {
		q.Set("date", req.Date)
	}
	if req.Time != "" {
		q.Set("time", req.Time)
	}
	parsed.RawQuery = q.Encode()
	return parsed.String()
}
