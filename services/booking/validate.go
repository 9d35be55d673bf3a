package booking

import (
	"context"
	"errors"
	"fmt"

	"fairway/database/repository"
	"fairway/models"

	"github.com/google/uuid"
)

// Player count bounds for a single tee time.
const (
	DefaultPlayers = 2
	MinPlayers     = 1
	MaxPlayers     = 4
)

// ErrInvalidTime rejects tee times that are not zero-padded "HH:mm". Slot
// times match by string equality, so "9:00" could never hit a published
// "09:00" slot; better to tell the caller than to quietly unconfirm.
var ErrInvalidTime = errors.New("invalid tee time: want HH:mm")

// BookingService validates a tee-time booking request against the course's
// published tee sheet. Business rejections come back as structured results,
// not errors; errors are reserved for storage faults.
type BookingService interface {
	Validate(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}

// DefaultBookingService implements BookingService over the course store.
type DefaultBookingService struct {
	Repo repository.CourseRepository
	// PortalURL is the fallback booking link base for courses without a
	// website of their own.
	PortalURL string
}

// Validate checks the requested slot and prices the booking. When the
// request names no date/time, or the course publishes no matching slot
// record, the booking degrades to unconfirmed with no price guarantee but
// still carries a booking link for off-platform checkout.
func (s *DefaultBookingService) Validate(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	if req.Time != "" && !models.ValidClockTime(req.Time) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	players := req.Players
	if players == 0 {
		players = DefaultPlayers
	}
	if players < MinPlayers {
		players = MinPlayers
	}
	if players > MaxPlayers {
		players = MaxPlayers
	}

	course, err := s.Repo.GetByID(req.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.BookingResult{
				Status:   models.BookingRejected,
				Reason:   models.ReasonCourseNotFound,
				Message:  fmt.Sprintf("No course found with id %q", req.CourseID),
				CourseID: req.CourseID,
			}, nil
		}
		return nil, fmt.Errorf("failed to look up course: %w", err)
	}

	result := &models.BookingResult{
		CourseID:   course.ID,
		Date:       req.Date,
		Time:       req.Time,
		Players:    players,
		BookingURL: bookingLink(course, s.PortalURL, req, players),
		Contact: &models.CourseContact{
			Name:    course.Name,
			Phone:   course.Phone,
			Email:   course.Email,
			Website: course.Website,
		},
	}

	slot := findSlot(course, req.Date, req.Time)
	if slot == nil {
		// No slot record to validate against. Intentionally not an error:
		// the caller may book off-platform via the link.
		result.Status = models.BookingUnconfirmed
		result.Message = "Availability could not be confirmed for the requested time; use the booking link to check with the course."
		return result, nil
	}

	if !slot.Available {
		result.Status = models.BookingRejected
		result.Reason = models.ReasonSlotUnavailable
		result.Message = fmt.Sprintf("The %s tee time on %s is no longer available.", req.Time, req.Date)
		return result, nil
	}
	if slot.PlayersAvailable < players {
		result.Status = models.BookingRejected
		result.Reason = models.ReasonInsufficientCapacity
		result.Message = fmt.Sprintf("Only %d of the requested %d spots remain for the %s tee time on %s.",
			slot.PlayersAvailable, players, req.Time, req.Date)
		return result, nil
	}

	result.Reference = uuid.New().String()
	result.Status = models.BookingConfirmed
	result.PricePerPlayer = slot.Price
	result.TotalPrice = slot.Price * float64(players)
	result.Availability = &models.SlotAvailability{
		Date:             req.Date,
		Time:             req.Time,
		PlayersAvailable: slot.PlayersAvailable,
	}
	return result, nil
}

// findSlot locates the exact slot record for date+time, nil when either is
// missing or the course publishes nothing for that date.
func findSlot(course *models.Course, date, timeStr string) *models.TeeSlot {
	if date == "" || timeStr == "" {
		return nil
	}
	day := course.AvailabilityOn(date)
	if day == nil {
		return nil
	}
	for i := range day.Slots {
		if day.Slots[i].Time == timeStr {
			return &day.Slots[i]
		}
	}
	return nil
}
