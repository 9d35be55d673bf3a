package models

// Booking result statuses.
const (
	BookingConfirmed   = "confirmed"
	BookingUnconfirmed = "unconfirmed"
	BookingRejected    = "rejected"
)

// Structured rejection reasons.
const (
	ReasonCourseNotFound       = "course_not_found"
	ReasonSlotUnavailable      = "time_slot_unavailable"
	ReasonInsufficientCapacity = "insufficient_capacity"
)

// BookingRequest asks to validate a tee-time booking. Players defaults to 2
// and is clamped to 1..4.
type BookingRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Date     string `json:"date,omitempty"` // "2006-01-02"
	Time     string `json:"time,omitempty"` // "HH:mm"
	Players  int    `json:"players,omitempty"`
}

// SlotAvailability is the capacity snapshot a confirmed booking was priced
// against. Nil on unconfirmed bookings.
type SlotAvailability struct {
	Date             string `json:"date"`
	Time             string `json:"time"`
	PlayersAvailable int    `json:"playersAvailable"`
}

// CourseContact is the subset of course contact data returned with a booking.
type CourseContact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// BookingResult is the outcome of validating a booking request. Rejections
// carry a Reason code; confirmations carry capacity-checked pricing; an
// unconfirmed result still carries a booking link for off-snapshot checkout.
type BookingResult struct {
	Reference      string            `json:"reference,omitempty"`
	Status         string            `json:"status"`
	Reason         string            `json:"reason,omitempty"`
	Message        string            `json:"message,omitempty"`
	CourseID       string            `json:"courseId,omitempty"`
	Date           string            `json:"date,omitempty"`
	Time           string            `json:"time,omitempty"`
	Players        int               `json:"players,omitempty"`
	PricePerPlayer float64           `json:"pricePerPlayer,omitempty"`
	TotalPrice     float64           `json:"totalPrice,omitempty"`
	Availability   *SlotAvailability `json:"availability"`
	BookingURL     string            `json:"bookingUrl,omitempty"`
	Contact        *CourseContact    `json:"contact,omitempty"`
}
