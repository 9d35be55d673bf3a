package models

import "strings"

// Course classification values.
const (
	CourseTypePublic      = "public"
	CourseTypePrivate     = "private"
	CourseTypeSemiPrivate = "semi-private"
	CourseTypeResort      = "resort"
)

// CourseLocation holds the display location plus the geo point used for
// radius queries. Lon/lat are carried together inside Geo or not at all.
type CourseLocation struct {
	City    string    `bson:"city" json:"city"`
	State   string    `bson:"state,omitempty" json:"state,omitempty"`
	Country string    `bson:"country" json:"country"`
	Geo     *GeoPoint `bson:"geo,omitempty" json:"geo,omitempty"`
}

// PricingTier is one entry of a course's ordered price list.
type PricingTier struct {
	Name        string  `bson:"name" json:"name"`
	BasePrice   float64 `bson:"basePrice" json:"basePrice"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Course is the full course document as stored and served.
type Course struct {
	ID       string         `bson:"id" json:"id"`
	Name     string         `bson:"name" json:"name"`
	Location CourseLocation `bson:"location" json:"location"`
	Type     string         `bson:"type" json:"type"` // public, private, semi-private, resort
	Status   string         `bson:"status" json:"status"`

	// Physical attributes.
	Holes     int     `bson:"holes" json:"holes"` // 9, 18, 27 or 36
	Par       int     `bson:"par" json:"par"`
	Yardage   int     `bson:"yardage" json:"yardage"`
	Slope     int     `bson:"slope" json:"slope"`
	Rating    float64 `bson:"rating" json:"rating"` // USGA course rating
	Designer  string  `bson:"designer,omitempty" json:"designer,omitempty"`
	YearBuilt int     `bson:"yearBuilt,omitempty" json:"yearBuilt,omitempty"`

	// Commercial attributes.
	PricingTiers []PricingTier `bson:"pricingTiers,omitempty" json:"pricingTiers,omitempty"`
	AveragePrice float64       `bson:"averagePrice" json:"averagePrice"`
	Amenities    []string      `bson:"amenities,omitempty" json:"amenities,omitempty"`

	// Trust signals.
	Verified     bool    `bson:"verified" json:"verified"`
	RatingStars  float64 `bson:"ratingStars" json:"ratingStars"`
	ReviewsCount int     `bson:"reviewsCount" json:"reviewsCount"`

	// Contact.
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`

	Description string `bson:"description,omitempty" json:"description,omitempty"`
	LocalRules  string `bson:"localRules,omitempty" json:"localRules,omitempty"`

	// Rolling forward window of published tee sheets, keyed by date.
	Availability []DailyAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
}

// Normalize enforces model invariants on data coming from the store. A slot
// marked unavailable never reports open player seats, and negative prices
// are clamped to zero.
func (c *Course) Normalize() {
	if c.AveragePrice < 0 {
		c.AveragePrice = 0
	}
	for i := range c.Availability {
		day := &c.Availability[i]
		for j := range day.Slots {
			slot := &day.Slots[j]
			if slot.Price < 0 {
				slot.Price = 0
			}
			if !slot.Available {
				slot.PlayersAvailable = 0
			}
		}
	}
}

// AvailabilityOn returns the published tee sheet for the given ISO date, or
// nil when the course has none. A missing entry means zero open slots, not
// missing data.
func (c *Course) AvailabilityOn(date string) *DailyAvailability {
	for i := range c.Availability {
		if c.Availability[i].Date == date {
			return &c.Availability[i]
		}
	}
	return nil
}

// HasAmenity reports whether the course carries the named capability.
func (c *Course) HasAmenity(name string) bool {
	for _, a := range c.Amenities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
