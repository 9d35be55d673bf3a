package models

import "time"

// ValidClockTime reports whether s is a zero-padded 24h "HH:mm" clock time.
// Unpadded forms like "9:00" are rejected: slot times compare as strings, so
// an unpadded bound would sort against every slot instead of matching.
func ValidClockTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// TeeSlot is a single bookable tee time on one course and one date.
type TeeSlot struct {
	Time             string  `bson:"time" json:"time"` // "HH:mm", unique within the day
	Available        bool    `bson:"available" json:"available"`
	Price            float64 `bson:"price" json:"price"` // per player
	PlayersAvailable int     `bson:"playersAvailable" json:"playersAvailable"` // 0..4
}

// DailyAvailability is one course's tee sheet for a single calendar date.
// Slots are kept in ascending time order.
type DailyAvailability struct {
	Date  string    `bson:"date" json:"date"` // "2006-01-02"
	Slots []TeeSlot `bson:"slots" json:"slots"`
}
