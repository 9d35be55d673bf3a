package repository

import (
	"errors"

	"fairway/models"
)

// ErrNotFound signals that a course id or name did not resolve.
var ErrNotFound = errors.New("course not found")

// CourseQuery is the exact-match location predicate applied by the store.
// City matches case-insensitively as a substring; State and Country match
// exactly after case normalization.
type CourseQuery struct {
	City    string
	State   string // uppercased
	Country string
}

// CourseDistance is one row of a radius lookup, ordered by distance.
type CourseDistance struct {
	ID             string
	DistanceMeters float64
}

// CourseRepository is the storage collaborator for the discovery engine.
// Every method constrains results to open courses except GetByID, which the
// booking validator uses for direct lookups.
type CourseRepository interface {
	GetByID(id string) (*models.Course, error)
	GetByName(name, state, country string) (*models.Course, error)
	FindOpen(q CourseQuery) ([]models.Course, error)
	FindOpenByIDs(ids []string) ([]models.Course, error)
	// NearbyIDs returns ids of open courses within radiusMiles of the
	// center point, nearest first.
	NearbyIDs(lat, lon, radiusMiles float64) ([]CourseDistance, error)
}
