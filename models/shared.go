package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lon, lat float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

// Lon returns the longitude component, or 0 when the point is malformed.
func (p *GeoPoint) Lon() float64 {
	if p == nil || len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Lat returns the latitude component, or 0 when the point is malformed.
func (p *GeoPoint) Lat() float64 {
	if p == nil || len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}
