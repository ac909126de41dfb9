package models

// Candidate is an available driver matched against a reservation's
// pickup point and vehicle-type constraint
type Candidate struct {
	DriverID  string  `json:"driver_id" db:"driver_id"`
	FirstName string  `json:"first_name" db:"first_name"`
	LastName  string  `json:"last_name" db:"last_name"`
	Phone     string  `json:"phone" db:"phone"`
	Brand     string  `json:"brand" db:"brand"`
	Seats     int     `json:"seats" db:"seats"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Geohash   string  `json:"geohash"`
	Rating    float64 `json:"rating"`
}

// BoundingBox is a latitude/longitude rectangle used when scanning
// driver positions around a pickup point
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoxAround builds a bounding box centered on a point, extending delta
// degrees in every direction
func BoxAround(lat, lng, delta float64) BoundingBox {
	return BoundingBox{
		MinLat: lat - delta,
		MaxLat: lat + delta,
		MinLng: lng - delta,
		MaxLng: lng + delta,
	}
}

// MatchResult is the outcome of a candidate search. An empty Candidates
// slice with RadiusM of the widest tier is the "no drivers found"
// outcome, which is user-visible messaging, not an error.
type MatchResult struct {
	Candidates []Candidate `json:"candidates"`
	RadiusM    int         `json:"radius_m"`
}

// Found reports whether the search produced any candidates
func (m *MatchResult) Found() bool {
	return len(m.Candidates) > 0
}
