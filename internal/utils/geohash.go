package utils

import (
	"github.com/mmcloughlin/geohash"
)

// CandidateGeohashPrecision gives cell sizes around 150m, enough to
// place a driver on a dispatcher's map without exposing an exact
// position over the wire
const CandidateGeohashPrecision = 7

// EncodeLocation converts a coordinate pair to a geohash string
func EncodeLocation(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}
