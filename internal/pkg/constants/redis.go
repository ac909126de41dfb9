package constants

// Redis keys for the online-driver pool. The pool mirrors the
// driver_availability table so candidate searches can cross-check
// eligibility without a second database round trip.
const (
	// KeyOnlineDrivers is a SET of driver IDs currently online
	KeyOnlineDrivers = "drivers:online"

	// KeyDriverGeo is a GEO index of online drivers' last known positions
	KeyDriverGeo = "drivers:geo"
)
