package geofence

import "time"

// DefaultRadiusMeters applies when a work site is created without an
// explicit radius.
const DefaultRadiusMeters = 100

// WorkSite is an authorized check-in circle, owned by the employer
// configuration and read-only to the validator.
type WorkSite struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reading is a live GPS sample. When the caller took multiple samples it
// passes the most accurate one (lowest AccuracyMeters).
type Reading struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
}

// Reason classifies a validation outcome.
type Reason string

const (
	ReasonWithinRadius      Reason = "within_radius"
	ReasonTooFar            Reason = "too_far"
	ReasonNoSitesConfigured Reason = "no_sites_configured"
)

// Result is the outcome of validating a reading. On success Site is the
// matched site; on failure it is the nearest one so the caller can produce
// a meaningful error message. Site is nil only when no sites are
// configured, which is an administrative error, not a distance problem.
type Result struct {
	Valid          bool
	Reason         Reason
	Site           *WorkSite
	DistanceMeters float64
}
