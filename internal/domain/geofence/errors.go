package geofence

import "errors"

var (
	ErrWorkSiteNotFound   = errors.New("work site not found")
	ErrNoSitesConfigured  = errors.New("no work sites configured for this employee")
	ErrOutsideAllSites    = errors.New("location is outside every authorized work site")
	ErrWorkSiteNameExists = errors.New("work site name already exists")
)
