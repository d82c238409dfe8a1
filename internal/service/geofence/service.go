package geofence

import (
	"github.com/elia-nu/geo-sub002/internal/domain/geofence"
	"github.com/elia-nu/geo-sub002/internal/pkg/utils"
)

type ValidatorImpl struct{}

func NewValidator() *ValidatorImpl {
	return &ValidatorImpl{}
}

// Validate implements geofence.Validator. A reading is valid when its
// great-circle distance to at least one site is within that site's radius.
// On failure the nearest site is reported, never an arbitrary one.
func (v *ValidatorImpl) Validate(reading geofence.Reading, sites []geofence.WorkSite) geofence.Result {
	if len(sites) == 0 {
		return geofence.Result{
			Valid:  false,
			Reason: geofence.ReasonNoSitesConfigured,
		}
	}

	var nearest *geofence.WorkSite
	nearestDistance := 0.0

	for i := range sites {
		site := sites[i]
		distance := utils.HaversineDistance(
			reading.Latitude, reading.Longitude,
			site.Latitude, site.Longitude,
		)

		if distance <= site.RadiusMeters {
			return geofence.Result{
				Valid:          true,
				Reason:         geofence.ReasonWithinRadius,
				Site:           &site,
				DistanceMeters: distance,
			}
		}

		if nearest == nil || distance < nearestDistance {
			nearest = &site
			nearestDistance = distance
		}
	}

	return geofence.Result{
		Valid:          false,
		Reason:         geofence.ReasonTooFar,
		Site:           nearest,
		DistanceMeters: nearestDistance,
	}
}

var _ geofence.Validator = (*ValidatorImpl)(nil)
