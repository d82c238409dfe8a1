package geofence

import (
	"context"
	"fmt"

	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/geofence"
)

type SiteServiceImpl struct {
	siteRepo     geofence.WorkSiteRepository
	employeeRepo employee.Repository
}

func NewSiteService(siteRepo geofence.WorkSiteRepository, employeeRepo employee.Repository) geofence.SiteService {
	return &SiteServiceImpl{
		siteRepo:     siteRepo,
		employeeRepo: employeeRepo,
	}
}

var _ geofence.SiteService = (*SiteServiceImpl)(nil)

func (s *SiteServiceImpl) Create(ctx context.Context, req geofence.CreateWorkSiteRequest) (geofence.WorkSiteResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.WorkSiteResponse{}, err
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = geofence.DefaultRadiusMeters
	}

	site, err := s.siteRepo.Create(ctx, geofence.WorkSite{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: radius,
	})
	if err != nil {
		return geofence.WorkSiteResponse{}, fmt.Errorf("failed to create work site: %w", err)
	}

	return siteResponse(site), nil
}

func (s *SiteServiceImpl) List(ctx context.Context) ([]geofence.WorkSiteResponse, error) {
	sites, err := s.siteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sites: %w", err)
	}

	responses := make([]geofence.WorkSiteResponse, 0, len(sites))
	for _, site := range sites {
		responses = append(responses, siteResponse(site))
	}
	return responses, nil
}

func (s *SiteServiceImpl) AssignEmployee(ctx context.Context, siteID, employeeID string) error {
	if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
		return err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}

	if err := s.siteRepo.AssignEmployee(ctx, siteID, employeeID); err != nil {
		return fmt.Errorf("failed to assign employee to work site: %w", err)
	}
	return nil
}

func (s *SiteServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.siteRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.siteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete work site: %w", err)
	}
	return nil
}

func siteResponse(site geofence.WorkSite) geofence.WorkSiteResponse {
	return geofence.WorkSiteResponse{
		ID:           site.ID,
		Name:         site.Name,
		Latitude:     site.Latitude,
		Longitude:    site.Longitude,
		RadiusMeters: site.RadiusMeters,
	}
}
