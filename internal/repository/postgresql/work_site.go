package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/elia-nu/geo-sub002/internal/domain/geofence"
	"github.com/elia-nu/geo-sub002/internal/pkg/database"
)

type workSiteRepository struct {
	db *database.DB
}

func NewWorkSiteRepository(db *database.DB) geofence.WorkSiteRepository {
	return &workSiteRepository{db: db}
}

const workSiteColumns = `id, name, latitude, longitude, radius_meters, created_at, updated_at`

// Create implements geofence.WorkSiteRepository.
func (r *workSiteRepository) Create(ctx context.Context, site geofence.WorkSite) (geofence.WorkSite, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM work_sites WHERE name = $1)`, site.Name).Scan(&exists); err != nil {
		return geofence.WorkSite{}, fmt.Errorf("failed to check work site name: %w", err)
	}
	if exists {
		return geofence.WorkSite{}, geofence.ErrWorkSiteNameExists
	}

	query := `
		INSERT INTO work_sites (id, name, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	site.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		site.ID, site.Name, site.Latitude, site.Longitude, site.RadiusMeters,
	).Scan(&site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		return geofence.WorkSite{}, fmt.Errorf("failed to create work site: %w", err)
	}

	return site, nil
}

// GetByID implements geofence.WorkSiteRepository.
func (r *workSiteRepository) GetByID(ctx context.Context, id string) (geofence.WorkSite, error) {
	q := GetQuerier(ctx, r.db)

	site, err := scanWorkSite(q.QueryRow(ctx,
		`SELECT `+workSiteColumns+` FROM work_sites WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return geofence.WorkSite{}, geofence.ErrWorkSiteNotFound
		}
		return geofence.WorkSite{}, err
	}
	return site, nil
}

// List implements geofence.WorkSiteRepository.
func (r *workSiteRepository) List(ctx context.Context) ([]geofence.WorkSite, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+workSiteColumns+` FROM work_sites ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sites: %w", err)
	}
	defer rows.Close()

	return collectWorkSites(rows)
}

// ListByEmployee implements geofence.WorkSiteRepository.
func (r *workSiteRepository) ListByEmployee(ctx context.Context, employeeID string) ([]geofence.WorkSite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ws.id, ws.name, ws.latitude, ws.longitude, ws.radius_meters, ws.created_at, ws.updated_at
		FROM work_sites ws
		JOIN employee_work_sites ews ON ews.work_site_id = ws.id
		WHERE ews.employee_id = $1
		ORDER BY ws.name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sites for employee: %w", err)
	}
	defer rows.Close()

	return collectWorkSites(rows)
}

// AssignEmployee implements geofence.WorkSiteRepository.
func (r *workSiteRepository) AssignEmployee(ctx context.Context, siteID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_work_sites (work_site_id, employee_id)
		VALUES ($1, $2)
		ON CONFLICT (work_site_id, employee_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, siteID, employeeID); err != nil {
		return fmt.Errorf("failed to assign employee to work site: %w", err)
	}
	return nil
}

// Delete implements geofence.WorkSiteRepository.
func (r *workSiteRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_sites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return geofence.ErrWorkSiteNotFound
	}
	return nil
}

func scanWorkSite(row pgx.Row) (geofence.WorkSite, error) {
	var site geofence.WorkSite
	err := row.Scan(
		&site.ID, &site.Name, &site.Latitude, &site.Longitude, &site.RadiusMeters,
		&site.CreatedAt, &site.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return geofence.WorkSite{}, err
		}
		return geofence.WorkSite{}, fmt.Errorf("failed to scan work site: %w", err)
	}
	return site, nil
}

func collectWorkSites(rows pgx.Rows) ([]geofence.WorkSite, error) {
	var sites []geofence.WorkSite
	for rows.Next() {
		site, err := scanWorkSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}
