package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
)

const basePointConstraint = "project_file_infos_project_id_base_point_id_key"
const projectNameConstraint = "projects_name_owner_ref_key"

type sqlProjectRepository struct {
	db SQLQuerier
}

// NewSqlProjectRepository creates sqlProjectRepository that implements port.ProjectRepository
func NewSqlProjectRepository(db SQLQuerier) port.ProjectRepository {
	return &sqlProjectRepository{
		db: db,
	}
}

// Save upserts the project row and inserts file infos that are not yet
// persisted. The unique (project_id, base_point_id) constraint backs the
// dedup check in the service and surfaces as domain.ErrDuplicateBasePoint.
func (s *sqlProjectRepository) Save(ctx context.Context, project *domain.Project) (*domain.Project, error) {

	query := `INSERT INTO projects (id, name, owner_ref, status, start_ts, end_ts, agreement_status, price, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              ON CONFLICT (id) DO UPDATE
              SET name = EXCLUDED.name,
                  owner_ref = EXCLUDED.owner_ref,
                  status = EXCLUDED.status,
                  start_ts = EXCLUDED.start_ts,
                  end_ts = EXCLUDED.end_ts,
                  agreement_status = EXCLUDED.agreement_status,
                  price = EXCLUDED.price,
                  updated_at = now()`

	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.Name,
		project.OwnerRef,
		project.Status,
		project.StartTimestamp,
		project.EndTimestamp,
		project.AgreementStatus,
		project.Price,
		project.CreatedAt,
	)
	if err != nil {
		return nil, mapConstraintError(err, "error upserting project")
	}

	infoQuery := `INSERT INTO project_file_infos (id, project_id, base_point_id, file_type, stored_file_refs, created_at)
                  VALUES ($1, $2, $3, $4, $5, $6)
                  ON CONFLICT (id) DO NOTHING`

	for _, info := range project.FileInfos {
		_, err := s.db.ExecContext(ctx, infoQuery,
			info.ID,
			project.ID,
			info.BasePointID,
			info.FileType,
			pq.Array(info.StoredFileRefs),
			info.CreatedAt,
		)
		if err != nil {
			return nil, mapConstraintError(err, "error inserting project file info")
		}
	}

	return project, nil
}

// FindByID finds a project and its file infos by id
func (s *sqlProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.findOne(ctx, `WHERE id = $1`, id)
}

// FindByName finds a project by name
func (s *sqlProjectRepository) FindByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.findOne(ctx, `WHERE name = $1`, name)
}

// FindByNameAndOwner finds a project by its (name, owner) pair
func (s *sqlProjectRepository) FindByNameAndOwner(ctx context.Context, name, ownerRef string) (*domain.Project, error) {
	return s.findOne(ctx, `WHERE name = $1 AND owner_ref = $2`, name, ownerRef)
}

// ListAll returns all projects ordered by creation time descending
func (s *sqlProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	return s.list(ctx, ``)
}

// ListByOwner returns an owner's projects ordered by creation time descending
func (s *sqlProjectRepository) ListByOwner(ctx context.Context, ownerRef string) ([]domain.Project, error) {
	return s.list(ctx, `WHERE owner_ref = $1`, ownerRef)
}

const projectColumns = `id, name, owner_ref, status, start_ts, end_ts, agreement_status, price, created_at, updated_at`

func (s *sqlProjectRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects %s`, projectColumns, where)

	var dbProj dbProject
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&dbProj.ID,
		&dbProj.Name,
		&dbProj.OwnerRef,
		&dbProj.Status,
		&dbProj.StartTS,
		&dbProj.EndTS,
		&dbProj.AgreementStatus,
		&dbProj.Price,
		&dbProj.CreatedAt,
		&dbProj.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	project := dbProj.ToDomain()
	infos, err := s.findFileInfos(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.FileInfos = infos

	return project, nil
}

func (s *sqlProjectRepository) list(ctx context.Context, where string, args ...any) ([]domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects %s ORDER BY created_at DESC`, projectColumns, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var dbProj dbProject
		err := rows.Scan(
			&dbProj.ID,
			&dbProj.Name,
			&dbProj.OwnerRef,
			&dbProj.Status,
			&dbProj.StartTS,
			&dbProj.EndTS,
			&dbProj.AgreementStatus,
			&dbProj.Price,
			&dbProj.CreatedAt,
			&dbProj.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning project: %w", err)
		}
		projects = append(projects, *dbProj.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

func (s *sqlProjectRepository) findFileInfos(ctx context.Context, projectID uuid.UUID) ([]domain.FileInfo, error) {
	query := `SELECT id, project_id, base_point_id, file_type, stored_file_refs, created_at
              FROM project_file_infos
              WHERE project_id = $1
              ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying project file infos: %w", err)
	}
	defer rows.Close()

	var infos []domain.FileInfo
	for rows.Next() {
		var info domain.FileInfo
		var refs pq.StringArray
		err := rows.Scan(
			&info.ID,
			&info.ProjectID,
			&info.BasePointID,
			&info.FileType,
			&refs,
			&info.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning project file info: %w", err)
		}
		info.StoredFileRefs = refs
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project file infos: %w", err)
	}

	return infos, nil
}

func mapConstraintError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case basePointConstraint:
			return domain.ErrDuplicateBasePoint
		case projectNameConstraint:
			return fmt.Errorf("project name: %w", domain.ErrAlreadyExists)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// dbProject represents a project in DB
type dbProject struct {
	ID              uuid.UUID      `db:"id"`
	Name            string         `db:"name"`
	OwnerRef        string         `db:"owner_ref"`
	Status          string         `db:"status"`
	StartTS         sql.NullTime   `db:"start_ts"`
	EndTS           sql.NullTime   `db:"end_ts"`
	AgreementStatus bool           `db:"agreement_status"`
	Price           sql.NullString `db:"price"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// ToDomain converts to domain.Project
func (p *dbProject) ToDomain() *domain.Project {
	project := &domain.Project{
		ID:              p.ID,
		Name:            p.Name,
		OwnerRef:        p.OwnerRef,
		Status:          domain.ProjectStatus(p.Status),
		AgreementStatus: p.AgreementStatus,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.StartTS.Valid {
		project.StartTimestamp = &p.StartTS.Time
	}
	if p.EndTS.Valid {
		project.EndTimestamp = &p.EndTS.Time
	}
	if p.Price.Valid {
		project.Price = p.Price.String
	}
	return project
}
