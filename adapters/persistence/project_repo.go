package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/project"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, title, description, technologies, github, live_link, image, featured, created_at, updated_at"

func scanProject(row pgx.Row, identifier string) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Technologies,
		&p.Github,
		&p.LiveLink,
		&p.Image,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", identifier)
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows, "")
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, title, description, technologies, github, live_link, image, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Technologies, p.Github,
		p.LiveLink, p.Image, p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, technologies = $4, github = $5,
			live_link = $6, image = $7, featured = $8, updated_at = $9
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Technologies, p.Github,
		p.LiveLink, p.Image, p.Featured, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	return scanProjects(rows)
}
