package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/bio"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type postgresBioRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresBioRepo(db *pgxpool.Pool, logger logger.Logger) bio.Repository {
	return &postgresBioRepo{db: db, logger: logger}
}

func (r *postgresBioRepo) FindSingleton(ctx context.Context) (*bio.Bio, error) {
	query := `
		SELECT id, name, title, bio, skills, email, github, linkedin, cv_link, image_url,
		       education, work_experience, certifications, created_at, updated_at
		FROM bio
		ORDER BY created_at
		LIMIT 1
	`
	b := &bio.Bio{}
	var skillsBytes, educationBytes, workBytes, certBytes []byte

	err := r.db.QueryRow(ctx, query).Scan(
		&b.ID,
		&b.Name,
		&b.Title,
		&b.Bio,
		&skillsBytes,
		&b.Email,
		&b.Github,
		&b.Linkedin,
		&b.CVLink,
		&b.ImageURL,
		&educationBytes,
		&workBytes,
		&certBytes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("bio", "singleton")
		}
		return nil, apperror.NewInternal("failed to query bio", err)
	}

	if err := json.Unmarshal(skillsBytes, &b.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal bio skills", zap.Error(err))
		b.Skills = []string{}
	}
	if err := json.Unmarshal(educationBytes, &b.Education); err != nil {
		r.logger.Warn("Failed to unmarshal bio education", zap.Error(err))
		b.Education = bio.Education{}
	}
	if err := json.Unmarshal(workBytes, &b.WorkExperience); err != nil {
		r.logger.Warn("Failed to unmarshal bio work experience", zap.Error(err))
		b.WorkExperience = []bio.WorkExperience{}
	}
	if err := json.Unmarshal(certBytes, &b.Certifications); err != nil {
		r.logger.Warn("Failed to unmarshal bio certifications", zap.Error(err))
		b.Certifications = []bio.Certification{}
	}

	return b, nil
}

func (r *postgresBioRepo) marshalDocumentFields(b *bio.Bio) (skills, education, work, certs []byte, err error) {
	if skills, err = json.Marshal(b.Skills); err != nil {
		return nil, nil, nil, nil, apperror.NewInternal("failed to marshal bio skills", err)
	}
	if education, err = json.Marshal(b.Education); err != nil {
		return nil, nil, nil, nil, apperror.NewInternal("failed to marshal bio education", err)
	}
	if work, err = json.Marshal(b.WorkExperience); err != nil {
		return nil, nil, nil, nil, apperror.NewInternal("failed to marshal bio work experience", err)
	}
	if certs, err = json.Marshal(b.Certifications); err != nil {
		return nil, nil, nil, nil, apperror.NewInternal("failed to marshal bio certifications", err)
	}
	return skills, education, work, certs, nil
}

func (r *postgresBioRepo) Save(ctx context.Context, b *bio.Bio) error {
	skills, education, work, certs, err := r.marshalDocumentFields(b)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bio (id, name, title, bio, skills, email, github, linkedin, cv_link, image_url,
		                 education, work_experience, certifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.db.Exec(ctx, query,
		b.ID, b.Name, b.Title, b.Bio, skills, b.Email, b.Github, b.Linkedin, b.CVLink, b.ImageURL,
		education, work, certs, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save bio", err)
	}
	return nil
}

func (r *postgresBioRepo) Update(ctx context.Context, b *bio.Bio) error {
	skills, education, work, certs, err := r.marshalDocumentFields(b)
	if err != nil {
		return err
	}

	query := `
		UPDATE bio SET
			name = $2, title = $3, bio = $4, skills = $5, email = $6, github = $7,
			linkedin = $8, cv_link = $9, image_url = $10, education = $11,
			work_experience = $12, certifications = $13, updated_at = $14
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		b.ID, b.Name, b.Title, b.Bio, skills, b.Email, b.Github,
		b.Linkedin, b.CVLink, b.ImageURL, education, work, certs, b.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update bio", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("bio", b.ID.String())
	}
	return nil
}
