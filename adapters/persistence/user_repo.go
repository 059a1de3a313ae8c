package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/user"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
)

type postgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(db *pgxpool.Pool) user.Repository {
	return &postgresUserRepo{db: db}
}

func scanUser(row pgx.Row, identifier string) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", identifier)
		}
		return nil, apperror.NewInternal("failed to scan user row", err)
	}
	return u, nil
}

func (r *postgresUserRepo) Save(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewInvalidInput("username or email already registered", err)
		}
		return apperror.NewInternal("failed to save user", err)
	}
	return nil
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`
	return scanUser(r.db.QueryRow(ctx, query, email), email)
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *postgresUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return apperror.NewInternal("failed to update password", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("user", id.String())
	}
	return nil
}
