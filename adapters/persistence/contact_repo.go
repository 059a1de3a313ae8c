package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
)

type postgresContactRepo struct {
	db *pgxpool.Pool
}

func NewPostgresContactRepo(db *pgxpool.Pool) contact.Repository {
	return &postgresContactRepo{db: db}
}

var psqlContact = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanContact(row pgx.Row, identifier string) (*contact.Contact, error) {
	c := &contact.Contact{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.IsRead, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact", identifier)
		}
		return nil, apperror.NewInternal("failed to scan contact row", err)
	}
	return c, nil
}

func (r *postgresContactRepo) Save(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Email, c.Message, c.IsRead, c.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save contact", err)
	}
	return nil
}

func (r *postgresContactRepo) List(ctx context.Context) ([]*contact.Contact, error) {
	builder := psqlContact.Select("id, name, email, message, is_read, created_at").
		From("contacts").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list contacts query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contacts", err)
	}
	defer rows.Close()

	contacts := make([]*contact.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows, "")
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact rows", err)
	}
	return contacts, nil
}

func (r *postgresContactRepo) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	query := `
		UPDATE contacts SET is_read = true
		WHERE id = $1
		RETURNING id, name, email, message, is_read, created_at
	`
	return scanContact(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *postgresContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM contacts WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete contact", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("contact", id.String())
	}
	return nil
}
