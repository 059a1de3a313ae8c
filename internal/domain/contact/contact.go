package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

var ErrMissingFields = errors.New("name, email and message are required")

func (c *Contact) Validate() error {
	if c.Name == "" || c.Email == "" || c.Message == "" {
		return ErrMissingFields
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, c *Contact) error
	// List returns every submission, newest first.
	List(ctx context.Context) ([]*Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
