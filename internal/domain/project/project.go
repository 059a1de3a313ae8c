package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Github       string    `json:"github"`
	LiveLink     string    `json:"liveLink"`
	Image        string    `json:"image"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ParseTechnologies splits a comma-separated form value into a trimmed list,
// preserving order. Empty segments are dropped.
func ParseTechnologies(s string) []string {
	parts := strings.Split(s, ",")
	techs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			techs = append(techs, p)
		}
	}
	return techs
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	// List returns every project, newest first.
	List(ctx context.Context) ([]*Project, error)
}
