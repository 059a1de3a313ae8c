package contact

import (
	"context"

	"github.com/google/uuid"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
)

type ListContactsUseCase struct {
	contactRepo contact.Repository
}

func NewListContactsUseCase(repo contact.Repository) *ListContactsUseCase {
	return &ListContactsUseCase{contactRepo: repo}
}

// Execute returns every submission, newest first.
func (uc *ListContactsUseCase) Execute(ctx context.Context) ([]*contact.Contact, error) {
	return uc.contactRepo.List(ctx)
}

type MarkReadUseCase struct {
	contactRepo contact.Repository
}

func NewMarkReadUseCase(repo contact.Repository) *MarkReadUseCase {
	return &MarkReadUseCase{contactRepo: repo}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	return uc.contactRepo.MarkRead(ctx, id)
}

type DeleteContactUseCase struct {
	contactRepo contact.Repository
}

func NewDeleteContactUseCase(repo contact.Repository) *DeleteContactUseCase {
	return &DeleteContactUseCase{contactRepo: repo}
}

func (uc *DeleteContactUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	return uc.contactRepo.Delete(ctx, id)
}
