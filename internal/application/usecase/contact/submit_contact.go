package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type SubmitContactUseCase struct {
	contactRepo contact.Repository
	notifier    service.ContactNotifier
	logger      logger.Logger
}

func NewSubmitContactUseCase(repo contact.Repository, notifier service.ContactNotifier, log logger.Logger) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		contactRepo: repo,
		notifier:    notifier,
		logger:      log,
	}
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Message string
}

type SubmitContactOutput struct {
	Contact *contact.Contact
}

// Execute persists the submission and fires the notification without waiting
// for it. The submission succeeds once the write does; notification failure is
// logged and never surfaces to the caller.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	newContact := &contact.Contact{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := newContact.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("please provide all fields", err)
	}

	if err := uc.contactRepo.Save(ctx, newContact); err != nil {
		return nil, err
	}

	go func() {
		if err := uc.notifier.NotifySubmitted(context.Background(), newContact); err != nil {
			uc.logger.Error("Failed to dispatch contact notification", err,
				zap.String("contact_id", newContact.ID.String()))
		}
	}()

	return &SubmitContactOutput{Contact: newContact}, nil
}
