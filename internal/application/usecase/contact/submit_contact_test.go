package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []*contact.Contact
}

func (r *fakeContactRepo) Save(ctx context.Context, c *contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.contacts = append(r.contacts, &cp)
	return nil
}

func (r *fakeContactRepo) List(ctx context.Context) ([]*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*contact.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

func (r *fakeContactRepo) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.ID == id {
			c.IsRead = true
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("contact", id.String())
}

func (r *fakeContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("contact", id.String())
}

func (r *fakeContactRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contacts)
}

type fakeNotifier struct {
	notified chan *contact.Contact
	failWith error
}

func newFakeNotifier(failWith error) *fakeNotifier {
	return &fakeNotifier{notified: make(chan *contact.Contact, 1), failWith: failWith}
}

func (n *fakeNotifier) NotifySubmitted(ctx context.Context, c *contact.Contact) error {
	n.notified <- c
	return n.failWith
}

func TestExecute_SavesAndNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := newFakeNotifier(nil)
	uc := NewSubmitContactUseCase(repo, notifier, logger.NewZapLogger("development"))

	out, err := uc.Execute(context.Background(), SubmitContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hi, I would like to discuss a project.",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Contact)

	assert.False(t, out.Contact.IsRead)
	assert.Equal(t, 1, repo.count())

	select {
	case notified := <-notifier.notified:
		assert.Equal(t, out.Contact.ID, notified.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestExecute_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := newFakeNotifier(errors.New("broker unreachable"))
	uc := NewSubmitContactUseCase(repo, notifier, logger.NewZapLogger("development"))

	out, err := uc.Execute(context.Background(), SubmitContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello",
	})

	require.NoError(t, err, "submission succeeds once the write does")
	assert.Equal(t, 1, repo.count())

	select {
	case <-notifier.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
	_ = out
}

func TestExecute_MissingFieldsRejectedBeforePersist(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := newFakeNotifier(nil)
	uc := NewSubmitContactUseCase(repo, notifier, logger.NewZapLogger("development"))

	_, err := uc.Execute(context.Background(), SubmitContactInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Zero(t, repo.count(), "nothing persists on validation failure")
	assert.Empty(t, notifier.notified)
}

func TestMarkReadAndDelete(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := newFakeNotifier(nil)
	submitUC := NewSubmitContactUseCase(repo, notifier, logger.NewZapLogger("development"))

	out, err := submitUC.Execute(context.Background(), SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Message: "Hi",
	})
	require.NoError(t, err)
	<-notifier.notified

	marked, err := NewMarkReadUseCase(repo).Execute(context.Background(), out.Contact.ID)
	require.NoError(t, err)
	assert.True(t, marked.IsRead)

	require.NoError(t, NewDeleteContactUseCase(repo).Execute(context.Background(), out.Contact.ID))
	assert.Zero(t, repo.count())

	err = NewDeleteContactUseCase(repo).Execute(context.Background(), out.Contact.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
