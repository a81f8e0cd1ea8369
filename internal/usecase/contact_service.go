package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futliga/liga-api/internal/domain/contact"
	"github.com/futliga/liga-api/internal/platform/id"
)

const (
	contactPageDefault = 20
	contactPageMax     = 100
)

type ContactService struct {
	contactRepo contact.Repository
	idGen       id.Generator
	now         func() time.Time
}

func NewContactService(contactRepo contact.Repository, idGen id.Generator) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *ContactService) SubmitMessage(ctx context.Context, name, email, body string) (contact.Message, error) {
	messageID, err := s.idGen.NewID()
	if err != nil {
		return contact.Message{}, fmt.Errorf("generate message id: %w", err)
	}

	item := contact.Message{
		ID:        messageID,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Body:      strings.TrimSpace(body),
		CreatedAt: s.now(),
	}
	if err := item.Validate(); err != nil {
		return contact.Message{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.contactRepo.Create(ctx, item); err != nil {
		return contact.Message{}, fmt.Errorf("create contact message: %w", err)
	}

	return item, nil
}

// ListInbox returns one page of the inbox, newest first. Cursors are
// message IDs from a previous page and are mutually exclusive.
func (s *ContactService) ListInbox(ctx context.Context, page contact.Page) ([]contact.Message, error) {
	if page.Limit <= 0 {
		page.Limit = contactPageDefault
	}
	if page.Limit > contactPageMax {
		return nil, fmt.Errorf("%w: page size above %d", ErrInvalidInput, contactPageMax)
	}
	if page.StartAfter != "" && page.EndBefore != "" {
		return nil, fmt.Errorf("%w: start_after and end_before are mutually exclusive", ErrInvalidInput)
	}

	items, err := s.contactRepo.ListPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}

	return items, nil
}
