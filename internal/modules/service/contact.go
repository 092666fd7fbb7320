package service

import (
	"context"
	"strings"

	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
}

type contactService struct {
	r      repo.ContactRepo
	events EventPublisher
	log    *zap.Logger
}

func NewContactService(r repo.ContactRepo, events EventPublisher, log *zap.Logger) ContactService {
	return &contactService{r: r, events: events, log: log}
}

func (s *contactService) Submit(ctx context.Context, c *model.Contact) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return invalid("name is required")
	case strings.TrimSpace(c.Email) == "":
		return invalid("email is required")
	case strings.TrimSpace(c.Message) == "":
		return invalid("message is required")
	}
	if err := s.r.Create(ctx, c); err != nil {
		return err
	}

	if err := s.events.Publish(ctx, EventContactSubmitted, map[string]interface{}{
		"contact_id": c.ID,
		"name":       c.Name,
		"email":      c.Email,
		"subject":    c.Subject,
	}); err != nil {
		s.log.Sugar().Errorw("publish contact event", "contact_id", c.ID, "err", err)
	}
	return nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.r.List(ctx)
}
