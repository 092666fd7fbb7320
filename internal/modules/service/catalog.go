package service

import (
	"context"
	"strings"

	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"gorm.io/datatypes"
)

// CatalogService manages the offerings shown on the services page.
type CatalogService interface {
	Create(ctx context.Context, s *model.Service) error
	List(ctx context.Context) ([]model.Service, error)
}

type catalogService struct{ r repo.ServiceRepo }

func NewCatalogService(r repo.ServiceRepo) CatalogService {
	return &catalogService{r: r}
}

func (c *catalogService) Create(ctx context.Context, s *model.Service) error {
	switch {
	case strings.TrimSpace(s.Title) == "":
		return invalid("title is required")
	case strings.TrimSpace(s.Description) == "":
		return invalid("description is required")
	case strings.TrimSpace(s.Icon) == "":
		return invalid("icon is required")
	}
	if s.Color == "" {
		s.Color = model.DefaultServiceColor
	}
	if s.Features == nil {
		s.Features = datatypes.JSONSlice[string]{}
	}
	return c.r.Create(ctx, s)
}

func (c *catalogService) List(ctx context.Context) ([]model.Service, error) {
	return c.r.List(ctx)
}
