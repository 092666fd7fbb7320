package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"gorm.io/datatypes"
)

type ShowcaseUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Icon        *string
	Color       *string
	LiveURL     *string
	Status      *string
	Features    []string
	TechStack   []string
}

type ShowcaseService interface {
	Create(ctx context.Context, p *model.ShowcaseProject) error
	Get(ctx context.Context, id uuid.UUID) (*model.ShowcaseProject, error)
	List(ctx context.Context, status string) ([]model.ShowcaseProject, error)
	Update(ctx context.Context, id uuid.UUID, in ShowcaseUpdate) (*model.ShowcaseProject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type showcaseService struct{ r repo.ShowcaseRepo }

func NewShowcaseService(r repo.ShowcaseRepo) ShowcaseService {
	return &showcaseService{r: r}
}

func validateShowcase(p *model.ShowcaseProject) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return invalid("title is required")
	case strings.TrimSpace(p.Description) == "":
		return invalid("description is required")
	case strings.TrimSpace(p.Icon) == "":
		return invalid("icon is required")
	case !slices.Contains(model.ShowcaseCategories, p.Category):
		return invalid("category must be one of %s", strings.Join(model.ShowcaseCategories, ", "))
	case !slices.Contains(model.ShowcaseStatuses, p.Status):
		return invalid("status must be one of %s", strings.Join(model.ShowcaseStatuses, ", "))
	}
	return nil
}

func (s *showcaseService) Create(ctx context.Context, p *model.ShowcaseProject) error {
	if p.Color == "" {
		p.Color = model.DefaultShowcaseColor
	}
	if p.Status == "" {
		p.Status = model.ShowcaseStatusActive
	}
	if p.Features == nil {
		p.Features = datatypes.JSONSlice[string]{}
	}
	if p.TechStack == nil {
		p.TechStack = datatypes.JSONSlice[string]{}
	}
	if err := validateShowcase(p); err != nil {
		return err
	}
	return s.r.Create(ctx, p)
}

func (s *showcaseService) Get(ctx context.Context, id uuid.UUID) (*model.ShowcaseProject, error) {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "project")
	}
	return p, nil
}

func (s *showcaseService) List(ctx context.Context, status string) ([]model.ShowcaseProject, error) {
	if status != "" && !slices.Contains(model.ShowcaseStatuses, status) {
		return nil, invalid("status must be one of %s", strings.Join(model.ShowcaseStatuses, ", "))
	}
	return s.r.List(ctx, status)
}

func (s *showcaseService) Update(ctx context.Context, id uuid.UUID, in ShowcaseUpdate) (*model.ShowcaseProject, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Icon != nil {
		p.Icon = *in.Icon
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Features != nil {
		p.Features = datatypes.NewJSONSlice(in.Features)
	}
	if in.TechStack != nil {
		p.TechStack = datatypes.NewJSONSlice(in.TechStack)
	}
	if err := validateShowcase(p); err != nil {
		return nil, err
	}

	if err := s.r.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *showcaseService) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(s.r.Delete(ctx, id), "project")
}
