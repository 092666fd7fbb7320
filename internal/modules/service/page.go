package service

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PageService serves static page copy keyed by page name.
type PageService interface {
	Get(page string) (map[string]interface{}, error)
}

type pageService struct {
	pages map[string]map[string]interface{}
}

// NewPageService parses raw YAML of the form {page: {field: value}}.
func NewPageService(raw []byte) (PageService, error) {
	pages := map[string]map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}

	normalized := make(map[string]map[string]interface{}, len(pages))
	for k, v := range pages {
		normalized[strings.ToLower(k)] = v
	}
	return &pageService{pages: normalized}, nil
}

func (s *pageService) Get(page string) (map[string]interface{}, error) {
	p, ok := s.pages[strings.ToLower(strings.TrimSpace(page))]
	if !ok {
		return nil, notFound("page")
	}
	return p, nil
}
