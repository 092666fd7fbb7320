package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"go.uber.org/zap"
)

// ClientSummary is a client plus totals over its projects, computed per read.
type ClientSummary struct {
	model.Client
	ProjectsCount  int     `json:"projects_count"`
	TotalDealValue float64 `json:"total_deal_value"`
	TotalAdvance   float64 `json:"total_advance"`
	TotalRemaining float64 `json:"total_remaining"`
}

type ClientUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Status  *string
	Advance *float64
}

type ClientService interface {
	Create(ctx context.Context, c *model.Client) error
	Get(ctx context.Context, id uuid.UUID) (*ClientSummary, error)
	List(ctx context.Context) ([]ClientSummary, error)
	Update(ctx context.Context, id uuid.UUID, in ClientUpdate) (*ClientSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	tx       repo.Transactor
	clients  repo.ClientRepo
	projects repo.ClientProjectRepo
	log      *zap.Logger
}

func NewClientService(tx repo.Transactor, clients repo.ClientRepo, projects repo.ClientProjectRepo, log *zap.Logger) ClientService {
	return &clientService{tx: tx, clients: clients, projects: projects, log: log}
}

func validateClient(c *model.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name is required")
	}
	if c.Advance < 0 {
		return invalid("advance must not be negative")
	}
	if !slices.Contains([]string{model.ClientStatusActive, model.ClientStatusInactive}, c.Status) {
		return invalid("status must be Active or Inactive")
	}
	return nil
}

func (s *clientService) Create(ctx context.Context, c *model.Client) error {
	if c.Status == "" {
		c.Status = model.ClientStatusActive
	}
	if err := validateClient(c); err != nil {
		return err
	}
	// earnings start at zero and only move with project writes
	c.TotalEarnings = 0
	return s.clients.Create(ctx, c)
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*ClientSummary, error) {
	c, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "client")
	}
	projects, err := s.projects.ListByClient(ctx, id)
	if err != nil {
		return nil, err
	}
	out := summarize(*c, projects)
	return &out, nil
}

func (s *clientService) List(ctx context.Context) ([]ClientSummary, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	projects, err := s.projects.ListByClientIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byClient := make(map[uuid.UUID][]model.ClientProject, len(clients))
	for _, p := range projects {
		byClient[p.ClientID] = append(byClient[p.ClientID], p)
	}

	out := make([]ClientSummary, 0, len(clients))
	for _, c := range clients {
		out = append(out, summarize(c, byClient[c.ID]))
	}
	return out, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, in ClientUpdate) (*ClientSummary, error) {
	c, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "client")
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.Advance != nil {
		c.Advance = *in.Advance
	}
	if err := validateClient(c); err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.clients.Delete(ctx, id)
	})
	if err != nil {
		return translate(err, "client")
	}
	s.log.Sugar().Infow("client deleted", "client_id", id)
	return nil
}

func summarize(c model.Client, projects []model.ClientProject) ClientSummary {
	out := ClientSummary{Client: c, ProjectsCount: len(projects)}
	for _, p := range projects {
		out.TotalDealValue += p.TotalAmount
		out.TotalAdvance += p.AdvancePaid
		out.TotalRemaining += p.RemainingAmount
	}
	return out
}
