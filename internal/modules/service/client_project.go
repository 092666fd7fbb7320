package service

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/infra/metrics"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RequirementInput struct {
	Text      string            `json:"text"`
	CreatedAt *time.Time        `json:"created_at"`
	Files     []AttachmentInput `json:"files"`
}

type ProjectInput struct {
	ClientID     uuid.UUID
	Title        string
	Category     string
	Status       string
	TotalAmount  *float64
	AdvancePaid  float64
	LiveURL      string
	Description  string
	StartDate    *time.Time
	Deadline     *time.Time
	Requirements []RequirementInput
}

// ProjectUpdate carries only the fields to change.
type ProjectUpdate struct {
	Title        *string
	Category     *string
	Status       *string
	TotalAmount  *float64
	AdvancePaid  *float64
	LiveURL      *string
	Description  *string
	StartDate    *time.Time
	Deadline     *time.Time
	Requirements []RequirementInput
}

type ProjectStats struct {
	TotalAmount          float64 `json:"total_amount"`
	AdvancePaid          float64 `json:"advance_paid"`
	RemainingAmount      float64 `json:"remaining_amount"`
	TotalPayments        float64 `json:"total_payments"`
	PaymentCount         int     `json:"payment_count"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Status               string  `json:"status"`
	IsCompleted          bool    `json:"is_completed"`
}

// ClientProjectService owns the ledger between clients, projects and
// payments. Passing uuid.Nil as clientID skips the ownership check.
type ClientProjectService interface {
	Create(ctx context.Context, in ProjectInput) (*model.ClientProject, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ClientProject, error)
	List(ctx context.Context) ([]model.ClientProject, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.ClientProject, error)
	Update(ctx context.Context, clientID, id uuid.UUID, in ProjectUpdate) (*model.ClientProject, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.ClientProject, error)
	Delete(ctx context.Context, clientID, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
	Payments(ctx context.Context, id uuid.UUID) ([]model.Payment, error)
	Stats(ctx context.Context, id uuid.UUID) (*ProjectStats, error)
}

type clientProjectService struct {
	tx          repo.Transactor
	clients     repo.ClientRepo
	projects    repo.ClientProjectRepo
	payments    repo.PaymentRepo
	attachments AttachmentService
	log         *zap.Logger
}

func NewClientProjectService(
	tx repo.Transactor,
	clients repo.ClientRepo,
	projects repo.ClientProjectRepo,
	payments repo.PaymentRepo,
	attachments AttachmentService,
	log *zap.Logger,
) ClientProjectService {
	return &clientProjectService{
		tx:          tx,
		clients:     clients,
		projects:    projects,
		payments:    payments,
		attachments: attachments,
		log:         log,
	}
}

// cents rounds v to the two decimals the amount columns keep.
func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

// validateProject also rounds the amounts so that the derived remaining
// amount matches what the numeric columns store.
func validateProject(p *model.ClientProject) error {
	p.TotalAmount = cents(p.TotalAmount)
	p.AdvancePaid = cents(p.AdvancePaid)
	if strings.TrimSpace(p.Title) == "" {
		return invalid("title is required")
	}
	if p.TotalAmount < 0 {
		return invalid("total amount must not be negative")
	}
	if p.AdvancePaid < 0 {
		return invalid("advance paid must not be negative")
	}
	if !slices.Contains(model.ProjectStatuses, p.Status) {
		return invalid("status %q is not one of %s", p.Status, strings.Join(model.ProjectStatuses, ", "))
	}
	return nil
}

// requirements uploads inline files. Bare references are kept only when they
// match a file in known.
func (s *clientProjectService) requirements(ctx context.Context, in []RequirementInput, known []model.Attachment) ([]model.Requirement, error) {
	out := make([]model.Requirement, 0, len(in))
	for _, r := range in {
		files, err := s.attachments.StoreAll(ctx, "requirements", r.Files, known...)
		if err != nil {
			return nil, err
		}
		created := time.Now().UTC()
		if r.CreatedAt != nil {
			created = *r.CreatedAt
		}
		out = append(out, model.Requirement{
			Text:      strings.TrimSpace(r.Text),
			CreatedAt: created,
			Files:     files,
		})
	}
	return out, nil
}

func (s *clientProjectService) Create(ctx context.Context, in ProjectInput) (*model.ClientProject, error) {
	if in.ClientID == uuid.Nil {
		return nil, invalid("client is required")
	}
	if in.TotalAmount == nil {
		return nil, invalid("total amount is required")
	}

	p := &model.ClientProject{
		ClientID:    in.ClientID,
		Title:       in.Title,
		Category:    in.Category,
		Status:      in.Status,
		TotalAmount: *in.TotalAmount,
		AdvancePaid: in.AdvancePaid,
		LiveURL:     in.LiveURL,
		Description: in.Description,
		StartDate:   in.StartDate,
		Deadline:    in.Deadline,
	}
	if p.Category == "" {
		p.Category = model.DefaultProjectCategory
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusActive
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}
	p.RemainingAmount = cents(p.TotalAmount - p.AdvancePaid)

	reqs, err := s.requirements(ctx, in.Requirements, nil)
	if err != nil {
		return nil, err
	}
	p.Requirements = datatypes.NewJSONSlice(reqs)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.Get(ctx, p.ClientID); err != nil {
			return translate(err, "client")
		}
		if err := s.projects.Create(ctx, p); err != nil {
			return err
		}
		return s.clients.AdjustEarnings(ctx, p.ClientID, p.TotalAmount)
	})
	if err != nil {
		return nil, err
	}
	metrics.LedgerAdjustments.WithLabelValues("project_create").Inc()
	s.log.Sugar().Debugw("project created", "project_id", p.ID, "client_id", p.ClientID, "earnings_delta", p.TotalAmount)

	return s.Get(ctx, p.ID)
}

func (s *clientProjectService) Get(ctx context.Context, id uuid.UUID) (*model.ClientProject, error) {
	p, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "project")
	}
	return p, nil
}

func (s *clientProjectService) List(ctx context.Context) ([]model.ClientProject, error) {
	return s.projects.List(ctx)
}

func (s *clientProjectService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.ClientProject, error) {
	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return nil, translate(err, "client")
	}
	return s.projects.ListByClient(ctx, clientID)
}

// owned loads a project and hides it when it belongs to another client.
func (s *clientProjectService) owned(ctx context.Context, clientID, id uuid.UUID) (*model.ClientProject, error) {
	p, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "project")
	}
	if clientID != uuid.Nil && p.ClientID != clientID {
		return nil, notFound("project")
	}
	return p, nil
}

func (s *clientProjectService) Update(ctx context.Context, clientID, id uuid.UUID, in ProjectUpdate) (*model.ClientProject, error) {
	var reqs []model.Requirement
	if in.Requirements != nil {
		current, err := s.owned(ctx, clientID, id)
		if err != nil {
			return nil, err
		}
		var known []model.Attachment
		for _, r := range current.Requirements {
			known = append(known, r.Files...)
		}
		if reqs, err = s.requirements(ctx, in.Requirements, known); err != nil {
			return nil, err
		}
	}

	var delta float64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.owned(ctx, clientID, id)
		if err != nil {
			return err
		}
		oldTotal := p.TotalAmount

		if in.Title != nil {
			p.Title = *in.Title
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Status != nil {
			p.Status = *in.Status
		}
		if in.LiveURL != nil {
			p.LiveURL = *in.LiveURL
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.StartDate != nil {
			p.StartDate = in.StartDate
		}
		if in.Deadline != nil {
			p.Deadline = in.Deadline
		}
		if in.Requirements != nil {
			p.Requirements = datatypes.NewJSONSlice(reqs)
		}
		if in.TotalAmount != nil {
			p.TotalAmount = *in.TotalAmount
		}
		if in.AdvancePaid != nil {
			p.AdvancePaid = *in.AdvancePaid
		}
		if err := validateProject(p); err != nil {
			return err
		}
		if in.TotalAmount != nil || in.AdvancePaid != nil {
			p.RemainingAmount = cents(p.TotalAmount - p.AdvancePaid)
		}

		p.Client = nil
		if err := s.projects.Save(ctx, p); err != nil {
			return err
		}

		if in.TotalAmount != nil {
			delta = p.TotalAmount - oldTotal
			if delta != 0 {
				return s.clients.AdjustEarnings(ctx, p.ClientID, delta)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if delta != 0 {
		metrics.LedgerAdjustments.WithLabelValues("project_update").Inc()
		s.log.Sugar().Debugw("project total changed", "project_id", id, "earnings_delta", delta)
	}

	return s.Get(ctx, id)
}

func (s *clientProjectService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.ClientProject, error) {
	if !slices.Contains(model.ProjectStatuses, status) {
		return nil, invalid("status %q is not one of %s", status, strings.Join(model.ProjectStatuses, ", "))
	}
	if err := s.projects.UpdateStatus(ctx, id, status); err != nil {
		return nil, translate(err, "project")
	}
	return s.Get(ctx, id)
}

// remove deletes one project with its payments and takes its total off the
// owning client's earnings. Must run inside a transaction.
func (s *clientProjectService) remove(ctx context.Context, p *model.ClientProject) error {
	if err := s.projects.Delete(ctx, p.ID); err != nil {
		return err
	}
	if err := s.clients.AdjustEarnings(ctx, p.ClientID, -p.TotalAmount); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *clientProjectService) Delete(ctx context.Context, clientID, id uuid.UUID) error {
	var total float64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.owned(ctx, clientID, id)
		if err != nil {
			return err
		}
		total = p.TotalAmount
		return translate(s.remove(ctx, p), "project")
	})
	if err != nil {
		return err
	}
	metrics.LedgerAdjustments.WithLabelValues("project_delete").Inc()
	s.log.Sugar().Debugw("project deleted", "project_id", id, "earnings_delta", -total)
	return nil
}

// BulkDelete skips ids that do not exist and reports how many were removed.
func (s *clientProjectService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, invalid("project ids are required")
	}

	var deleted int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		projects, err := s.projects.ListByIDs(ctx, ids)
		if err != nil {
			return err
		}
		for i := range projects {
			if err := s.remove(ctx, &projects[i]); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	metrics.LedgerAdjustments.WithLabelValues("project_delete").Add(float64(deleted))
	return deleted, nil
}

func (s *clientProjectService) Payments(ctx context.Context, id uuid.UUID) ([]model.Payment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.payments.ListByProject(ctx, id)
}

func (s *clientProjectService) Stats(ctx context.Context, id uuid.UUID) (*ProjectStats, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &ProjectStats{
		TotalAmount:     p.TotalAmount,
		AdvancePaid:     p.AdvancePaid,
		RemainingAmount: p.RemainingAmount,
		PaymentCount:    len(payments),
		Status:          p.Status,
		IsCompleted:     p.RemainingAmount == 0,
	}
	for _, pay := range payments {
		out.TotalPayments += pay.Amount
	}
	if p.TotalAmount > 0 {
		out.CompletionPercentage = math.Round(p.AdvancePaid/p.TotalAmount*100*100) / 100
	}
	return out, nil
}
