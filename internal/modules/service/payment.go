package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/infra/metrics"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type PaymentInput struct {
	ClientID    uuid.UUID
	ProjectID   *uuid.UUID
	Amount      float64
	PaymentDate time.Time
	Method      string
	Notes       string
	Receipt     *AttachmentInput
}

type PaymentService interface {
	Create(ctx context.Context, in PaymentInput) (*model.Payment, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Payment, error)
	Delete(ctx context.Context, clientID, id uuid.UUID) error
}

type paymentService struct {
	tx          repo.Transactor
	clients     repo.ClientRepo
	projects    repo.ClientProjectRepo
	payments    repo.PaymentRepo
	attachments AttachmentService
	log         *zap.Logger
}

func NewPaymentService(
	tx repo.Transactor,
	clients repo.ClientRepo,
	projects repo.ClientProjectRepo,
	payments repo.PaymentRepo,
	attachments AttachmentService,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		tx:          tx,
		clients:     clients,
		projects:    projects,
		payments:    payments,
		attachments: attachments,
		log:         log,
	}
}

func (s *paymentService) Create(ctx context.Context, in PaymentInput) (*model.Payment, error) {
	in.Amount = cents(in.Amount)
	if in.Amount <= 0 {
		return nil, invalid("amount must be positive")
	}
	if in.PaymentDate.IsZero() {
		return nil, invalid("payment date is required")
	}
	if in.Method == "" {
		in.Method = model.DefaultPaymentMethod
	}
	if !slices.Contains(model.PaymentMethods, in.Method) {
		return nil, invalid("payment method %q is not one of %s", in.Method, strings.Join(model.PaymentMethods, ", "))
	}
	if in.ProjectID != nil && *in.ProjectID == uuid.Nil {
		in.ProjectID = nil
	}

	receipt, err := s.attachments.Store(ctx, "receipts", in.Receipt)
	if err != nil {
		return nil, err
	}

	p := &model.Payment{
		ClientID:    in.ClientID,
		ProjectID:   in.ProjectID,
		Amount:      in.Amount,
		PaymentDate: in.PaymentDate,
		Method:      in.Method,
		Notes:       in.Notes,
		Receipt:     datatypes.NewJSONType(receipt),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.Get(ctx, in.ClientID); err != nil {
			return translate(err, "client")
		}
		if p.ProjectID != nil {
			project, err := s.projects.Get(ctx, *p.ProjectID)
			if err != nil {
				return translate(err, "project")
			}
			if project.ClientID != p.ClientID {
				return notFound("project")
			}
		}
		if err := s.payments.Create(ctx, p); err != nil {
			return err
		}
		if p.ProjectID == nil {
			return nil
		}
		return s.projects.AdjustPaid(ctx, *p.ProjectID, p.Amount)
	})
	if err != nil {
		return nil, err
	}

	if p.ProjectID != nil {
		metrics.LedgerAdjustments.WithLabelValues("payment_create").Inc()
		s.log.Sugar().Debugw("payment applied", "payment_id", p.ID, "project_id", *p.ProjectID, "amount", p.Amount)
	}
	return p, nil
}

func (s *paymentService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Payment, error) {
	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return nil, translate(err, "client")
	}
	return s.payments.ListByClient(ctx, clientID)
}

func (s *paymentService) Delete(ctx context.Context, clientID, id uuid.UUID) error {
	var reversed *model.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.payments.Get(ctx, id)
		if err != nil {
			return translate(err, "payment")
		}
		if clientID != uuid.Nil && p.ClientID != clientID {
			return notFound("payment")
		}
		if err := s.payments.Delete(ctx, id); err != nil {
			return translate(err, "payment")
		}
		if p.ProjectID == nil {
			return nil
		}
		reversed = p
		return translate(s.projects.AdjustPaid(ctx, *p.ProjectID, -p.Amount), "project")
	})
	if err != nil {
		return err
	}

	if reversed != nil {
		metrics.LedgerAdjustments.WithLabelValues("payment_delete").Inc()
		s.log.Sugar().Debugw("payment reversed", "payment_id", id, "project_id", *reversed.ProjectID, "amount", reversed.Amount)
	}
	return nil
}
