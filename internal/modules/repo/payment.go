package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *model.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Payment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) PaymentRepo {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *model.Payment) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(p).Error
}

func (r *paymentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	if err := conn(ctx, r.db).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByClient orders by payment date, newest first.
func (r *paymentRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Payment, error) {
	var items []model.Payment
	return items, conn(ctx, r.db).
		Preload("Project").
		Where("client_id = ?", clientID).
		Order("payment_date DESC, created_at DESC").
		Find(&items).Error
}

func (r *paymentRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Payment, error) {
	var items []model.Payment
	return items, conn(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("payment_date DESC, created_at DESC").
		Find(&items).Error
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&model.Payment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
