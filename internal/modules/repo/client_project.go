package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientProjectRepo interface {
	Create(ctx context.Context, p *model.ClientProject) error
	Get(ctx context.Context, id uuid.UUID) (*model.ClientProject, error)
	List(ctx context.Context) ([]model.ClientProject, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.ClientProject, error)
	ListByClientIDs(ctx context.Context, clientIDs []uuid.UUID) ([]model.ClientProject, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ClientProject, error)
	Save(ctx context.Context, p *model.ClientProject) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustPaid(ctx context.Context, id uuid.UUID, delta float64) error
}

type clientProjectRepo struct{ db *gorm.DB }

func NewClientProjectRepo(db *gorm.DB) ClientProjectRepo {
	return &clientProjectRepo{db: db}
}

func (r *clientProjectRepo) Create(ctx context.Context, p *model.ClientProject) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(p).Error
}

func (r *clientProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.ClientProject, error) {
	var p model.ClientProject
	if err := conn(ctx, r.db).Preload("Client").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *clientProjectRepo) List(ctx context.Context) ([]model.ClientProject, error) {
	var items []model.ClientProject
	return items, conn(ctx, r.db).Preload("Client").Order("created_at DESC").Find(&items).Error
}

func (r *clientProjectRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.ClientProject, error) {
	var items []model.ClientProject
	return items, conn(ctx, r.db).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&items).Error
}

func (r *clientProjectRepo) ListByClientIDs(ctx context.Context, clientIDs []uuid.UUID) ([]model.ClientProject, error) {
	var items []model.ClientProject
	if len(clientIDs) == 0 {
		return items, nil
	}
	return items, conn(ctx, r.db).Where("client_id IN ?", clientIDs).Find(&items).Error
}

func (r *clientProjectRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ClientProject, error) {
	var items []model.ClientProject
	if len(ids) == 0 {
		return items, nil
	}
	return items, conn(ctx, r.db).Where("id IN ?", ids).Find(&items).Error
}

func (r *clientProjectRepo) Save(ctx context.Context, p *model.ClientProject) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(p).Error
}

func (r *clientProjectRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := conn(ctx, r.db).Model(&model.ClientProject{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the project and every payment allocated to it.
func (r *clientProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	db := conn(ctx, r.db)
	if err := db.Where("project_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&model.ClientProject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AdjustPaid moves delta from the remaining balance into advance_paid.
func (r *clientProjectRepo) AdjustPaid(ctx context.Context, id uuid.UUID, delta float64) error {
	res := conn(ctx, r.db).Model(&model.ClientProject{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"advance_paid":     gorm.Expr("advance_paid + ?", delta),
			"remaining_amount": gorm.Expr("remaining_amount - ?", delta),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
