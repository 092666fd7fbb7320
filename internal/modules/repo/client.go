package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientRepo interface {
	Create(ctx context.Context, c *model.Client) error
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Save(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustEarnings(ctx context.Context, id uuid.UUID, delta float64) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(c).Error
}

func (r *clientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	if err := conn(ctx, r.db).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var items []model.Client
	return items, conn(ctx, r.db).Order("created_at DESC").Find(&items).Error
}

// Save writes every column except total_earnings, which only moves through
// AdjustEarnings.
func (r *clientRepo) Save(ctx context.Context, c *model.Client) error {
	return conn(ctx, r.db).Omit(clause.Associations, "total_earnings").Save(c).Error
}

// Delete removes the client together with its payments and projects.
func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	db := conn(ctx, r.db)
	if err := db.Where("client_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
		return err
	}
	if err := db.Where("client_id = ?", id).Delete(&model.ClientProject{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&model.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *clientRepo) AdjustEarnings(ctx context.Context, id uuid.UUID, delta float64) error {
	res := conn(ctx, r.db).Model(&model.Client{}).
		Where("id = ?", id).
		UpdateColumn("total_earnings", gorm.Expr("total_earnings + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
