package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
)

type CareerRepo interface {
	Create(ctx context.Context, c *model.Career) error
	Get(ctx context.Context, id uuid.UUID) (*model.Career, error)
	List(ctx context.Context) ([]model.Career, error)
	Save(ctx context.Context, c *model.Career) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type careerRepo struct{ db *gorm.DB }

func NewCareerRepo(db *gorm.DB) CareerRepo {
	return &careerRepo{db: db}
}

func (r *careerRepo) Create(ctx context.Context, c *model.Career) error {
	return conn(ctx, r.db).Create(c).Error
}

func (r *careerRepo) Get(ctx context.Context, id uuid.UUID) (*model.Career, error) {
	var c model.Career
	if err := conn(ctx, r.db).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *careerRepo) List(ctx context.Context) ([]model.Career, error) {
	var items []model.Career
	return items, conn(ctx, r.db).Order("created_at DESC").Find(&items).Error
}

func (r *careerRepo) Save(ctx context.Context, c *model.Career) error {
	return conn(ctx, r.db).Save(c).Error
}

func (r *careerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&model.Career{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
