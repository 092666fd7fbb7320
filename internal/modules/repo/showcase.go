package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
)

type ShowcaseRepo interface {
	Create(ctx context.Context, p *model.ShowcaseProject) error
	Get(ctx context.Context, id uuid.UUID) (*model.ShowcaseProject, error)
	List(ctx context.Context, status string) ([]model.ShowcaseProject, error)
	Save(ctx context.Context, p *model.ShowcaseProject) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type showcaseRepo struct{ db *gorm.DB }

func NewShowcaseRepo(db *gorm.DB) ShowcaseRepo {
	return &showcaseRepo{db: db}
}

func (r *showcaseRepo) Create(ctx context.Context, p *model.ShowcaseProject) error {
	return conn(ctx, r.db).Create(p).Error
}

func (r *showcaseRepo) Get(ctx context.Context, id uuid.UUID) (*model.ShowcaseProject, error) {
	var p model.ShowcaseProject
	if err := conn(ctx, r.db).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every entry when status is empty.
func (r *showcaseRepo) List(ctx context.Context, status string) ([]model.ShowcaseProject, error) {
	q := conn(ctx, r.db)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []model.ShowcaseProject
	return items, q.Order("created_at DESC").Find(&items).Error
}

func (r *showcaseRepo) Save(ctx context.Context, p *model.ShowcaseProject) error {
	return conn(ctx, r.db).Save(p).Error
}

func (r *showcaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&model.ShowcaseProject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
