package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	Create(ctx context.Context, a *model.Application) error
	Get(ctx context.Context, id uuid.UUID) (*model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	Save(ctx context.Context, a *model.Application) error
}

type applicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) ApplicationRepo {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, a *model.Application) error {
	return conn(ctx, r.db).Create(a).Error
}

func (r *applicationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var a model.Application
	if err := conn(ctx, r.db).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) List(ctx context.Context) ([]model.Application, error) {
	var items []model.Application
	return items, conn(ctx, r.db).Order("applied_at DESC").Find(&items).Error
}

func (r *applicationRepo) Save(ctx context.Context, a *model.Application) error {
	return conn(ctx, r.db).Save(a).Error
}
