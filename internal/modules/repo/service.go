package repo

import (
	"context"

	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
)

type ServiceRepo interface {
	Create(ctx context.Context, s *model.Service) error
	List(ctx context.Context) ([]model.Service, error)
}

type serviceRepo struct{ db *gorm.DB }

func NewServiceRepo(db *gorm.DB) ServiceRepo {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) Create(ctx context.Context, s *model.Service) error {
	return conn(ctx, r.db).Create(s).Error
}

func (r *serviceRepo) List(ctx context.Context) ([]model.Service, error) {
	var items []model.Service
	return items, conn(ctx, r.db).Order("created_at DESC").Find(&items).Error
}
