package repo

import (
	"context"

	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
)

type ContactRepo interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, c *model.Contact) error {
	return conn(ctx, r.db).Create(c).Error
}

func (r *contactRepo) List(ctx context.Context) ([]model.Contact, error) {
	var items []model.Contact
	return items, conn(ctx, r.db).Order("created_at DESC").Find(&items).Error
}
