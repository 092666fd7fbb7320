package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
)

type AdminRepo interface {
	Create(ctx context.Context, a *model.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	FindByIdentifier(ctx context.Context, identifier string) (*model.Admin, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepo(db *gorm.DB) AdminRepo {
	return &adminRepo{db: db}
}

func (r *adminRepo) Create(ctx context.Context, a *model.Admin) error {
	return conn(ctx, r.db).Create(a).Error
}

func (r *adminRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	var a model.Admin
	if err := conn(ctx, r.db).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByIdentifier matches either the email or the username, ignoring case.
func (r *adminRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.Admin, error) {
	v := strings.ToLower(strings.TrimSpace(identifier))

	var a model.Admin
	if err := conn(ctx, r.db).
		Where("LOWER(email) = ? OR LOWER(username) = ?", v, v).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&model.Admin{}).
		Where("LOWER(username) = ? OR LOWER(email) = ?", strings.ToLower(username), strings.ToLower(email)).
		Count(&n).Error
	return n > 0, err
}
