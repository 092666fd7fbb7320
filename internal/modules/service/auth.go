package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminClaims is the token payload. AdminID mirrors the subject.
type AdminClaims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginOutput struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Admin     *model.Admin `json:"admin"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.Admin, error)
	Login(ctx context.Context, identifier, password string) (*LoginOutput, error)
	// Resolve returns nil for any token that does not map to an admin.
	Resolve(ctx context.Context, token string) *model.Admin
}

type AuthOptions struct {
	Secret     []byte
	TokenTTL   time.Duration
	BcryptCost int
}

type authService struct {
	r    repo.AdminRepo
	opts AuthOptions
	log  *zap.Logger
	now  func() time.Time
}

func NewAuthService(r repo.AdminRepo, opts AuthOptions, log *zap.Logger) AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{r: r, opts: opts, log: log, now: time.Now}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.Admin, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	switch {
	case in.Username == "":
		return nil, invalid("username is required")
	case in.Email == "":
		return nil, invalid("email is required")
	case len(in.Password) < 6:
		return nil, invalid("password must be at least 6 characters")
	}

	exists, err := s.r.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.opts.BcryptCost)
	if err != nil {
		return nil, err
	}

	a := &model.Admin{Username: in.Username, Email: in.Email, PasswordHash: string(hash)}
	if err := s.r.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*LoginOutput, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	a, err := s.r.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	exp := now.Add(s.opts.TokenTTL)
	claims := AdminClaims{
		AdminID: a.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.Secret)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Token: token, ExpiresAt: exp, Admin: a}, nil
}

func (s *authService) Resolve(ctx context.Context, token string) *model.Admin {
	if token == "" {
		return nil
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		s.log.Sugar().Debugw("token rejected", "err", err)
		return nil
	}

	id, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil
	}
	a, err := s.r.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Sugar().Errorw("resolve admin", "admin_id", id, "err", err)
		}
		return nil
	}
	return a
}
