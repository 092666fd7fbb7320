package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.Admin, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*service.LoginOutput, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginOutput), args.Error(1)
}

func (m *MockAuthService) Resolve(ctx context.Context, token string) *model.Admin {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Admin)
}

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, c *model.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactService) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

// MockClientService is a mock implementation of ClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, c *model.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientService) Get(ctx context.Context, id uuid.UUID) (*service.ClientSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientSummary), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context) ([]service.ClientSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ClientSummary), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, id uuid.UUID, in service.ClientUpdate) (*service.ClientSummary, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientSummary), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientProjectService is a mock implementation of ClientProjectService
type MockClientProjectService struct {
	mock.Mock
}

func (m *MockClientProjectService) Create(ctx context.Context, in service.ProjectInput) (*model.ClientProject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientProject), args.Error(1)
}

func (m *MockClientProjectService) Get(ctx context.Context, id uuid.UUID) (*model.ClientProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientProject), args.Error(1)
}

func (m *MockClientProjectService) List(ctx context.Context) ([]model.ClientProject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClientProject), args.Error(1)
}

func (m *MockClientProjectService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.ClientProject, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClientProject), args.Error(1)
}

func (m *MockClientProjectService) Update(ctx context.Context, clientID, id uuid.UUID, in service.ProjectUpdate) (*model.ClientProject, error) {
	args := m.Called(ctx, clientID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientProject), args.Error(1)
}

func (m *MockClientProjectService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.ClientProject, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientProject), args.Error(1)
}

func (m *MockClientProjectService) Delete(ctx context.Context, clientID, id uuid.UUID) error {
	args := m.Called(ctx, clientID, id)
	return args.Error(0)
}

func (m *MockClientProjectService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockClientProjectService) Payments(ctx context.Context, id uuid.UUID) ([]model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockClientProjectService) Stats(ctx context.Context, id uuid.UUID) (*service.ProjectStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectStats), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Create(ctx context.Context, in service.PaymentInput) (*model.Payment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentService) Delete(ctx context.Context, clientID, id uuid.UUID) error {
	args := m.Called(ctx, clientID, id)
	return args.Error(0)
}

// MockCareerService is a mock implementation of CareerService
type MockCareerService struct {
	mock.Mock
}

func (m *MockCareerService) Create(ctx context.Context, c *model.Career) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCareerService) List(ctx context.Context) ([]model.Career, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Career), args.Error(1)
}

func (m *MockCareerService) Update(ctx context.Context, id uuid.UUID, in service.CareerUpdate) (*model.Career, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Career), args.Error(1)
}

func (m *MockCareerService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCareerService) Apply(ctx context.Context, in service.ApplyInput) (*model.Application, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockCareerService) ListApplications(ctx context.Context) ([]model.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockCareerService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*model.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Create(ctx context.Context, s *model.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockCatalogService) List(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

// MockPageService is a mock implementation of PageService
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Get(page string) (map[string]interface{}, error) {
	args := m.Called(page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

// MockShowcaseService is a mock implementation of ShowcaseService
type MockShowcaseService struct {
	mock.Mock
}

func (m *MockShowcaseService) Create(ctx context.Context, p *model.ShowcaseProject) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockShowcaseService) Get(ctx context.Context, id uuid.UUID) (*model.ShowcaseProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShowcaseProject), args.Error(1)
}

func (m *MockShowcaseService) List(ctx context.Context, status string) ([]model.ShowcaseProject, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShowcaseProject), args.Error(1)
}

func (m *MockShowcaseService) Update(ctx context.Context, id uuid.UUID, in service.ShowcaseUpdate) (*model.ShowcaseProject, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShowcaseProject), args.Error(1)
}

func (m *MockShowcaseService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAttachmentService is a mock implementation of AttachmentService
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Store(ctx context.Context, prefix string, in *service.AttachmentInput, known ...model.Attachment) (*model.Attachment, error) {
	args := m.Called(ctx, prefix, in, known)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) StoreAll(ctx context.Context, prefix string, in []service.AttachmentInput, known ...model.Attachment) ([]model.Attachment, error) {
	args := m.Called(ctx, prefix, in, known)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) URL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
