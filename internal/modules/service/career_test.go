package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trinextgen/site-api/internal/modules/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockCareerRepo struct {
	mock.Mock
}

func (m *MockCareerRepo) Create(ctx context.Context, c *model.Career) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCareerRepo) Get(ctx context.Context, id uuid.UUID) (*model.Career, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Career), args.Error(1)
}

func (m *MockCareerRepo) List(ctx context.Context) ([]model.Career, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Career), args.Error(1)
}

func (m *MockCareerRepo) Save(ctx context.Context, c *model.Career) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCareerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepo) List(ctx context.Context) ([]model.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockApplicationRepo) Save(ctx context.Context, a *model.Application) error {
	return m.Called(ctx, a).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, name string, payload interface{}) error {
	return m.Called(ctx, name, payload).Error(0)
}

func newCareerSvc(careers *MockCareerRepo, apps *MockApplicationRepo, events *MockEventPublisher) CareerService {
	return NewCareerService(careers, apps, NewAttachmentService(newMemBlob(), AttachmentLimits{}), events, zap.NewNop())
}

func TestCareerService_Apply(t *testing.T) {
	job := &model.Career{ID: uuid.New(), Title: "Go Engineer"}

	tests := []struct {
		name    string
		in      ApplyInput
		setup   func(*MockCareerRepo, *MockApplicationRepo, *MockEventPublisher)
		wantErr error
	}{
		{
			name: "snapshots title and defaults to pending",
			in:   ApplyInput{JobID: job.ID, Name: "Ada", Email: "ada@example.com", CoverLetter: "hello"},
			setup: func(c *MockCareerRepo, a *MockApplicationRepo, e *MockEventPublisher) {
				c.On("Get", mock.Anything, job.ID).Return(job, nil)
				a.On("Create", mock.Anything, mock.MatchedBy(func(app *model.Application) bool {
					return app.JobTitle == "Go Engineer" && app.Status == model.ApplicationStatusPending
				})).Return(nil)
				e.On("Publish", mock.Anything, EventApplicationSubmitted, mock.Anything).Return(nil)
			},
		},
		{
			name: "event failure does not fail the request",
			in:   ApplyInput{JobID: job.ID, Name: "Ada", Email: "ada@example.com", CoverLetter: "hello"},
			setup: func(c *MockCareerRepo, a *MockApplicationRepo, e *MockEventPublisher) {
				c.On("Get", mock.Anything, job.ID).Return(job, nil)
				a.On("Create", mock.Anything, mock.Anything).Return(nil)
				e.On("Publish", mock.Anything, EventApplicationSubmitted, mock.Anything).Return(errors.New("broker down"))
			},
		},
		{
			name: "unknown job creates nothing",
			in:   ApplyInput{JobID: job.ID, Name: "Ada", Email: "ada@example.com", CoverLetter: "hello"},
			setup: func(c *MockCareerRepo, _ *MockApplicationRepo, _ *MockEventPublisher) {
				c.On("Get", mock.Anything, job.ID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "resume given as a bare reference is rejected",
			in: ApplyInput{JobID: job.ID, Name: "Ada", Email: "ada@example.com", CoverLetter: "hello",
				Resume: &AttachmentInput{Attachment: model.Attachment{
					Name:  "cv.exe",
					MIME:  "application/x-msdownload",
					SizeB: 1 << 40,
					Key:   "receipts/2025/03/01/receipt.png",
				}},
			},
			setup: func(c *MockCareerRepo, _ *MockApplicationRepo, _ *MockEventPublisher) {
				c.On("Get", mock.Anything, job.ID).Return(job, nil)
			},
			wantErr: ErrValidation,
		},
		{
			name:    "missing cover letter",
			in:      ApplyInput{JobID: job.ID, Name: "Ada", Email: "ada@example.com"},
			setup:   func(*MockCareerRepo, *MockApplicationRepo, *MockEventPublisher) {},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			careers, apps, events := &MockCareerRepo{}, &MockApplicationRepo{}, &MockEventPublisher{}
			tt.setup(careers, apps, events)

			got, err := newCareerSvc(careers, apps, events).Apply(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, job.Title, got.JobTitle)
			}
			careers.AssertExpectations(t)
			apps.AssertExpectations(t)
			events.AssertExpectations(t)
		})
	}
}

func TestCareerService_UpdateApplicationStatus(t *testing.T) {
	appID := uuid.New()

	for _, status := range model.ApplicationStatuses {
		t.Run(status, func(t *testing.T) {
			apps := &MockApplicationRepo{}
			apps.On("Get", mock.Anything, appID).Return(&model.Application{ID: appID, Status: "hired"}, nil)
			apps.On("Save", mock.Anything, mock.Anything).Return(nil)

			got, err := newCareerSvc(&MockCareerRepo{}, apps, &MockEventPublisher{}).UpdateApplicationStatus(context.Background(), appID, status)
			require.NoError(t, err)
			assert.Equal(t, status, got.Status)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		_, err := newCareerSvc(&MockCareerRepo{}, &MockApplicationRepo{}, &MockEventPublisher{}).
			UpdateApplicationStatus(context.Background(), appID, "ghosted")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCareerService_CreateAndUpdate(t *testing.T) {
	careers := &MockCareerRepo{}
	s := newCareerSvc(careers, &MockApplicationRepo{}, &MockEventPublisher{})

	err := s.Create(context.Background(), &model.Career{Title: "Designer", Location: "Remote", Type: "Full-time"})
	assert.ErrorIs(t, err, ErrValidation)
	careers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	id := uuid.New()
	existing := &model.Career{ID: id, Title: "Designer", Location: "Remote", Type: "Full-time", Level: "Mid", Description: "d"}
	careers.On("Get", mock.Anything, id).Return(existing, nil)
	careers.On("Save", mock.Anything, mock.Anything).Return(nil)

	salary := "$80k"
	got, err := s.Update(context.Background(), id, CareerUpdate{Salary: &salary, Tags: []string{"figma"}})
	require.NoError(t, err)
	assert.Equal(t, "$80k", got.Salary)
	assert.Equal(t, []string{"figma"}, []string(got.Tags))
	assert.Equal(t, "Designer", got.Title)

	careers.On("Delete", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), uuid.New()), ErrNotFound)
}
