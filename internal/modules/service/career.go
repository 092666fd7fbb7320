package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type CareerUpdate struct {
	Title       *string
	Location    *string
	Type        *string
	Level       *string
	Salary      *string
	Description *string
	Tags        []string
}

type ApplyInput struct {
	JobID       uuid.UUID
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	Resume      *AttachmentInput
}

type CareerService interface {
	Create(ctx context.Context, c *model.Career) error
	List(ctx context.Context) ([]model.Career, error)
	Update(ctx context.Context, id uuid.UUID, in CareerUpdate) (*model.Career, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Apply(ctx context.Context, in ApplyInput) (*model.Application, error)
	ListApplications(ctx context.Context) ([]model.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*model.Application, error)
}

type careerService struct {
	careers      repo.CareerRepo
	applications repo.ApplicationRepo
	attachments  AttachmentService
	events       EventPublisher
	log          *zap.Logger
}

func NewCareerService(
	careers repo.CareerRepo,
	applications repo.ApplicationRepo,
	attachments AttachmentService,
	events EventPublisher,
	log *zap.Logger,
) CareerService {
	return &careerService{
		careers:      careers,
		applications: applications,
		attachments:  attachments,
		events:       events,
		log:          log,
	}
}

func validateCareer(c *model.Career) error {
	required := []struct{ field, value string }{
		{"title", c.Title},
		{"location", c.Location},
		{"type", c.Type},
		{"level", c.Level},
		{"description", c.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid("%s is required", r.field)
		}
	}
	return nil
}

func (s *careerService) Create(ctx context.Context, c *model.Career) error {
	if err := validateCareer(c); err != nil {
		return err
	}
	if c.Tags == nil {
		c.Tags = datatypes.JSONSlice[string]{}
	}
	return s.careers.Create(ctx, c)
}

func (s *careerService) List(ctx context.Context) ([]model.Career, error) {
	return s.careers.List(ctx)
}

func (s *careerService) Update(ctx context.Context, id uuid.UUID, in CareerUpdate) (*model.Career, error) {
	c, err := s.careers.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "career")
	}

	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Location != nil {
		c.Location = *in.Location
	}
	if in.Type != nil {
		c.Type = *in.Type
	}
	if in.Level != nil {
		c.Level = *in.Level
	}
	if in.Salary != nil {
		c.Salary = *in.Salary
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Tags != nil {
		c.Tags = datatypes.NewJSONSlice(in.Tags)
	}
	if err := validateCareer(c); err != nil {
		return nil, err
	}

	if err := s.careers.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *careerService) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(s.careers.Delete(ctx, id), "career")
}

// Apply records an application against an existing job, keeping the job
// title as it was at submission time.
func (s *careerService) Apply(ctx context.Context, in ApplyInput) (*model.Application, error) {
	switch {
	case in.JobID == uuid.Nil:
		return nil, invalid("job id is required")
	case strings.TrimSpace(in.Name) == "":
		return nil, invalid("name is required")
	case strings.TrimSpace(in.Email) == "":
		return nil, invalid("email is required")
	case strings.TrimSpace(in.CoverLetter) == "":
		return nil, invalid("cover letter is required")
	}

	job, err := s.careers.Get(ctx, in.JobID)
	if err != nil {
		return nil, translate(err, "job")
	}

	resume, err := s.attachments.Store(ctx, "resumes", in.Resume)
	if err != nil {
		return nil, err
	}

	a := &model.Application{
		JobID:       job.ID,
		JobTitle:    job.Title,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		CoverLetter: in.CoverLetter,
		Status:      model.ApplicationStatusPending,
		Resume:      datatypes.NewJSONType(resume),
	}
	if err := s.applications.Create(ctx, a); err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, EventApplicationSubmitted, map[string]interface{}{
		"application_id": a.ID,
		"job_id":         a.JobID,
		"job_title":      a.JobTitle,
		"email":          a.Email,
	}); err != nil {
		s.log.Sugar().Errorw("publish application event", "application_id", a.ID, "err", err)
	}
	return a, nil
}

func (s *careerService) ListApplications(ctx context.Context) ([]model.Application, error) {
	return s.applications.List(ctx)
}

func (s *careerService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*model.Application, error) {
	if !slices.Contains(model.ApplicationStatuses, status) {
		return nil, invalid("status %q is not one of %s", status, strings.Join(model.ApplicationStatuses, ", "))
	}
	a, err := s.applications.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "application")
	}
	a.Status = status
	if err := s.applications.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
