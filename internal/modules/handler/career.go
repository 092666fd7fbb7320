package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
	"gorm.io/datatypes"
)

type CareerHandler struct {
	svc service.CareerService
}

func NewCareerHandler(s service.CareerService) *CareerHandler {
	return &CareerHandler{svc: s}
}

type CreateCareerReq struct {
	Title       string   `json:"title" binding:"required" example:"Senior Go Engineer"`
	Location    string   `json:"location" binding:"required" example:"Remote"`
	Type        string   `json:"type" binding:"required" example:"Full-time"`
	Level       string   `json:"level" binding:"required" example:"Senior"`
	Salary      string   `json:"salary"`
	Tags        []string `json:"tags"`
	Description string   `json:"description" binding:"required"`
}

type UpdateCareerReq struct {
	Title       *string  `json:"title"`
	Location    *string  `json:"location"`
	Type        *string  `json:"type"`
	Level       *string  `json:"level"`
	Salary      *string  `json:"salary"`
	Tags        []string `json:"tags"`
	Description *string  `json:"description"`
}

// ListCareers godoc
//
//	@Summary		List job postings
//	@Tags			career
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Career}
//	@Router			/careers [get]
func (h *CareerHandler) ListCareers(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateCareer godoc
//
//	@Summary		Create job posting
//	@Tags			career
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateCareerReq	true	"CreateCareer payload"
//	@Success		201		{object}	serializer.Response{data=model.Career}
//	@Router			/careers [post]
func (h *CareerHandler) CreateCareer(c *gin.Context) {
	req := CreateCareerReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	career := model.Career{
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Level:       req.Level,
		Salary:      req.Salary,
		Description: req.Description,
	}
	if req.Tags != nil {
		career.Tags = datatypes.NewJSONSlice(req.Tags)
	}
	if err := h.svc.Create(c.Request.Context(), &career); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: career})
}

// UpdateCareer godoc
//
//	@Summary		Update job posting
//	@Tags			career
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Career ID"	Format(uuid)
//	@Param			payload	body		handler.UpdateCareerReq	true	"UpdateCareer payload"
//	@Success		200		{object}	serializer.Response{data=model.Career}
//	@Router			/careers/{id} [put]
func (h *CareerHandler) UpdateCareer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req := UpdateCareerReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.CareerUpdate{
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Level:       req.Level,
		Salary:      req.Salary,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DeleteCareer godoc
//
//	@Summary		Delete job posting
//	@Tags			career
//	@Produce		json
//	@Param			id	path		string	true	"Career ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Router			/careers/{id} [delete]
func (h *CareerHandler) DeleteCareer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "career deleted"})
}

type ApplyReq struct {
	JobID       string                   `json:"job_id" binding:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string                   `json:"name" binding:"required"`
	Email       string                   `json:"email" binding:"required,email"`
	Phone       string                   `json:"phone"`
	CoverLetter string                   `json:"cover_letter" binding:"required"`
	Resume      *service.AttachmentInput `json:"resume"`
}

// Apply godoc
//
//	@Summary		Apply for a job
//	@Description	The job must exist; its title is copied onto the application
//	@Tags			career
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.ApplyReq	true	"Apply payload"
//	@Success		201		{object}	serializer.Response{data=model.Application}
//	@Failure		404		{object}	serializer.Response
//	@Router			/careers/apply [post]
func (h *CareerHandler) Apply(c *gin.Context) {
	req := ApplyReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid job_id", err))
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), service.ApplyInput{
		JobID:       jobID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: app, Msg: "application submitted"})
}

// ListApplications godoc
//
//	@Summary		List applications
//	@Tags			career
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Application}
//	@Router			/careers/applications [get]
func (h *CareerHandler) ListApplications(c *gin.Context) {
	items, err := h.svc.ListApplications(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type UpdateApplicationReq struct {
	Status string `json:"status" binding:"required" example:"interview"`
}

// UpdateApplication godoc
//
//	@Summary		Set application status
//	@Description	Any of pending, reviewed, interview, rejected, hired; no ordering is enforced
//	@Tags			career
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Application ID"	Format(uuid)
//	@Param			payload	body		handler.UpdateApplicationReq	true	"UpdateApplication payload"
//	@Success		200		{object}	serializer.Response{data=model.Application}
//	@Router			/careers/applications/{id} [put]
func (h *CareerHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req := UpdateApplicationReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	app, err := h.svc.UpdateApplicationStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: app})
}
