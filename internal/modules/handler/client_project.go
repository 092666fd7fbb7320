package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
)

type ClientProjectHandler struct {
	svc service.ClientProjectService
}

func NewClientProjectHandler(s service.ClientProjectService) *ClientProjectHandler {
	return &ClientProjectHandler{svc: s}
}

type CreateProjectReq struct {
	// ClientID is read only on /clientProject; nested routes take it from the path.
	ClientID     string                     `json:"client_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Title        string                     `json:"title" binding:"required" example:"Company website"`
	Category     string                     `json:"category" example:"Web App"`
	Status       string                     `json:"status" example:"Active"`
	TotalAmount  *float64                   `json:"total_amount" binding:"required" example:"1000"`
	AdvancePaid  float64                    `json:"advance_paid" example:"200"`
	LiveURL      string                     `json:"live_url"`
	Description  string                     `json:"description"`
	StartDate    string                     `json:"start_date" example:"2025-01-15"`
	Deadline     string                     `json:"deadline" example:"2025-04-30"`
	Requirements []service.RequirementInput `json:"requirements"`
}

func (r CreateProjectReq) toInput(clientID uuid.UUID) (service.ProjectInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return service.ProjectInput{}, err
	}
	deadline, err := parseDate(r.Deadline)
	if err != nil {
		return service.ProjectInput{}, err
	}
	return service.ProjectInput{
		ClientID:     clientID,
		Title:        r.Title,
		Category:     r.Category,
		Status:       r.Status,
		TotalAmount:  r.TotalAmount,
		AdvancePaid:  r.AdvancePaid,
		LiveURL:      r.LiveURL,
		Description:  r.Description,
		StartDate:    start,
		Deadline:     deadline,
		Requirements: r.Requirements,
	}, nil
}

type UpdateProjectReq struct {
	Title        *string                    `json:"title"`
	Category     *string                    `json:"category"`
	Status       *string                    `json:"status"`
	TotalAmount  *float64                   `json:"total_amount"`
	AdvancePaid  *float64                   `json:"advance_paid"`
	LiveURL      *string                    `json:"live_url"`
	Description  *string                    `json:"description"`
	StartDate    *string                    `json:"start_date"`
	Deadline     *string                    `json:"deadline"`
	Requirements []service.RequirementInput `json:"requirements"`
}

func (r UpdateProjectReq) toUpdate() (service.ProjectUpdate, error) {
	out := service.ProjectUpdate{
		Title:        r.Title,
		Category:     r.Category,
		Status:       r.Status,
		TotalAmount:  r.TotalAmount,
		AdvancePaid:  r.AdvancePaid,
		LiveURL:      r.LiveURL,
		Description:  r.Description,
		Requirements: r.Requirements,
	}
	var err error
	if r.StartDate != nil {
		if out.StartDate, err = parseDate(*r.StartDate); err != nil {
			return out, err
		}
	}
	if r.Deadline != nil {
		if out.Deadline, err = parseDate(*r.Deadline); err != nil {
			return out, err
		}
	}
	return out, nil
}

func updateProject(c *gin.Context, svc service.ClientProjectService, clientID, projectID uuid.UUID) {
	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	in, err := req.toUpdate()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid date", err))
		return
	}

	p, err := svc.Update(c.Request.Context(), clientID, projectID, in)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// ListProjects godoc
//
//	@Summary		List client projects
//	@Description	Every client project, newest first, with its client
//	@Tags			client-project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ClientProject}
//	@Router			/clientProject [get]
func (h *ClientProjectHandler) ListProjects(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// ListByClient godoc
//
//	@Summary		List projects of a client
//	@Tags			client-project
//	@Produce		json
//	@Param			clientId	path	string	true	"Client ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ClientProject}
//	@Router			/clientProject/client/{clientId} [get]
func (h *ClientProjectHandler) ListByClient(c *gin.Context) {
	id, ok := parseID(c, "clientId")
	if !ok {
		return
	}
	items, err := h.svc.ListByClient(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetProject godoc
//
//	@Summary		Get client project
//	@Tags			client-project
//	@Produce		json
//	@Param			projectId	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/clientProject/{projectId} [get]
func (h *ClientProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// CreateProject godoc
//
//	@Summary		Create client project
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload, client_id required"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/clientProject [post]
func (h *ClientProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid client_id", err))
		return
	}
	in, err := req.toInput(clientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid date", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// UpdateProject godoc
//
//	@Summary		Update client project
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			projectId	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/clientProject/{projectId} [put]
func (h *ClientProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	updateProject(c, h.svc, uuid.Nil, id)
}

// DeleteProject godoc
//
//	@Summary		Delete client project
//	@Tags			client-project
//	@Produce		json
//	@Param			projectId	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/clientProject/{projectId} [delete]
func (h *ClientProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), uuid.Nil, id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "project deleted"})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required" example:"Completed"`
}

// UpdateStatus godoc
//
//	@Summary		Set project status
//	@Description	Changes only the status; balances are untouched
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			projectId	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateStatusReq	true	"UpdateStatus payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/clientProject/{projectId}/status [patch]
func (h *ClientProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	req := UpdateStatusReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	p, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// ListPayments godoc
//
//	@Summary		List project payments
//	@Tags			client-project
//	@Produce		json
//	@Param			projectId	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Payment}
//	@Router			/clientProject/{projectId}/payments [get]
func (h *ClientProjectHandler) ListPayments(c *gin.Context) {
	id, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	items, err := h.svc.Payments(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetStats godoc
//
//	@Summary		Project payment statistics
//	@Tags			client-project
//	@Produce		json
//	@Param			projectId	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectStats}
//	@Router			/clientProject/{projectId}/stats [get]
func (h *ClientProjectHandler) GetStats(c *gin.Context) {
	id, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	stats, err := h.svc.Stats(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: stats})
}

type BulkDeleteReq struct {
	ProjectIDs []uuid.UUID `json:"project_ids" binding:"required,min=1"`
}

// BulkDelete godoc
//
//	@Summary		Delete several client projects
//	@Tags			client-project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.BulkDeleteReq	true	"BulkDelete payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]int}
//	@Router			/clientProject/bulk-delete [post]
func (h *ClientProjectHandler) BulkDelete(c *gin.Context) {
	req := BulkDeleteReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	n, err := h.svc.BulkDelete(c.Request.Context(), req.ProjectIDs)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"deleted_count": n}, Msg: "projects deleted"})
}
