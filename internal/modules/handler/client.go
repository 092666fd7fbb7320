package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
)

type ClientHandler struct {
	clients  service.ClientService
	projects service.ClientProjectService
	payments service.PaymentService
}

func NewClientHandler(clients service.ClientService, projects service.ClientProjectService, payments service.PaymentService) *ClientHandler {
	return &ClientHandler{clients: clients, projects: projects, payments: payments}
}

type CreateClientReq struct {
	Name    string  `json:"name" binding:"required" example:"Acme Ltd"`
	Email   string  `json:"email" binding:"omitempty,email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Status  string  `json:"status" binding:"omitempty,oneof=Active Inactive" example:"Active"`
	Advance float64 `json:"advance" binding:"gte=0"`
}

type UpdateClientReq struct {
	Name    *string  `json:"name"`
	Email   *string  `json:"email" binding:"omitempty,email"`
	Phone   *string  `json:"phone"`
	Address *string  `json:"address"`
	Status  *string  `json:"status" binding:"omitempty,oneof=Active Inactive"`
	Advance *float64 `json:"advance" binding:"omitempty,gte=0"`
}

// ListClients godoc
//
//	@Summary		List clients
//	@Description	All clients, newest first, each with totals over its projects
//	@Tags			client
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]service.ClientSummary}
//	@Router			/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	items, err := h.clients.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateClient godoc
//
//	@Summary		Create client
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateClientReq	true	"CreateClient payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Client}
//	@Router			/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	req := CreateClientReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	client := model.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
		Advance: req.Advance,
	}
	if err := h.clients.Create(c.Request.Context(), &client); err != nil {
		writeErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: client})
}

// GetClient godoc
//
//	@Summary		Get client
//	@Tags			client
//	@Produce		json
//	@Param			id	path	string	true	"Client ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ClientSummary}
//	@Failure		404	{object}	serializer.Response
//	@Router			/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	out, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// UpdateClient godoc
//
//	@Summary		Update client
//	@Description	Partial update. total_earnings is maintained by project writes and cannot be set.
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Client ID"	Format(uuid)
//	@Param			payload	body	handler.UpdateClientReq	true	"UpdateClient payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ClientSummary}
//	@Router			/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req := UpdateClientReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.clients.Update(c.Request.Context(), id, service.ClientUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
		Advance: req.Advance,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DeleteClient godoc
//
//	@Summary		Delete client
//	@Description	Deletes the client with all of its projects and payments
//	@Tags			client
//	@Produce		json
//	@Param			id	path	string	true	"Client ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "client deleted"})
}

// ListClientProjects godoc
//
//	@Summary		List a client's projects
//	@Tags			client
//	@Produce		json
//	@Param			id	path	string	true	"Client ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ClientProject}
//	@Router			/clients/{id}/projects [get]
func (h *ClientHandler) ListClientProjects(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.projects.ListByClient(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateClientProject godoc
//
//	@Summary		Create project for client
//	@Description	remaining_amount is derived and the client's total_earnings grows by total_amount
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Client ID"	Format(uuid)
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/clients/{id}/projects [post]
func (h *ClientHandler) CreateClientProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	in, err := req.toInput(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid date", err))
		return
	}

	p, err := h.projects.Create(c.Request.Context(), in)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// UpdateClientProject godoc
//
//	@Summary		Update a client's project
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string						true	"Client ID"		Format(uuid)
//	@Param			projectId	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ClientProject}
//	@Router			/clients/{id}/projects/{projectId} [put]
func (h *ClientHandler) UpdateClientProject(c *gin.Context) {
	clientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	updateProject(c, h.projects, clientID, projectID)
}

// DeleteClientProject godoc
//
//	@Summary		Delete a client's project
//	@Description	Removes the project and its payments and subtracts its total from the client's earnings
//	@Tags			client
//	@Produce		json
//	@Param			id			path	string	true	"Client ID"		Format(uuid)
//	@Param			projectId	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/clients/{id}/projects/{projectId} [delete]
func (h *ClientHandler) DeleteClientProject(c *gin.Context) {
	clientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), clientID, projectID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "project deleted"})
}

type CreatePaymentReq struct {
	ProjectID   string                   `json:"project_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Amount      float64                  `json:"amount" binding:"required,gt=0" example:"300"`
	PaymentDate string                   `json:"payment_date" binding:"required" example:"2025-03-01"`
	Method      string                   `json:"payment_method" example:"Bank Transfer"`
	Notes       string                   `json:"notes"`
	Receipt     *service.AttachmentInput `json:"receipt"`
}

// ListClientPayments godoc
//
//	@Summary		List a client's payments
//	@Description	Newest payment date first
//	@Tags			client
//	@Produce		json
//	@Param			id	path	string	true	"Client ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Payment}
//	@Router			/clients/{id}/payments [get]
func (h *ClientHandler) ListClientPayments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.payments.ListByClient(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateClientPayment godoc
//
//	@Summary		Record payment
//	@Description	A payment with project_id moves its amount from the project's remaining balance into advance_paid
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Client ID"	Format(uuid)
//	@Param			payload	body	handler.CreatePaymentReq	true	"CreatePayment payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Payment}
//	@Router			/clients/{id}/payments [post]
func (h *ClientHandler) CreateClientPayment(c *gin.Context) {
	clientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	req := CreatePaymentReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	date, err := parseDate(req.PaymentDate)
	if err != nil || date == nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid payment_date", err))
		return
	}

	in := service.PaymentInput{
		ClientID:    clientID,
		Amount:      req.Amount,
		PaymentDate: *date,
		Method:      req.Method,
		Notes:       req.Notes,
		Receipt:     req.Receipt,
	}
	if req.ProjectID != "" {
		pid, err := uuid.Parse(req.ProjectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
			return
		}
		in.ProjectID = &pid
	}

	p, err := h.payments.Create(c.Request.Context(), in)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// DeleteClientPayment godoc
//
//	@Summary		Delete payment
//	@Description	Reverses the payment's effect on its project, if it had one
//	@Tags			client
//	@Produce		json
//	@Param			id			path	string	true	"Client ID"		Format(uuid)
//	@Param			paymentId	path	string	true	"Payment ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/clients/{id}/payments/{paymentId} [delete]
func (h *ClientHandler) DeleteClientPayment(c *gin.Context) {
	clientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	paymentID, ok := parseID(c, "paymentId")
	if !ok {
		return
	}
	if err := h.payments.Delete(c.Request.Context(), clientID, paymentID); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "payment deleted"})
}
