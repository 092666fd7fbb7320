package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
	"gorm.io/datatypes"
)

// SiteHandler serves the public marketing endpoints: contact form, service
// catalog and static pages.
type SiteHandler struct {
	contacts service.ContactService
	catalog  service.CatalogService
	pages    service.PageService
}

func NewSiteHandler(contacts service.ContactService, catalog service.CatalogService, pages service.PageService) *SiteHandler {
	return &SiteHandler{contacts: contacts, catalog: catalog, pages: pages}
}

type ContactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact godoc
//
//	@Summary		Submit contact form
//	@Tags			site
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.ContactReq	true	"Contact payload"
//	@Success		201		{object}	serializer.Response{data=model.Contact}
//	@Router			/contact [post]
func (h *SiteHandler) SubmitContact(c *gin.Context) {
	req := ContactReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	contact := model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contacts.Submit(c.Request.Context(), &contact); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: contact, Msg: "message received"})
}

// ListServices godoc
//
//	@Summary		List services
//	@Tags			site
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Service}
//	@Router			/services [get]
func (h *SiteHandler) ListServices(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateServiceReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon" binding:"required"`
	Color       string   `json:"color" example:"from-blue-500 to-purple-600"`
}

// CreateService godoc
//
//	@Summary		Create service
//	@Tags			site
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateServiceReq	true	"CreateService payload"
//	@Success		201		{object}	serializer.Response{data=model.Service}
//	@Router			/services [post]
func (h *SiteHandler) CreateService(c *gin.Context) {
	req := CreateServiceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	svc := model.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if req.Features != nil {
		svc.Features = datatypes.NewJSONSlice(req.Features)
	}
	if err := h.catalog.Create(c.Request.Context(), &svc); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: svc})
}

// GetPage godoc
//
//	@Summary		Static page content
//	@Tags			site
//	@Produce		json
//	@Param			page	path		string	true	"Page key, case-insensitive"	Example(services)
//	@Success		200		{object}	serializer.Response{data=map[string]any}
//	@Failure		404		{object}	serializer.Response
//	@Router			/pages/{page} [get]
func (h *SiteHandler) GetPage(c *gin.Context) {
	page, err := h.pages.Get(c.Param("page"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: page})
}
