package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
	"gorm.io/datatypes"
)

// ShowcaseHandler serves the public portfolio under /api/projects.
type ShowcaseHandler struct {
	svc service.ShowcaseService
}

func NewShowcaseHandler(s service.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{svc: s}
}

type CreateShowcaseReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=Web Mobile Cloud" example:"Web"`
	Icon        string   `json:"icon" binding:"required"`
	Features    []string `json:"features"`
	TechStack   []string `json:"tech_stack"`
	Color       string   `json:"color"`
	LiveURL     string   `json:"live_url"`
	Status      string   `json:"status" example:"Active"`
}

type UpdateShowcaseReq struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Icon        *string  `json:"icon"`
	Features    []string `json:"features"`
	TechStack   []string `json:"tech_stack"`
	Color       *string  `json:"color"`
	LiveURL     *string  `json:"live_url"`
	Status      *string  `json:"status"`
}

type ListShowcaseReq struct {
	Status string `form:"status" json:"status" example:"Active"`
}

// ListShowcase godoc
//
//	@Summary		List portfolio projects
//	@Tags			project
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status (Active, Completed, Draft)"
//	@Success		200		{object}	serializer.Response{data=[]model.ShowcaseProject}
//	@Router			/projects [get]
func (h *ShowcaseHandler) ListShowcase(c *gin.Context) {
	req := ListShowcaseReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	items, err := h.svc.List(c.Request.Context(), req.Status)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetShowcase godoc
//
//	@Summary		Get portfolio project
//	@Tags			project
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.ShowcaseProject}
//	@Router			/projects/{id} [get]
func (h *ShowcaseHandler) GetShowcase(c *gin.Context) {
	id, ok := parseID(c, "id")
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

// CreateShowcase godoc
//
//	@Summary		Create portfolio project
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateShowcaseReq	true	"CreateShowcase payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ShowcaseProject}
//	@Router			/projects [post]
func (h *ShowcaseHandler) CreateShowcase(c *gin.Context) {
	req := CreateShowcaseReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p := model.ShowcaseProject{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		Color:       req.Color,
		LiveURL:     req.LiveURL,
		Status:      req.Status,
	}
	if req.Features != nil {
		p.Features = datatypes.NewJSONSlice(req.Features)
	}
	if req.TechStack != nil {
		p.TechStack = datatypes.NewJSONSlice(req.TechStack)
	}
	if err := h.svc.Create(c.Request.Context(), &p); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// UpdateShowcase godoc
//
//	@Summary		Update portfolio project
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Project ID"	Format(uuid)
//	@Param			payload	body	handler.UpdateShowcaseReq	true	"UpdateShowcase payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ShowcaseProject}
//	@Router			/projects/{id} [put]
func (h *ShowcaseHandler) UpdateShowcase(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req := UpdateShowcaseReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, service.ShowcaseUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		Color:       req.Color,
		LiveURL:     req.LiveURL,
		Status:      req.Status,
		Features:    req.Features,
		TechStack:   req.TechStack,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// DeleteShowcase godoc
//
//	@Summary		Delete portfolio project
//	@Tags			project
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{id} [delete]
func (h *ShowcaseHandler) DeleteShowcase(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "project deleted"})
}
