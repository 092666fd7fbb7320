package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
)

type AdminHandler struct {
	auth     service.AuthService
	contacts service.ContactService
}

func NewAdminHandler(auth service.AuthService, contacts service.ContactService) *AdminHandler {
	return &AdminHandler{auth: auth, contacts: contacts}
}

type RegisterReq struct {
	Username string `json:"username" binding:"required" example:"owner"`
	Email    string `json:"email" binding:"required,email" example:"owner@trinextgen.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// Register godoc
//
//	@Summary		Register admin
//	@Description	Create an admin account. Username and email must be unused.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.RegisterReq	true	"Register payload"
//	@Success		201		{object}	serializer.Response{data=model.Admin}
//	@Failure		400		{object}	serializer.Response
//	@Router			/admin/register [post]
func (h *AdminHandler) Register(c *gin.Context) {
	req := RegisterReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	admin, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: admin, Msg: "admin registered"})
}

// LoginReq takes the email or username in Identifier. Email and Username are
// accepted as aliases.
type LoginReq struct {
	Identifier string `json:"identifier" example:"owner@trinextgen.com"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password" binding:"required"`
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Exchange credentials for a bearer token valid for one hour
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.LoginReq	true	"Login payload"
//	@Success		200		{object}	serializer.Response{data=service.LoginOutput}
//	@Failure		401		{object}	serializer.Response
//	@Router			/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		identifier = req.Username
	}

	out, err := h.auth.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		writeErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ListContacts godoc
//
//	@Summary		List contact submissions
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Contact}
//	@Router			/admin/contacts [get]
func (h *AdminHandler) ListContacts(c *gin.Context) {
	items, err := h.contacts.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}
