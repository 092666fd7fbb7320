package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
)

type AttachmentHandler struct {
	svc service.AttachmentService
}

func NewAttachmentHandler(s service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: s}
}

type AttachmentURLReq struct {
	Key string `form:"key" json:"key" binding:"required" example:"resumes/2025/03/01/6b1f.pdf"`
}

// GetURL godoc
//
//	@Summary		Presigned attachment URL
//	@Description	Short-lived download link for a stored resume, receipt or requirement file
//	@Tags			attachment
//	@Produce		json
//	@Param			key	query	string	true	"Object key"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]string}
//	@Router			/attachments/url [get]
func (h *AttachmentHandler) GetURL(c *gin.Context) {
	req := AttachmentURLReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	u, err := h.svc.URL(c.Request.Context(), req.Key)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"url": u}})
}
