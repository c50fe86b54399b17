package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	playbookService "zeros.dev/launchpad/internal/modules/playbook/service"
	"zeros.dev/launchpad/pkg/response"
)

type PlaybookHandler struct {
	service playbookService.PlaybookService
}

func NewPlaybookHandler(service playbookService.PlaybookService) *PlaybookHandler {
	return &PlaybookHandler{service: service}
}

func (h *PlaybookHandler) GetSections(c *gin.Context) {
	sections, err := h.service.GetSections(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sections})
}
