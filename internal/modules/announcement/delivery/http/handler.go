package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/modules/announcement/dto"
	announcementService "zeros.dev/launchpad/internal/modules/announcement/service"
	"zeros.dev/launchpad/pkg/response"
	"zeros.dev/launchpad/pkg/validator"
)

type AnnouncementHandler struct {
	service announcementService.AnnouncementService
}

func NewAnnouncementHandler(service announcementService.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

func (h *AnnouncementHandler) GetAllAnnouncements(c *gin.Context) {
	res, err := h.service.GetAllAnnouncements(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var input dto.CreateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.CreateAnnouncement(c.Request.Context(), input, user.Name)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
