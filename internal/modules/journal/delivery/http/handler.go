package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/modules/journal/dto"
	journalService "zeros.dev/launchpad/internal/modules/journal/service"
	"zeros.dev/launchpad/pkg/response"
)

type JournalHandler struct {
	service journalService.JournalService
}

func NewJournalHandler(service journalService.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

func (h *JournalHandler) Generate(c *gin.Context) {
	var input dto.GenerateJournalInput
	// Body is optional; defaults cover missing summaries.
	_ = c.ShouldBindJSON(&input)

	user, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.Generate(c.Request.Context(), user, input)
	if err != nil {
		log.Printf("journal: generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate journal entry, please try again"})
		return
	}

	c.JSON(http.StatusOK, res)
}
