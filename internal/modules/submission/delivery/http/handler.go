package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/modules/submission/dto"
	submissionService "zeros.dev/launchpad/internal/modules/submission/service"
	"zeros.dev/launchpad/pkg/response"
	"zeros.dev/launchpad/pkg/validator"
)

type SubmissionHandler struct {
	service submissionService.SubmissionService
}

func NewSubmissionHandler(service submissionService.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

func (h *SubmissionHandler) GetAllSubmissions(c *gin.Context) {
	res, err := h.service.GetAllSubmissions(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	var input dto.SubmitInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var file *dto.UploadFile
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		defer f.Close()

		file = &dto.UploadFile{
			Reader:   f,
			FileName: fileHeader.Filename,
			Size:     fileHeader.Size,
		}
	}

	res, err := h.service.Submit(c.Request.Context(), input.TaskID, user, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{Submission: res})
}

func (h *SubmissionHandler) Score(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	var input dto.ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.CurrentUser(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.Score(c.Request.Context(), id, input.Scores, user.Name)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{Submission: res})
}
