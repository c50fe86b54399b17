package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/modules/request/dto"
	requestService "zeros.dev/launchpad/internal/modules/request/service"
	"zeros.dev/launchpad/pkg/response"
	"zeros.dev/launchpad/pkg/validator"
)

type RequestHandler struct {
	service requestService.RequestService
}

func NewRequestHandler(service requestService.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) GetAllRequests(c *gin.Context) {
	res, err := h.service.GetAllRequests(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var input dto.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RequestResponse{Request: res})
}

func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	res, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestResponse{Request: res})
}

func (h *RequestHandler) RejectRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	res, err := h.service.Reject(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestResponse{Request: res})
}
