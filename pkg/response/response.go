package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/pkg/apperror"
)

// CurrentUser retrieves the authenticated user placed on the context by the
// auth middleware.
func CurrentUser(c *gin.Context) (*entity.User, error) {
	v, exists := c.Get("current_user")
	if !exists {
		return nil, apperror.ErrUnauthorized
	}

	user, ok := v.(*entity.User)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	return user, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
