package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the flat error envelope the frontend consumes.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes an error with the uniform body.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// BadRequest maps validation failures to 400 with a short reason.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized is the uniform gate response. The body never varies so the
// gate leaks nothing about why the session was rejected.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError is the generic 500; details stay in the server log.
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
