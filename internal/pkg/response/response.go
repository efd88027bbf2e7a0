package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenadmin/internal/kitchenapi"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// Upstream renders a failed kitchen API call. The API's own message passes
// through verbatim with its status code; a network-level failure (nothing
// came back at all) degrades to a 502 with the error string.
func Upstream(c *gin.Context, err error) {
	var apiErr *kitchenapi.APIError
	if errors.As(err, &apiErr) {
		Error(c, apiErr.StatusCode, "API_ERROR", apiErr.Message)
		return
	}
	Error(c, http.StatusBadGateway, "UPSTREAM_UNREACHABLE", err.Error())
}
