package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AbortWithError records the intended status and the failure on the gin
// context and stops the handler chain. It does not write the body: the
// ErrorResponder middleware logs the failure and renders {"message": ...}
// afterwards, so the log stage always runs before the respond stage.
func AbortWithError(c *gin.Context, status int, err error) {
	c.Status(status)
	_ = c.Error(err)
	c.Abort()
}

// Message writes a plain confirmation body, e.g. after a delete.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
