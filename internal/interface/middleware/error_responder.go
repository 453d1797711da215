package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponder finishes any request whose handler signaled failure via
// response.AbortWithError. Two stages, always in order: write a structured
// log line with method, path, and message, then render {"message": ...} with
// the status the handler set (500 when none was).
func ErrorResponder(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString("request_id"),
		}).Error(last.Error())

		if !c.Writer.Written() {
			c.JSON(status, gin.H{"message": last.Error()})
		}
	}
}
