package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ramakant55/Trendora-Boutique/common"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: code, Message: message})
}

// writeCommandError maps a CommandError to an HTTP status. Anything else
// is an internal error.
func (h *Handler) writeCommandError(c *gin.Context, err error) {
	var cmdErr *common.CommandError
	if !errors.As(err, &cmdErr) {
		h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		writeError(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	status := http.StatusInternalServerError
	switch cmdErr.Code {
	case common.StatusInvalidArgument:
		status = http.StatusBadRequest
	case common.StatusFailedPrecondition:
		status = http.StatusConflict
	case common.StatusNotFound:
		status = http.StatusNotFound
	}
	writeError(c, status, cmdErr.Code.String(), cmdErr.Message)
}
