package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/avatar-tools/logscan/api/v1"
	"github.com/avatar-tools/logscan/internal/services"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

type Handler struct {
	logSrv    *services.LogService
	notesSrv  *services.NotesService
	exportSrv *services.ExportService
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(logSrv *services.LogService, notesSrv *services.NotesService, exportSrv *services.ExportService) *Handler {
	return &Handler{
		logSrv:    logSrv,
		notesSrv:  notesSrv,
		exportSrv: exportSrv,
	}
}

// abort writes the JSON error matching err: 404 for missing resources,
// 400 for bad input and 500 for everything else.
func abort(c *gin.Context, handler, msg string, err error) {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
	case srvErrors.IsInvalidArgumentError(err), srvErrors.IsLogFolderError(err):
		c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
	default:
		zap.S().Named(handler).Errorw(msg, "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: msg})
	}
}
