package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/avatar-tools/logscan/api/v1"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

// GetSettings returns the selected log folder and avatar
// (GET /settings)
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewSettingsFromModel(h.logSrv.Settings()))
}

// PutSettings selects a log folder and avatar. The folder is only replaced
// when it differs from the current one.
// (PUT /settings)
func (h *Handler) PutSettings(c *gin.Context) {
	var body v1.Settings
	if err := c.ShouldBindJSON(&body); err != nil {
		abort(c, "settings_handler", "", srvErrors.NewInvalidArgumentError("invalid request body: %v", err))
		return
	}
	if body.LogFolder == "" {
		abort(c, "settings_handler", "", srvErrors.NewInvalidArgumentError("logFolder is required"))
		return
	}

	ctx := c.Request.Context()
	if body.LogFolder != h.logSrv.Settings().LogFolder {
		if err := h.logSrv.SetFolder(ctx, body.LogFolder); err != nil {
			abort(c, "settings_handler", "failed to set log folder", err)
			return
		}
	}
	if err := h.logSrv.SetAvatar(ctx, body.Avatar); err != nil {
		abort(c, "settings_handler", "failed to set avatar", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSettingsFromModel(h.logSrv.Settings()))
}
