package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/avatar-tools/logscan/api/v1"
	"github.com/avatar-tools/logscan/internal/models"
)

// GetPortals returns the lunar rift and Lost Vale timers at the requested
// instant, or now.
// (GET /portals)
func (h *Handler) GetPortals(c *gin.Context, params v1.GetPortalsParams) {
	at := time.Now().UTC()
	if params.At != nil {
		at = time.Unix(*params.At, 0).UTC()
	}
	c.JSON(http.StatusOK, v1.NewPortalListFromModel(at, models.LunarRifts(at), models.LostVale(at)))
}
