package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/avatar-tools/logscan/api/v1"
	"github.com/avatar-tools/logscan/internal/models"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListAvatars returns the avatars found in the log folder
// (GET /avatars)
func (h *Handler) ListAvatars(c *gin.Context) {
	avatars, err := h.logSrv.Avatars()
	if err != nil {
		abort(c, "avatar_handler", "failed to list avatars", err)
		return
	}
	c.JSON(http.StatusOK, v1.AvatarList{Avatars: avatars})
}

// ListStatsTimestamps returns the stats dump timestamps, most recent first
// (GET /avatars/:name/stats)
func (h *Handler) ListStatsTimestamps(c *gin.Context, name string) {
	timestamps, err := h.logSrv.Timestamps(c.Request.Context(), name)
	if err != nil {
		abort(c, "stats_handler", "failed to list stats", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewStatsTimestampListFromModel(name, timestamps))
}

// GetStats returns one stats dump, either as filtered fields or as
// effective resists
// (GET /avatars/:name/stats/:ts)
func (h *Handler) GetStats(c *gin.Context, name string, ts int64, params v1.GetStatsParams) {
	view := v1.GetStatsParamsViewFields
	if params.View != nil {
		view = *params.View
	}
	if view != v1.GetStatsParamsViewFields && view != v1.GetStatsParamsViewResists {
		abort(c, "stats_handler", "", srvErrors.NewInvalidArgumentError("unknown view %q", view))
		return
	}

	stats, err := h.logSrv.Stats(c.Request.Context(), name, ts)
	if err != nil {
		abort(c, "stats_handler", "failed to get stats", err)
		return
	}

	if view == v1.GetStatsParamsViewResists {
		c.JSON(http.StatusOK, v1.NewResistListFromModel(*stats))
		return
	}

	var filter string
	if params.Filter != nil {
		filter = *params.Filter
	}
	fields := stats.Filter(filter)
	c.JSON(http.StatusOK, v1.NewStatsFromModel(*stats, fields))
}

// SearchLogs returns the most recent log lines matching a term or regexp
// (GET /avatars/:name/search)
func (h *Handler) SearchLogs(c *gin.Context, name string, params v1.SearchLogsParams) {
	regex := params.Regex != nil && *params.Regex

	search, err := models.NewSearch(params.Q, regex)
	if err != nil {
		abort(c, "search_handler", "", err)
		return
	}

	result, err := h.logSrv.Search(c.Request.Context(), name, search)
	if err != nil {
		abort(c, "search_handler", "failed to search logs", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewSearchResultFromModel(*result, regex))
}

// ExportStats returns the avatar's stats history as an xlsx workbook
// (GET /avatars/:name/export)
func (h *Handler) ExportStats(c *gin.Context, name string) {
	var buf bytes.Buffer
	if err := h.exportSrv.Export(c.Request.Context(), name, &buf); err != nil {
		abort(c, "export_handler", "failed to export stats", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"_stats.xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
