package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /avatars)
	ListAvatars(c *gin.Context)
	// (GET /avatars/{name}/stats)
	ListStatsTimestamps(c *gin.Context, name string)
	// (GET /avatars/{name}/stats/{ts})
	GetStats(c *gin.Context, name string, ts int64, params GetStatsParams)
	// (GET /avatars/{name}/search)
	SearchLogs(c *gin.Context, name string, params SearchLogsParams)
	// (GET /avatars/{name}/export)
	ExportStats(c *gin.Context, name string)
	// (GET /avatars/{name}/notes)
	GetNotes(c *gin.Context, name string)
	// (PUT /avatars/{name}/notes)
	PutNotes(c *gin.Context, name string)
	// (DELETE /avatars/{name}/notes)
	DeleteNotes(c *gin.Context, name string)
	// (GET /notes)
	ListNotes(c *gin.Context)
	// (GET /settings)
	GetSettings(c *gin.Context)
	// (PUT /settings)
	PutSettings(c *gin.Context)
	// (GET /portals)
	GetPortals(c *gin.Context, params GetPortalsParams)
}

// ServerInterfaceWrapper converts gin contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, Error{Error: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	router.GET(options.BaseURL+"/avatars", wrapper.ListAvatars)
	router.GET(options.BaseURL+"/avatars/:name/stats", wrapper.ListStatsTimestamps)
	router.GET(options.BaseURL+"/avatars/:name/stats/:ts", wrapper.GetStats)
	router.GET(options.BaseURL+"/avatars/:name/search", wrapper.SearchLogs)
	router.GET(options.BaseURL+"/avatars/:name/export", wrapper.ExportStats)
	router.GET(options.BaseURL+"/avatars/:name/notes", wrapper.GetNotes)
	router.PUT(options.BaseURL+"/avatars/:name/notes", wrapper.PutNotes)
	router.DELETE(options.BaseURL+"/avatars/:name/notes", wrapper.DeleteNotes)
	router.GET(options.BaseURL+"/notes", wrapper.ListNotes)
	router.GET(options.BaseURL+"/settings", wrapper.GetSettings)
	router.PUT(options.BaseURL+"/settings", wrapper.PutSettings)
	router.GET(options.BaseURL+"/portals", wrapper.GetPortals)
}

func (w *ServerInterfaceWrapper) middlewares(c *gin.Context) bool {
	for _, middleware := range w.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

func (w *ServerInterfaceWrapper) name(c *gin.Context) (string, bool) {
	var name string
	err := runtime.BindStyledParameterWithLocation("simple", false, "name", runtime.ParamLocationPath, c.Param("name"), &name)
	if err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter name: %w", err), http.StatusBadRequest)
		return "", false
	}
	return name, true
}

func (w *ServerInterfaceWrapper) ListAvatars(c *gin.Context) {
	if !w.middlewares(c) {
		return
	}
	w.Handler.ListAvatars(c)
}

func (w *ServerInterfaceWrapper) ListStatsTimestamps(c *gin.Context) {
	name, ok := w.name(c)
	if !ok || !w.middlewares(c) {
		return
	}
	w.Handler.ListStatsTimestamps(c, name)
}

func (w *ServerInterfaceWrapper) GetStats(c *gin.Context) {
	name, ok := w.name(c)
	if !ok {
		return
	}

	var ts int64
	err := runtime.BindStyledParameterWithLocation("simple", false, "ts", runtime.ParamLocationPath, c.Param("ts"), &ts)
	if err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter ts: %w", err), http.StatusBadRequest)
		return
	}

	var params GetStatsParams
	if err := runtime.BindQueryParameter("form", true, false, "filter", c.Request.URL.Query(), &params.Filter); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter filter: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "view", c.Request.URL.Query(), &params.View); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter view: %w", err), http.StatusBadRequest)
		return
	}

	if !w.middlewares(c) {
		return
	}
	w.Handler.GetStats(c, name, ts, params)
}

func (w *ServerInterfaceWrapper) SearchLogs(c *gin.Context) {
	name, ok := w.name(c)
	if !ok {
		return
	}

	var params SearchLogsParams
	if err := runtime.BindQueryParameter("form", true, true, "q", c.Request.URL.Query(), &params.Q); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter q: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "regex", c.Request.URL.Query(), &params.Regex); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter regex: %w", err), http.StatusBadRequest)
		return
	}

	if !w.middlewares(c) {
		return
	}
	w.Handler.SearchLogs(c, name, params)
}

func (w *ServerInterfaceWrapper) ExportStats(c *gin.Context) {
	name, ok := w.name(c)
	if !ok || !w.middlewares(c) {
		return
	}
	w.Handler.ExportStats(c, name)
}

func (w *ServerInterfaceWrapper) GetNotes(c *gin.Context) {
	name, ok := w.name(c)
	if !ok || !w.middlewares(c) {
		return
	}
	w.Handler.GetNotes(c, name)
}

func (w *ServerInterfaceWrapper) PutNotes(c *gin.Context) {
	name, ok := w.name(c)
	if !ok || !w.middlewares(c) {
		return
	}
	w.Handler.PutNotes(c, name)
}

func (w *ServerInterfaceWrapper) DeleteNotes(c *gin.Context) {
	name, ok := w.name(c)
	if !ok || !w.middlewares(c) {
		return
	}
	w.Handler.DeleteNotes(c, name)
}

func (w *ServerInterfaceWrapper) ListNotes(c *gin.Context) {
	if !w.middlewares(c) {
		return
	}
	w.Handler.ListNotes(c)
}

func (w *ServerInterfaceWrapper) GetSettings(c *gin.Context) {
	if !w.middlewares(c) {
		return
	}
	w.Handler.GetSettings(c)
}

func (w *ServerInterfaceWrapper) PutSettings(c *gin.Context) {
	if !w.middlewares(c) {
		return
	}
	w.Handler.PutSettings(c)
}

func (w *ServerInterfaceWrapper) GetPortals(c *gin.Context) {
	var params GetPortalsParams
	if err := runtime.BindQueryParameter("form", true, false, "at", c.Request.URL.Query(), &params.At); err != nil {
		w.ErrorHandler(c, fmt.Errorf("invalid format for parameter at: %w", err), http.StatusBadRequest)
		return
	}

	if !w.middlewares(c) {
		return
	}
	w.Handler.GetPortals(c, params)
}
