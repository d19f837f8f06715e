package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/avatar-tools/logscan/api/v1"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

// GetNotes returns the notes of an avatar
// (GET /avatars/:name/notes)
func (h *Handler) GetNotes(c *gin.Context, name string) {
	notes, err := h.notesSrv.Get(c.Request.Context(), name)
	if err != nil {
		abort(c, "notes_handler", "failed to get notes", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewNotesFromModel(*notes))
}

// PutNotes replaces the notes of an avatar
// (PUT /avatars/:name/notes)
func (h *Handler) PutNotes(c *gin.Context, name string) {
	var body v1.NotesUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		abort(c, "notes_handler", "", srvErrors.NewInvalidArgumentError("invalid request body: %v", err))
		return
	}

	notes, err := h.notesSrv.Set(c.Request.Context(), name, body.Text)
	if err != nil {
		abort(c, "notes_handler", "failed to save notes", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewNotesFromModel(*notes))
}

// DeleteNotes removes the notes of an avatar
// (DELETE /avatars/:name/notes)
func (h *Handler) DeleteNotes(c *gin.Context, name string) {
	if err := h.notesSrv.Delete(c.Request.Context(), name); err != nil {
		abort(c, "notes_handler", "failed to delete notes", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListNotes returns the notes of every avatar
// (GET /notes)
func (h *Handler) ListNotes(c *gin.Context) {
	notes, err := h.notesSrv.List(c.Request.Context())
	if err != nil {
		abort(c, "notes_handler", "failed to list notes", err)
		return
	}

	list := v1.NotesList{Notes: make([]v1.Notes, 0, len(notes))}
	for _, n := range notes {
		list.Notes = append(list.Notes, v1.NewNotesFromModel(n))
	}
	c.JSON(http.StatusOK, list)
}
