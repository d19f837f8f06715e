package services

import (
	"context"

	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/store"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

type NotesService struct {
	store *store.NotesStore
}

func NewNotesService(s *store.NotesStore) *NotesService {
	return &NotesService{store: s}
}

func (n *NotesService) Get(ctx context.Context, avatar string) (*models.Notes, error) {
	if avatar == "" {
		return nil, srvErrors.NewInvalidArgumentError("avatar is required")
	}
	return n.store.Get(ctx, avatar)
}

// Set saves text as the avatar's notes and returns the stored record.
func (n *NotesService) Set(ctx context.Context, avatar, text string) (*models.Notes, error) {
	if avatar == "" {
		return nil, srvErrors.NewInvalidArgumentError("avatar is required")
	}
	if err := n.store.Save(ctx, avatar, text); err != nil {
		return nil, err
	}
	return n.store.Get(ctx, avatar)
}

func (n *NotesService) Delete(ctx context.Context, avatar string) error {
	return n.store.Delete(ctx, avatar)
}

func (n *NotesService) List(ctx context.Context) ([]models.Notes, error) {
	return n.store.List(ctx)
}
