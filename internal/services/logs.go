package services

import (
	"context"
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/avatar-tools/logscan/internal/logdata"
	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/store"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

// LogService owns the LogData of the selected chat log folder.
//
// Read operations hold the read lock for their whole duration so SetFolder
// never closes a pool that a request is still using.
type LogService struct {
	mu       sync.RWMutex
	data     *logdata.LogData
	avatar   string
	workers  int
	settings *store.SettingsStore
	log      *zap.SugaredLogger
}

// NewLogService creates a service without a folder. settings may be nil, in
// which case the selection is not persisted.
func NewLogService(settings *store.SettingsStore, workers int) *LogService {
	return &LogService{
		workers:  workers,
		settings: settings,
		log:      zap.S().Named("log_service"),
	}
}

// Init selects folder, or the persisted folder when folder is empty.
// Nothing is selected when neither is available.
func (s *LogService) Init(ctx context.Context, folder string) error {
	avatar := ""
	if s.settings != nil {
		saved, err := s.settings.Get(ctx)
		switch {
		case err == nil:
			avatar = saved.Avatar
			if folder == "" {
				folder = saved.LogFolder
			}
		case !srvErrors.IsResourceNotFoundError(err):
			return err
		}
	}

	if folder == "" {
		s.log.Infow("no log folder configured")
		return nil
	}

	if err := s.SetFolder(ctx, folder); err != nil {
		return err
	}
	return s.SetAvatar(ctx, avatar)
}

// SetFolder replaces the data source. The previous pool is closed once
// in-flight operations have finished.
func (s *LogService) SetFolder(ctx context.Context, folder string) error {
	info, err := os.Stat(folder)
	if err != nil {
		return srvErrors.NewLogFolderError(folder, err)
	}
	if !info.IsDir() {
		return srvErrors.NewLogFolderError(folder, errors.New("not a directory"))
	}

	data, err := logdata.New(folder, s.workers)
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.data
	s.data = data
	avatar := s.avatar
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	s.log.Infow("log folder selected", "folder", folder)

	return s.persist(ctx, models.Settings{LogFolder: folder, Avatar: avatar})
}

// SetAvatar records the avatar selected by the user.
func (s *LogService) SetAvatar(ctx context.Context, avatar string) error {
	s.mu.Lock()
	s.avatar = avatar
	folder := ""
	if s.data != nil {
		folder = s.data.Folder()
	}
	s.mu.Unlock()

	return s.persist(ctx, models.Settings{LogFolder: folder, Avatar: avatar})
}

// Settings returns the current selection.
func (s *LogService) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := models.Settings{Avatar: s.avatar}
	if s.data != nil {
		settings.LogFolder = s.data.Folder()
	}
	return settings
}

func (s *LogService) Avatars() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, errNoFolder()
	}
	return s.data.Avatars()
}

func (s *LogService) Timestamps(ctx context.Context, avatar string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, errNoFolder()
	}
	return s.data.StatsTimestamps(ctx, avatar)
}

func (s *LogService) Stats(ctx context.Context, avatar string, ts int64) (*models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, errNoFolder()
	}
	return s.data.Stats(ctx, avatar, ts)
}

func (s *LogService) Search(ctx context.Context, avatar string, search models.Search) (*models.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, errNoFolder()
	}
	return s.data.FindLogEntries(ctx, avatar, search)
}

// Close releases the current pool.
func (s *LogService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data != nil {
		s.data.Close()
		s.data = nil
	}
}

func (s *LogService) persist(ctx context.Context, settings models.Settings) error {
	if s.settings == nil {
		return nil
	}
	if err := s.settings.Save(ctx, &settings); err != nil {
		s.log.Errorw("failed to save settings", "error", err)
		return err
	}
	return nil
}

func errNoFolder() error {
	return srvErrors.NewInvalidArgumentError("no log folder selected")
}
