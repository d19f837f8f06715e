package logdata

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/avatar-tools/logscan/internal/models"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
	"github.com/avatar-tools/logscan/pkg/scheduler"
)

// SearchLimit bounds the text returned by FindLogEntries to the most
// recent mebibyte of matches.
const SearchLimit = 1 << 20

// multilineStatsLimit is the length under which a stats dump is assumed to
// have been split over several lines by a script.
const multilineStatsLimit = 1000

// LogData reads the chat logs of one folder. Every file is scanned by a job
// on the LogData's pool.
type LogData struct {
	folder string
	pool   *scheduler.Pool
	log    *zap.SugaredLogger
}

// DefaultWorkers is the pool size used when none is configured.
func DefaultWorkers() int {
	return max(runtime.NumCPU(), 2)
}

// New creates a LogData for folder with a pool of workers goroutines.
// workers <= 0 selects DefaultWorkers.
func New(folder string, workers int) (*LogData, error) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	log := zap.S().Named("logdata")
	pool, err := scheduler.NewPool(workers, scheduler.WithLogger(log.Named("pool")))
	if err != nil {
		return nil, err
	}
	return &LogData{
		folder: folder,
		pool:   pool,
		log:    log,
	}, nil
}

func (l *LogData) Folder() string {
	return l.folder
}

// Close tears the pool down, cancelling outstanding scans.
func (l *LogData) Close() {
	l.pool.Close()
}

// Avatars returns the sorted names of the avatars with chat logs.
func (l *LogData) Avatars() ([]string, error) {
	filenames, err := Filenames(l.folder, "", nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	avatars := []string{}
	for _, f := range filenames {
		name, ok := AvatarName(f)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		avatars = append(avatars, name)
	}
	sort.Strings(avatars)
	return avatars, nil
}

// StatsTimestamps returns the timestamps of every /stats dump of avatar,
// most recent first.
func (l *LogData) StatsTimestamps(ctx context.Context, avatar string) ([]int64, error) {
	filenames, err := Filenames(l.folder, avatar, nil)
	if err != nil {
		return nil, err
	}

	tasks := make([]*scheduler.Task[[]int64], 0, len(filenames))
	for _, f := range filenames {
		path := filepath.Join(l.folder, f)
		day, ok := FileDate(path)
		if !ok {
			continue
		}
		tasks = append(tasks, scheduler.Exec(l.pool, func(cancelled scheduler.CancelCheck) ([]int64, bool) {
			lines, err := readLines(context.Background(), path)
			if err != nil {
				l.log.Warnw("failed to read chat log", "path", path, "error", err)
				return nil, false
			}
			timestamps := []int64{}
			for _, line := range lines {
				if cancelled() {
					return nil, false
				}
				if ts, ok := StatsTimestamp(line, day); ok {
					timestamps = append(timestamps, ts)
				}
			}
			return timestamps, true
		}))
	}

	timestamps := []int64{}
	err = gather(ctx, tasks, func(r []int64) bool {
		timestamps = append(timestamps, r...)
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] > timestamps[j] })
	l.log.Debugw("stats timestamps collected", "avatar", avatar, "files", len(tasks), "count", len(timestamps))
	return timestamps, nil
}

// Stats returns the /stats dump of avatar logged at ts.
func (l *LogData) Stats(ctx context.Context, avatar string, ts int64) (*models.Stats, error) {
	filenames, err := Filenames(l.folder, avatar, &ts)
	if err != nil {
		return nil, err
	}

	// There is one file per avatar and day, but stay generic.
	tasks := make([]*scheduler.Task[string], 0, len(filenames))
	for _, f := range filenames {
		path := filepath.Join(l.folder, f)
		day, ok := FileDate(path)
		if !ok {
			continue
		}
		tasks = append(tasks, scheduler.Exec(l.pool, func(cancelled scheduler.CancelCheck) (string, bool) {
			lines, err := readLines(context.Background(), path)
			if err != nil {
				l.log.Warnw("failed to read chat log", "path", path, "error", err)
				return "", false
			}
			for i, line := range lines {
				if cancelled() {
					return "", false
				}
				text, ok := StatsText(line, ts, day)
				if !ok {
					continue
				}
				if len(text) < multilineStatsLimit {
					text = joinContinuation(text, lines[i+1:])
				}
				return text, true
			}
			return "", false
		}))
	}

	var stats *models.Stats
	err = gather(ctx, tasks, func(text string) bool {
		stats = &models.Stats{Avatar: avatar, Timestamp: ts, Text: text}
		return false
	})
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, srvErrors.NewStatsNotFoundError(avatar, ts)
	}
	return stats, nil
}

// joinContinuation appends the lines following a stats line up to the next
// timestamped line.
func joinContinuation(text string, rest []string) string {
	var b strings.Builder
	b.WriteString(text)
	for _, line := range rest {
		if strings.HasPrefix(line, "[") {
			break
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}

// FindLogEntries returns the most recent SearchLimit bytes of avatar's chat
// log lines matching search, oldest first. Files are scanned newest first
// and the scan stops once enough text has been collected.
func (l *LogData) FindLogEntries(ctx context.Context, avatar string, search models.Search) (*models.SearchResult, error) {
	filenames, err := Filenames(l.folder, avatar, nil)
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(filenames)))

	tasks := make([]*scheduler.Task[string], 0, len(filenames))
	for _, f := range filenames {
		path := filepath.Join(l.folder, f)
		tasks = append(tasks, scheduler.Exec(l.pool, func(cancelled scheduler.CancelCheck) (string, bool) {
			lines, err := readLines(context.Background(), path)
			if err != nil {
				l.log.Warnw("failed to read chat log", "path", path, "error", err)
				return "", false
			}
			var matches []string
			for _, line := range lines {
				if cancelled() {
					return "", false
				}
				if search.Match(line) {
					matches = append(matches, line)
				}
			}
			return newestFirst(matches, SearchLimit), true
		}))
	}

	var results []string
	size := 0
	err = gather(ctx, tasks, func(r string) bool {
		size += len(r)
		results = append(results, r)
		return size < SearchLimit
	})
	if err != nil {
		return nil, err
	}

	// results and the lines within are newest first.
	truncated := size >= SearchLimit
	var lines []string
	size = 0
collect:
	for _, r := range results {
		for _, line := range strings.Split(r, "\n") {
			if line == "" {
				continue
			}
			size += len(line)
			lines = append(lines, line)
			if size >= SearchLimit {
				truncated = true
				break collect
			}
		}
	}

	var b strings.Builder
	b.Grow(size + len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}

	l.log.Debugw("log search finished", "avatar", avatar, "term", search.String(), "files", len(tasks), "lines", len(lines))
	return &models.SearchResult{
		Avatar:    avatar,
		Term:      search.String(),
		Text:      b.String(),
		Truncated: truncated,
	}, nil
}

// newestFirst joins lines in reverse order, stopping once limit bytes have
// been written.
func newestFirst(lines []string, limit int) string {
	var b strings.Builder
	size := 0
	for i := len(lines) - 1; i >= 0; i-- {
		b.WriteString(lines[i])
		b.WriteByte('\n')
		size += len(lines[i]) + 1
		if size >= limit {
			break
		}
	}
	return b.String()
}

// gather waits for tasks in submission order and hands every result to fn.
// When fn returns false or ctx is done the remaining tasks are cancelled.
func gather[R any](ctx context.Context, tasks []*scheduler.Task[R], fn func(R) bool) error {
	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			cancelAll(tasks[i:])
			return err
		}
		select {
		case <-ctx.Done():
			cancelAll(tasks[i:])
			return ctx.Err()
		case <-t.Done():
		}
		if v, ok := t.Get(); ok && !fn(v) {
			cancelAll(tasks[i+1:])
			return nil
		}
	}
	return nil
}

func cancelAll[R any](tasks []*scheduler.Task[R]) {
	for _, t := range tasks {
		t.Cancel()
	}
}
