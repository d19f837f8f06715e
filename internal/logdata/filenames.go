package logdata

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/avatar-tools/logscan/internal/util"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

const (
	FilenamePrefix = "SotAChatLog_"
	filenameExt    = ".txt"
	anyAvatar      = ".+"
	anyDate        = `\d{4}-\d{2}-\d{2}`
)

// Filename builds the chat log filename of an avatar for a given day.
func Filename(avatar string, day time.Time) string {
	return FilenamePrefix + avatar + "_" + day.UTC().Format("2006-01-02") + filenameExt
}

// Filenames lists the chat logs in folder. An empty avatar matches every
// avatar; a nil ts matches every day, otherwise only the day of *ts.
func Filenames(folder, avatar string, ts *int64) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, srvErrors.NewLogFolderError(folder, err)
	}

	name := anyAvatar
	if avatar != "" {
		name = regexp.QuoteMeta(avatar)
	}
	date := anyDate
	if ts != nil {
		date = regexp.QuoteMeta(util.FileDate(*ts))
	}
	re, err := regexp.Compile("^" + regexp.QuoteMeta(FilenamePrefix) + name + "_" + date + regexp.QuoteMeta(filenameExt) + "$")
	if err != nil {
		return nil, err
	}

	var filenames []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if re.MatchString(e.Name()) {
			filenames = append(filenames, e.Name())
		}
	}
	sort.Strings(filenames)
	return filenames, nil
}

// FileDate extracts the day from a chat log filename or path.
func FileDate(path string) (time.Time, bool) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	pos := strings.LastIndexByte(stem, '_')
	if pos < 0 {
		return time.Time{}, false
	}
	return util.ParseFileDate(stem[pos+1:])
}

// AvatarName extracts the avatar from a chat log filename.
func AvatarName(filename string) (string, bool) {
	rest, ok := strings.CutPrefix(filename, FilenamePrefix)
	if !ok {
		return "", false
	}
	pos := strings.LastIndexByte(rest, '_')
	if pos <= 0 {
		return "", false
	}
	return rest[:pos], true
}
