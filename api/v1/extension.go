package v1

import (
	"time"

	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/util"
)

// NewStatsTimestampListFromModel converts timestamps to the API list.
func NewStatsTimestampListFromModel(avatar string, timestamps []int64) StatsTimestampList {
	list := StatsTimestampList{
		Avatar:     avatar,
		Timestamps: make([]StatsTimestamp, 0, len(timestamps)),
	}
	for _, ts := range timestamps {
		list.Timestamps = append(list.Timestamps, StatsTimestamp{Timestamp: ts, Date: util.ViewDate(ts)})
	}
	return list
}

// NewStatsFromModel converts a stats dump, keeping only fields.
func NewStatsFromModel(s models.Stats, fields []models.StatField) Stats {
	apiStats := Stats{
		Avatar:    s.Avatar,
		Timestamp: s.Timestamp,
		Date:      util.ViewDate(s.Timestamp),
		Fields:    make([]StatField, 0, len(fields)),
	}
	for _, f := range fields {
		field := StatField{Name: f.Name, Value: f.Value}
		if v, ok := f.Float(); ok {
			field.Number = &v
		}
		apiStats.Fields = append(apiStats.Fields, field)
	}
	return apiStats
}

func NewResistListFromModel(s models.Stats) ResistList {
	resists := s.Resists()
	list := ResistList{
		Avatar:    s.Avatar,
		Timestamp: s.Timestamp,
		Date:      util.ViewDate(s.Timestamp),
		Resists:   make([]Resist, 0, len(resists)),
	}
	for _, r := range resists {
		list.Resists = append(list.Resists, Resist{Element: r.Element, Value: r.Value})
	}
	return list
}

func NewSearchResultFromModel(r models.SearchResult, regex bool) SearchResult {
	return SearchResult{
		Avatar:    r.Avatar,
		Term:      r.Term,
		Regex:     regex,
		Text:      r.Text,
		Truncated: r.Truncated,
	}
}

func NewNotesFromModel(n models.Notes) Notes {
	return Notes{
		Avatar:    n.Avatar,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func NewSettingsFromModel(s models.Settings) Settings {
	return Settings{LogFolder: s.LogFolder, Avatar: s.Avatar}
}

func NewPortalFromModel(p models.Portal) Portal {
	return Portal{
		Place:            p.Place,
		Open:             p.Open,
		RemainingSeconds: int64(p.Remaining / time.Second),
	}
}

func NewPortalListFromModel(at time.Time, rifts []models.Portal, vale models.Portal) PortalList {
	list := PortalList{
		At:       at.Unix(),
		Rifts:    make([]Portal, 0, len(rifts)),
		LostVale: NewPortalFromModel(vale),
	}
	for _, r := range rifts {
		list.Rifts = append(list.Rifts, NewPortalFromModel(r))
	}
	return list
}
