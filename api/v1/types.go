package v1

import "time"

// GetStatsParamsView selects the representation of a stats dump.
type GetStatsParamsView string

const (
	GetStatsParamsViewFields  GetStatsParamsView = "fields"
	GetStatsParamsViewResists GetStatsParamsView = "resists"
)

// GetStatsParams defines parameters for GetStats.
type GetStatsParams struct {
	Filter *string             `form:"filter,omitempty" json:"filter,omitempty"`
	View   *GetStatsParamsView `form:"view,omitempty" json:"view,omitempty"`
}

// SearchLogsParams defines parameters for SearchLogs.
type SearchLogsParams struct {
	Q     string `form:"q" json:"q"`
	Regex *bool  `form:"regex,omitempty" json:"regex,omitempty"`
}

// GetPortalsParams defines parameters for GetPortals.
type GetPortalsParams struct {
	// At is a UNIX timestamp; the current time when omitted.
	At *int64 `form:"at,omitempty" json:"at,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}

type AvatarList struct {
	Avatars []string `json:"avatars"`
}

type StatsTimestamp struct {
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
}

type StatsTimestampList struct {
	Avatar     string           `json:"avatar"`
	Timestamps []StatsTimestamp `json:"timestamps"`
}

type StatField struct {
	Name   string   `json:"name"`
	Value  string   `json:"value"`
	Number *float64 `json:"number,omitempty"`
}

type Stats struct {
	Avatar    string      `json:"avatar"`
	Timestamp int64       `json:"timestamp"`
	Date      string      `json:"date"`
	Fields    []StatField `json:"fields"`
}

type Resist struct {
	Element string  `json:"element"`
	Value   float64 `json:"value"`
}

type ResistList struct {
	Avatar    string   `json:"avatar"`
	Timestamp int64    `json:"timestamp"`
	Date      string   `json:"date"`
	Resists   []Resist `json:"resists"`
}

type SearchResult struct {
	Avatar    string `json:"avatar"`
	Term      string `json:"term"`
	Regex     bool   `json:"regex"`
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
}

type Notes struct {
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NotesList struct {
	Notes []Notes `json:"notes"`
}

type NotesUpdate struct {
	Text string `json:"text"`
}

type Settings struct {
	LogFolder string `json:"logFolder"`
	Avatar    string `json:"avatar"`
}

type Portal struct {
	Place            string `json:"place"`
	Open             bool   `json:"open"`
	RemainingSeconds int64  `json:"remainingSeconds"`
}

type PortalList struct {
	At       int64    `json:"at"`
	Rifts    []Portal `json:"rifts"`
	LostVale Portal   `json:"lostVale"`
}
