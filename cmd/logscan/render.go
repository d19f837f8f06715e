package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/util"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	matchColor  = color.New(color.FgYellow, color.Bold)
	warnColor   = color.New(color.FgYellow)
	openColor   = color.New(color.FgGreen, color.Bold)
	closedColor = color.New(color.FgHiBlack)
)

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = false
	return tw
}

func renderList(w io.Writer, title string, items []string) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"#", title})
	for i, item := range items {
		tw.AppendRow(table.Row{i + 1, item})
	}
	tw.Render()
}

func renderTimestamps(w io.Writer, avatar string, timestamps []int64) {
	tw := newTable(w)
	tw.SetTitle(headerColor.Sprintf("%s: %d stats dumps", avatar, len(timestamps)))
	tw.AppendHeader(table.Row{"#", "Date", "Timestamp"})
	for i, ts := range timestamps {
		tw.AppendRow(table.Row{i + 1, util.ViewDate(ts), ts})
	}
	tw.Render()
}

func renderStats(w io.Writer, stats *models.Stats, fields []models.StatField) {
	tw := newTable(w)
	tw.SetTitle(headerColor.Sprintf("%s @ %s", stats.Avatar, util.ViewDate(stats.Timestamp)))
	tw.AppendHeader(table.Row{"Stat", "Value"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, f := range fields {
		tw.AppendRow(table.Row{f.Name, f.Value})
	}
	tw.Render()
}

func renderResists(w io.Writer, stats *models.Stats) {
	tw := newTable(w)
	tw.SetTitle(headerColor.Sprintf("%s @ %s resists", stats.Avatar, util.ViewDate(stats.Timestamp)))
	tw.AppendHeader(table.Row{"Element", "Resist"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, r := range stats.Resists() {
		value := strconv.FormatFloat(r.Value, 'f', -1, 64)
		if r.Value < 0 {
			value = color.RedString(value)
		}
		tw.AppendRow(table.Row{r.Element, value})
	}
	tw.Render()
}

func renderSearch(w io.Writer, search models.Search, result *models.SearchResult) {
	if result.Text == "" {
		fmt.Fprintln(w, warnColor.Sprintf("no entries matching %q", search.String()))
		return
	}
	if result.Truncated {
		fmt.Fprintln(w, warnColor.Sprint("older matches omitted, showing the most recent 1 MiB"))
	}
	fmt.Fprint(w, search.Highlight(result.Text, func(m string) string {
		return matchColor.Sprint(m)
	}))
}

func renderPortals(w io.Writer, rifts []models.Portal, vale models.Portal) {
	tw := newTable(w)
	tw.SetTitle(headerColor.Sprint("Lunar rifts"))
	tw.AppendHeader(table.Row{"Place", "State", "Time"})
	for _, r := range rifts {
		tw.AppendRow(portalRow(r))
	}
	tw.AppendSeparator()
	tw.AppendRow(portalRow(vale))
	tw.Render()
}

func portalRow(p models.Portal) table.Row {
	if p.Open {
		return table.Row{openColor.Sprint(p.Place), openColor.Sprint("open"), "closes in " + countdown(p.Remaining)}
	}
	return table.Row{p.Place, closedColor.Sprint("closed"), "opens in " + countdown(p.Remaining)}
}

func countdown(d time.Duration) string {
	d = d.Round(time.Second)
	h, m, s := int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60
	if h > 0 {
		return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
	}
	return fmt.Sprintf("%02dm %02ds", m, s)
}
