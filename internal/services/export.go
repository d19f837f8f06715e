package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/util"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

const (
	StatsSheet   = "Stats"
	ResistsSheet = "Resists"

	nameColumnWidth  = 32
	valueColumnWidth = 22
)

// ExportService writes the stats history of an avatar to an xlsx workbook.
type ExportService struct {
	logs *LogService
	log  *zap.SugaredLogger
}

func NewExportService(logs *LogService) *ExportService {
	return &ExportService{logs: logs, log: zap.S().Named("export_service")}
}

// Export writes one column per stats dump, most recent first. The Stats
// sheet holds the raw values and the Resists sheet the effective resists.
func (e *ExportService) Export(ctx context.Context, avatar string, w io.Writer) error {
	history, err := e.history(ctx, avatar)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.log.Warnw("failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", StatsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ResistsSheet); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeStatsSheet(f, history, header); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", StatsSheet, err)
	}
	if err := writeResistsSheet(f, history, header); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", ResistsSheet, err)
	}

	e.log.Infow("stats exported", "avatar", avatar, "dumps", len(history))
	return f.Write(w)
}

func (e *ExportService) history(ctx context.Context, avatar string) ([]*models.Stats, error) {
	timestamps, err := e.logs.Timestamps(ctx, avatar)
	if err != nil {
		return nil, err
	}
	if len(timestamps) == 0 {
		return nil, srvErrors.NewResourceNotFoundError("stats", avatar)
	}

	history := make([]*models.Stats, 0, len(timestamps))
	for _, ts := range timestamps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats, err := e.logs.Stats(ctx, avatar, ts)
		if srvErrors.IsResourceNotFoundError(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		history = append(history, stats)
	}
	return history, nil
}

func writeStatsSheet(f *excelize.File, history []*models.Stats, header int) error {
	var names []string
	rows := make(map[string]int)
	values := make([]map[string]models.StatField, len(history))

	for i, stats := range history {
		values[i] = make(map[string]models.StatField)
		for _, field := range stats.Fields() {
			if _, ok := rows[field.Name]; !ok {
				rows[field.Name] = len(names) + 2
				names = append(names, field.Name)
			}
			values[i][field.Name] = field
		}
	}

	if err := writeHeader(f, StatsSheet, "Stat", history, header); err != nil {
		return err
	}

	for _, name := range names {
		if err := setCell(f, StatsSheet, 1, rows[name], name); err != nil {
			return err
		}
	}

	for i := range history {
		for name, field := range values[i] {
			var v any = field.Value
			if num, ok := field.Float(); ok {
				v = num
			}
			if err := setCell(f, StatsSheet, i+2, rows[name], v); err != nil {
				return err
			}
		}
	}

	return formatSheet(f, StatsSheet, len(history))
}

func writeResistsSheet(f *excelize.File, history []*models.Stats, header int) error {
	values := make([]map[string]float64, len(history))
	present := make(map[string]bool)
	for i, stats := range history {
		values[i] = make(map[string]float64)
		for _, resist := range stats.Resists() {
			values[i][resist.Element] = resist.Value
			present[resist.Element] = true
		}
	}

	if err := writeHeader(f, ResistsSheet, "Element", history, header); err != nil {
		return err
	}

	row := 2
	for _, element := range models.ResistElements() {
		if !present[element] {
			continue
		}
		if err := setCell(f, ResistsSheet, 1, row, element); err != nil {
			return err
		}
		for i := range history {
			v, ok := values[i][element]
			if !ok {
				continue
			}
			if err := setCell(f, ResistsSheet, i+2, row, v); err != nil {
				return err
			}
		}
		row++
	}

	return formatSheet(f, ResistsSheet, len(history))
}

func writeHeader(f *excelize.File, sheet, first string, history []*models.Stats, style int) error {
	row := make([]any, 0, len(history)+1)
	row = append(row, first)
	for _, stats := range history {
		row = append(row, util.ViewDate(stats.Timestamp))
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(row), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func formatSheet(f *excelize.File, sheet string, columns int) error {
	if err := f.SetColWidth(sheet, "A", "A", nameColumnWidth); err != nil {
		return err
	}
	if columns > 0 {
		last, err := excelize.ColumnNumberToName(columns + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "B", last, valueColumnWidth); err != nil {
			return err
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
