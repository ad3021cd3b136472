package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
	"github.com/17Trust09/Planner/internal/evaluation"
	"github.com/17Trust09/Planner/internal/pricing"
)

// ProgressFunc receives coarse-grained export progress for interactive
// callers. percent is 0..100.
type ProgressFunc func(percent int, message string)

var topicSheetHeader = []string{"Sektion", "Thema", "Auswahl(en)", "Notizen", "Verantwortlich"}

// sheetName truncates a label to Excel's 31-character sheet name limit.
func sheetName(label string) string {
	if len(label) > 31 {
		return label[:31]
	}
	return label
}

// RoomOrder returns room IDs in house-structure order, with rooms missing
// from the structure appended sorted by name. This keeps exports stable
// across runs despite map iteration.
func RoomOrder(project *domain.Project) []string {
	var order []string
	seen := make(map[string]bool)
	for _, area := range project.Areas {
		for _, subarea := range area.Subareas {
			for _, roomID := range subarea.RoomIDs {
				if project.Room(roomID) != nil && !seen[roomID] {
					order = append(order, roomID)
					seen[roomID] = true
				}
			}
		}
	}
	var rest []string
	for roomID := range project.Rooms {
		if !seen[roomID] {
			rest = append(rest, roomID)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return project.Rooms[rest[i]].Name < project.Rooms[rest[j]].Name
	})
	return append(order, rest...)
}

type workbookStyles struct {
	header  int
	section int
	alt     int
}

func newStyles(f *excelize.File) (workbookStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	if err != nil {
		return workbookStyles{}, fmt.Errorf("failed to create header style: %w", err)
	}
	section, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
	})
	if err != nil {
		return workbookStyles{}, fmt.Errorf("failed to create section style: %w", err)
	}
	alt, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F8FAFC"}, Pattern: 1},
	})
	if err != nil {
		return workbookStyles{}, fmt.Errorf("failed to create alternate-row style: %w", err)
	}
	return workbookStyles{header: header, section: section, alt: alt}, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, cols, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func joinSelections(selections []string) string {
	if len(selections) == 0 {
		return "—"
	}
	return strings.Join(selections, ", ")
}

// writeTopicSheet renders one topic scope (global, outdoor or a room) as a
// section-grouped answer table.
func writeTopicSheet(f *excelize.File, styles workbookStyles, sheet string, topics []catalog.TopicDefinition, states domain.TopicStates) error {
	headerCells := make([]any, len(topicSheetHeader))
	for i, h := range topicSheetHeader {
		headerCells[i] = h
	}
	if err := setRow(f, sheet, 1, headerCells); err != nil {
		return err
	}
	if err := styleRow(f, sheet, 1, len(topicSheetHeader), styles.header); err != nil {
		return err
	}

	row := 2
	currentSection := ""
	for _, topic := range topics {
		if topic.Section != currentSection {
			if err := setRow(f, sheet, row, []any{topic.Section}); err != nil {
				return err
			}
			if err := styleRow(f, sheet, row, len(topicSheetHeader), styles.section); err != nil {
				return err
			}
			row++
			currentSection = topic.Section
		}
		state := states.Get(topic.Key)
		if err := setRow(f, sheet, row, []any{
			topic.Section, topic.Title, joinSelections(state.Selections), state.Notes, state.Assignee,
		}); err != nil {
			return err
		}
		if row%2 == 0 {
			if err := styleRow(f, sheet, row, len(topicSheetHeader), styles.alt); err != nil {
				return err
			}
		}
		row++
	}

	widths := []float64{22, 28, 45, 48, 20}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeEvaluationSheet(f *excelize.File, styles workbookStyles, project *domain.Project, roomOrder []string) error {
	const sheet = "Auswertung_Raumvergleich"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create evaluation sheet: %w", err)
	}

	columns := []string{catalog.OutdoorAreaName}
	for _, roomID := range roomOrder {
		columns = append(columns, project.Rooms[roomID].Name)
	}

	header := []any{"Topic"}
	for _, c := range columns {
		header = append(header, c)
	}
	header = append(header, "Bereiche mit Auswahl", "Diversity", "Dominanz")
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, sheet, 1, len(header), styles.header); err != nil {
		return err
	}

	matrix := evaluation.BuildRoomMatrix(project)
	metrics := evaluation.TopicMetrics(project)

	row := 2
	allTopics := append(append([]catalog.TopicDefinition{}, catalog.RoomTopics...), catalog.OutdoorTopics...)
	for _, topic := range allTopics {
		perScope := matrix[topic.Title]
		m := metrics[topic.Title]
		values := []any{topic.Title}
		for _, column := range columns {
			values = append(values, joinSelections(perScope[column]))
		}
		values = append(values,
			fmt.Sprintf("%d/%d", m.RoomsWithSelection, m.RoomCount),
			m.Diversity,
			round2(m.DominantRatio),
		)
		if err := setRow(f, sheet, row, values); err != nil {
			return err
		}
		if row%2 == 0 {
			if err := styleRow(f, sheet, row, len(header), styles.alt); err != nil {
				return err
			}
		}
		row++
	}

	for i := 1; i <= len(header); i++ {
		col, err := excelize.ColumnNumberToName(i)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, 22); err != nil {
			return err
		}
	}
	return nil
}

func writeCostSheet(f *excelize.File, styles workbookStyles, estimate pricing.Estimate) error {
	const sheet = "Kostenübersicht"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create cost sheet: %w", err)
	}

	header := []any{"Kategorie", "Beschreibung", "Menge", "Min (€)", "Typisch (€)", "Max (€)"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, sheet, 1, len(header), styles.header); err != nil {
		return err
	}

	row := 2
	for _, item := range estimate.LineItems {
		if err := setRow(f, sheet, row, []any{
			item.Category, item.Description, item.Quantity,
			item.Cost.Min, item.Cost.Typical, item.Cost.Max,
		}); err != nil {
			return err
		}
		if row%2 == 0 {
			if err := styleRow(f, sheet, row, len(header), styles.alt); err != nil {
				return err
			}
		}
		row++
	}

	row++
	if err := setRow(f, sheet, row, []any{
		"GESAMT", "", "", estimate.Totals.Min, estimate.Totals.Typical, estimate.Totals.Max,
	}); err != nil {
		return err
	}
	row += 2
	if err := setRow(f, sheet, row, []any{"Annahmen"}); err != nil {
		return err
	}
	for _, note := range estimate.Assumptions {
		row++
		if err := setRow(f, sheet, row, []any{"• " + note}); err != nil {
			return err
		}
	}

	widths := []float64{24, 50, 10, 14, 14, 14}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildProjectWorkbook renders the full planning workbook: one sheet per
// topic scope, the room-comparison matrix and the cost overview. progress
// may be nil.
func BuildProjectWorkbook(project *domain.Project, progress ProgressFunc) (*excelize.File, error) {
	report := func(percent int, message string) {
		if progress != nil {
			progress(percent, message)
		}
	}

	f := excelize.NewFile()
	styles, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	roomOrder := RoomOrder(project)
	// Sheets plus matrix and cost steps, for percent reporting.
	steps := len(roomOrder) + 4
	done := 0
	step := func(message string) {
		done++
		report(done*100/steps, message)
	}

	const globalSheet = "Global_Planung"
	if err := f.SetSheetName("Sheet1", globalSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if err := writeTopicSheet(f, styles, globalSheet, catalog.GlobalTopics, project.GlobalTopics); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write global sheet: %w", err)
	}
	step("Global Planung")

	outdoorSheet := sheetName(catalog.OutdoorAreaName)
	if _, err := f.NewSheet(outdoorSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create outdoor sheet: %w", err)
	}
	if err := writeTopicSheet(f, styles, outdoorSheet, catalog.OutdoorTopics, project.OutdoorTopics); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write outdoor sheet: %w", err)
	}
	step(catalog.OutdoorAreaName)

	for _, roomID := range roomOrder {
		room := project.Rooms[roomID]
		sheet := sheetName(room.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create room sheet %q: %w", room.Name, err)
		}
		if err := writeTopicSheet(f, styles, sheet, catalog.RoomTopics, room.Topics); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write room sheet %q: %w", room.Name, err)
		}
		step(room.Name)
	}

	if err := writeEvaluationSheet(f, styles, project, roomOrder); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write evaluation sheet: %w", err)
	}
	step("Auswertung")

	if err := writeCostSheet(f, styles, pricing.EstimateProjectCosts(project)); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write cost sheet: %w", err)
	}
	step("Kostenübersicht")

	return f, nil
}

// WriteProjectExcel builds the workbook and saves it to path.
func WriteProjectExcel(project *domain.Project, path string, progress ProgressFunc) error {
	f, err := BuildProjectWorkbook(project, progress)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
