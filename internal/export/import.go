package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
)

func titleIndex(topics []catalog.TopicDefinition) map[string]catalog.TopicDefinition {
	m := make(map[string]catalog.TopicDefinition, len(topics))
	for _, t := range topics {
		m[t.Title] = t
	}
	return m
}

// importSheet parses one topic sheet back into topic states. Rows that do
// not match a known topic title are skipped; the em-dash placeholder for
// "no selection" is ignored.
func importSheet(f *excelize.File, sheet string, byTitle map[string]catalog.TopicDefinition, states domain.TopicStates) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		topic, ok := byTitle[row[1]]
		if !ok {
			continue
		}
		var selections []string
		for _, s := range strings.Split(row[2], ",") {
			s = strings.TrimSpace(s)
			if s == "" || s == "—" {
				continue
			}
			selections = append(selections, s)
		}
		if topic.MaxSelections > 0 && len(selections) > topic.MaxSelections {
			selections = selections[:topic.MaxSelections]
		}
		state := domain.TopicState{Selections: selections}
		if len(row) > 3 {
			state.Notes = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			state.Assignee = strings.TrimSpace(row[4])
		}
		states[topic.Key] = state
	}
	return nil
}

// ImportProjectExcel reads a previously exported workbook back into a
// fresh project with the default house structure. Sheets for unknown rooms
// are ignored.
func ImportProjectExcel(path string, projectName string) (*domain.Project, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	project := catalog.NewEmptyProject(projectName)

	sheets := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		sheets[name] = true
	}

	if sheets["Global_Planung"] {
		if err := importSheet(f, "Global_Planung", titleIndex(catalog.GlobalTopics), project.GlobalTopics); err != nil {
			return nil, err
		}
	}
	if outdoor := sheetName(catalog.OutdoorAreaName); sheets[outdoor] {
		if err := importSheet(f, outdoor, titleIndex(catalog.OutdoorTopics), project.OutdoorTopics); err != nil {
			return nil, err
		}
	}

	roomTitles := titleIndex(catalog.RoomTopics)
	for _, room := range project.Rooms {
		sheet := sheetName(room.Name)
		if !sheets[sheet] {
			continue
		}
		if err := importSheet(f, sheet, roomTitles, room.Topics); err != nil {
			return nil, err
		}
	}

	return project, nil
}
