package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
)

func roomIDByName(t *testing.T, project *domain.Project, name string) string {
	t.Helper()
	for roomID, room := range project.Rooms {
		if room.Name == name {
			return roomID
		}
	}
	t.Fatalf("room %q not found", name)
	return ""
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Wohnzimmer", sheetName("Wohnzimmer"))
	long := "Ein wirklich sehr langer Raumname im Keller"
	assert.Len(t, sheetName(long), 31)
}

func TestRoomOrderIsStable(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	first := RoomOrder(project)
	require.Len(t, first, len(project.Rooms))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RoomOrder(project))
	}
	// House-structure order: EG rooms come before OG rooms.
	assert.Equal(t, "Wohnzimmer", project.Rooms[first[0]].Name)
	assert.Equal(t, "Bad", project.Rooms[first[len(first)-1]].Name)
}

func TestRoomOrderAppendsUnstructuredRoomsByName(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	project.Rooms["z-1"] = &domain.RoomData{Name: "Zusatzraum B"}
	project.Rooms["z-2"] = &domain.RoomData{Name: "Zusatzraum A"}

	order := RoomOrder(project)
	require.Len(t, order, len(project.Rooms))
	assert.Equal(t, "Zusatzraum A", project.Rooms[order[len(order)-2]].Name)
	assert.Equal(t, "Zusatzraum B", project.Rooms[order[len(order)-1]].Name)
}

func TestBuildProjectWorkbookSheets(t *testing.T) {
	project := catalog.NewEmptyProject("Test")

	var lastPercent int
	f, err := BuildProjectWorkbook(project, func(percent int, message string) {
		assert.GreaterOrEqual(t, percent, lastPercent)
		lastPercent = percent
	})
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Global_Planung")
	assert.Contains(t, sheets, "Außenbereich")
	assert.Contains(t, sheets, "Wohnzimmer")
	assert.Contains(t, sheets, "Auswertung_Raumvergleich")
	assert.Contains(t, sheets, "Kostenübersicht")
	assert.Equal(t, 100, lastPercent)
}

func TestExportImportRoundTrip(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Wohnzimmer")
	project.Rooms[roomID].Topics["room_control"] = domain.TopicState{
		Selections: []string{"Taster (Impuls)", "Wallpanel/Tablet"},
		Notes:      "Doppeltaster am Eingang",
		Assignee:   "Elektriker",
	}
	project.GlobalTopics["global_goal"] = domain.TopicState{Selections: []string{"Ja"}}
	project.OutdoorTopics["outdoor_camera_count"] = domain.TopicState{Selections: []string{"2"}}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, WriteProjectExcel(project, path, nil))

	imported, err := ImportProjectExcel(path, "Reimport")
	require.NoError(t, err)

	assert.Equal(t, "Reimport", imported.Metadata.ProjectName)
	assert.Equal(t, []string{"Ja"}, imported.GlobalTopics.Selections("global_goal"))
	assert.Equal(t, []string{"2"}, imported.OutdoorTopics.Selections("outdoor_camera_count"))

	reRoomID := roomIDByName(t, imported, "Wohnzimmer")
	state := imported.Rooms[reRoomID].Topics.Get("room_control")
	assert.Equal(t, []string{"Taster (Impuls)", "Wallpanel/Tablet"}, state.Selections)
	assert.Equal(t, "Doppeltaster am Eingang", state.Notes)
	assert.Equal(t, "Elektriker", state.Assignee)

	// Unanswered topics come back empty, not with the placeholder dash.
	assert.Empty(t, imported.Rooms[reRoomID].Topics.Selections("room_light"))
}

func TestImportClampsMaxSelections(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Wohnzimmer")
	// room_control allows at most three selections; exports created by hand
	// may carry more.
	project.Rooms[roomID].Topics["room_control"] = domain.TopicState{
		Selections: []string{"Taster (Impuls)", "Wallpanel/Tablet", "Drehdimmer", "App (nur Ergänzung)"},
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, WriteProjectExcel(project, path, nil))

	imported, err := ImportProjectExcel(path, "Reimport")
	require.NoError(t, err)

	reRoomID := roomIDByName(t, imported, "Wohnzimmer")
	assert.Len(t, imported.Rooms[reRoomID].Topics.Selections("room_control"), 3)
}
