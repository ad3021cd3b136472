package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
)

func snapshotPair(t *testing.T) (*domain.Project, *domain.Project, string) {
	t.Helper()
	previous := catalog.NewEmptyProject("Test")
	data, err := previous.Clone()
	require.NoError(t, err)
	for roomID, room := range previous.Rooms {
		if room.Name == "Wohnzimmer" {
			return previous, data, roomID
		}
	}
	t.Fatal("Wohnzimmer not found")
	return nil, nil, ""
}

func TestBuildChangeLogNoChanges(t *testing.T) {
	previous, current, _ := snapshotPair(t)
	assert.Empty(t, BuildChangeLog(previous, current))
}

func TestBuildChangeLogStatusChange(t *testing.T) {
	previous, current, _ := snapshotPair(t)
	current.Metadata.Status = domain.StatusReview

	changes := BuildChangeLog(previous, current)
	require.Len(t, changes, 1)
	assert.Equal(t, "metadata.status: Entwurf -> Review", changes[0])
}

func TestBuildChangeLogTopicChanges(t *testing.T) {
	previous, current, roomID := snapshotPair(t)
	current.GlobalTopics["global_goal"] = domain.TopicState{Selections: []string{"Ja"}}
	current.OutdoorTopics["outdoor_lighting"] = domain.TopicState{Selections: []string{"Ja"}}
	room := current.Rooms[roomID]
	room.Topics["room_control"] = domain.TopicState{
		Selections: []string{"Taster (Impuls)"},
		Notes:      "Doppeltaster am Eingang",
	}

	changes := BuildChangeLog(previous, current)
	assert.Contains(t, changes, "global.global_goal.selections: [] -> [Ja]")
	assert.Contains(t, changes, "outdoor.outdoor_lighting.selections: [] -> [Ja]")
	assert.Contains(t, changes, "room.Wohnzimmer.room_control.selections: [] -> [Taster (Impuls)]")
	assert.Contains(t, changes, "room.Wohnzimmer.room_control.notes geändert")
}

func TestBuildChangeLogAssigneeChange(t *testing.T) {
	previous, current, _ := snapshotPair(t)
	current.GlobalTopics["global_docs"] = domain.TopicState{Assignee: "Elektriker"}

	changes := BuildChangeLog(previous, current)
	require.Len(t, changes, 1)
	assert.Equal(t, "global.global_docs.assignee: '' -> 'Elektriker'", changes[0])
}

func TestBuildChangeLogNewRoom(t *testing.T) {
	previous, current, _ := snapshotPair(t)
	current.Rooms["neu-1"] = &domain.RoomData{Name: "Gästezimmer", RoomType: "bedroom"}

	changes := BuildChangeLog(previous, current)
	assert.Contains(t, changes, "room.Gästezimmer: neu")
}

func TestWriteChangeLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "changes.log")

	require.NoError(t, WriteChangeLog(path, nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, WriteChangeLog(path, []string{"a", "b"}))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(content))
}
