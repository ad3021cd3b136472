package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicStateQuantityOf(t *testing.T) {
	state := TopicState{
		Selections: []string{"Fensterkontakt", "Bewegungsmelder"},
		Quantities: map[string]int{"Fensterkontakt": 3, "Bewegungsmelder": 0},
	}
	assert.Equal(t, 3, state.QuantityOf("Fensterkontakt"))
	// Quantities below one clamp to one.
	assert.Equal(t, 1, state.QuantityOf("Bewegungsmelder"))
	assert.Equal(t, 1, state.QuantityOf("Helligkeit"))
	assert.Equal(t, 1, TopicState{}.QuantityOf("Fensterkontakt"))
}

func TestTopicStatesNilSafety(t *testing.T) {
	var states TopicStates
	assert.Equal(t, TopicState{}, states.Get("room_light"))
	assert.Nil(t, states.Selections("room_light"))
}

func TestProjectNilSafety(t *testing.T) {
	var project *Project
	assert.Nil(t, project.Room("x"))
	assert.Equal(t, TopicState{}, project.GlobalTopic("global_goal"))
	assert.Equal(t, TopicState{}, project.OutdoorTopic("outdoor_lighting"))
	assert.Equal(t, "", project.FirstGlobalSelection("global_goal"))

	var room *RoomData
	assert.Equal(t, TopicState{}, room.Topic("room_light"))
}

func TestProjectClone(t *testing.T) {
	project := &Project{
		Metadata: Metadata{ProjectID: "p-1", ProjectName: "Test", Status: StatusDraft},
		GlobalTopics: TopicStates{
			"global_goal": {Selections: []string{"Ja"}},
		},
		Rooms: map[string]*RoomData{
			"r-1": {Name: "Wohnzimmer", RoomType: "living", Topics: TopicStates{}},
		},
	}

	clone, err := project.Clone()
	require.NoError(t, err)
	require.NotSame(t, project, clone)

	clone.Rooms["r-1"].Name = "Geändert"
	clone.GlobalTopics["global_goal"] = TopicState{Selections: []string{"Nein"}}
	assert.Equal(t, "Wohnzimmer", project.Rooms["r-1"].Name)
	assert.Equal(t, []string{"Ja"}, project.GlobalTopics.Selections("global_goal"))
}

func TestFloorPlanMarkerCounts(t *testing.T) {
	plan := FloorPlan{
		Placements: []Placement{
			{MarkerKind: "camera"},
			{MarkerKind: "camera"},
			{MarkerKind: "ap"},
			{}, // unspecified markers count as sensors
		},
	}
	assert.Equal(t, map[string]int{"camera": 2, "ap": 1, "sensor": 1}, plan.MarkerCounts())
}
