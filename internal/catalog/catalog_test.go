package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicOptionsResolve(t *testing.T) {
	all := make([]TopicDefinition, 0, len(GlobalTopics)+len(OutdoorTopics)+len(RoomTopics))
	all = append(all, GlobalTopics...)
	all = append(all, OutdoorTopics...)
	all = append(all, RoomTopics...)

	for _, topic := range all {
		assert.NotEmpty(t, topic.Options(), "topic %s references unknown option set %s", topic.Key, topic.OptionSet)
	}
}

func TestTopicKeysUnique(t *testing.T) {
	assert.Len(t, GlobalTopicByKey, len(GlobalTopics))
	assert.Len(t, OutdoorTopicByKey, len(OutdoorTopics))
	assert.Len(t, RoomTopicByKey, len(RoomTopics))
}

func TestApplicableRoomTypesAreKnown(t *testing.T) {
	for _, topic := range RoomTopics {
		for _, rt := range topic.ApplicableRoomTypes {
			_, ok := RoomTypeOptions[rt]
			assert.True(t, ok, "topic %s references unknown room type %s", topic.Key, rt)
		}
	}
}

func TestIsTopicApplicableToRoomType(t *testing.T) {
	shade := RoomTopicByKey["room_shade"]
	assert.True(t, IsTopicApplicableToRoomType("living", shade))
	assert.True(t, IsTopicApplicableToRoomType("bedroom", shade))
	assert.False(t, IsTopicApplicableToRoomType("hallway", shade))
	assert.False(t, IsTopicApplicableToRoomType("utility", shade))

	// Unfiltered topics apply everywhere.
	network := RoomTopicByKey["room_network"]
	assert.True(t, IsTopicApplicableToRoomType("hallway", network))
	assert.True(t, IsTopicApplicableToRoomType("utility", network))
}

func TestIsRoomTopicApplicableNilRoom(t *testing.T) {
	assert.False(t, IsRoomTopicApplicable(nil, RoomTopicByKey["room_network"]))
}

func TestApplicableRoomTopicsFilters(t *testing.T) {
	project := NewEmptyProject("Test")
	for _, room := range project.Rooms {
		topics := ApplicableRoomTopics(room)
		switch room.RoomType {
		case "hallway":
			assert.Len(t, topics, 16, "room %s", room.Name)
		case "living":
			assert.Len(t, topics, 20, "room %s", room.Name)
		}
		for _, topic := range topics {
			assert.True(t, IsRoomTopicApplicable(room, topic))
		}
	}
}

func TestNewEmptyProject(t *testing.T) {
	project := NewEmptyProject("Neubau")

	assert.Equal(t, "Neubau", project.Metadata.ProjectName)
	assert.NotEmpty(t, project.Metadata.ProjectID)
	assert.Equal(t, "Entwurf", project.Metadata.Status)
	assert.Equal(t, project.Metadata.CreatedAt, project.Metadata.UpdatedAt)

	require.Len(t, project.Rooms, 11)
	require.Len(t, project.Areas, 2)
	assert.Equal(t, "EG", project.Areas[0].Name)
	assert.Equal(t, "OG", project.Areas[1].Name)

	// Every room carries the full topic key set with empty states.
	for _, room := range project.Rooms {
		assert.Len(t, room.Topics, len(RoomTopics), "room %s", room.Name)
		for key, state := range room.Topics {
			assert.False(t, state.HasSelection(), "room %s topic %s", room.Name, key)
		}
	}
	assert.Len(t, project.GlobalTopics, len(GlobalTopics))
	assert.Len(t, project.OutdoorTopics, len(OutdoorTopics))

	// Area room IDs reference existing rooms.
	for _, area := range project.Areas {
		for _, sub := range area.Subareas {
			for _, roomID := range sub.RoomIDs {
				assert.Contains(t, project.Rooms, roomID)
			}
		}
	}
}

func TestNewEmptyProjectsHaveDistinctIDs(t *testing.T) {
	a := NewEmptyProject("A")
	b := NewEmptyProject("B")
	assert.NotEqual(t, a.Metadata.ProjectID, b.Metadata.ProjectID)
}
