package catalog

import (
	"github.com/17Trust09/Planner/internal/domain"
)

// IsTopicApplicableToRoomType reports whether a topic applies to a room of
// the given type. Topics without a filter apply everywhere.
func IsTopicApplicableToRoomType(roomType string, topic TopicDefinition) bool {
	if len(topic.ApplicableRoomTypes) == 0 {
		return true
	}
	for _, t := range topic.ApplicableRoomTypes {
		if t == roomType {
			return true
		}
	}
	return false
}

// IsRoomTopicApplicable reports whether a topic applies to a concrete room.
func IsRoomTopicApplicable(room *domain.RoomData, topic TopicDefinition) bool {
	if room == nil {
		return false
	}
	return IsTopicApplicableToRoomType(room.RoomType, topic)
}

// ApplicableRoomTopics returns the room topics applicable to a room.
func ApplicableRoomTopics(room *domain.RoomData) []TopicDefinition {
	var topics []TopicDefinition
	for _, t := range RoomTopics {
		if IsRoomTopicApplicable(room, t) {
			topics = append(topics, t)
		}
	}
	return topics
}
