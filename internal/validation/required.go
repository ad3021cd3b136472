package validation

import (
	"fmt"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
)

// MissingRequiredField is one unanswered export-required topic.
type MissingRequiredField struct {
	Scope      string // "global" or "room"
	RoomID     string
	RoomName   string
	TopicKey   string
	TopicTitle string
}

// RequiredFieldEntries lists every export-required topic without a
// selection. Room topics gated off a room's type are not required there.
func RequiredFieldEntries(project *domain.Project) []MissingRequiredField {
	var missing []MissingRequiredField
	if project == nil {
		return missing
	}

	for _, topic := range catalog.GlobalTopics {
		if topic.RequiredForExport && !project.GlobalTopic(topic.Key).HasSelection() {
			missing = append(missing, MissingRequiredField{
				Scope:      "global",
				TopicKey:   topic.Key,
				TopicTitle: topic.Title,
			})
		}
	}

	for roomID, room := range project.Rooms {
		if room == nil {
			continue
		}
		for _, topic := range catalog.RoomTopics {
			if !topic.RequiredForExport || !catalog.IsRoomTopicApplicable(room, topic) {
				continue
			}
			if !room.Topic(topic.Key).HasSelection() {
				missing = append(missing, MissingRequiredField{
					Scope:      "room",
					RoomID:     roomID,
					RoomName:   room.Name,
					TopicKey:   topic.Key,
					TopicTitle: topic.Title,
				})
			}
		}
	}

	return missing
}

// ValidateRequiredFields renders the missing entries as user-facing
// messages.
func ValidateRequiredFields(project *domain.Project) []string {
	var errors []string
	for _, missing := range RequiredFieldEntries(project) {
		if missing.Scope == "global" {
			errors = append(errors, fmt.Sprintf("Global: '%s' ist Pflichtfeld.", missing.TopicTitle))
		} else {
			errors = append(errors, fmt.Sprintf("Raum %s: '%s' ist Pflichtfeld.", missing.RoomName, missing.TopicTitle))
		}
	}
	return errors
}
