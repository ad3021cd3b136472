package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/17Trust09/Planner/internal/domain"
)

type roomSpec struct {
	name     string
	roomType string
}

// defaultFloors seeds new projects with a typical two-storey house.
var defaultFloors = []struct {
	floor string
	rooms []roomSpec
}{
	{
		floor: "EG",
		rooms: []roomSpec{
			{"Wohnzimmer", "living"},
			{"HTR", "utility"},
			{"Flur EG", "hallway"},
			{"WC EG", "bathroom"},
			{"Büro", "office"},
		},
	},
	{
		floor: "OG",
		rooms: []roomSpec{
			{"Kinderzimmer 1", "bedroom"},
			{"Kinderzimmer 2", "bedroom"},
			{"Flur OG", "hallway"},
			{"Ankleide", "bedroom"},
			{"Schlafzimmer", "bedroom"},
			{"Bad", "bathroom"},
		},
	},
}

func emptyStates(topics []TopicDefinition) domain.TopicStates {
	states := make(domain.TopicStates, len(topics))
	for _, t := range topics {
		states[t.Key] = domain.TopicState{}
	}
	return states
}

// NewEmptyProject creates a project pre-populated with the default house
// structure, empty topic states and fresh identifiers.
func NewEmptyProject(name string) *domain.Project {
	now := time.Now().Format(time.RFC3339)
	project := &domain.Project{
		Metadata: domain.Metadata{
			ProjectID:   uuid.NewString(),
			ProjectName: name,
			Status:      domain.StatusDraft,
			Version:     "1.0",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		GlobalTopics:  emptyStates(GlobalTopics),
		OutdoorTopics: emptyStates(OutdoorTopics),
		Rooms:         make(map[string]*domain.RoomData),
	}

	for _, floor := range defaultFloors {
		subarea := domain.Subarea{Name: floor.floor}
		for _, spec := range floor.rooms {
			roomID := uuid.NewString()
			project.Rooms[roomID] = &domain.RoomData{
				Name:     spec.name,
				Floor:    floor.floor,
				RoomType: spec.roomType,
				Topics:   emptyStates(RoomTopics),
			}
			subarea.RoomIDs = append(subarea.RoomIDs, roomID)
		}
		project.Areas = append(project.Areas, domain.Area{
			Name:     floor.floor,
			Subareas: []domain.Subarea{subarea},
		})
	}

	return project
}
