package domain

import (
	"encoding/json"
	"time"
)

// Project status values as persisted in project files.
const (
	StatusDraft    = "Entwurf"
	StatusReview   = "Review"
	StatusApproved = "Freigegeben"
)

// Metadata carries project identity and lifecycle fields.
type Metadata struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status"`
	Version     string `json:"version"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Project is the root aggregate the engine reads: global and outdoor topic
// answers, the per-room answers, the house structure, raw pricing overrides
// and floor-plan placements. The engine treats every missing key as "no
// selections" instead of failing.
type Project struct {
	Metadata        Metadata             `json:"metadata"`
	GlobalTopics    TopicStates          `json:"global_topics"`
	OutdoorTopics   TopicStates          `json:"outdoor_topics"`
	Rooms           map[string]*RoomData `json:"rooms"`
	Areas           []Area               `json:"areas,omitempty"`
	PricingSettings map[string]any       `json:"pricing_settings,omitempty"`
	FloorPlans      map[string]FloorPlan `json:"floor_plans,omitempty"`
}

// Clone returns a deep copy of the project. Used to snapshot the state
// before edits so changes can be diffed afterwards.
func (p *Project) Clone() (*Project, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var clone Project
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Touch updates the modification timestamp.
func (p *Project) Touch() {
	p.Metadata.UpdatedAt = time.Now().Format(time.RFC3339)
}

// Room returns the room for an identifier, nil when unknown.
func (p *Project) Room(roomID string) *RoomData {
	if p == nil || p.Rooms == nil {
		return nil
	}
	return p.Rooms[roomID]
}

// GlobalTopic returns the state of a global topic, empty when unset.
func (p *Project) GlobalTopic(key string) TopicState {
	if p == nil {
		return TopicState{}
	}
	return p.GlobalTopics.Get(key)
}

// OutdoorTopic returns the state of an outdoor topic, empty when unset.
func (p *Project) OutdoorTopic(key string) TopicState {
	if p == nil {
		return TopicState{}
	}
	return p.OutdoorTopics.Get(key)
}

// FirstGlobalSelection returns the first selection of a global topic, or ""
// when nothing is selected.
func (p *Project) FirstGlobalSelection(key string) string {
	selections := p.GlobalTopic(key).Selections
	if len(selections) == 0 {
		return ""
	}
	return selections[0]
}
