package domain

// Subarea groups rooms inside an area (e.g. a floor wing). RoomIDs
// reference Project.Rooms keys.
type Subarea struct {
	Name    string   `json:"name"`
	RoomIDs []string `json:"room_ids"`
}

// Area is one top-level section of the house structure (e.g. "EG", "OG").
type Area struct {
	Name     string    `json:"name"`
	Subareas []Subarea `json:"subareas"`
}

// Placement is a positioned marker on a floor plan image. Coordinates are
// normalized to [0,1] relative to the image size.
type Placement struct {
	TokenID    string  `json:"token_id"`
	RoomID     string  `json:"room_id"`
	ItemType   string  `json:"item_type"`
	Label      string  `json:"label"`
	MarkerKind string  `json:"marker_kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// FloorPlan is the plan image plus the markers placed on it.
type FloorPlan struct {
	ImagePath  string      `json:"image_path"`
	Placements []Placement `json:"placements"`
}

// MarkerCounts tallies placed markers per marker kind.
func (f FloorPlan) MarkerCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range f.Placements {
		kind := p.MarkerKind
		if kind == "" {
			kind = "sensor"
		}
		counts[kind]++
	}
	return counts
}
