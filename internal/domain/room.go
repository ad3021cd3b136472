package domain

// RoomData describes one plannable room: display name, position in the
// house structure and its per-topic answers. RoomType feeds the topic
// applicability filter.
type RoomData struct {
	Name     string      `json:"name"`
	Floor    string      `json:"floor"`
	Area     string      `json:"area,omitempty"`
	RoomType string      `json:"room_type"`
	Topics   TopicStates `json:"topics"`
}

// Topic returns the state for a topic key, empty when unset.
func (r *RoomData) Topic(key string) TopicState {
	if r == nil {
		return TopicState{}
	}
	return r.Topics.Get(key)
}
