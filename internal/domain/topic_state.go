package domain

// TopicState holds the user's answer to one topic: the chosen option
// strings, free-text notes, an assignee and optional per-option quantities
// for countable items (sensors). Quantities keys must be a subset of
// Selections; absent entries count as 1.
type TopicState struct {
	Selections []string       `json:"selections"`
	Notes      string         `json:"notes"`
	Assignee   string         `json:"assignee"`
	Quantities map[string]int `json:"quantities,omitempty"`
}

// HasSelection reports whether at least one option is selected.
func (s TopicState) HasSelection() bool {
	return len(s.Selections) > 0
}

// QuantityOf returns the recorded quantity for a selection, defaulting to 1
// for selected options without an explicit quantity and clamping to at
// least 1.
func (s TopicState) QuantityOf(selection string) int {
	if s.Quantities == nil {
		return 1
	}
	q, ok := s.Quantities[selection]
	if !ok || q < 1 {
		return 1
	}
	return q
}

// TopicStates is a topic-key to state mapping. The zero value of a lookup is
// an empty state, so callers never have to distinguish missing keys.
type TopicStates map[string]TopicState

// Get returns the state for a topic key, or an empty state when the key is
// unknown (older project files, removed topics).
func (t TopicStates) Get(key string) TopicState {
	if t == nil {
		return TopicState{}
	}
	return t[key]
}

// Selections returns the selections for a topic key, nil when absent.
func (t TopicStates) Selections(key string) []string {
	return t.Get(key).Selections
}
