package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/17Trust09/Planner/internal/domain"
)

func selectionsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func topicChanges(before, after domain.TopicStates, prefix string) []string {
	var changes []string

	keys := make(map[string]struct{})
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, key := range sorted {
		b := before.Get(key)
		a := after.Get(key)
		if !selectionsEqual(b.Selections, a.Selections) {
			changes = append(changes, fmt.Sprintf("%s.%s.selections: %v -> %v", prefix, key, b.Selections, a.Selections))
		}
		if b.Notes != a.Notes {
			changes = append(changes, fmt.Sprintf("%s.%s.notes geändert", prefix, key))
		}
		if b.Assignee != a.Assignee {
			changes = append(changes, fmt.Sprintf("%s.%s.assignee: '%s' -> '%s'", prefix, key, b.Assignee, a.Assignee))
		}
	}
	return changes
}

// BuildChangeLog diffs two project snapshots into human-readable change
// entries: status, global/outdoor topics and per-room topics. New rooms are
// reported as a whole instead of per topic.
func BuildChangeLog(previous, current *domain.Project) []string {
	var changes []string
	if previous == nil || current == nil {
		return changes
	}

	if previous.Metadata.Status != current.Metadata.Status {
		changes = append(changes, fmt.Sprintf("metadata.status: %s -> %s",
			previous.Metadata.Status, current.Metadata.Status))
	}

	changes = append(changes, topicChanges(previous.GlobalTopics, current.GlobalTopics, "global")...)
	changes = append(changes, topicChanges(previous.OutdoorTopics, current.OutdoorTopics, "outdoor")...)

	roomIDs := make([]string, 0, len(current.Rooms))
	for roomID := range current.Rooms {
		roomIDs = append(roomIDs, roomID)
	}
	sort.Strings(roomIDs)

	for _, roomID := range roomIDs {
		room := current.Rooms[roomID]
		if room == nil {
			continue
		}
		prevRoom := previous.Room(roomID)
		if prevRoom == nil {
			changes = append(changes, fmt.Sprintf("room.%s: neu", room.Name))
			continue
		}
		changes = append(changes, topicChanges(prevRoom.Topics, room.Topics, "room."+room.Name)...)
	}

	return changes
}

// WriteChangeLog writes the change entries to a file, one per line. Nothing
// is written when there are no changes.
func WriteChangeLog(path string, changes []string) error {
	if len(changes) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create change log directory: %w", err)
	}
	content := ""
	for i, change := range changes {
		if i > 0 {
			content += "\n"
		}
		content += change
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write change log: %w", err)
	}
	return nil
}
