package evaluation

import (
	"math"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
)

// Traffic-light classification of a room's planning completeness.
const (
	AmpelGreen  = "grün"
	AmpelYellow = "gelb"
	AmpelRed    = "rot"
)

// RoomScore is the completeness/quality rating of one planning scope.
type RoomScore struct {
	Value     float64 `json:"value"`
	Ampel     string  `json:"ampel"`
	Conflicts int     `json:"conflicts"`
}

func ampelFor(value float64) string {
	switch {
	case value >= 0.8:
		return AmpelGreen
	case value >= 0.55:
		return AmpelYellow
	default:
		return AmpelRed
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoomScores computes a 0..1 score per room from required coverage of the
// applicable topics minus a 0.1 penalty per conflict, plus an entry for the
// outdoor pseudo-room (no conflict penalty there).
func RoomScores(project *domain.Project) map[string]RoomScore {
	scores := make(map[string]RoomScore)
	if project == nil {
		return scores
	}

	conflicts := DetectConflicts(project)

	for roomID, room := range project.Rooms {
		if room == nil {
			continue
		}
		applicable := catalog.ApplicableRoomTopics(room)
		completeness := 0.0
		if len(applicable) > 0 {
			filled := 0
			for _, topic := range applicable {
				if room.Topic(topic.Key).HasSelection() {
					filled++
				}
			}
			completeness = float64(filled) / float64(len(applicable))
		}
		c := len(conflicts[roomID])
		raw := math.Max(0, completeness-float64(c)*0.1)
		scores[roomID] = RoomScore{
			Value:     round2(raw),
			Ampel:     ampelFor(raw),
			Conflicts: c,
		}
	}

	outdoorFilled := 0
	for _, topic := range catalog.OutdoorTopics {
		if project.OutdoorTopic(topic.Key).HasSelection() {
			outdoorFilled++
		}
	}
	outdoorRaw := 0.0
	if len(catalog.OutdoorTopics) > 0 {
		outdoorRaw = float64(outdoorFilled) / float64(len(catalog.OutdoorTopics))
	}
	scores[catalog.OutdoorAreaName] = RoomScore{
		Value: round2(outdoorRaw),
		Ampel: ampelFor(outdoorRaw),
	}

	return scores
}
