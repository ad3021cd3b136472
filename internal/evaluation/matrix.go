package evaluation

import (
	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
)

// NotApplicable is substituted in the matrix when a topic is gated off a
// room's type.
const NotApplicable = "Nicht relevant"

// BuildRoomMatrix cross-tabulates raw selections: topic title → scope label
// (room name or outdoor area) → selections. Room-type-gated topics show
// "Nicht relevant" for rooms they do not apply to.
func BuildRoomMatrix(project *domain.Project) map[string]map[string][]string {
	matrix := make(map[string]map[string][]string)
	if project == nil {
		return matrix
	}

	for _, topic := range catalog.RoomTopics {
		row := make(map[string][]string)
		for _, room := range project.Rooms {
			if room == nil {
				continue
			}
			if !catalog.IsRoomTopicApplicable(room, topic) {
				row[room.Name] = []string{NotApplicable}
				continue
			}
			row[room.Name] = room.Topic(topic.Key).Selections
		}
		row[catalog.OutdoorAreaName] = nil
		matrix[topic.Title] = row
	}

	for _, topic := range catalog.OutdoorTopics {
		row := make(map[string][]string)
		for _, room := range project.Rooms {
			if room == nil {
				continue
			}
			row[room.Name] = nil
		}
		row[catalog.OutdoorAreaName] = project.OutdoorTopic(topic.Key).Selections
		matrix[topic.Title] = row
	}

	return matrix
}

// TopicMetric summarizes how a topic was answered across its applicable
// scopes.
type TopicMetric struct {
	RoomsWithSelection  int            `json:"rooms_with_selection"`
	RoomCount           int            `json:"room_count"`
	ApplicableRoomCount int            `json:"applicable_room_count"`
	Frequency           map[string]int `json:"frequency"`
	Diversity           int            `json:"diversity"`
	DominantRatio       float64        `json:"dominant_ratio"`
}

func metricFrom(roomsWith, roomCount, applicableCount int, values []string) TopicMetric {
	freq := make(map[string]int)
	for _, v := range values {
		freq[v]++
	}
	dominant := 0.0
	if len(values) > 0 {
		most := 0
		for _, n := range freq {
			if n > most {
				most = n
			}
		}
		dominant = float64(most) / float64(len(values))
	}
	return TopicMetric{
		RoomsWithSelection:  roomsWith,
		RoomCount:           roomCount,
		ApplicableRoomCount: applicableCount,
		Frequency:           freq,
		Diversity:           len(freq),
		DominantRatio:       dominant,
	}
}

// TopicMetrics computes frequency/diversity/dominance statistics per topic
// title. Rooms a topic does not apply to are excluded from its statistics.
func TopicMetrics(project *domain.Project) map[string]TopicMetric {
	metrics := make(map[string]TopicMetric)
	if project == nil {
		return metrics
	}

	roomCount := len(project.Rooms)

	for _, topic := range catalog.RoomTopics {
		var values []string
		roomsWith := 0
		applicable := 0
		for _, room := range project.Rooms {
			if room == nil || !catalog.IsRoomTopicApplicable(room, topic) {
				continue
			}
			applicable++
			selections := room.Topic(topic.Key).Selections
			if len(selections) > 0 {
				roomsWith++
			}
			values = append(values, selections...)
		}
		metrics[topic.Title] = metricFrom(roomsWith, roomCount, applicable, values)
	}

	for _, topic := range catalog.OutdoorTopics {
		selections := project.OutdoorTopic(topic.Key).Selections
		roomsWith := 0
		if len(selections) > 0 {
			roomsWith = 1
		}
		metrics[topic.Title] = metricFrom(roomsWith, 1, 1, selections)
	}

	return metrics
}
