package evaluation

import (
	"strings"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/domain"
)

// Severity classifies how hard a detected conflict is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Conflict is one triggered consistency rule for a room.
type Conflict struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func containsAny(selections []string, substrings ...string) bool {
	for _, s := range selections {
		for _, sub := range substrings {
			if strings.Contains(s, sub) {
				return true
			}
		}
	}
	return false
}

// detectRoomConflicts evaluates all rules against a single room's
// selections. Rules are independent and only look at this room.
func detectRoomConflicts(room *domain.RoomData) []Conflict {
	var conflicts []Conflict

	net := room.Topic("room_network").Selections
	security := room.Topic("room_security").Selections
	cameraStorage := room.Topic("room_camera_storage").Selections
	coverage := room.Topic("room_coverage").Selections
	sensors := append(
		append([]string{}, room.Topic("room_sensor_general").Selections...),
		room.Topic("room_climate_sensors").Selections...,
	)

	lanCapable := containsAny(net, "LAN", "PoE")

	if containsAny(net, "PoE") && !containsAny(net, "LAN-Dose") {
		conflicts = append(conflicts, Conflict{
			Severity: SeverityCritical,
			Message:  "PoE gewählt, aber keine LAN-Dose berücksichtigt.",
		})
	}

	// Shading automation needs sensors, but only where the shading topic
	// applies to this room type at all.
	if catalog.IsRoomTopicApplicable(room, catalog.RoomTopicByKey["room_shade"]) {
		shade := room.Topic("room_shade").Selections
		if containsAny(shade, "Sonnenstand", "Zeitgesteuert") && len(sensors) == 0 {
			conflicts = append(conflicts, Conflict{
				Severity: SeverityWarning,
				Message:  "Automatische Beschattung ohne Sensorik gewählt.",
			})
		}
	}

	if containsAny(security, "Kamera") && !lanCapable {
		conflicts = append(conflicts, Conflict{
			Severity: SeverityCritical,
			Message:  "Kamera geplant, aber kein passendes Netzwerkprofil gewählt.",
		})
	}

	if containsAny(cameraStorage, "NVR", "NAS") && !lanCapable {
		conflicts = append(conflicts, Conflict{
			Severity: SeverityWarning,
			Message:  "Lokale Kameraaufzeichnung (NVR/NAS) ohne LAN-fähiges Netzwerkprofil.",
		})
	}

	if containsAny(coverage, "Hoch") && containsAny(net, "WLAN reicht") {
		conflicts = append(conflicts, Conflict{
			Severity: SeverityInfo,
			Message:  "Hohes Abdeckungsziel gewählt, aber nur WLAN vorgesehen.",
		})
	}

	return conflicts
}

// DetectConflicts evaluates the per-room consistency rules for the whole
// project. Rooms without any triggered rule are absent from the result.
func DetectConflicts(project *domain.Project) map[string][]Conflict {
	conflicts := make(map[string][]Conflict)
	if project == nil {
		return conflicts
	}
	for roomID, room := range project.Rooms {
		if room == nil {
			continue
		}
		if found := detectRoomConflicts(room); len(found) > 0 {
			conflicts[roomID] = found
		}
	}
	return conflicts
}

// FlattenConflicts renders conflicts as plain strings with the severity as
// an uppercase prefix, e.g. "[CRITICAL] Kamera geplant, ...".
func FlattenConflicts(project *domain.Project) map[string][]string {
	flat := make(map[string][]string)
	for roomID, items := range DetectConflicts(project) {
		messages := make([]string, 0, len(items))
		for _, c := range items {
			messages = append(messages, "["+strings.ToUpper(string(c.Severity))+"] "+c.Message)
		}
		flat[roomID] = messages
	}
	return flat
}
