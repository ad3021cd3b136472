package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/17Trust09/Planner/internal/catalog"
)

func TestDetectConflictsPoEWithoutSocket(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Wohnzimmer")
	setRoomTopic(project, roomID, "room_network", "PoE im Raum (z.B. Panel/Kamera)")

	conflicts := DetectConflicts(project)
	require.Len(t, conflicts[roomID], 1)
	assert.Equal(t, SeverityCritical, conflicts[roomID][0].Severity)
	assert.Equal(t, "PoE gewählt, aber keine LAN-Dose berücksichtigt.", conflicts[roomID][0].Message)

	setRoomTopic(project, roomID, "room_network", "PoE im Raum (z.B. Panel/Kamera)", "LAN-Dose vorhanden")
	assert.NotContains(t, DetectConflicts(project), roomID)
}

func TestDetectConflictsShadingNeedsSensors(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Wohnzimmer")
	setRoomTopic(project, roomID, "room_shade", "Sonnenstand (Azimut/Höhe)")

	conflicts := DetectConflicts(project)
	require.Len(t, conflicts[roomID], 1)
	assert.Equal(t, SeverityWarning, conflicts[roomID][0].Severity)

	setRoomTopic(project, roomID, "room_climate_sensors", "Temperatur")
	assert.NotContains(t, DetectConflicts(project), roomID)
}

func TestDetectConflictsShadingGatedByRoomType(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	// Shading does not apply to hallways, so the rule must not fire there.
	roomID := roomIDByName(t, project, "Flur EG")
	setRoomTopic(project, roomID, "room_shade", "Zeitgesteuert")

	assert.NotContains(t, DetectConflicts(project), roomID)
}

func TestDetectConflictsCameraWithoutNetwork(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Flur OG")
	setRoomTopic(project, roomID, "room_security", "Kamera (lokal)")

	conflicts := DetectConflicts(project)
	require.Len(t, conflicts[roomID], 1)
	assert.Equal(t, SeverityCritical, conflicts[roomID][0].Severity)
	assert.Equal(t, "Kamera geplant, aber kein passendes Netzwerkprofil gewählt.", conflicts[roomID][0].Message)

	setRoomTopic(project, roomID, "room_network", "LAN-Dose vorhanden")
	assert.NotContains(t, DetectConflicts(project), roomID)
}

func TestDetectConflictsRecordingWithoutLAN(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Wohnzimmer")
	setRoomTopic(project, roomID, "room_camera_storage", "NVR lokal")

	conflicts := DetectConflicts(project)
	require.Len(t, conflicts[roomID], 1)
	assert.Equal(t, SeverityWarning, conflicts[roomID][0].Severity)
}

func TestDetectConflictsHighCoverageOnWLANOnly(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Büro")
	setRoomTopic(project, roomID, "room_coverage", "Hoch (Office/Streaming)")
	setRoomTopic(project, roomID, "room_network", "WLAN reicht")

	conflicts := DetectConflicts(project)
	require.Len(t, conflicts[roomID], 1)
	assert.Equal(t, SeverityInfo, conflicts[roomID][0].Severity)
}

func TestDetectConflictsEmptyRoomsAbsent(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	assert.Empty(t, DetectConflicts(project))
}

func TestFlattenConflicts(t *testing.T) {
	project := catalog.NewEmptyProject("Test")
	roomID := roomIDByName(t, project, "Wohnzimmer")
	setRoomTopic(project, roomID, "room_security", "Kamera (lokal)")

	flat := FlattenConflicts(project)
	require.Len(t, flat[roomID], 1)
	assert.Equal(t, "[CRITICAL] Kamera geplant, aber kein passendes Netzwerkprofil gewählt.", flat[roomID][0])
}
