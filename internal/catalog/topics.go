package catalog

// Planning domains a topic can belong to.
const (
	DomainSmart = "SMART_HOME"
	DomainElec  = "ELEKTRIK"
	DomainIT    = "IT_NETZWERK"
)

// OutdoorAreaName is the pseudo-room label used for the outdoor topic scope
// in matrices, scores and exports.
const OutdoorAreaName = "Außenbereich"

// TopicDefinition is one planning question of the static catalog.
// ApplicableRoomTypes nil means the topic applies to every room.
type TopicDefinition struct {
	Key                 string
	Section             string
	Title               string
	Description         string
	OptionSet           string
	Domains             []string
	RequiredForExport   bool
	MaxSelections       int
	ApplicableRoomTypes []string
}

// Options returns the option strings this topic draws from.
func (t TopicDefinition) Options() []string {
	return OptionSets[t.OptionSet]
}

// GlobalTopics are asked once per project.
var GlobalTopics = []TopicDefinition{
	{Key: "global_goal", Section: "ALLGEMEIN", Title: "Zielsetzung", Description: "Fokus Komfort/Energie/Sicherheit/Technik", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainSmart}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_cloud", Section: "ALLGEMEIN", Title: "Cloud-Policy", Description: "Cloud-Nutzung gewünscht oder vermeiden", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainSmart, DomainIT}, MaxSelections: 3},
	{Key: "global_docs", Section: "ALLGEMEIN", Title: "Dokumentation", Description: "Planung und Änderungen dokumentieren", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainSmart, DomainElec, DomainIT}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_room_roles", Section: "ALLGEMEIN", Title: "Raumnutzungsprofil", Description: "Nutzungsarten als Planungsbasis", OptionSet: "ROOM_ROLE_OPTIONS", Domains: []string{DomainSmart}, RequiredForExport: true, MaxSelections: 3},

	{Key: "global_server_hw", Section: "SERVER & PLATTFORM", Title: "Server-Hardware", Description: "Hostsystem für Smart Home", OptionSet: "SERVER_OPTIONS", Domains: []string{DomainIT, DomainSmart}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_ha_mode", Section: "SERVER & PLATTFORM", Title: "Home-Assistant-Betriebsart", Description: "Installationsmodus für HA", OptionSet: "HA_OS_OPTIONS", Domains: []string{DomainIT, DomainSmart}, RequiredForExport: true, MaxSelections: 2},
	{Key: "global_backup", Section: "SERVER & PLATTFORM", Title: "Backup-Strategie", Description: "Datensicherung & Restore", OptionSet: "BACKUP_OPTIONS", Domains: []string{DomainIT}, RequiredForExport: true, MaxSelections: 3},

	{Key: "global_stern", Section: "VERDRAHTUNG & ELEKTRIK", Title: "Sternverkabelung / Aktoren", Description: "Zentrale/dezentrale Strategie", OptionSet: "GLOBAL_STERN_OPTIONS", Domains: []string{DomainElec}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_cable_type", Section: "VERDRAHTUNG & ELEKTRIK", Title: "Verdrahtungsart", Description: "Wahl der grundlegenden Verdrahtung", OptionSet: "CABLE_OPTIONS", Domains: []string{DomainElec}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_phase", Section: "VERDRAHTUNG & ELEKTRIK", Title: "Phasen-/Lastverteilung", Description: "Belastung und Lastmanagement", OptionSet: "GLOBAL_PHASE_OPTIONS", Domains: []string{DomainElec}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_fi", Section: "VERDRAHTUNG & ELEKTRIK", Title: "FI/RCD-Konzept", Description: "Schutzkonzept abgestimmt", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainElec}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_anschluss", Section: "VERDRAHTUNG & ELEKTRIK", Title: "Anschlussplan", Description: "Anschluss-/Klemmenplan vorhanden", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainElec}, RequiredForExport: true, MaxSelections: 3},

	{Key: "global_network", Section: "NETZWERK & FUNK", Title: "Netzwerkstrategie", Description: "LAN/WLAN/AP Strategie", OptionSet: "ROOM_NETWORK_OPTIONS", Domains: []string{DomainIT}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_poe", Section: "NETZWERK & FUNK", Title: "PoE-Planung", Description: "PoE-Versorgung geplant", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainIT}, MaxSelections: 3},
	{Key: "global_switch_size", Section: "NETZWERK & FUNK", Title: "Switch-Größe", Description: "Geplante zentrale Switch-Größe", OptionSet: "SWITCH_SIZE_OPTIONS", Domains: []string{DomainIT}, MaxSelections: 1},
	{Key: "global_switch_poe", Section: "NETZWERK & FUNK", Title: "PoE-Switch", Description: "Separater PoE-Switch sinnvoll", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainIT}, MaxSelections: 1},
	{Key: "global_ap_count", Section: "NETZWERK & FUNK", Title: "Access Points geplant", Description: "Kabelgebundene APs vorgesehen", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainIT}, MaxSelections: 1},
	{Key: "global_router", Section: "NETZWERK & FUNK", Title: "Router/Internetzugang", Description: "Routersituation und Beschaffung", OptionSet: "ROUTER_OPTIONS", Domains: []string{DomainIT}, MaxSelections: 1},
	{Key: "global_coverage", Section: "NETZWERK & FUNK", Title: "WLAN-Abdeckungsziel", Description: "Qualitätsziel je Hausbereich", OptionSet: "COVERAGE_OPTIONS", Domains: []string{DomainIT}, RequiredForExport: true, MaxSelections: 2},
	{Key: "global_protocols", Section: "NETZWERK & FUNK", Title: "Funk-/Bus-Protokolle", Description: "Genutzte Smart-Home-Protokolle", OptionSet: "PROTOCOL_OPTIONS", Domains: []string{DomainIT, DomainSmart}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_radio", Section: "NETZWERK & FUNK", Title: "Funkstrategie", Description: "Funknutzung / Stabilitätsplanung", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainIT, DomainSmart}, MaxSelections: 3},

	{Key: "global_pv", Section: "ENERGIE & LASTMANAGEMENT", Title: "PV/Monitoring", Description: "PV-Daten in Planung integriert", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainElec, DomainSmart}, MaxSelections: 3},
	{Key: "global_load", Section: "ENERGIE & LASTMANAGEMENT", Title: "Lastmanagement", Description: "Leistungssteuerung vorgesehen", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainElec}, RequiredForExport: true, MaxSelections: 3},
	{Key: "global_usv", Section: "ENERGIE & LASTMANAGEMENT", Title: "USV/Notbetrieb", Description: "kritische Systeme absichern", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainIT, DomainSmart}, MaxSelections: 3},
}

// OutdoorTopics are asked once for the outdoor pseudo-room.
var OutdoorTopics = []TopicDefinition{
	{Key: "outdoor_access_points", Section: "AUSSENBEREICH", Title: "Outdoor Access Points", Description: "Kabelgebundene APs im Außenbereich", OptionSet: "OUTDOOR_AP_OPTIONS", Domains: []string{DomainIT}, MaxSelections: 1},
	{Key: "outdoor_camera_count", Section: "AUSSENBEREICH", Title: "Außenkameras", Description: "Anzahl geplanter PoE-Kameras", OptionSet: "OUTDOOR_COUNT_OPTIONS", Domains: []string{DomainIT, DomainSmart}, MaxSelections: 1},
	{Key: "outdoor_doorbell_count", Section: "AUSSENBEREICH", Title: "Smarte Türklingel", Description: "Anzahl PoE-Türklingeln", OptionSet: "OUTDOOR_COUNT_OPTIONS", Domains: []string{DomainIT, DomainSmart}, MaxSelections: 1},
	{Key: "outdoor_smart_sensors", Section: "AUSSENBEREICH", Title: "Outdoor-Sensorik", Description: "Sensorik im Außenbereich", OptionSet: "OUTDOOR_SENSOR_OPTIONS", Domains: []string{DomainSmart}, MaxSelections: 6},
	{Key: "outdoor_lighting", Section: "AUSSENBEREICH", Title: "Gartenbeleuchtung", Description: "Smarte Außenbeleuchtung geplant", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainSmart, DomainElec}, MaxSelections: 1},
}

// RoomTopics are asked per room.
var RoomTopics = []TopicDefinition{
	{Key: "room_control", Section: "ALLGEMEIN", Title: "Bedienkonzept", Description: "Bedienlogik im Raum", OptionSet: "CONTROL_OPTIONS", Domains: []string{DomainSmart}, RequiredForExport: true, MaxSelections: 3},
	{Key: "room_light_logic", Section: "ALLGEMEIN", Title: "Licht-Logik", Description: "Schalt-/Aktorlogik", OptionSet: "LIGHT_LOGIC_OPTIONS", Domains: []string{DomainSmart, DomainElec}, RequiredForExport: true, MaxSelections: 3},
	{Key: "room_automation_level", Section: "ALLGEMEIN", Title: "Automationsgrad", Description: "Gewünschter Automationsumfang", OptionSet: "AUTOMATION_LEVEL_OPTIONS", Domains: []string{DomainSmart}, RequiredForExport: true, MaxSelections: 2},

	{Key: "room_light", Section: "LICHT", Title: "Lichtkonzept", Description: "Lichtarten/Zonen im Raum", OptionSet: "LIGHT_OPTIONS", Domains: []string{DomainSmart, DomainElec}, RequiredForExport: true, MaxSelections: 3},
	{Key: "room_switch", Section: "LICHT", Title: "Schaltpunkte", Description: "Anzahl/Position in Notizen", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainElec}, MaxSelections: 3},
	{Key: "room_dimming", Section: "LICHT", Title: "Dimmen", Description: "Dimmfunktion pro Lichtzone", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainSmart, DomainElec}, MaxSelections: 3},

	{Key: "room_heat", Section: "KLIMA", Title: "Heizung/Regelung", Description: "Heiz-/Regelstrategie", OptionSet: "HEAT_OPTIONS", Domains: []string{DomainSmart, DomainElec}, MaxSelections: 3, ApplicableRoomTypes: []string{"living", "bedroom", "office", "bathroom", "kitchen"}},
	{Key: "room_climate_sensors", Section: "KLIMA", Title: "Sensorik Klima", Description: "Klima-Sensorik", OptionSet: "SENSOR_OPTIONS", Domains: []string{DomainSmart}, MaxSelections: 3, ApplicableRoomTypes: []string{"living", "bedroom", "office", "bathroom", "kitchen"}},
	{Key: "room_air_quality", Section: "KLIMA", Title: "Luftqualität", Description: "CO₂/Luftgüte aktiv überwachen", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainSmart}, MaxSelections: 3, ApplicableRoomTypes: []string{"living", "bedroom", "office", "kitchen"}},

	{Key: "room_security", Section: "SICHERHEIT", Title: "Tür/Fenster/Alarm", Description: "Sicherheitsbedarf", OptionSet: "SECURITY_OPTIONS", Domains: []string{DomainSmart}, RequiredForExport: true, MaxSelections: 3},
	{Key: "room_water", Section: "SICHERHEIT", Title: "Wasserleck", Description: "Leckschutzbedarf", OptionSet: "WATER_OPTIONS", Domains: []string{DomainSmart, DomainElec}, MaxSelections: 3, ApplicableRoomTypes: []string{"bathroom", "kitchen", "utility"}},
	{Key: "room_camera_storage", Section: "SICHERHEIT", Title: "Kamera-Aufzeichnung", Description: "Wie Kameradaten gespeichert werden", OptionSet: "CAMERA_STORAGE_OPTIONS", Domains: []string{DomainIT, DomainSmart}, MaxSelections: 2, ApplicableRoomTypes: []string{"outdoor", "hallway", "living"}},

	{Key: "room_network", Section: "NETZWERK", Title: "Netzwerk", Description: "LAN/WLAN/PoE im Raum", OptionSet: "ROOM_NETWORK_OPTIONS", Domains: []string{DomainIT}, RequiredForExport: true, MaxSelections: 3},
	{Key: "room_lan_socket_count", Section: "NETZWERK", Title: "LAN-Dosen", Description: "Anzahl Datendosen im Raum", OptionSet: "LAN_SOCKET_COUNT_OPTIONS", Domains: []string{DomainIT, DomainElec}, MaxSelections: 1},
	{Key: "room_lan_ports_per_socket", Section: "NETZWERK", Title: "Ports je Dose", Description: "Ports pro Datendose", OptionSet: "LAN_PORTS_PER_SOCKET_OPTIONS", Domains: []string{DomainIT}, MaxSelections: 1},
	{Key: "room_access_point", Section: "NETZWERK", Title: "Access Point", Description: "AP-Bedarf im/nahe Raum", OptionSet: "AP_OPTIONS", Domains: []string{DomainIT}, MaxSelections: 2},
	{Key: "room_coverage", Section: "NETZWERK", Title: "Netzabdeckung Raum", Description: "Abdeckungsziel pro Raum", OptionSet: "COVERAGE_OPTIONS", Domains: []string{DomainIT}, RequiredForExport: true, MaxSelections: 2},
	{Key: "room_power", Section: "NETZWERK", Title: "Steckdosen & Messung", Description: "Schalt-/Messbedarf", OptionSet: "POWER_OPTIONS", Domains: []string{DomainElec, DomainSmart}, MaxSelections: 3},

	{Key: "room_sensor_general", Section: "AUTOMATIONEN", Title: "Sensorik allgemein", Description: "Automationssensorik", OptionSet: "SENSOR_OPTIONS", Domains: []string{DomainSmart}, MaxSelections: 3},
	{Key: "room_shade", Section: "AUTOMATIONEN", Title: "Beschattung", Description: "Beschattungslogik", OptionSet: "SHADE_OPTIONS", Domains: []string{DomainSmart, DomainElec}, MaxSelections: 3, ApplicableRoomTypes: []string{"living", "bedroom", "office", "kitchen"}},
	{Key: "room_scenes", Section: "AUTOMATIONEN", Title: "Szenenbedarf", Description: "Szenen wie Abend/Abwesend/Urlaub", OptionSet: "YES_MAYBE_NO", Domains: []string{DomainSmart}, RequiredForExport: true, MaxSelections: 3},
}

// TopicMap indexes topic definitions by key.
func TopicMap(topics []TopicDefinition) map[string]TopicDefinition {
	m := make(map[string]TopicDefinition, len(topics))
	for _, t := range topics {
		m[t.Key] = t
	}
	return m
}

// RoomTopicByKey indexes the room topic catalog.
var RoomTopicByKey = TopicMap(RoomTopics)

// GlobalTopicByKey indexes the global topic catalog.
var GlobalTopicByKey = TopicMap(GlobalTopics)

// OutdoorTopicByKey indexes the outdoor topic catalog.
var OutdoorTopicByKey = TopicMap(OutdoorTopics)
