package catalog

// OptionSets maps an option-set name to its selectable option strings.
// These strings are display vocabulary and at the same time the values
// persisted in project files, so changing one is a data-model migration.
var OptionSets = map[string][]string{
	"CONTROL_OPTIONS": {
		"Kippschalter (klassisch)", "Taster (Impuls)", "Doppeltaster / Szenentaster", "Drehdimmer",
		"Wallpanel/Tablet", "Sprachsteuerung (optional)", "App (nur Ergänzung)",
	},
	"LIGHT_OPTIONS": {
		"Nur Grundbeleuchtung", "Zonen (mehrere Lichtkreise)", "Indirekt (LED-Cove/Decke/Wand)",
		"Direkt (Spots/Downlights)", "Akzentlicht (Regal/Nische)", "RGB (Ambient)",
		"Tunable White (Warm/Kalt)",
	},
	"LIGHT_LOGIC_OPTIONS": {
		"Aktor im Schaltschrank (Stern)", "Aktor Unterputz (dezentral)",
		"Smarte Leuchtmittel (Dauerstrom)", "Mischform (Aktor + smarte Lampen)",
	},
	"SENSOR_OPTIONS": {
		"Bewegungsmelder", "Präsenzmelder (mmWave)", "Fensterkontakt", "Türkontakt", "Temperatur",
		"Luftfeuchte", "CO₂ / Luftqualität", "Helligkeit",
	},
	"HEAT_OPTIONS": {
		"Keine Einzelraumregelung", "Thermostat (Heizkörper)", "FBH (Fußbodenheizung) – Raumregelung",
		"Fenster-auf-Erkennung", "Zeitprogramm", "Nachtabsenkung / Eco-Modus",
	},
	"SHADE_OPTIONS": {
		"Keine Beschattung", "Manuell", "Zeitgesteuert", "Sonnenstand (Azimut/Höhe)",
		"Wetter/Windschutz", "Sommer-Hitzeschutz",
	},
	"ROOM_NETWORK_OPTIONS": {
		"LAN-Dose vorhanden", "LAN-Dose optional", "WLAN reicht", "AP in/nahe Raum geplant",
		"PoE im Raum (z.B. Panel/Kamera)",
	},
	"SECURITY_OPTIONS": {
		"Kein Bedarf", "Fensterkontakte", "Türkontakt", "Alarmmodus (Nacht/Abwesend)",
		"Sirene/Signalgeber", "Kamera (lokal)",
	},
	"WATER_OPTIONS": {
		"Nicht nötig", "Lecksensor", "Lecksensor + Push-Alarm", "Lecksensor + Absperrventil (optional)",
	},
	"POWER_OPTIONS": {
		"Normale Steckdosen", "Schaltbar (Smart Plug)", "Schaltbar + Messung", "Fester Aktor/Relais + Messung",
		"Großverbraucher separat messen",
	},
	"YES_MAYBE_NO": {"Ja", "Vielleicht", "Nein"},
	"GLOBAL_STERN_OPTIONS": {
		"Keine Sternverkabelung (klassisch)", "Teilweise Sternverkabelung", "Komplette Sternverkabelung",
		"Zentrale Aktoren (Hutschiene)", "Dezentrale Aktoren (UP)",
	},
	"GLOBAL_PHASE_OPTIONS": {
		"Nicht relevant", "3 Phasen sauber verteilt", "3 Phasen + Lastmanagement vorgesehen",
		"Lastmanagement zwingend (WP/Wallbox)",
	},
	"SERVER_OPTIONS": {
		"Raspberry Pi", "Intel NUC / Mini-PC", "Unraid Server", "Proxmox Host",
		"NAS (Synology/QNAP)", "Home Assistant Green/Yellow", "VM auf bestehendem Server",
	},
	"HA_OS_OPTIONS": {
		"Home Assistant OS", "Home Assistant Container", "Home Assistant Supervised", "Home Assistant Core",
	},
	"BACKUP_OPTIONS": {
		"Keine Strategie", "Lokales Backup", "NAS-Backup", "Offsite-Backup", "3-2-1 Backup-Strategie",
	},
	"PROTOCOL_OPTIONS": {
		"Zigbee", "Z-Wave", "Thread/Matter", "KNX", "Modbus", "WLAN", "Bluetooth", "MQTT",
	},
	"CABLE_OPTIONS": {
		"Klassische Verdrahtung", "Teilweise Sternverdrahtung", "Komplette Sternverdrahtung",
		"BUS-basierte Verdrahtung", "Mischform",
	},
	"ROOM_ROLE_OPTIONS": {
		"Wohnen", "Arbeiten", "Schlafen", "Kinder", "Bad/Wellness", "Technikraum", "Verkehrsfläche",
	},
	"COVERAGE_OPTIONS": {
		"Hoch (Office/Streaming)", "Mittel", "Basis", "Optional",
	},
	"CAMERA_STORAGE_OPTIONS": {
		"Keine Kamera", "NVR lokal", "NAS-Aufzeichnung", "SD-Karte lokal", "Hybrid",
	},
	"AUTOMATION_LEVEL_OPTIONS": {
		"Keine Automationen", "Basis (Zeit/Schwellwert)", "Mittel (Szenen + Präsenz)", "Erweitert (Kontext + Energie)",
	},
	"LAN_SOCKET_COUNT_OPTIONS": {
		"0 Dosen", "1 Dose", "2 Dosen", "3 Dosen", "4 Dosen", "5 Dosen", "6 Dosen", "7 Dosen", "8 Dosen",
	},
	"LAN_PORTS_PER_SOCKET_OPTIONS": {
		"1 Port je Dose", "2 Ports je Dose", "3 Ports je Dose", "4 Ports je Dose",
	},
	"AP_OPTIONS": {
		"Kein AP im Raum", "AP im Raum", "AP in Flur/nahe Raum", "1 AP", "2 AP", "3 AP",
		"Optional bei Bedarf", "Meshing statt Kabel-AP",
	},
	"OUTDOOR_COUNT_OPTIONS": {"0", "1", "2", "3", "4"},
	"OUTDOOR_AP_OPTIONS":    {"0 AP", "1 AP", "2 AP", "3 AP"},
	"OUTDOOR_SENSOR_OPTIONS": {
		"Temperatursensor", "Luftfeuchtesensor", "Helligkeitssensor", "Bewegungsmelder außen",
		"Wetterstation", "Smarter Gartenaktor",
	},
	"SWITCH_SIZE_OPTIONS": {
		"8 Ports", "16 Ports", "24 Ports", "48 Ports", "Mehrere Switches",
	},
	"ROUTER_OPTIONS": {
		"Vorhanden, ausreichend", "Vorhanden, Upgrade empfohlen", "Neuanschaffung geplant",
		"Provider-Router + eigener Router",
	},
}

// RoomTypeOptions maps the room-type classifier to its display label.
var RoomTypeOptions = map[string]string{
	"living":   "Wohnen",
	"bedroom":  "Schlafen/Kinder",
	"office":   "Arbeiten/Büro",
	"bathroom": "Bad/WC",
	"kitchen":  "Küche",
	"hallway":  "Flur/Verkehr",
	"utility":  "Technik/HTR/Keller",
	"outdoor":  "Außenbereich",
	"other":    "Sonstiges",
}
