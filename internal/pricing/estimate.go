package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/17Trust09/Planner/internal/domain"
	"github.com/17Trust09/Planner/internal/evaluation"
)

// LineItem is one priced position of the estimate.
type LineItem struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Cost        Range  `json:"cost"`
}

// Estimate is the full itemized cost report for a project.
type Estimate struct {
	LineItems         []LineItem `json:"line_items"`
	Totals            Range      `json:"totals"`
	Assumptions       []string   `json:"assumptions"`
	Currency          string     `json:"currency"`
	SettingsUsed      Settings   `json:"settings_used"`
	SwitchSplitActive bool       `json:"switch_split_active"`
}

type sensorPricing struct {
	rangeKey string
	label    string
}

// sensorPriceMapping maps selected sensor labels to their price band key
// and display label. Indoor vocabulary first, outdoor vocabulary below.
var sensorPriceMapping = map[string]sensorPricing{
	"Bewegungsmelder":        {"sensor_bewegungsmelder", "Bewegungsmelder"},
	"Präsenzmelder (mmWave)": {"sensor_praesenzmelder", "Präsenzmelder (mmWave)"},
	"Fensterkontakt":         {"sensor_fensterkontakt", "Fensterkontakt"},
	"Türkontakt":             {"sensor_tuerkontakt", "Türkontakt"},
	"Temperatur":             {"sensor_temperatur", "Temperatursensor"},
	"Luftfeuchte":            {"sensor_luftfeuchte", "Luftfeuchtesensor"},
	"CO₂ / Luftqualität":     {"sensor_co2_luftqualitaet", "CO₂-/Luftqualitätssensor"},
	"Helligkeit":             {"sensor_helligkeit", "Helligkeitssensor"},
	"Temperatursensor":       {"sensor_outdoor_temperatur", "Outdoor Temperatursensor"},
	"Luftfeuchtesensor":      {"sensor_outdoor_luftfeuchte", "Outdoor Luftfeuchtesensor"},
	"Helligkeitssensor":      {"sensor_outdoor_helligkeit", "Outdoor Helligkeitssensor"},
	"Bewegungsmelder außen":  {"sensor_outdoor_bewegungsmelder", "Outdoor Bewegungsmelder"},
	"Wetterstation":          {"sensor_outdoor_wetterstation", "Wetterstation"},
	"Smarter Gartenaktor":    {"sensor_outdoor_smarter_gartenaktor", "Smarter Gartenaktor"},
}

var routerPriceMapping = map[string]string{
	"Vorhanden, Upgrade empfohlen":     "router_upgrade",
	"Neuanschaffung geplant":           "router_new",
	"Provider-Router + eigener Router": "router_provider_plus_own",
}

var serverPriceMapping = map[string]string{
	"Raspberry Pi":                "server_raspberry_pi",
	"Intel NUC / Mini-PC":         "server_intel_nuc",
	"Unraid Server":               "server_unraid",
	"Proxmox Host":                "server_proxmox",
	"NAS (Synology/QNAP)":         "server_nas",
	"Home Assistant Green/Yellow": "server_ha_green_yellow",
}

// switchPriceKey maps a bucketed switch size string to its price band key.
// Sizes without a port figure ("Kein zusätzlicher Switch", "Mehrere
// Switches") return ""; the 48+ recommendation is approximated with the
// 48-port band.
func switchPriceKey(size string, poe bool) string {
	suffix := ""
	switch {
	case strings.Contains(size, "8") && !strings.Contains(size, "48"):
		suffix = "8"
	case strings.Contains(size, "16"):
		suffix = "16"
	case strings.Contains(size, "24"):
		suffix = "24"
	case strings.Contains(size, "48"):
		suffix = "48"
	}
	if suffix == "" {
		return ""
	}
	if poe {
		return "switch_poe_" + suffix
	}
	return "switch_non_poe_" + suffix
}

// collectSensorCounts sums selected sensor quantities across all rooms'
// sensor-bearing topics plus the outdoor sensor topic. Quantities default
// to 1 per selection.
func collectSensorCounts(project *domain.Project) map[string]int {
	counts := make(map[string]int)
	if project == nil {
		return counts
	}
	for _, room := range project.Rooms {
		if room == nil {
			continue
		}
		for _, key := range []string{"room_sensor_general", "room_climate_sensors"} {
			state := room.Topic(key)
			for _, selection := range state.Selections {
				counts[selection] += state.QuantityOf(selection)
			}
		}
	}
	outdoor := project.OutdoorTopic("outdoor_smart_sensors")
	for _, selection := range outdoor.Selections {
		counts[selection] += outdoor.QuantityOf(selection)
	}
	return counts
}

// EstimateProjectCosts derives the itemized cost estimate from the network
// rollup, the sensor selections and the resolved pricing settings.
func EstimateProjectCosts(project *domain.Project) Estimate {
	net := evaluation.Rollup(project)
	cfg := MergedSettings(project)
	ranges := cfg.Ranges
	var lineItems []LineItem

	totalRuns := net.TotalCables
	if totalRuns > 0 {
		cablePricePerRun := ranges["cat7_per_meter"].Mul(float64(cfg.MetersPerRun))
		lineItems = append(lineItems, LineItem{
			Category:    "CAT7-Verkabelung",
			Description: fmt.Sprintf("%d Kabelwege à ca. %d m", totalRuns, cfg.MetersPerRun),
			Quantity:    totalRuns,
			Cost:        cablePricePerRun.Mul(float64(totalRuns)),
		})
		lineItems = append(lineItems, LineItem{
			Category:    "Netzwerkdosen/Abschluss",
			Description: "Patchfeld/Keystone/Datendose je Kabelweg",
			Quantity:    totalRuns,
			Cost:        ranges["lan_termination_per_run"].Mul(float64(totalRuns)),
		})
	}

	if net.TotalAPCount > 0 {
		lineItems = append(lineItems, LineItem{
			Category:    "Indoor Access Points",
			Description: "Access Points im Innenbereich (PoE)",
			Quantity:    net.TotalAPCount,
			Cost:        ranges["indoor_ap"].Mul(float64(net.TotalAPCount)),
		})
	}
	if net.OutdoorAPCount > 0 {
		lineItems = append(lineItems, LineItem{
			Category:    "Outdoor Access Points",
			Description: "Outdoor-APs (PoE)",
			Quantity:    net.OutdoorAPCount,
			Cost:        ranges["outdoor_ap"].Mul(float64(net.OutdoorAPCount)),
		})
	}
	if net.OutdoorCameraCount > 0 {
		lineItems = append(lineItems, LineItem{
			Category:    "Außenkameras",
			Description: "PoE-Kameras außen",
			Quantity:    net.OutdoorCameraCount,
			Cost:        ranges["outdoor_camera"].Mul(float64(net.OutdoorCameraCount)),
		})
	}
	if net.OutdoorDoorbellCount > 0 {
		lineItems = append(lineItems, LineItem{
			Category:    "Smarte Türklingeln",
			Description: "PoE-Türklingeln",
			Quantity:    net.OutdoorDoorbellCount,
			Cost:        ranges["outdoor_doorbell"].Mul(float64(net.OutdoorDoorbellCount)),
		})
	}

	sensorCounts := collectSensorCounts(project)
	sensorNames := make([]string, 0, len(sensorCounts))
	for name := range sensorCounts {
		sensorNames = append(sensorNames, name)
	}
	sort.Strings(sensorNames)
	for _, name := range sensorNames {
		quantity := sensorCounts[name]
		mapping, ok := sensorPriceMapping[name]
		if !ok || quantity <= 0 {
			continue
		}
		lineItems = append(lineItems, LineItem{
			Category:    "Sensorik",
			Description: mapping.label,
			Quantity:    quantity,
			Cost:        ranges[mapping.rangeKey].Mul(float64(quantity)),
		})
	}

	autoSplit := net.PortsWithOverhead >= cfg.SwitchSplitThresholdPorts ||
		net.PoERatio >= cfg.SwitchSplitPoERatio
	splitActive := net.SplitRecommended || autoSplit

	if splitActive {
		if key := switchPriceKey(net.SplitPlan.PoESwitch, true); key != "" {
			lineItems = append(lineItems, LineItem{
				Category:    "PoE-Switch",
				Description: fmt.Sprintf("PoE-Last separat (%s)", net.SplitPlan.PoESwitch),
				Quantity:    1,
				Cost:        ranges[key],
			})
		}
		if key := switchPriceKey(net.SplitPlan.ClientSwitch, false); key != "" {
			lineItems = append(lineItems, LineItem{
				Category:    "Non-PoE-Switch",
				Description: fmt.Sprintf("Client/LAN separat (%s)", net.SplitPlan.ClientSwitch),
				Quantity:    1,
				Cost:        ranges[key],
			})
		}
	} else {
		selected := project.FirstGlobalSelection("global_switch_size")
		if selected == "" {
			selected = net.RecommendedSwitch
		}
		if key := switchPriceKey(selected, true); key != "" {
			lineItems = append(lineItems, LineItem{
				Category:    "Switching",
				Description: fmt.Sprintf("Einzelswitch: %s", selected),
				Quantity:    1,
				Cost:        ranges[key],
			})
		}
	}

	if key, ok := routerPriceMapping[project.FirstGlobalSelection("global_router")]; ok {
		lineItems = append(lineItems, LineItem{
			Category:    "Router",
			Description: project.FirstGlobalSelection("global_router"),
			Quantity:    1,
			Cost:        ranges[key],
		})
	}
	if key, ok := serverPriceMapping[project.FirstGlobalSelection("global_server_hw")]; ok {
		lineItems = append(lineItems, LineItem{
			Category:    "Server-Plattform",
			Description: project.FirstGlobalSelection("global_server_hw"),
			Quantity:    1,
			Cost:        ranges[key],
		})
	}

	totals := Range{}
	for _, item := range lineItems {
		totals = totals.Add(item.Cost)
	}

	assumptions := []string{
		fmt.Sprintf("CAT7 mit ca. %d m pro Kabelweg angenommen.", cfg.MetersPerRun),
		fmt.Sprintf("Switch-Split aktiv ab %d Ports oder PoE-Anteil >= %d%%.",
			cfg.SwitchSplitThresholdPorts, int(cfg.SwitchSplitPoERatio*100)),
		"Alle Preise sind Richtwerte (lokal pflegbare Preisbänder).",
		"Montage-/Dienstleistungskosten sind nicht enthalten.",
	}

	return Estimate{
		LineItems:         lineItems,
		Totals:            totals.Round(),
		Assumptions:       assumptions,
		Currency:          "EUR",
		SettingsUsed:      cfg,
		SwitchSplitActive: splitActive,
	}
}
