package pricing

import (
	"math"
	"strings"

	"github.com/17Trust09/Planner/internal/domain"
)

// Settings are the resolved pricing parameters: scalar assumptions plus the
// price band per cost category. Instances always satisfy the documented
// minimums (meters >= 1, split threshold >= 24, split ratio in [0.05, 1.0]).
type Settings struct {
	MetersPerRun              int              `json:"meters_per_run"`
	SwitchSplitThresholdPorts int              `json:"switch_split_threshold_ports"`
	SwitchSplitPoERatio       float64          `json:"switch_split_poe_ratio"`
	Ranges                    map[string]Range `json:"ranges"`
}

// DefaultSettings returns the hard-coded price bands and assumptions.
func DefaultSettings() Settings {
	return Settings{
		MetersPerRun:              20,
		SwitchSplitThresholdPorts: 48,
		SwitchSplitPoERatio:       0.4,
		Ranges: map[string]Range{
			"cat7_per_meter":                     NewRange(0.8, 1.2, 1.8),
			"lan_termination_per_run":            NewRange(12, 18, 30),
			"indoor_ap":                          NewRange(85, 140, 240),
			"outdoor_ap":                         NewRange(120, 190, 320),
			"outdoor_camera":                     NewRange(90, 170, 320),
			"outdoor_doorbell":                   NewRange(140, 240, 420),
			"sensor_bewegungsmelder":             NewRange(20, 45, 120),
			"sensor_praesenzmelder":              NewRange(45, 95, 220),
			"sensor_fensterkontakt":              NewRange(15, 35, 90),
			"sensor_tuerkontakt":                 NewRange(15, 35, 90),
			"sensor_temperatur":                  NewRange(15, 30, 80),
			"sensor_luftfeuchte":                 NewRange(18, 35, 90),
			"sensor_co2_luftqualitaet":           NewRange(60, 120, 260),
			"sensor_helligkeit":                  NewRange(18, 40, 95),
			"sensor_outdoor_temperatur":          NewRange(18, 35, 90),
			"sensor_outdoor_luftfeuchte":         NewRange(20, 40, 95),
			"sensor_outdoor_helligkeit":          NewRange(20, 42, 100),
			"sensor_outdoor_bewegungsmelder":     NewRange(35, 80, 190),
			"sensor_outdoor_wetterstation":       NewRange(90, 180, 420),
			"sensor_outdoor_smarter_gartenaktor": NewRange(60, 130, 320),
			"switch_poe_8":                       NewRange(95, 160, 300),
			"switch_poe_16":                      NewRange(190, 330, 620),
			"switch_poe_24":                      NewRange(290, 520, 980),
			"switch_poe_48":                      NewRange(650, 1100, 2200),
			"switch_non_poe_8":                   NewRange(35, 70, 150),
			"switch_non_poe_16":                  NewRange(70, 140, 280),
			"switch_non_poe_24":                  NewRange(100, 220, 420),
			"switch_non_poe_48":                  NewRange(220, 420, 850),
			"router_upgrade":                     NewRange(130, 220, 420),
			"router_new":                         NewRange(130, 260, 520),
			"router_provider_plus_own":           NewRange(190, 320, 650),
			"server_raspberry_pi":                NewRange(110, 170, 280),
			"server_intel_nuc":                   NewRange(260, 480, 900),
			"server_unraid":                      NewRange(500, 900, 1800),
			"server_proxmox":                     NewRange(500, 900, 1800),
			"server_nas":                         NewRange(300, 650, 1400),
			"server_ha_green_yellow":             NewRange(110, 180, 320),
		},
	}
}

// MergeSettings overlays loosely-typed user overrides over the defaults.
// Malformed values fall back to their default silently; scalar settings are
// clamped to their documented minimums afterwards. A legacy single
// "sensor_standard" range is applied to every sensor band that has no
// type-specific override.
func MergeSettings(overrides map[string]any) Settings {
	merged := DefaultSettings()
	if overrides == nil {
		return merged
	}

	if v, ok := overrides["meters_per_run"]; ok {
		if f, ok := toFloat(v); ok {
			merged.MetersPerRun = int(math.Round(f))
		}
	}
	if v, ok := overrides["switch_split_threshold_ports"]; ok {
		if f, ok := toFloat(v); ok {
			merged.SwitchSplitThresholdPorts = int(math.Round(f))
		}
	}
	if v, ok := overrides["switch_split_poe_ratio"]; ok {
		if f, ok := toFloat(v); ok {
			merged.SwitchSplitPoERatio = f
		}
	}

	if rawRanges, ok := overrides["ranges"].(map[string]any); ok {
		legacySensor, hasLegacy := rawRanges["sensor_standard"]
		for key, fallback := range merged.Ranges {
			override, present := rawRanges[key]
			if !present && hasLegacy && strings.HasPrefix(key, "sensor_") {
				override = legacySensor
				present = true
			}
			if present {
				merged.Ranges[key] = SanitizeRange(override, fallback)
			}
		}
	}

	if merged.MetersPerRun < 1 {
		merged.MetersPerRun = 1
	}
	if merged.SwitchSplitThresholdPorts < 24 {
		merged.SwitchSplitThresholdPorts = 24
	}
	merged.SwitchSplitPoERatio = math.Min(1.0, math.Max(0.05, merged.SwitchSplitPoERatio))

	return merged
}

// MergedSettings resolves the effective settings for a project's stored
// overrides.
func MergedSettings(project *domain.Project) Settings {
	if project == nil {
		return DefaultSettings()
	}
	return MergeSettings(project.PricingSettings)
}
